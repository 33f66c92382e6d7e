package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestLookup(t *testing.T) {
	var gotLogins []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var req struct {
			GitHubLogins []string `json:"github_logins"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		gotLogins = req.GitHubLogins

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"alice": {"slug": "alice-wp"}, "bob": false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	handles, err := client.Lookup(context.Background(), []string{"alice", "bob"})
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	if want := []string{"alice", "bob"}; !reflect.DeepEqual(gotLogins, want) {
		t.Errorf("request logins = %v, want %v", gotLogins, want)
	}

	// alice resolves; bob's explicit false marker leaves him absent.
	if want := map[string]string{"alice": "alice-wp"}; !reflect.DeepEqual(handles, want) {
		t.Errorf("handles = %v, want %v", handles, want)
	}
}

func TestLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Lookup(context.Background(), []string{"alice"}); err == nil {
		t.Fatal("expected error for non-200 response, got nil")
	}
}

func TestLookupMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[1, 2, 3]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Lookup(context.Background(), []string{"alice"}); err == nil {
		t.Fatal("expected error for malformed response, got nil")
	}
}

func TestLookupUnreachable(t *testing.T) {
	// A closed server simulates the directory being down: the whole run
	// must fail, there is no degraded mode.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	if _, err := client.Lookup(context.Background(), []string{"alice"}); err == nil {
		t.Fatal("expected error for unreachable directory, got nil")
	}
}
