package props

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"
)

type fakeProfiles struct {
	profiles  map[string]UserProfile
	err       error
	calls     int
	gotLogins []string
}

func (f *fakeProfiles) BatchProfiles(_ context.Context, logins []string) (map[string]UserProfile, error) {
	f.calls++
	f.gotLogins = append([]string(nil), logins...)
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles, nil
}

type fakeDirectory struct {
	handles   map[string]string
	err       error
	calls     int
	gotLogins []string
}

func (f *fakeDirectory) Lookup(_ context.Context, logins []string) (map[string]string, error) {
	f.calls++
	f.gotLogins = append([]string(nil), logins...)
	if f.err != nil {
		return nil, f.err
	}
	return f.handles, nil
}

func TestReconcileBackfillsAndResolves(t *testing.T) {
	data := Contributions{
		Commits: []CommitAuthor{linkedCommit("alice")},
		Reviews: []Actor{{Login: "bob"}},
		LinkedIssues: []LinkedIssue{
			{Author: Actor{Login: "carol"}},
		},
	}
	r := Aggregate(data, nil)

	profiles := &fakeProfiles{profiles: map[string]UserProfile{
		"bob":   {ID: 2, Login: "bob", Name: "Bob"},
		"carol": {ID: 3, Login: "carol", Name: "Carol"},
	}}
	directory := &fakeDirectory{handles: map[string]string{
		"alice": "alice-dir",
		"bob":   "bobby",
	}}

	if err := Reconcile(context.Background(), r, profiles, directory); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	// Committers already have profiles; only bob and carol are backfilled.
	sort.Strings(profiles.gotLogins)
	if want := []string{"bob", "carol"}; !reflect.DeepEqual(profiles.gotLogins, want) {
		t.Errorf("backfill logins = %v, want %v", profiles.gotLogins, want)
	}

	// The directory sees the complete flattened member list.
	sort.Strings(directory.gotLogins)
	if want := []string{"alice", "bob", "carol"}; !reflect.DeepEqual(directory.gotLogins, want) {
		t.Errorf("directory logins = %v, want %v", directory.gotLogins, want)
	}

	if slug := r.Profile("alice").Slug; slug != "alice-dir" {
		t.Errorf("alice slug = %q, want alice-dir", slug)
	}
	if slug := r.Profile("bob").Slug; slug != "bobby" {
		t.Errorf("bob slug = %q, want bobby", slug)
	}
	if slug := r.Profile("carol").Slug; slug != "" {
		t.Errorf("carol slug = %q, want empty (not linked)", slug)
	}
	if name := r.Profile("bob").Name; name != "Bob" {
		t.Errorf("bob name = %q, want Bob", name)
	}
}

func TestReconcileSkipsEmptyBackfill(t *testing.T) {
	// A run with only committers has nothing to backfill; the batch
	// profile request must not be issued at all.
	r := Aggregate(Contributions{Commits: []CommitAuthor{linkedCommit("alice")}}, nil)

	profiles := &fakeProfiles{}
	directory := &fakeDirectory{handles: map[string]string{"alice": "alice-dir"}}

	if err := Reconcile(context.Background(), r, profiles, directory); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if profiles.calls != 0 {
		t.Errorf("expected no profile batch request, got %d", profiles.calls)
	}
	if directory.calls != 1 {
		t.Errorf("expected one directory lookup, got %d", directory.calls)
	}
}

func TestReconcileEmptyRoster(t *testing.T) {
	r := Aggregate(Contributions{}, nil)

	profiles := &fakeProfiles{}
	directory := &fakeDirectory{}

	if err := Reconcile(context.Background(), r, profiles, directory); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if profiles.calls != 0 || directory.calls != 0 {
		t.Errorf("expected no network calls for empty roster, got profiles=%d directory=%d",
			profiles.calls, directory.calls)
	}
}

func TestReconcileDirectoryFailureIsFatal(t *testing.T) {
	r := Aggregate(Contributions{Commits: []CommitAuthor{linkedCommit("alice")}}, nil)

	wantErr := errors.New("directory unreachable")
	directory := &fakeDirectory{err: wantErr}

	err := Reconcile(context.Background(), r, &fakeProfiles{}, directory)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}

func TestReconcileProfileFailureIsFatal(t *testing.T) {
	r := Aggregate(Contributions{Reviews: []Actor{{Login: "bob"}}}, nil)

	wantErr := errors.New("graphql down")
	profiles := &fakeProfiles{err: wantErr}
	directory := &fakeDirectory{}

	err := Reconcile(context.Background(), r, profiles, directory)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}

func TestReconcileStubsUnknownProfiles(t *testing.T) {
	// A login the profile batch returns nothing for (deleted account)
	// still gets a stub profile so rendering has a record to consult.
	r := Aggregate(Contributions{Reviews: []Actor{{Login: "ghost"}}}, nil)

	profiles := &fakeProfiles{profiles: map[string]UserProfile{}}
	directory := &fakeDirectory{handles: map[string]string{"ghost": "ghost-dir"}}

	if err := Reconcile(context.Background(), r, profiles, directory); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	p := r.Profile("ghost")
	if p == nil {
		t.Fatal("expected stub profile")
	}
	if p.Slug != "ghost-dir" {
		t.Errorf("stub slug = %q, want ghost-dir", p.Slug)
	}
}
