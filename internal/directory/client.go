// Package directory talks to the external community-profile service
// that maps platform logins to directory handles.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/propsbot/propsbot/internal/log"
	"github.com/propsbot/propsbot/internal/props"
)

// Client performs batch login-to-handle lookups against the directory's
// HTTP endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a directory client for the given lookup endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     http.DefaultClient,
	}
}

// lookupRequest is the outbound payload: the complete list of logins
// gathered for the run, sent in one call.
type lookupRequest struct {
	GitHubLogins []string `json:"github_logins"`
}

// record is one directory entry. The service returns a literal `false`
// for logins with no linked directory account, so each value is decoded
// individually.
type record struct {
	Slug string `json:"slug"`
}

// Lookup resolves the given logins in a single request. The returned map
// holds an entry only for logins with a linked directory account. Any
// transport or decoding failure is fatal to the run.
func (c *Client) Lookup(ctx context.Context, logins []string) (map[string]string, error) {
	body, err := json.Marshal(lookupRequest{GitHubLogins: logins})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal directory request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create directory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug("directory lookup", "logins", len(logins))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse directory response: %w", err)
	}

	handles := make(map[string]string, len(raw))
	for login, value := range raw {
		if string(value) == "false" {
			// Explicit not-linked marker.
			continue
		}
		var rec record
		if err := json.Unmarshal(value, &rec); err != nil {
			return nil, fmt.Errorf("failed to parse directory record for %s: %w", login, err)
		}
		if rec.Slug != "" {
			handles[login] = rec.Slug
		}
	}

	return handles, nil
}

// Compile-time check that Client satisfies the reconciler's interface.
var _ props.DirectorySource = (*Client)(nil)
