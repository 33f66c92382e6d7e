// Package github is the transport layer for the GitHub REST and GraphQL
// APIs. It fetches raw pull-request contribution data, batches profile
// lookups, and posts attribution comments; all policy lives in the props
// package.
package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API behind the small surface propsbot needs.
type Client struct {
	rest *github.Client
	http *http.Client
}

// NewClient creates a client authenticated with a personal access token.
func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token not provided. Set the GITHUB_TOKEN environment variable")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{
		rest: github.NewClient(tc),
		http: tc,
	}, nil
}

// GetAuthenticatedUser returns the authenticated user's login.
func (c *Client) GetAuthenticatedUser(ctx context.Context) (string, error) {
	user, _, err := c.rest.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}
