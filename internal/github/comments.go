package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v57/github"
	"github.com/propsbot/propsbot/internal/log"
)

// UpsertComment posts body as a comment on the pull request, or edits
// the existing propsbot comment when one carrying marker is already
// present. Returns the comment's HTML URL.
func (c *Client) UpsertComment(ctx context.Context, owner, repo string, number int, marker, body string) (string, error) {
	existing, err := c.findComment(ctx, owner, repo, number, marker)
	if err != nil {
		return "", err
	}

	if existing != nil {
		existing.Body = gh.String(body)
		updated, _, err := c.rest.Issues.EditComment(ctx, owner, repo, existing.GetID(), existing)
		if err != nil {
			return "", fmt.Errorf("failed to update attribution comment: %w", err)
		}
		log.Info("updated attribution comment", "id", updated.GetID())
		return updated.GetHTMLURL(), nil
	}

	created, _, err := c.rest.Issues.CreateComment(ctx, owner, repo, number, &gh.IssueComment{
		Body: gh.String(body),
	})
	if err != nil {
		return "", fmt.Errorf("failed to post attribution comment: %w", err)
	}
	log.Info("posted attribution comment", "id", created.GetID())
	return created.GetHTMLURL(), nil
}

// findComment looks for an existing comment containing marker.
// PR discussion comments live on the issues endpoint.
func (c *Client) findComment(ctx context.Context, owner, repo string, number int, marker string) (*gh.IssueComment, error) {
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}
	for {
		comments, resp, err := c.rest.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list PR comments: %w", err)
		}
		for _, comment := range comments {
			if strings.Contains(comment.GetBody(), marker) {
				return comment, nil
			}
		}
		if resp.NextPage == 0 {
			return nil, nil
		}
		opts.Page = resp.NextPage
	}
}
