package github

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/propsbot/propsbot/internal/log"
	"github.com/propsbot/propsbot/internal/props"
)

// actorData is a nullable author reference in GraphQL responses.
// Deleted accounts come back as null.
type actorData struct {
	Login string `json:"login"`
}

// userData is the linked-account payload attached to a commit author or
// returned by a user sub-query.
type userData struct {
	DatabaseID int64  `json:"databaseId"`
	Login      string `json:"login"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// contributionsData mirrors the nested shape of the contributions query.
type contributionsData struct {
	Repository *struct {
		PullRequest *struct {
			Commits struct {
				Nodes []struct {
					Commit struct {
						Author *struct {
							Name  string    `json:"name"`
							Email string    `json:"email"`
							User  *userData `json:"user"`
						} `json:"author"`
					} `json:"commit"`
				} `json:"nodes"`
			} `json:"commits"`
			Reviews struct {
				Nodes []struct {
					Author *actorData `json:"author"`
				} `json:"nodes"`
			} `json:"reviews"`
			Comments struct {
				Nodes []struct {
					Author *actorData `json:"author"`
				} `json:"nodes"`
			} `json:"comments"`
			ClosingIssuesReferences struct {
				Nodes []struct {
					Author   *actorData `json:"author"`
					Comments struct {
						Nodes []struct {
							Author *actorData `json:"author"`
						} `json:"nodes"`
					} `json:"comments"`
				} `json:"nodes"`
			} `json:"closingIssuesReferences"`
		} `json:"pullRequest"`
	} `json:"repository"`
}

// FetchContributions retrieves the raw per-channel author data for one
// pull request in a single GraphQL request: up to 100 commits, reviews,
// and comments, plus up to 100 closing issues each with up to 100 of
// their own comments. Pagination past 100 per list is not attempted.
func (c *Client) FetchContributions(ctx context.Context, owner, repo string, number int) (props.Contributions, error) {
	var result props.Contributions

	query, err := BuildContributionsQuery(owner, repo, number)
	if err != nil {
		return result, err
	}

	data, err := c.executeGraphQL(ctx, query)
	if err != nil {
		return result, fmt.Errorf("failed to fetch PR contributions: %w", err)
	}

	result, err = parseContributions(data)
	if err != nil {
		return result, fmt.Errorf("%s/%s#%d: %w", owner, repo, number, err)
	}

	log.Debug("fetched PR contributions",
		"commits", len(result.Commits),
		"reviews", len(result.Reviews),
		"comments", len(result.Comments),
		"linkedIssues", len(result.LinkedIssues))

	return result, nil
}

// parseContributions converts the raw GraphQL payload into the engine's
// channel-ordered input. A missing repository or pull request node is an
// error: every later stage assumes well-formed nested data.
func parseContributions(data []byte) (props.Contributions, error) {
	var result props.Contributions

	var parsed contributionsData
	if err := json.Unmarshal(data, &parsed); err != nil {
		return result, fmt.Errorf("failed to parse contributions response: %w", err)
	}
	if parsed.Repository == nil || parsed.Repository.PullRequest == nil {
		return result, fmt.Errorf("pull request not found")
	}
	pr := parsed.Repository.PullRequest

	for _, node := range pr.Commits.Nodes {
		author := node.Commit.Author
		if author == nil {
			continue
		}
		commit := props.CommitAuthor{Name: author.Name, Email: author.Email}
		if author.User != nil {
			commit.User = &props.UserProfile{
				ID:    author.User.DatabaseID,
				Login: author.User.Login,
				Name:  author.User.Name,
				Email: author.User.Email,
			}
		}
		result.Commits = append(result.Commits, commit)
	}

	for _, node := range pr.Reviews.Nodes {
		if node.Author != nil {
			result.Reviews = append(result.Reviews, props.Actor{Login: node.Author.Login})
		}
	}

	for _, node := range pr.Comments.Nodes {
		if node.Author != nil {
			result.Comments = append(result.Comments, props.Actor{Login: node.Author.Login})
		}
	}

	for _, node := range pr.ClosingIssuesReferences.Nodes {
		issue := props.LinkedIssue{}
		if node.Author != nil {
			issue.Author = props.Actor{Login: node.Author.Login}
		}
		for _, comment := range node.Comments.Nodes {
			if comment.Author != nil {
				issue.Comments = append(issue.Comments, props.Actor{Login: comment.Author.Login})
			}
		}
		result.LinkedIssues = append(result.LinkedIssues, issue)
	}

	return result, nil
}
