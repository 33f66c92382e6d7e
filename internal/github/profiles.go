package github

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/propsbot/propsbot/internal/log"
	"github.com/propsbot/propsbot/internal/props"
)

// BatchProfiles fetches full profile data for the given logins in one
// aliased GraphQL request. Logins the API returns null for (deleted
// accounts) are absent from the result map.
func (c *Client) BatchProfiles(ctx context.Context, logins []string) (map[string]props.UserProfile, error) {
	if len(logins) == 0 {
		return nil, nil
	}

	query, aliases, err := BuildProfileBatchQuery(logins)
	if err != nil {
		return nil, err
	}

	data, err := c.executeGraphQL(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profiles: %w", err)
	}

	var rawData map[string]json.RawMessage
	if err := json.Unmarshal(data, &rawData); err != nil {
		return nil, fmt.Errorf("failed to parse profile response: %w", err)
	}

	profiles := make(map[string]props.UserProfile, len(logins))
	for alias, login := range aliases {
		raw, ok := rawData[alias]
		if !ok || string(raw) == "null" {
			log.Debug("no profile returned", "login", login)
			continue
		}
		var user userData
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("failed to parse profile for %s: %w", login, err)
		}
		profiles[login] = props.UserProfile{
			ID:    user.DatabaseID,
			Login: user.Login,
			Name:  user.Name,
			Email: user.Email,
		}
	}

	return profiles, nil
}

// Compile-time check that Client satisfies the reconciler's interface.
var _ props.ProfileSource = (*Client)(nil)
