package apiclient

import (
	"context"
	"net/http"

	"github.com/familydom/domkit/pkg/marketplace"
)

// Profile fetches the account behind the configured credential. A 401 here
// is the canonical signal that a persisted credential has gone stale.
func (c *Client) Profile(ctx context.Context) (*marketplace.UserProfile, error) {
	var user marketplace.UserProfile
	if err := c.Do(ctx, http.MethodGet, "/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial update to the account and returns the full
// updated profile. The server ignores protected fields (id, password hash).
func (c *Client) UpdateProfile(ctx context.Context, updates map[string]any) (*marketplace.UserProfile, error) {
	var user marketplace.UserProfile
	if err := c.Do(ctx, http.MethodPut, "/profile", updates, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
