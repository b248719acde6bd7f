package webapi

import "context"

// GetUserProfile returns the profile of the user the token belongs to.
func (c *Client) GetUserProfile(ctx context.Context) (UserProfile, error) {
	req, err := c.get("v1/me")
	if err != nil {
		return UserProfile{}, err
	}
	return load[UserProfile](ctx, c, req)
}
