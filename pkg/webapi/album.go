package webapi

import (
	"context"
	"net/url"
)

// GetAlbum returns the album with the given ID, including its first page
// of tracks. The response is cached.
func (c *Client) GetAlbum(ctx context.Context, id string) (Cached[Album], error) {
	req, err := c.get("v1/albums/" + url.PathEscape(id))
	if err != nil {
		return Cached[Album]{}, err
	}
	req.Param("market", "from_token")

	return loadCached[Album](ctx, c, req, BucketAlbum, id)
}
