package webapi

import "context"

// GetSavedAlbums returns the albums in the user's library, most recently
// saved first, up to 200.
func (c *Client) GetSavedAlbums(ctx context.Context) ([]Album, error) {
	type savedAlbum struct {
		Album Album `json:"album"`
	}

	req, err := c.get("v1/me/albums")
	if err != nil {
		return nil, err
	}
	req.Param("market", "from_token")

	items, err := loadAllPages[savedAlbum](ctx, c, req)
	if err != nil {
		return nil, err
	}

	albums := make([]Album, len(items))
	for i, item := range items {
		albums[i] = item.Album
	}
	return albums, nil
}

// SaveAlbum adds an album to the user's library.
func (c *Client) SaveAlbum(ctx context.Context, id string) error {
	req, err := c.put("v1/me/albums")
	if err != nil {
		return err
	}
	req.Param("ids", id)
	return c.sendEmptyJSON(ctx, req)
}

// UnsaveAlbum removes an album from the user's library.
func (c *Client) UnsaveAlbum(ctx context.Context, id string) error {
	req, err := c.delete("v1/me/albums")
	if err != nil {
		return err
	}
	req.Param("ids", id)
	return c.sendEmptyJSON(ctx, req)
}

// GetSavedTracks returns the tracks in the user's library, most recently
// saved first, up to 200.
func (c *Client) GetSavedTracks(ctx context.Context) ([]Track, error) {
	type savedTrack struct {
		Track Track `json:"track"`
	}

	req, err := c.get("v1/me/tracks")
	if err != nil {
		return nil, err
	}
	req.Param("market", "from_token")

	items, err := loadAllPages[savedTrack](ctx, c, req)
	if err != nil {
		return nil, err
	}

	tracks := make([]Track, len(items))
	for i, item := range items {
		tracks[i] = item.Track
	}
	return tracks, nil
}

// SaveTrack adds a track to the user's library.
func (c *Client) SaveTrack(ctx context.Context, id string) error {
	req, err := c.put("v1/me/tracks")
	if err != nil {
		return err
	}
	req.Param("ids", id)
	return c.sendEmptyJSON(ctx, req)
}

// UnsaveTrack removes a track from the user's library.
func (c *Client) UnsaveTrack(ctx context.Context, id string) error {
	req, err := c.delete("v1/me/tracks")
	if err != nil {
		return err
	}
	req.Param("ids", id)
	return c.sendEmptyJSON(ctx, req)
}
