package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
)

// GetMadeForYou returns the personalized playlists shown on the home view.
func (c *Client) GetMadeForYou(ctx context.Context) ([]Playlist, error) {
	req, err := c.get("v1/views/made-for-x")
	if err != nil {
		return nil, err
	}
	req.Param("types", "playlist").
		Param("limit", "20").
		Param("offset", "0")

	result, err := load[struct {
		Content Page[Playlist] `json:"content"`
	}](ctx, c, req)
	if err != nil {
		return nil, err
	}
	return result.Content.Items, nil
}

// GetPlaylists returns the current user's playlists, up to 200.
func (c *Client) GetPlaylists(ctx context.Context) ([]Playlist, error) {
	req, err := c.get("v1/me/playlists")
	if err != nil {
		return nil, err
	}
	return loadAllPages[Playlist](ctx, c, req)
}

// GetPlaylist returns the playlist with the given ID.
func (c *Client) GetPlaylist(ctx context.Context, id string) (Playlist, error) {
	req, err := c.get("v1/playlists/" + url.PathEscape(id))
	if err != nil {
		return Playlist{}, err
	}
	return load[Playlist](ctx, c, req)
}

// playlistItem is one entry of a playlist's track listing.
type playlistItem struct {
	IsLocal bool          `json:"is_local"`
	Track   optionalTrack `json:"track"`
}

// optionalTrack holds either a decoded track or, when the payload does
// not match the Track shape, the raw JSON. The API returns bogus track
// objects for local files and unavailable items; decoding them this way
// keeps one bad entry from failing the whole page.
type optionalTrack struct {
	Typed  *Track
	Opaque json.RawMessage
}

func (o *optionalTrack) UnmarshalJSON(data []byte) error {
	var track Track
	if err := json.Unmarshal(data, &track); err == nil && track.ID != "" && track.Name != "" {
		o.Typed = &track
		return nil
	}
	o.Opaque = append(json.RawMessage(nil), bytes.TrimSpace(data)...)
	return nil
}

// GetPlaylistTracks returns the tracks of a playlist, up to 200. Local
// files and entries whose track payload is malformed are dropped.
func (c *Client) GetPlaylistTracks(ctx context.Context, id string) ([]Track, error) {
	req, err := c.get("v1/playlists/" + url.PathEscape(id) + "/tracks")
	if err != nil {
		return nil, err
	}
	req.Param("market", "from_token").
		Param("additional_types", "track")

	items, err := loadAllPages[playlistItem](ctx, c, req)
	if err != nil {
		return nil, err
	}
	return playableTracks(items), nil
}

func playableTracks(items []playlistItem) []Track {
	tracks := make([]Track, 0, len(items))
	for _, item := range items {
		if item.IsLocal {
			continue
		}
		if item.Track.Typed == nil {
			// Opaque payload, discard.
			continue
		}
		tracks = append(tracks, *item.Track.Typed)
	}
	return tracks
}
