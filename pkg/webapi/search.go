package webapi

import "context"

// Search searches the catalog for artists, albums, tracks and playlists.
func (c *Client) Search(ctx context.Context, query string) (SearchResults, error) {
	type apiSearchResults struct {
		Artists   *Page[Artist]   `json:"artists"`
		Albums    *Page[Album]    `json:"albums"`
		Tracks    *Page[Track]    `json:"tracks"`
		Playlists *Page[Playlist] `json:"playlists"`
	}

	req, err := c.get("v1/search")
	if err != nil {
		return SearchResults{}, err
	}
	req.Param("q", query).
		Param("type", "artist,album,track,playlist").
		Param("market", "from_token")

	result, err := load[apiSearchResults](ctx, c, req)
	if err != nil {
		return SearchResults{}, err
	}

	return SearchResults{
		Query:     query,
		Artists:   pageItems(result.Artists),
		Albums:    pageItems(result.Albums),
		Tracks:    pageItems(result.Tracks),
		Playlists: pageItems(result.Playlists),
	}, nil
}

// pageItems returns the items of an optional page, never nil.
func pageItems[T any](p *Page[T]) []T {
	if p == nil || p.Items == nil {
		return []T{}
	}
	return p.Items
}
