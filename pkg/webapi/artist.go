package webapi

import (
	"context"
	"net/url"
)

// GetArtist returns the artist with the given ID. The response is cached.
func (c *Client) GetArtist(ctx context.Context, id string) (Artist, error) {
	req, err := c.get("v1/artists/" + url.PathEscape(id))
	if err != nil {
		return Artist{}, err
	}

	result, err := loadCached[Artist](ctx, c, req, BucketArtist, id)
	if err != nil {
		return Artist{}, err
	}
	return result.Data, nil
}

// GetArtistAlbums returns the artist's discography, split into albums,
// singles, compilations and appearances. Each album lands in exactly one
// bucket and keeps its server order within it.
func (c *Client) GetArtistAlbums(ctx context.Context, id string) (ArtistAlbums, error) {
	req, err := c.get("v1/artists/" + url.PathEscape(id) + "/albums")
	if err != nil {
		return ArtistAlbums{}, err
	}
	req.Param("market", "from_token")

	albums, err := loadAllPages[Album](ctx, c, req)
	if err != nil {
		return ArtistAlbums{}, err
	}
	return partitionAlbums(albums), nil
}

func partitionAlbums(albums []Album) ArtistAlbums {
	result := ArtistAlbums{
		Albums:       []Album{},
		Singles:      []Album{},
		Compilations: []Album{},
		AppearsOn:    []Album{},
	}
	for _, album := range albums {
		switch album.Kind() {
		case AlbumTypeSingle:
			result.Singles = append(result.Singles, album)
		case AlbumTypeCompilation:
			result.Compilations = append(result.Compilations, album)
		case AlbumTypeAppearsOn:
			result.AppearsOn = append(result.AppearsOn, album)
		default:
			result.Albums = append(result.Albums, album)
		}
	}
	return result
}

// GetArtistTopTracks returns the artist's most popular tracks.
func (c *Client) GetArtistTopTracks(ctx context.Context, id string) ([]Track, error) {
	req, err := c.get("v1/artists/" + url.PathEscape(id) + "/top-tracks")
	if err != nil {
		return nil, err
	}
	req.Param("market", "from_token")

	result, err := load[struct {
		Tracks []Track `json:"tracks"`
	}](ctx, c, req)
	if err != nil {
		return nil, err
	}
	return result.Tracks, nil
}

// GetRelatedArtists returns artists similar to the given one. The response
// is cached.
func (c *Client) GetRelatedArtists(ctx context.Context, id string) (Cached[[]Artist], error) {
	type artists struct {
		Artists []Artist `json:"artists"`
	}

	req, err := c.get("v1/artists/" + url.PathEscape(id) + "/related-artists")
	if err != nil {
		return Cached[[]Artist]{}, err
	}

	result, err := loadCached[artists](ctx, c, req, BucketRelatedArtists, id)
	if err != nil {
		return Cached[[]Artist]{}, err
	}
	return MapCached(result, func(a artists) []Artist { return a.Artists }), nil
}
