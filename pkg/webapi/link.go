package webapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// LinkKind is the resource type a deep link points at.
type LinkKind string

const (
	LinkPlaylist LinkKind = "playlist"
	LinkArtist   LinkKind = "artist"
	LinkAlbum    LinkKind = "album"
	LinkTrack    LinkKind = "track"
)

// Link is a parsed deep link.
type Link struct {
	Kind LinkKind
	ID   string
}

// ParseLink parses an open.spotify.com URL or a spotify: URI.
//
//	https://open.spotify.com/track/6rqhFgbbKwnb9MLmUQDhG6?si=abc
//	spotify:album:4aawyAB9vmqN3uQ7FjRGTy
func ParseLink(s string) (Link, error) {
	s = strings.TrimSpace(s)

	var parts []string
	if strings.HasPrefix(s, "spotify:") {
		parts = strings.Split(strings.TrimPrefix(s, "spotify:"), ":")
	} else {
		u, err := url.Parse(s)
		if err != nil {
			return Link{}, fmt.Errorf("%w: %v", ErrInvalidLink, err)
		}
		if u.Host != "open.spotify.com" {
			return Link{}, fmt.Errorf("%w: unexpected host %q", ErrInvalidLink, u.Host)
		}
		parts = strings.Split(strings.Trim(u.Path, "/"), "/")
		// Localized links carry a leading "intl-xx" segment.
		if len(parts) > 0 && strings.HasPrefix(parts[0], "intl-") {
			parts = parts[1:]
		}
	}

	if len(parts) != 2 || parts[1] == "" {
		return Link{}, fmt.Errorf("%w: %q", ErrInvalidLink, s)
	}

	kind := LinkKind(parts[0])
	switch kind {
	case LinkPlaylist, LinkArtist, LinkAlbum, LinkTrack:
		return Link{Kind: kind, ID: parts[1]}, nil
	default:
		return Link{}, fmt.Errorf("%w: unsupported kind %q", ErrInvalidLink, parts[0])
	}
}

// NavKind is the kind of view a resolved link navigates to.
type NavKind int

const (
	NavPlaylistDetail NavKind = iota
	NavArtistDetail
	NavAlbumDetail
)

func (k NavKind) String() string {
	switch k {
	case NavPlaylistDetail:
		return "playlist"
	case NavArtistDetail:
		return "artist"
	case NavAlbumDetail:
		return "album"
	default:
		return "unknown"
	}
}

// Nav is a navigation target. Exactly one of the links is set, matching
// Kind.
type Nav struct {
	Kind     NavKind
	Playlist *PlaylistLink
	Artist   *ArtistLink
	Album    *AlbumLink
}

// ResolveLink loads the resource a link points at and returns where to
// navigate. Track links resolve to the track's album.
func (c *Client) ResolveLink(ctx context.Context, link Link) (Nav, error) {
	switch link.Kind {
	case LinkPlaylist:
		playlist, err := c.GetPlaylist(ctx, link.ID)
		if err != nil {
			return Nav{}, err
		}
		pl := playlist.Link()
		return Nav{Kind: NavPlaylistDetail, Playlist: &pl}, nil

	case LinkArtist:
		artist, err := c.GetArtist(ctx, link.ID)
		if err != nil {
			return Nav{}, err
		}
		al := artist.Link()
		return Nav{Kind: NavArtistDetail, Artist: &al}, nil

	case LinkAlbum:
		album, err := c.GetAlbum(ctx, link.ID)
		if err != nil {
			return Nav{}, err
		}
		al := album.Data.Link()
		return Nav{Kind: NavAlbumDetail, Album: &al}, nil

	case LinkTrack:
		// TODO: carry the track ID so the album view can highlight it.
		track, err := c.GetTrack(ctx, link.ID)
		if err != nil {
			return Nav{}, err
		}
		if track.Album == nil {
			return Nav{}, &ResolutionError{Message: "Track was found but has no album"}
		}
		return Nav{Kind: NavAlbumDetail, Album: track.Album}, nil

	default:
		return Nav{}, fmt.Errorf("%w: unsupported kind %q", ErrInvalidLink, link.Kind)
	}
}
