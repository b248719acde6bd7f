package webapi

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestParseLink(t *testing.T) {
	tests := []struct {
		input   string
		want    Link
		wantErr bool
	}{
		{input: "https://open.spotify.com/track/6rqhFgbbKwnb9MLmUQDhG6", want: Link{Kind: LinkTrack, ID: "6rqhFgbbKwnb9MLmUQDhG6"}},
		{input: "https://open.spotify.com/album/4aawyAB9vmqN3uQ7FjRGTy?si=abc123", want: Link{Kind: LinkAlbum, ID: "4aawyAB9vmqN3uQ7FjRGTy"}},
		{input: "https://open.spotify.com/intl-de/artist/0OdUWJ0sBjDrqHygGUXeCF", want: Link{Kind: LinkArtist, ID: "0OdUWJ0sBjDrqHygGUXeCF"}},
		{input: "  spotify:playlist:37i9dQZF1DXcBWIGoYBM5M ", want: Link{Kind: LinkPlaylist, ID: "37i9dQZF1DXcBWIGoYBM5M"}},
		{input: "spotify:episode:512ojhOuo1ktJprKbVcKyQ", wantErr: true},
		{input: "https://example.com/track/abc", wantErr: true},
		{input: "https://open.spotify.com/track/", wantErr: true},
		{input: "spotify:track", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLink(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLink) {
					t.Errorf("ParseLink() error = %v, want ErrInvalidLink", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLink() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLink() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveLink(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/playlists/pl1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"pl1","name":"Warp 30"}`))
	})
	mux.HandleFunc("/v1/artists/ar1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"ar1","name":"Squarepusher"}`))
	})
	mux.HandleFunc("/v1/albums/al1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"al1","name":"Hard Normal Daddy","album_type":"album"}`))
	})
	mux.HandleFunc("/v1/tracks/t1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"t1","name":"Beep Street","album":{"id":"al1","name":"Hard Normal Daddy"}}`))
	})
	mux.HandleFunc("/v1/tracks/orphan", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"orphan","name":"Untitled","album":null}`))
	})
	client, _ := newTestClient(t, mux, nil)

	tests := []struct {
		link     Link
		wantKind NavKind
		wantID   string
	}{
		{Link{Kind: LinkPlaylist, ID: "pl1"}, NavPlaylistDetail, "pl1"},
		{Link{Kind: LinkArtist, ID: "ar1"}, NavArtistDetail, "ar1"},
		{Link{Kind: LinkAlbum, ID: "al1"}, NavAlbumDetail, "al1"},
		{Link{Kind: LinkTrack, ID: "t1"}, NavAlbumDetail, "al1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.link.Kind), func(t *testing.T) {
			nav, err := client.ResolveLink(context.Background(), tt.link)
			if err != nil {
				t.Fatalf("ResolveLink() error = %v", err)
			}
			if nav.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", nav.Kind, tt.wantKind)
			}

			var id string
			switch nav.Kind {
			case NavPlaylistDetail:
				id = nav.Playlist.ID
			case NavArtistDetail:
				id = nav.Artist.ID
			case NavAlbumDetail:
				id = nav.Album.ID
			}
			if id != tt.wantID {
				t.Errorf("target ID = %q, want %q", id, tt.wantID)
			}
		})
	}

	t.Run("track without album", func(t *testing.T) {
		_, err := client.ResolveLink(context.Background(), Link{Kind: LinkTrack, ID: "orphan"})
		var resErr *ResolutionError
		if !errors.As(err, &resErr) {
			t.Fatalf("expected *ResolutionError, got %v", err)
		}
		if resErr.Message != "Track was found but has no album" {
			t.Errorf("Message = %q", resErr.Message)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := client.ResolveLink(context.Background(), Link{Kind: "show", ID: "x"})
		if !errors.Is(err, ErrInvalidLink) {
			t.Errorf("expected ErrInvalidLink, got %v", err)
		}
	})
}
