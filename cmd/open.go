package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jfmyers9/spindle/internal/render"
	"github.com/jfmyers9/spindle/pkg/webapi"
	"github.com/spf13/cobra"
)

var openShow bool

var openCmd = &cobra.Command{
	Use:   "open <link>",
	Short: "Resolve an open.spotify.com link or spotify: URI",
	Long: `Resolve a link to the view it opens. Track links open the
track's album.

With --show the target is printed in full.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().BoolVar(&openShow, "show", false, "print the resolved playlist, artist or album")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	link, err := webapi.ParseLink(args[0])
	if err != nil {
		return err
	}

	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	nav, err := client.ResolveLink(ctx, link)
	if err != nil {
		var resErr *webapi.ResolutionError
		if errors.As(err, &resErr) {
			color.New(color.FgYellow).Fprintln(os.Stderr, resErr.Message)
		}
		return fmt.Errorf("failed to resolve link: %w", err)
	}

	p := render.New(os.Stdout)
	p.Nav(nav)
	if !openShow {
		return nil
	}

	switch nav.Kind {
	case webapi.NavPlaylistDetail:
		tracks, err := client.GetPlaylistTracks(ctx, nav.Playlist.ID)
		if err != nil {
			return fmt.Errorf("failed to get playlist tracks: %w", err)
		}
		p.Tracks(nav.Playlist.Name, tracks)
	case webapi.NavArtistDetail:
		albums, err := client.GetArtistAlbums(ctx, nav.Artist.ID)
		if err != nil {
			return fmt.Errorf("failed to get artist albums: %w", err)
		}
		p.ArtistAlbums(albums)
	case webapi.NavAlbumDetail:
		album, err := client.GetAlbum(ctx, nav.Album.ID)
		if err != nil {
			return fmt.Errorf("failed to get album: %w", err)
		}
		p.Album(album.Data)
	}
	return nil
}
