package cmd

import (
	"fmt"
	"os"

	"github.com/jfmyers9/spindle/internal/render"
	"github.com/jfmyers9/spindle/pkg/webapi"
	"github.com/spf13/cobra"
)

var artistCmd = &cobra.Command{
	Use:   "artist <id|link>",
	Short: "Show an artist",
	Args:  cobra.ExactArgs(1),
	RunE:  runArtist,
}

var albumsCmd = &cobra.Command{
	Use:   "albums <artist id|link>",
	Short: "List an artist's discography",
	Long: `List an artist's discography grouped into albums, singles,
compilations and appearances on other artists' releases.

At most 200 releases are loaded.`,
	Args: cobra.ExactArgs(1),
	RunE: runAlbums,
}

var topCmd = &cobra.Command{
	Use:   "top <artist id|link>",
	Short: "List an artist's top tracks",
	Args:  cobra.ExactArgs(1),
	RunE:  runTop,
}

var relatedCmd = &cobra.Command{
	Use:   "related <artist id|link>",
	Short: "List artists related to an artist",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelated,
}

func init() {
	rootCmd.AddCommand(artistCmd, albumsCmd, topCmd, relatedCmd)
}

func runArtist(cmd *cobra.Command, args []string) error {
	id, err := resolveID(args[0], webapi.LinkArtist)
	if err != nil {
		return err
	}

	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	artist, err := client.GetArtist(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get artist: %w", err)
	}

	render.New(os.Stdout).Artist(artist)
	return nil
}

func runAlbums(cmd *cobra.Command, args []string) error {
	id, err := resolveID(args[0], webapi.LinkArtist)
	if err != nil {
		return err
	}

	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	albums, err := client.GetArtistAlbums(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get artist albums: %w", err)
	}

	render.New(os.Stdout).ArtistAlbums(albums)
	return nil
}

func runTop(cmd *cobra.Command, args []string) error {
	id, err := resolveID(args[0], webapi.LinkArtist)
	if err != nil {
		return err
	}

	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	tracks, err := client.GetArtistTopTracks(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get top tracks: %w", err)
	}

	render.New(os.Stdout).Tracks("Top Tracks", tracks)
	return nil
}

func runRelated(cmd *cobra.Command, args []string) error {
	id, err := resolveID(args[0], webapi.LinkArtist)
	if err != nil {
		return err
	}

	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	related, err := client.GetRelatedArtists(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get related artists: %w", err)
	}

	p := render.New(os.Stdout)
	p.Artists("Related Artists", related.Data)
	fmt.Println(render.Source(related.FromCache, related.CachedAt))
	return nil
}
