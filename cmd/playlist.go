package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jfmyers9/spindle/internal/render"
	"github.com/jfmyers9/spindle/pkg/webapi"
	"github.com/spf13/cobra"
)

var playlistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "List your playlists",
	Long: `List the playlists you own or follow.

At most 200 playlists are loaded.`,
	Args: cobra.NoArgs,
	RunE: runPlaylists,
}

var playlistCmd = &cobra.Command{
	Use:   "playlist <id|link|name>",
	Short: "Show the tracks of a playlist",
	Long: `Show the tracks of a playlist.

The playlist can be given as an ID, a link, or the name of one of your
own playlists. Local files and episodes are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlaylist,
}

var madeForYouCmd = &cobra.Command{
	Use:   "made-for-you",
	Short: "List playlists made for you",
	Args:  cobra.NoArgs,
	RunE:  runMadeForYou,
}

func init() {
	rootCmd.AddCommand(playlistsCmd, playlistCmd, madeForYouCmd)
}

func runPlaylists(cmd *cobra.Command, args []string) error {
	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	playlists, err := client.GetPlaylists(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get playlists: %w", err)
	}

	render.New(os.Stdout).Playlists("🎵 Your Playlists", playlists)
	return nil
}

func runPlaylist(cmd *cobra.Command, args []string) error {
	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	id, err := findPlaylist(cmd.Context(), client, strings.Join(args, " "))
	if err != nil {
		return err
	}

	playlist, err := client.GetPlaylist(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get playlist: %w", err)
	}

	tracks, err := client.GetPlaylistTracks(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get playlist tracks: %w", err)
	}

	render.New(os.Stdout).Tracks(fmt.Sprintf("%s (by %s)", playlist.Name, playlist.Owner.DisplayName), tracks)
	return nil
}

func runMadeForYou(cmd *cobra.Command, args []string) error {
	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	playlists, err := client.GetMadeForYou(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get made for you playlists: %w", err)
	}

	render.New(os.Stdout).Playlists("Made For You", playlists)
	return nil
}

// findPlaylist resolves a playlist argument. Links and 22 character IDs
// are used as is; anything else is matched against the names of the
// user's playlists.
func findPlaylist(ctx context.Context, client *webapi.Client, input string) (string, error) {
	if link, err := webapi.ParseLink(input); err == nil {
		if link.Kind != webapi.LinkPlaylist {
			return "", fmt.Errorf("expected a playlist link, got a %s link", link.Kind)
		}
		return link.ID, nil
	}

	// Check if it looks like a Spotify ID (22 alphanumeric characters)
	if len(input) == 22 && !strings.Contains(input, " ") {
		return input, nil
	}

	playlists, err := client.GetPlaylists(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get playlists: %w", err)
	}

	for _, playlist := range playlists {
		if strings.EqualFold(playlist.Name, input) || playlist.ID == input {
			return playlist.ID, nil
		}
	}

	// Assume it's an ID
	return input, nil
}
