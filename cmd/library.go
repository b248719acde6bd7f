package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jfmyers9/spindle/internal/render"
	"github.com/jfmyers9/spindle/pkg/webapi"
	"github.com/spf13/cobra"
)

var savedAlbumsCmd = &cobra.Command{
	Use:   "saved-albums",
	Short: "List albums saved in your library",
	Long: `List albums saved in your library.

At most 200 albums are loaded.`,
	Args: cobra.NoArgs,
	RunE: runSavedAlbums,
}

var savedTracksCmd = &cobra.Command{
	Use:   "saved-tracks",
	Short: "List tracks saved in your library",
	Long: `List tracks saved in your library.

At most 200 tracks are loaded.`,
	Args: cobra.NoArgs,
	RunE: runSavedTracks,
}

var saveCmd = &cobra.Command{
	Use:   "save <album|track link>",
	Short: "Save an album or track to your library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibraryChange(cmd, args[0], true)
	},
}

var unsaveCmd = &cobra.Command{
	Use:   "unsave <album|track link>",
	Short: "Remove an album or track from your library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibraryChange(cmd, args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(savedAlbumsCmd, savedTracksCmd, saveCmd, unsaveCmd)
}

func runSavedAlbums(cmd *cobra.Command, args []string) error {
	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	albums, err := client.GetSavedAlbums(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get saved albums: %w", err)
	}

	render.New(os.Stdout).Albums("Saved Albums", albums)
	return nil
}

func runSavedTracks(cmd *cobra.Command, args []string) error {
	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	tracks, err := client.GetSavedTracks(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get saved tracks: %w", err)
	}

	render.New(os.Stdout).Tracks("Saved Tracks", tracks)
	return nil
}

// runLibraryChange saves or removes the album or track a link points at
func runLibraryChange(cmd *cobra.Command, arg string, save bool) error {
	link, err := webapi.ParseLink(arg)
	if err != nil {
		return err
	}

	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	switch {
	case link.Kind == webapi.LinkAlbum && save:
		err = client.SaveAlbum(ctx, link.ID)
	case link.Kind == webapi.LinkAlbum:
		err = client.UnsaveAlbum(ctx, link.ID)
	case link.Kind == webapi.LinkTrack && save:
		err = client.SaveTrack(ctx, link.ID)
	case link.Kind == webapi.LinkTrack:
		err = client.UnsaveTrack(ctx, link.ID)
	default:
		return fmt.Errorf("only albums and tracks can be saved, got a %s link", link.Kind)
	}
	if err != nil {
		return fmt.Errorf("failed to update library: %w", err)
	}

	action := "Removed"
	if save {
		action = "Saved"
	}
	color.New(color.FgGreen).Printf("✓ %s %s %s\n", action, link.Kind, link.ID)
	return nil
}
