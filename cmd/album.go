package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jfmyers9/spindle/internal/render"
	"github.com/jfmyers9/spindle/pkg/webapi"
	"github.com/spf13/cobra"
)

var trackAnalysis bool

var albumCmd = &cobra.Command{
	Use:   "album <id|link>",
	Short: "Show an album and its tracks",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlbum,
}

var trackCmd = &cobra.Command{
	Use:   "track <id|link>",
	Short: "Show a track",
	Long: `Show a track. With --analysis the track's audio analysis is
loaded as well (tempo, key and section breakdown).`,
	Args: cobra.ExactArgs(1),
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().BoolVar(&trackAnalysis, "analysis", false, "include the audio analysis")
	rootCmd.AddCommand(albumCmd, trackCmd)
}

func runAlbum(cmd *cobra.Command, args []string) error {
	id, err := resolveID(args[0], webapi.LinkAlbum)
	if err != nil {
		return err
	}

	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	album, err := client.GetAlbum(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get album: %w", err)
	}

	render.New(os.Stdout).Album(album.Data)
	fmt.Println(render.Source(album.FromCache, album.CachedAt))
	return nil
}

func runTrack(cmd *cobra.Command, args []string) error {
	id, err := resolveID(args[0], webapi.LinkTrack)
	if err != nil {
		return err
	}

	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	track, err := client.GetTrack(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get track: %w", err)
	}

	render.New(os.Stdout).Tracks(track.Name, []webapi.Track{track})

	if !trackAnalysis {
		return nil
	}

	analysis, err := client.GetAudioAnalysis(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get audio analysis: %w", err)
	}
	printAnalysis(analysis)
	return nil
}

var pitchClasses = []string{"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B"}

func printAnalysis(a webapi.AudioAnalysis) {
	key := "unknown"
	if a.Track.Key >= 0 && a.Track.Key < len(pitchClasses) {
		key = pitchClasses[a.Track.Key]
		if a.Track.Mode == 1 {
			key += " major"
		} else {
			key += " minor"
		}
	}

	fmt.Println()
	color.New(color.FgCyan).Println("Audio Analysis")
	fmt.Println()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Tempo", fmt.Sprintf("%.1f BPM", a.Track.Tempo)})
	t.AppendRow(table.Row{"Key", key})
	t.AppendRow(table.Row{"Time Signature", fmt.Sprintf("%d/4", a.Track.TimeSignature)})
	t.AppendRow(table.Row{"Loudness", fmt.Sprintf("%.1f dB", a.Track.Loudness)})
	t.AppendRow(table.Row{"Sections", len(a.Sections)})
	t.AppendRow(table.Row{"Segments", len(a.Segments)})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
