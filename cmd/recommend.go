package cmd

import (
	"fmt"
	"os"

	"github.com/jfmyers9/spindle/internal/render"
	"github.com/jfmyers9/spindle/pkg/webapi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	recommendArtists []string
	recommendTracks  []string
)

// Tunable attributes exposed as --min-X, --max-X and --target-X flags
var (
	floatAttributes = []string{"acousticness", "danceability", "energy", "instrumentalness", "liveness", "speechiness", "valence", "tempo", "loudness"}
	intAttributes   = []string{"popularity", "key", "mode", "time-signature"}
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate track recommendations",
	Long: `Generate up to 100 recommended tracks from seed artists and tracks.

Seeds are given as IDs or links. Attributes can be bounded with
--min-<attr> and --max-<attr> or aimed at with --target-<attr>:

  spindle recommend --artist 4Z8W4fKeB5YxbusRsdQVPb --min-energy 0.6 --target-tempo 120`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	f := recommendCmd.Flags()
	f.StringSliceVar(&recommendArtists, "artist", nil, "seed artist ID or link (repeatable)")
	f.StringSliceVar(&recommendTracks, "track", nil, "seed track ID or link (repeatable)")

	for _, name := range floatAttributes {
		f.Float64("min-"+name, 0, "minimum "+name)
		f.Float64("max-"+name, 0, "maximum "+name)
		f.Float64("target-"+name, 0, "target "+name)
	}
	for _, name := range intAttributes {
		f.Int("min-"+name, 0, "minimum "+name)
		f.Int("max-"+name, 0, "maximum "+name)
		f.Int("target-"+name, 0, "target "+name)
	}
	f.Duration("min-duration", 0, "minimum track length")
	f.Duration("max-duration", 0, "maximum track length")
	f.Duration("target-duration", 0, "target track length")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	req, err := recommendationsRequest(cmd.Flags())
	if err != nil {
		return err
	}

	client, err := apiClient(cmd.Context())
	if err != nil {
		return err
	}

	// Seed artists carry names so the seeds table can show them
	for i, a := range req.SeedArtists {
		artist, err := client.GetArtist(cmd.Context(), a.ID)
		if err != nil {
			return fmt.Errorf("failed to get seed artist %s: %w", a.ID, err)
		}
		req.SeedArtists[i] = artist.Link()
	}

	recs, err := client.GetRecommendations(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to get recommendations: %w", err)
	}

	render.New(os.Stdout).Recommendations(recs)
	return nil
}

// recommendationsRequest builds a request from the seed and attribute flags
func recommendationsRequest(f *pflag.FlagSet) (*webapi.RecommendationsRequest, error) {
	if len(recommendArtists)+len(recommendTracks) == 0 {
		return nil, fmt.Errorf("at least one --artist or --track seed is required")
	}

	req := &webapi.RecommendationsRequest{}
	for _, arg := range recommendArtists {
		id, err := resolveID(arg, webapi.LinkArtist)
		if err != nil {
			return nil, err
		}
		req.SeedArtists = append(req.SeedArtists, webapi.ArtistLink{ID: id})
	}
	for _, arg := range recommendTracks {
		id, err := resolveID(arg, webapi.LinkTrack)
		if err != nil {
			return nil, err
		}
		req.SeedTracks = append(req.SeedTracks, id)
	}

	p := &req.Params
	p.Acousticness = floatRange(f, "acousticness")
	p.Danceability = floatRange(f, "danceability")
	p.Energy = floatRange(f, "energy")
	p.Instrumentalness = floatRange(f, "instrumentalness")
	p.Liveness = floatRange(f, "liveness")
	p.Speechiness = floatRange(f, "speechiness")
	p.Valence = floatRange(f, "valence")
	p.Tempo = floatRange(f, "tempo")
	p.Loudness = floatRange(f, "loudness")
	p.Popularity = intRange(f, "popularity")
	p.Key = intRange(f, "key")
	p.Mode = intRange(f, "mode")
	p.TimeSignature = intRange(f, "time-signature")
	p.DurationMs = durationRange(f)

	return req, nil
}

func floatRange(f *pflag.FlagSet, name string) webapi.Range[float64] {
	return flagRange(f, name, f.GetFloat64)
}

func intRange(f *pflag.FlagSet, name string) webapi.Range[int] {
	return flagRange(f, name, f.GetInt)
}

func durationRange(f *pflag.FlagSet) webapi.Range[int64] {
	return flagRange(f, "duration", func(name string) (int64, error) {
		d, err := f.GetDuration(name)
		return d.Milliseconds(), err
	})
}

// flagRange sets only the bounds whose flags were given
func flagRange[V webapi.Number](f *pflag.FlagSet, name string, get func(string) (V, error)) webapi.Range[V] {
	var r webapi.Range[V]
	bounds := []struct {
		prefix string
		dst    **V
	}{
		{"min-", &r.Min},
		{"max-", &r.Max},
		{"target-", &r.Target},
	}
	for _, b := range bounds {
		if !f.Changed(b.prefix + name) {
			continue
		}
		if v, err := get(b.prefix + name); err == nil {
			*b.dst = &v
		}
	}
	return r
}
