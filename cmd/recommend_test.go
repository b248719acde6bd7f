package cmd

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func newRecommendFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	f := pflag.NewFlagSet("recommend", pflag.ContinueOnError)
	f.Float64("min-energy", 0, "")
	f.Float64("max-energy", 0, "")
	f.Float64("target-energy", 0, "")
	f.Int("min-popularity", 0, "")
	f.Int("max-popularity", 0, "")
	f.Int("target-popularity", 0, "")
	f.Duration("min-duration", 0, "")
	f.Duration("max-duration", 0, "")
	f.Duration("target-duration", 0, "")

	if err := f.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return f
}

func TestFlagRange(t *testing.T) {
	f := newRecommendFlags(t, "--min-energy", "0.4", "--target-popularity", "70", "--max-duration", "4m30s")

	energy := floatRange(f, "energy")
	if energy.Min == nil || *energy.Min != 0.4 {
		t.Errorf("energy.Min = %v, want 0.4", energy.Min)
	}
	if energy.Max != nil || energy.Target != nil {
		t.Errorf("unset energy bounds were filled: %+v", energy)
	}

	popularity := intRange(f, "popularity")
	if popularity.Target == nil || *popularity.Target != 70 {
		t.Errorf("popularity.Target = %v, want 70", popularity.Target)
	}
	if popularity.Min != nil || popularity.Max != nil {
		t.Errorf("unset popularity bounds were filled: %+v", popularity)
	}

	duration := durationRange(f)
	want := (4*time.Minute + 30*time.Second).Milliseconds()
	if duration.Max == nil || *duration.Max != want {
		t.Errorf("duration.Max = %v, want %d", duration.Max, want)
	}
}

func TestFlagRangeZeroIsExplicit(t *testing.T) {
	f := newRecommendFlags(t, "--min-energy", "0")

	energy := floatRange(f, "energy")
	if energy.Min == nil || *energy.Min != 0 {
		t.Errorf("explicit zero was dropped: %+v", energy)
	}
}

func TestRecommendationsRequestSeeds(t *testing.T) {
	t.Cleanup(func() {
		recommendArtists = nil
		recommendTracks = nil
	})

	recommendArtists = nil
	recommendTracks = nil
	if _, err := recommendationsRequest(newRecommendFlags(t)); err == nil {
		t.Error("expected an error without seeds")
	}

	recommendArtists = []string{"spotify:artist:a1", "a2"}
	recommendTracks = []string{"https://open.spotify.com/track/t1"}
	req, err := recommendationsRequest(newRecommendFlags(t))
	if err != nil {
		t.Fatalf("recommendationsRequest() error = %v", err)
	}
	if len(req.SeedArtists) != 2 || req.SeedArtists[0].ID != "a1" || req.SeedArtists[1].ID != "a2" {
		t.Errorf("SeedArtists = %+v", req.SeedArtists)
	}
	if len(req.SeedTracks) != 1 || req.SeedTracks[0] != "t1" {
		t.Errorf("SeedTracks = %+v", req.SeedTracks)
	}

	recommendTracks = []string{"spotify:album:x"}
	if _, err := recommendationsRequest(newRecommendFlags(t)); err == nil {
		t.Error("expected an error for an album link as track seed")
	}
}
