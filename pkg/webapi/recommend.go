package webapi

import (
	"context"
	"strconv"
	"strings"
)

// recommendationsLimit is the number of tracks requested.
const recommendationsLimit = 100

// GetRecommendations returns tracks generated from the request's seeds and
// tuning ranges. The returned value carries data as its Request.
func (c *Client) GetRecommendations(ctx context.Context, data *RecommendationsRequest) (Recommendations, error) {
	seedArtists := make([]string, len(data.SeedArtists))
	for i, artist := range data.SeedArtists {
		seedArtists[i] = artist.ID
	}

	req, err := c.get("v1/recommendations")
	if err != nil {
		return Recommendations{}, err
	}
	req.Param("market", "from_token").
		Param("limit", strconv.Itoa(recommendationsLimit)).
		Param("seed_artists", strings.Join(seedArtists, ",")).
		Param("seed_tracks", strings.Join(data.SeedTracks, ","))

	p := data.Params
	addRange(req, p.DurationMs, "duration_ms")
	addRange(req, p.Popularity, "popularity")
	addRange(req, p.Key, "key")
	addRange(req, p.Mode, "mode")
	addRange(req, p.Tempo, "tempo")
	addRange(req, p.TimeSignature, "time_signature")
	addRange(req, p.Acousticness, "acousticness")
	addRange(req, p.Danceability, "danceability")
	addRange(req, p.Energy, "energy")
	addRange(req, p.Instrumentalness, "instrumentalness")
	addRange(req, p.Liveness, "liveness")
	addRange(req, p.Loudness, "loudness")
	addRange(req, p.Speechiness, "speechiness")
	addRange(req, p.Valence, "valence")

	result, err := load[Recommendations](ctx, c, req)
	if err != nil {
		return Recommendations{}, err
	}
	result.Request = data
	return result, nil
}

// addRange emits min_, max_ and target_ parameters for the bounds that
// are set.
func addRange[V Number](req *Request, r Range[V], name string) {
	if r.Min != nil {
		req.Param("min_"+name, formatNumber(*r.Min))
	}
	if r.Max != nil {
		req.Param("max_"+name, formatNumber(*r.Max))
	}
	if r.Target != nil {
		req.Param("target_"+name, formatNumber(*r.Target))
	}
}

func formatNumber[V Number](v V) string {
	switch n := any(v).(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		// Named types derived from the constraint.
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	}
}
