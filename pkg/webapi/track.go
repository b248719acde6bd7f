package webapi

import (
	"context"
	"net/url"
)

// GetTrack returns the track with the given ID.
func (c *Client) GetTrack(ctx context.Context, id string) (Track, error) {
	req, err := c.get("v1/tracks/" + url.PathEscape(id))
	if err != nil {
		return Track{}, err
	}
	req.Param("market", "from_token")

	return load[Track](ctx, c, req)
}

// GetAudioAnalysis returns the audio analysis of a track. The response is
// cached.
func (c *Client) GetAudioAnalysis(ctx context.Context, trackID string) (AudioAnalysis, error) {
	req, err := c.get("v1/audio-analysis/" + url.PathEscape(trackID))
	if err != nil {
		return AudioAnalysis{}, err
	}

	result, err := loadCached[AudioAnalysis](ctx, c, req, BucketAudioAnalysis, trackID)
	if err != nil {
		return AudioAnalysis{}, err
	}
	return result.Data, nil
}
