package webapi

import (
	"time"
)

// Page is one slice of a larger result set, carrying its own
// limit, offset and total.
type Page[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// Cached wraps a value loaded through the response cache.
//
// FromCache is false when the value was fetched from the network by this
// call. CachedAt is the cache entry's modification time and is
// informational only: cached values never expire.
type Cached[T any] struct {
	Data      T
	FromCache bool
	CachedAt  time.Time
}

// MapCached converts the data of a Cached value while keeping its freshness.
func MapCached[T, U any](c Cached[T], fn func(T) U) Cached[U] {
	return Cached[U]{Data: fn(c.Data), FromCache: c.FromCache, CachedAt: c.CachedAt}
}

// Image is an artwork reference.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ArtistLink is the abbreviated artist embedded in other entities.
type ArtistLink struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Artist is a full artist object.
type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Images     []Image  `json:"images"`
	Genres     []string `json:"genres,omitempty"`
	Popularity int      `json:"popularity,omitempty"`
	Followers  struct {
		Total int `json:"total"`
	} `json:"followers"`
}

// Link returns the abbreviated form of the artist.
func (a Artist) Link() ArtistLink {
	return ArtistLink{ID: a.ID, Name: a.Name}
}

// AlbumType classifies an album within an artist's discography.
type AlbumType string

const (
	AlbumTypeAlbum       AlbumType = "album"
	AlbumTypeSingle      AlbumType = "single"
	AlbumTypeCompilation AlbumType = "compilation"
	AlbumTypeAppearsOn   AlbumType = "appears_on"
)

// AlbumLink is the abbreviated album embedded in tracks.
type AlbumLink struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Images []Image `json:"images,omitempty"`
}

// Album is an album object. Tracks is only present on full albums.
type Album struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	AlbumType            AlbumType    `json:"album_type"`
	AlbumGroup           AlbumType    `json:"album_group,omitempty"`
	Artists              []ArtistLink `json:"artists"`
	Images               []Image      `json:"images"`
	ReleaseDate          string       `json:"release_date"`
	ReleaseDatePrecision string       `json:"release_date_precision,omitempty"`
	TotalTracks          int          `json:"total_tracks,omitempty"`
	Label                string       `json:"label,omitempty"`
	Popularity           int          `json:"popularity,omitempty"`
	Tracks               *Page[Track] `json:"tracks,omitempty"`
}

// Kind returns the discography bucket of the album. The artist albums
// endpoint reports "appears_on" through album_group, which takes
// precedence. Unknown types are treated as regular albums.
func (a Album) Kind() AlbumType {
	if a.AlbumGroup == AlbumTypeAppearsOn {
		return AlbumTypeAppearsOn
	}
	switch a.AlbumType {
	case AlbumTypeSingle, AlbumTypeCompilation, AlbumTypeAppearsOn:
		return a.AlbumType
	default:
		return AlbumTypeAlbum
	}
}

// Link returns the abbreviated form of the album.
func (a Album) Link() AlbumLink {
	return AlbumLink{ID: a.ID, Name: a.Name, Images: a.Images}
}

// Track is a track object. Album is nil when the API did not attach one.
type Track struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Album       *AlbumLink   `json:"album,omitempty"`
	Artists     []ArtistLink `json:"artists"`
	DurationMs  int          `json:"duration_ms"`
	Explicit    bool         `json:"explicit"`
	IsPlayable  *bool        `json:"is_playable,omitempty"`
	IsLocal     bool         `json:"is_local,omitempty"`
	Popularity  int          `json:"popularity,omitempty"`
	TrackNumber int          `json:"track_number"`
	DiscNumber  int          `json:"disc_number"`
	PreviewURL  string       `json:"preview_url,omitempty"`
}

// Duration returns the track length.
func (t Track) Duration() time.Duration {
	return time.Duration(t.DurationMs) * time.Millisecond
}

// PlaylistLink is the abbreviated playlist used for navigation.
type PlaylistLink struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Playlist is a simplified playlist object.
type Playlist struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Images        []Image `json:"images"`
	Collaborative bool    `json:"collaborative"`
	Owner         struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"owner"`
	Tracks struct {
		Total int `json:"total"`
	} `json:"tracks"`
}

// Link returns the abbreviated form of the playlist.
func (p Playlist) Link() PlaylistLink {
	return PlaylistLink{ID: p.ID, Name: p.Name}
}

// UserProfile is the current user's profile.
type UserProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	Country     string `json:"country,omitempty"`
	Product     string `json:"product,omitempty"`
}

// ArtistAlbums is an artist's discography split by album kind.
type ArtistAlbums struct {
	Albums       []Album
	Singles      []Album
	Compilations []Album
	AppearsOn    []Album
}

// SearchResults holds the results of a catalog search. Sections the API
// omitted are empty, never nil.
type SearchResults struct {
	Query     string
	Artists   []Artist
	Albums    []Album
	Tracks    []Track
	Playlists []Playlist
}

// Number is the set of value types a Range can hold.
type Number interface {
	~int | ~int64 | ~float64
}

// Range is a tuning parameter group for recommendations. Any subset of
// the bounds may be set.
type Range[V Number] struct {
	Min    *V
	Max    *V
	Target *V
}

// Between returns a Range with both bounds set.
func Between[V Number](lo, hi V) Range[V] {
	return Range[V]{Min: &lo, Max: &hi}
}

// Exactly returns a Range with only the target set.
func Exactly[V Number](target V) Range[V] {
	return Range[V]{Target: &target}
}

// RecommendationsParams are the tunable attributes of a recommendations
// request.
type RecommendationsParams struct {
	DurationMs       Range[int64]
	Popularity       Range[int]
	Key              Range[int]
	Mode             Range[int]
	Tempo            Range[float64]
	TimeSignature    Range[int]
	Acousticness     Range[float64]
	Danceability     Range[float64]
	Energy           Range[float64]
	Instrumentalness Range[float64]
	Liveness         Range[float64]
	Loudness         Range[float64]
	Speechiness      Range[float64]
	Valence          Range[float64]
}

// RecommendationsRequest seeds a recommendations query.
type RecommendationsRequest struct {
	SeedArtists []ArtistLink
	SeedTracks  []string // track IDs
	Params      RecommendationsParams
}

// RecommendationSeed describes how a seed contributed to the results.
type RecommendationSeed struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	InitialPoolSize    int    `json:"initialPoolSize"`
	AfterFilteringSize int    `json:"afterFilteringSize"`
	AfterRelinkingSize int    `json:"afterRelinkingSize"`
}

// Recommendations is the response of GetRecommendations. Request is the
// request that produced it; the API does not echo it.
type Recommendations struct {
	Request *RecommendationsRequest `json:"-"`
	Seeds   []RecommendationSeed    `json:"seeds"`
	Tracks  []Track                 `json:"tracks"`
}

// AudioAnalysis is the low level audio analysis of a track.
type AudioAnalysis struct {
	Track struct {
		Duration      float64 `json:"duration"`
		Loudness      float64 `json:"loudness"`
		Tempo         float64 `json:"tempo"`
		Key           int     `json:"key"`
		Mode          int     `json:"mode"`
		TimeSignature int     `json:"time_signature"`
	} `json:"track"`
	Sections []AnalysisInterval `json:"sections"`
	Segments []AnalysisSegment  `json:"segments"`
}

// AnalysisInterval is a time interval of an audio analysis.
type AnalysisInterval struct {
	Start      float64 `json:"start"`
	Duration   float64 `json:"duration"`
	Confidence float64 `json:"confidence"`
}

// AnalysisSegment is a segment of an audio analysis.
type AnalysisSegment struct {
	AnalysisInterval
	LoudnessStart float64 `json:"loudness_start"`
	LoudnessMax   float64 `json:"loudness_max"`
}
