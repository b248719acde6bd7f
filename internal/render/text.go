package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/jfmyers9/spindle/pkg/webapi"
	"github.com/mattn/go-runewidth"
)

// Fit pads or truncates text to exactly width terminal columns.
// Truncated text ends in "...". A width of zero or less returns text as is.
func Fit(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		// Wide runes may leave the result one column short
		result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis
		return runewidth.FillRight(result, width)
	}

	return runewidth.FillRight(text, width)
}

// Clip truncates text to at most width columns without padding.
func Clip(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return strings.TrimRight(Fit(text, width), " ")
}

// Duration formats d as m:ss, or h:mm:ss for an hour or more.
func Duration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	s := int(d%time.Minute) / int(time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ArtistNames joins artist names with commas.
func ArtistNames(artists []webapi.ArtistLink) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// Year returns the year part of a release date.
func Year(releaseDate string) string {
	if len(releaseDate) >= 4 {
		return releaseDate[:4]
	}
	return releaseDate
}
