// Package render prints catalog entities as terminal tables.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jfmyers9/spindle/internal/cache"
	"github.com/jfmyers9/spindle/pkg/webapi"
)

// Column width used for names, titles and other free text.
const nameWidth = 48

// Printer writes tables to an output stream.
type Printer struct {
	out io.Writer
}

// New returns a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) title(text string) {
	fmt.Fprintln(p.out)
	color.New(color.FgCyan).Fprintln(p.out, text)
	fmt.Fprintln(p.out)
}

func (p *Printer) footer(format string, args ...any) {
	fmt.Fprintln(p.out)
	color.New(color.FgGreen, color.Bold).Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) table(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.AppendHeader(header)
	t.SetStyle(table.StyleRounded)
	return t
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

// Source describes where a cached value came from.
func Source(fromCache bool, at time.Time) string {
	if !fromCache {
		return "fetched from the API"
	}
	return "from cache, stored " + humanize.Time(at)
}

// Artist prints a single artist.
func (p *Printer) Artist(a webapi.Artist) {
	p.title(a.Name)

	t := p.table(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Genres", strings.Join(a.Genres, ", ")})
	t.AppendRow(table.Row{"Followers", humanize.Comma(int64(a.Followers.Total))})
	t.AppendRow(table.Row{"Popularity", a.Popularity})
	t.AppendRow(table.Row{"Artist ID", color.HiBlackString(a.ID)})
	t.Render()
}

// Artists prints a list of artists.
func (p *Printer) Artists(heading string, artists []webapi.Artist) {
	p.title(heading)

	t := p.table(table.Row{"#", "Name", "Genres", "Followers", "Artist ID"})
	for i, a := range artists {
		t.AppendRow(table.Row{
			i + 1,
			bold(Clip(a.Name, nameWidth)),
			Clip(strings.Join(a.Genres, ", "), nameWidth),
			humanize.Comma(int64(a.Followers.Total)),
			color.HiBlackString(a.ID),
		})
	}
	t.Render()

	p.footer("Total artists: %d", len(artists))
}

// Albums prints a list of albums.
func (p *Printer) Albums(heading string, albums []webapi.Album) {
	p.title(heading)

	t := p.table(table.Row{"#", "Name", "Artists", "Year", "Tracks", "Album ID"})
	for i, a := range albums {
		t.AppendRow(table.Row{
			i + 1,
			bold(Clip(a.Name, nameWidth)),
			Clip(ArtistNames(a.Artists), nameWidth),
			Year(a.ReleaseDate),
			a.TotalTracks,
			color.HiBlackString(a.ID),
		})
	}
	t.Render()

	p.footer("Total albums: %d", len(albums))
}

// ArtistAlbums prints an artist's discography, one table per non-empty
// group.
func (p *Printer) ArtistAlbums(discography webapi.ArtistAlbums) {
	groups := []struct {
		heading string
		albums  []webapi.Album
	}{
		{"Albums", discography.Albums},
		{"Singles", discography.Singles},
		{"Compilations", discography.Compilations},
		{"Appears On", discography.AppearsOn},
	}

	printed := 0
	for _, g := range groups {
		if len(g.albums) == 0 {
			continue
		}
		p.Albums(g.heading, g.albums)
		printed++
	}

	if printed == 0 {
		color.New(color.FgYellow).Fprintln(p.out, "No albums found.")
	}
}

// Album prints an album and its track listing.
func (p *Printer) Album(a webapi.Album) {
	p.title(fmt.Sprintf("%s by %s (%s)", a.Name, ArtistNames(a.Artists), Year(a.ReleaseDate)))

	var tracks []webapi.Track
	if a.Tracks != nil {
		tracks = a.Tracks.Items
	}

	t := p.table(table.Row{"#", "Title", "Duration", "Track ID"})
	for _, tr := range tracks {
		t.AppendRow(table.Row{
			tr.TrackNumber,
			bold(Clip(tr.Name, nameWidth)),
			Duration(tr.Duration()),
			color.HiBlackString(tr.ID),
		})
	}
	t.Render()

	if a.Label != "" {
		fmt.Fprintln(p.out, color.HiBlackString("Label: %s", a.Label))
	}
	p.footer("Total tracks: %d", a.TotalTracks)
}

// Tracks prints a list of tracks.
func (p *Printer) Tracks(heading string, tracks []webapi.Track) {
	p.title(heading)

	var total time.Duration
	t := p.table(table.Row{"#", "Title", "Artists", "Album", "Duration", "Track ID"})
	for i, tr := range tracks {
		album := ""
		if tr.Album != nil {
			album = tr.Album.Name
		}
		t.AppendRow(table.Row{
			i + 1,
			bold(Clip(tr.Name, nameWidth)),
			Clip(ArtistNames(tr.Artists), nameWidth),
			Clip(album, nameWidth),
			Duration(tr.Duration()),
			color.HiBlackString(tr.ID),
		})
		total += tr.Duration()
	}
	t.Render()

	p.footer("Total tracks: %d (%s)", len(tracks), Duration(total))
}

// Playlists prints a list of playlists.
func (p *Printer) Playlists(heading string, playlists []webapi.Playlist) {
	p.title(heading)

	t := p.table(table.Row{"#", "Name", "Tracks", "Owner", "Playlist ID"})
	for i, pl := range playlists {
		t.AppendRow(table.Row{
			i + 1,
			bold(Clip(pl.Name, nameWidth)),
			pl.Tracks.Total,
			pl.Owner.DisplayName,
			color.HiBlackString(pl.ID),
		})
	}
	t.Render()

	p.footer("Total playlists: %d", len(playlists))
}

// SearchResults prints every non-empty section of a search.
func (p *Printer) SearchResults(results webapi.SearchResults) {
	if len(results.Artists) > 0 {
		p.Artists("Artists", results.Artists)
	}
	if len(results.Albums) > 0 {
		p.Albums("Albums", results.Albums)
	}
	if len(results.Tracks) > 0 {
		p.Tracks("Tracks", results.Tracks)
	}
	if len(results.Playlists) > 0 {
		p.Playlists("Playlists", results.Playlists)
	}

	if len(results.Artists)+len(results.Albums)+len(results.Tracks)+len(results.Playlists) == 0 {
		color.New(color.FgYellow).Fprintf(p.out, "No results for %q.\n", results.Query)
	}
}

// Recommendations prints the seeds and the recommended tracks.
func (p *Printer) Recommendations(recs webapi.Recommendations) {
	p.title("Seeds")

	t := p.table(table.Row{"Type", "Seed ID", "Pool", "After Filtering"})
	for _, s := range recs.Seeds {
		t.AppendRow(table.Row{s.Type, color.HiBlackString(s.ID), s.InitialPoolSize, s.AfterFilteringSize})
	}
	t.Render()

	p.Tracks("Recommended Tracks", recs.Tracks)
}

// Profile prints the current user's profile.
func (p *Printer) Profile(u webapi.UserProfile) {
	p.title("Current User")

	t := p.table(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Display Name", bold(u.DisplayName)})
	t.AppendRow(table.Row{"User ID", color.HiBlackString(u.ID)})
	if u.Email != "" {
		t.AppendRow(table.Row{"Email", u.Email})
	}
	if u.Country != "" {
		t.AppendRow(table.Row{"Country", u.Country})
	}
	if u.Product != "" {
		t.AppendRow(table.Row{"Plan", u.Product})
	}
	t.Render()
}

// Nav prints where a deep link resolved to.
func (p *Printer) Nav(nav webapi.Nav) {
	var name, id string
	switch {
	case nav.Playlist != nil:
		name, id = nav.Playlist.Name, nav.Playlist.ID
	case nav.Artist != nil:
		name, id = nav.Artist.Name, nav.Artist.ID
	case nav.Album != nil:
		name, id = nav.Album.Name, nav.Album.ID
	}

	fmt.Fprintf(p.out, "%s %s %s\n",
		color.New(color.FgCyan).Sprint(nav.Kind.String()),
		bold(name),
		color.HiBlackString(id))
}

// CacheStats prints per-bucket cache statistics.
func (p *Printer) CacheStats(stats []cache.BucketStats) {
	p.title("Response Cache")

	if len(stats) == 0 {
		color.New(color.FgYellow).Fprintln(p.out, "Cache is empty.")
		return
	}

	var entries int
	var size int64
	t := p.table(table.Row{"Bucket", "Entries", "Size", "Oldest", "Newest"})
	for _, b := range stats {
		t.AppendRow(table.Row{
			bold(b.Bucket),
			b.Entries,
			humanize.Bytes(uint64(b.Bytes)),
			humanize.Time(b.Oldest),
			humanize.Time(b.Newest),
		})
		entries += b.Entries
		size += b.Bytes
	}
	t.Render()

	p.footer("Total entries: %d (%s)", entries, humanize.Bytes(uint64(size)))
}
