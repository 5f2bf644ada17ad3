// Package query normalizes raw request parameters into filter values and
// compiles them to storage predicates.
package query

import "strings"

// AlbumFilter holds the normalized optional constraints for album listings.
// Zero values mean "absent": an empty Band applies no band constraint and a
// zero From/To applies no bound on that side.
type AlbumFilter struct {
	Band string
	From int
	To   int
}

// NewAlbumFilter builds an AlbumFilter from raw request inputs. It never
// fails: an unusable value is simply dropped. A non-positive year bound is
// treated as absent, and To is dropped when it would invert the range
// (From > To); rejecting that combination with a client error is the
// caller's job, done before the filter is built.
func NewAlbumFilter(band string, from, to int) AlbumFilter {
	f := AlbumFilter{}

	if band = sanitize(band); band != "" {
		f.Band = band
	}
	if from > 0 {
		f.From = from
	}
	if to > 0 && (f.From == 0 || to >= f.From) {
		f.To = to
	}

	return f
}

// SongFilter holds the normalized optional constraints for song listings.
// Both fields match against the song's joined album (band and name).
type SongFilter struct {
	Band  string
	Album string
}

// NewSongFilter builds a SongFilter from raw request inputs, keeping each
// field only if non-empty. There is no cross-field validation.
func NewSongFilter(band, album string) SongFilter {
	return SongFilter{
		Band:  sanitize(band),
		Album: sanitize(album),
	}
}

// sanitize trims the value and normalizes double quotes to single quotes so
// a filter value can never break out of a string literal downstream.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), `"`, `'`)
}
