package query

// Predicate is a single storage-query condition. The concrete variants are
// interpreted explicitly by the SQL renderer; there is no stringly-typed
// operator dispatch.
type Predicate interface {
	isPredicate()
}

// Range constrains a numeric column. A zero Min or Max leaves that side
// unbounded; both bounds live in the one predicate so they can never
// overwrite each other.
type Range struct {
	Field string
	Min   int
	Max   int
}

// Substring matches a text column case-insensitively against a fragment
// appearing anywhere in the value.
type Substring struct {
	Field string
	Text  string
}

// Match matches a text column case-insensitively against the exact value
// (or a caller-supplied pattern).
type Match struct {
	Field string
	Text  string
}

// Equals constrains a column to an exact value.
type Equals struct {
	Field string
	Value any
}

func (Range) isPredicate()     {}
func (Substring) isPredicate() {}
func (Match) isPredicate()     {}
func (Equals) isPredicate()    {}

// AlbumPredicates compiles an album filter into predicates over the albums
// table.
func AlbumPredicates(f AlbumFilter) []Predicate {
	var preds []Predicate

	if f.Band != "" {
		preds = append(preds, Match{Field: "band", Text: f.Band})
	}

	switch {
	case f.From > 0 && f.To == 0:
		preds = append(preds, Range{Field: "year", Min: f.From})
	case f.From == 0 && f.To > 0:
		preds = append(preds, Range{Field: "year", Max: f.To})
	case f.From > 0 && f.To > 0:
		preds = append(preds, Range{Field: "year", Min: f.From, Max: f.To})
	}

	return preds
}

// SongPredicates compiles a song filter into predicates over the album side
// of the songs-albums join. Column names are qualified with the album table
// alias used by the repository.
func SongPredicates(f SongFilter) []Predicate {
	var preds []Predicate

	if f.Band != "" {
		preds = append(preds, Substring{Field: "a.band", Text: f.Band})
	}
	if f.Album != "" {
		preds = append(preds, Substring{Field: "a.name", Text: f.Album})
	}

	return preds
}
