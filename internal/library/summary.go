package library

import (
	"fmt"
	"strings"
)

// Count is one labelled total within a summary, e.g. {"albums", 3}.
type Count struct {
	Label string
	N     int
}

// Summary is the aggregate for one library. Counts keep their label order,
// which is the order they are rendered in.
type Summary struct {
	Title  string
	Kind   Kind
	Counts []Count
}

// MovieSummary builds the summary for a movie library.
func MovieSummary(title string, movies int) Summary {
	return Summary{Title: title, Kind: KindMovie, Counts: []Count{{"movies", movies}}}
}

// TVSummary builds the summary for a TV library.
func TVSummary(title string, shows int) Summary {
	return Summary{Title: title, Kind: KindTV, Counts: []Count{{"shows", shows}}}
}

// MusicSummary builds the summary for a music library.
func MusicSummary(title string, albums, tracks int) Summary {
	return Summary{
		Title:  title,
		Kind:   KindMusic,
		Counts: []Count{{"albums", albums}, {"tracks", tracks}},
	}
}

// Line renders the summary as a single report line without a newline:
//
//	Films: 12 movies
//	Tunes: 3 albums, 6 tracks
func (s Summary) Line() string {
	parts := make([]string, len(s.Counts))
	for i, c := range s.Counts {
		parts[i] = fmt.Sprintf("%d %s", c.N, c.Label)
	}
	return s.Title + ": " + strings.Join(parts, ", ")
}
