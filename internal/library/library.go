// Package library models the catalog of a media server: libraries, the items
// inside them, and the per-library summaries rendered into a digest.
package library

// Kind distinguishes the library variants a digest knows how to summarize.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
	KindMusic Kind = "music"
	KindOther Kind = "other"
)

// ParseKind maps a Plex section type to a Kind.
// Anything other than movie, show or artist (photo, unknown) is KindOther.
func ParseKind(plexType string) Kind {
	switch plexType {
	case "movie":
		return KindMovie
	case "show":
		return KindTV
	case "artist":
		return KindMusic
	default:
		return KindOther
	}
}

// Library is one library section on the media server.
type Library struct {
	Key   string // Section key used in API paths
	Title string
	Kind  Kind
	Type  string // Raw server type, kept for operator notices
}

// Item is a single entry below a library: a movie, show, artist, album or track.
type Item struct {
	Key   string // Plex ratingKey
	Title string
	Type  string
}
