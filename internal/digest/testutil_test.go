package digest

import (
	"context"
	"fmt"

	"github.com/vmunix/plexdigest/internal/library"
)

// fakeCatalog serves a fixed catalog tree. Children are looked up by the
// key of the parent library or item.
type fakeCatalog struct {
	libs     []library.Library
	children map[string][]library.Item
	calls    []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{children: make(map[string][]library.Item)}
}

func (f *fakeCatalog) addItems(parent, prefix string, n int) []library.Item {
	items := make([]library.Item, n)
	for i := range items {
		items[i] = library.Item{Key: fmt.Sprintf("%s-%d", prefix, i), Title: fmt.Sprintf("%s %d", prefix, i)}
	}
	f.children[parent] = items
	return items
}

// addMovies adds a movie library holding n movies.
func (f *fakeCatalog) addMovies(title string, n int) {
	key := fmt.Sprintf("lib-%d", len(f.libs))
	f.libs = append(f.libs, library.Library{Key: key, Title: title, Kind: library.KindMovie, Type: "movie"})
	f.addItems(key, key+"-movie", n)
}

// addShows adds a TV library holding n shows.
func (f *fakeCatalog) addShows(title string, n int) {
	key := fmt.Sprintf("lib-%d", len(f.libs))
	f.libs = append(f.libs, library.Library{Key: key, Title: title, Kind: library.KindTV, Type: "show"})
	f.addItems(key, key+"-show", n)
}

// addMusic adds a music library. Each entry of artists is one artist; each
// value in it is the track count of one album.
func (f *fakeCatalog) addMusic(title string, artists [][]int) {
	key := fmt.Sprintf("lib-%d", len(f.libs))
	f.libs = append(f.libs, library.Library{Key: key, Title: title, Kind: library.KindMusic, Type: "artist"})
	artistItems := f.addItems(key, key+"-artist", len(artists))
	for i, albums := range artists {
		albumItems := f.addItems(artistItems[i].Key, artistItems[i].Key+"-album", len(albums))
		for j, tracks := range albums {
			f.addItems(albumItems[j].Key, albumItems[j].Key+"-track", tracks)
		}
	}
}

// addOther adds a library of a kind the digest does not summarize.
func (f *fakeCatalog) addOther(title, plexType string) {
	key := fmt.Sprintf("lib-%d", len(f.libs))
	f.libs = append(f.libs, library.Library{Key: key, Title: title, Kind: library.KindOther, Type: plexType})
}

func (f *fakeCatalog) Libraries(_ context.Context) ([]library.Library, error) {
	f.calls = append(f.calls, "libraries")
	return f.libs, nil
}

func (f *fakeCatalog) Movies(_ context.Context, lib library.Library) ([]library.Item, error) {
	f.calls = append(f.calls, "movies:"+lib.Key)
	return f.children[lib.Key], nil
}

func (f *fakeCatalog) Shows(_ context.Context, lib library.Library) ([]library.Item, error) {
	f.calls = append(f.calls, "shows:"+lib.Key)
	return f.children[lib.Key], nil
}

func (f *fakeCatalog) Artists(_ context.Context, lib library.Library) ([]library.Item, error) {
	f.calls = append(f.calls, "artists:"+lib.Key)
	return f.children[lib.Key], nil
}

func (f *fakeCatalog) Albums(_ context.Context, artist library.Item) ([]library.Item, error) {
	f.calls = append(f.calls, "albums:"+artist.Key)
	return f.children[artist.Key], nil
}

func (f *fakeCatalog) Tracks(_ context.Context, album library.Item) ([]library.Item, error) {
	f.calls = append(f.calls, "tracks:"+album.Key)
	return f.children[album.Key], nil
}

var _ Catalog = (*fakeCatalog)(nil)
