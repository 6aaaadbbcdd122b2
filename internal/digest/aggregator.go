package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/plexdigest/internal/library"
)

// Aggregator produces one summary per recognized library.
type Aggregator struct {
	catalog Catalog
	logger  *slog.Logger
}

// NewAggregator creates an aggregator over catalog.
func NewAggregator(catalog Catalog, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		catalog: catalog,
		logger:  logger.With("component", "digest"),
	}
}

// Aggregate walks every library in server order, one call at a time.
// The first failing call aborts the walk and no summaries are returned.
// Libraries of an unrecognized kind are logged and left out.
func (a *Aggregator) Aggregate(ctx context.Context) ([]library.Summary, error) {
	libs, err := a.catalog.Libraries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}

	a.logger.Debug("listed libraries", "count", len(libs))

	summaries := make([]library.Summary, 0, len(libs))
	for _, lib := range libs {
		start := time.Now()
		summary, ok, err := a.summarize(ctx, lib)
		if err != nil {
			return nil, fmt.Errorf("library %q: %w", lib.Title, err)
		}
		if !ok {
			a.logger.Info("skipping library", "title", lib.Title, "type", lib.Type)
			continue
		}
		a.logger.Debug("summarized library",
			"title", lib.Title,
			"kind", lib.Kind,
			"line", summary.Line(),
			"duration_ms", time.Since(start).Milliseconds())
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// summarize dispatches on the library kind. It reports false for kinds that are
// not summarized.
func (a *Aggregator) summarize(ctx context.Context, lib library.Library) (library.Summary, bool, error) {
	switch lib.Kind {
	case library.KindMovie:
		movies, err := a.catalog.Movies(ctx, lib)
		if err != nil {
			return library.Summary{}, false, fmt.Errorf("movies: %w", err)
		}
		return library.MovieSummary(lib.Title, len(movies)), true, nil

	case library.KindTV:
		shows, err := a.catalog.Shows(ctx, lib)
		if err != nil {
			return library.Summary{}, false, fmt.Errorf("shows: %w", err)
		}
		return library.TVSummary(lib.Title, len(shows)), true, nil

	case library.KindMusic:
		albums, tracks, err := a.countMusic(ctx, lib)
		if err != nil {
			return library.Summary{}, false, err
		}
		return library.MusicSummary(lib.Title, albums, tracks), true, nil

	case library.KindOther:
	}
	return library.Summary{}, false, nil
}

// countMusic totals albums and tracks across every artist of a music library.
func (a *Aggregator) countMusic(ctx context.Context, lib library.Library) (albums, tracks int, err error) {
	artists, err := a.catalog.Artists(ctx, lib)
	if err != nil {
		return 0, 0, fmt.Errorf("artists: %w", err)
	}

	for _, artist := range artists {
		artistAlbums, err := a.catalog.Albums(ctx, artist)
		if err != nil {
			return 0, 0, fmt.Errorf("artist %q: albums: %w", artist.Title, err)
		}
		albums += len(artistAlbums)

		for _, album := range artistAlbums {
			albumTracks, err := a.catalog.Tracks(ctx, album)
			if err != nil {
				return 0, 0, fmt.Errorf("album %q: tracks: %w", album.Title, err)
			}
			tracks += len(albumTracks)
		}
	}

	return albums, tracks, nil
}
