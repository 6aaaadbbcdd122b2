// Package digest walks a media catalog and renders the per-library report.
package digest

//go:generate mockgen -destination=mocks/mock_catalog.go -package=mocks . Catalog

import (
	"context"

	"github.com/vmunix/plexdigest/internal/library"
)

// Catalog is the read-only view of a media server the aggregator walks.
// Every method is a remote call and may fail.
type Catalog interface {
	// Libraries lists library sections in server order.
	Libraries(ctx context.Context) ([]library.Library, error)
	// Movies lists the movies of a movie library.
	Movies(ctx context.Context, lib library.Library) ([]library.Item, error)
	// Shows lists the shows of a TV library.
	Shows(ctx context.Context, lib library.Library) ([]library.Item, error)
	// Artists lists the artists of a music library.
	Artists(ctx context.Context, lib library.Library) ([]library.Item, error)
	// Albums lists the albums of an artist.
	Albums(ctx context.Context, artist library.Item) ([]library.Item, error)
	// Tracks lists the tracks of an album.
	Tracks(ctx context.Context, album library.Item) ([]library.Item, error)
}
