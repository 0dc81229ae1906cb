package health

import (
	"context"

	"github.com/kailas-cloud/improvdex/internal/domain/catalog"
)

// CatalogReader returns the current catalog snapshot.
type CatalogReader interface {
	Current() *catalog.Catalog
}

// CachePinger checks key-value store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
