package query

import "github.com/kailas-cloud/improvdex/internal/domain/catalog"

// CatalogReader returns the current catalog snapshot, nil before the first load.
type CatalogReader interface {
	Current() *catalog.Catalog
}

// Recorder observes query outcomes (metrics).
type Recorder interface {
	ObserveQuery(kind string, results int, seconds float64)
}
