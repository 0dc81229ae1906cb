package catalog

import (
	"context"

	domcat "github.com/kailas-cloud/improvdex/internal/domain/catalog"
)

// Loader produces a fresh catalog snapshot.
type Loader interface {
	Load(ctx context.Context) (*domcat.Catalog, error)
}

// Recorder observes reload outcomes (metrics).
type Recorder interface {
	ObserveReload(games int, err error)
}
