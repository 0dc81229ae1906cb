package improvdex

import "github.com/kailas-cloud/improvdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrGameNotFound     = domain.ErrGameNotFound
	ErrDuplicateGame    = domain.ErrDuplicateGame
	ErrInvalidGame      = domain.ErrInvalidGame
	ErrInvalidQuery     = domain.ErrInvalidQuery
	ErrCatalogLoad      = domain.ErrCatalogLoad
	ErrCatalogNotLoaded = domain.ErrCatalogNotLoaded
)
