package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/improvdex/internal/domain"
	"github.com/kailas-cloud/improvdex/internal/domain/catalog"
	"github.com/kailas-cloud/improvdex/internal/domain/game"
	"github.com/kailas-cloud/improvdex/internal/domain/query/request"
	logpkg "github.com/kailas-cloud/improvdex/internal/logger"
)

// Query kinds reported to the Recorder.
const (
	KindAll      = "all"
	KindSearch   = "search"
	KindFilter   = "filter"
	KindCombined = "search_filter"
)

// Result is the outcome of a catalog query.
type Result struct {
	Games          []*game.Game
	Total          int
	CatalogVersion string
}

// Service answers catalog queries against the current snapshot.
type Service struct {
	catalogs CatalogReader
	recorder Recorder

	mu         sync.Mutex
	catsFor    *catalog.Catalog
	categories []string
}

// New creates a query service. recorder can be nil.
func New(catalogs CatalogReader, recorder Recorder) *Service {
	return &Service{catalogs: catalogs, recorder: recorder}
}

// Query runs search then filter over the current catalog.
func (s *Service) Query(ctx context.Context, req *request.Request) (Result, error) {
	cat := s.catalogs.Current()
	if cat == nil {
		return Result{}, domain.ErrCatalogNotLoaded
	}

	start := time.Now()
	games := SearchAndFilter(cat.Games(), req.Text(), req.Filters())
	elapsed := time.Since(start)

	kind := queryKind(req)
	if s.recorder != nil {
		s.recorder.ObserveQuery(kind, len(games), elapsed.Seconds())
	}
	logpkg.FromContext(ctx).Debug("catalog query",
		zap.String("kind", kind),
		zap.String("text", req.Text()),
		zap.Int("results", len(games)),
		zap.Int("catalog_size", cat.Len()),
		zap.Duration("elapsed", elapsed),
	)

	return Result{Games: games, Total: len(games), CatalogVersion: cat.Version()}, nil
}

// Game returns a single game for the details view.
func (s *Service) Game(_ context.Context, id string) (*game.Game, error) {
	cat := s.catalogs.Current()
	if cat == nil {
		return nil, domain.ErrCatalogNotLoaded
	}
	return cat.Get(id)
}

// Categories returns the distinct categories of the current catalog.
// The list is computed once per snapshot.
func (s *Service) Categories(_ context.Context) ([]string, error) {
	cat := s.catalogs.Current()
	if cat == nil {
		return nil, domain.ErrCatalogNotLoaded
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catsFor != cat {
		s.categories = DistinctCategories(cat.Games())
		s.catsFor = cat
	}
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func queryKind(req *request.Request) string {
	hasText := strings.TrimSpace(req.Text()) != ""
	hasFilters := !req.Filters().IsEmpty()
	switch {
	case hasText && hasFilters:
		return KindCombined
	case hasText:
		return KindSearch
	case hasFilters:
		return KindFilter
	default:
		return KindAll
	}
}
