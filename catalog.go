package improvdex

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/improvdex/internal/domain"
	domcat "github.com/kailas-cloud/improvdex/internal/domain/catalog"
	catalogrepo "github.com/kailas-cloud/improvdex/internal/repository/catalog"
	catalogus "github.com/kailas-cloud/improvdex/internal/usecase/catalog"
	queryuc "github.com/kailas-cloud/improvdex/internal/usecase/query"
)

// Catalog is a queryable, read-only set of improv games.
// It is safe for concurrent use.
type Catalog struct {
	holder   *catalogus.Holder
	reloader *catalogus.Reloader
	watcher  *catalogus.Watcher
	obs      *observer
}

// Open loads a catalog from a file path or an http(s) URL.
// The provided context is used for the initial load only.
func Open(ctx context.Context, source string, opts ...Option) (*Catalog, error) {
	if source == "" {
		return nil, fmt.Errorf("improvdex: %w: empty source", domain.ErrCatalogLoad)
	}
	cfg := newCatalogConfig(opts)

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	remote := isRemote(source)
	var src catalogrepo.Source
	if remote {
		src = catalogrepo.NewHTTPSource(source, cfg.httpClient)
	} else {
		src = catalogrepo.NewFileSource(source)
	}

	c := &Catalog{holder: catalogus.NewHolder(nil), obs: obs}
	loader := catalogrepo.NewLoader(src, catalogrepo.Format(cfg.format))
	c.reloader = catalogus.NewReloader(loader, c.holder, obs, zap.NewNop())

	if err := c.Reload(ctx); err != nil {
		return nil, err
	}

	if cfg.watch && !remote {
		c.watcher = catalogus.NewWatcher(source, c.reloader, cfg.debounce, zap.NewNop())
		// The watcher outlives ctx; Close stops it.
		if err := c.watcher.Start(context.Background()); err != nil {
			return nil, fmt.Errorf("improvdex: %w", err)
		}
	}
	return c, nil
}

// FromReader parses a catalog document from r. JSON is assumed unless WithFormat says otherwise.
// The result cannot be reloaded.
func FromReader(r io.Reader, opts ...Option) (*Catalog, error) {
	cfg := newCatalogConfig(opts)
	if cfg.format == "" {
		cfg.format = FormatJSON
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		err = fmt.Errorf("improvdex: %w: read: %w", domain.ErrCatalogLoad, err)
		obs.ObserveReload(0, err)
		return nil, err
	}
	cat, err := catalogrepo.Parse(data, catalogrepo.Format(cfg.format), time.Now())
	if err != nil {
		obs.ObserveReload(0, err)
		return nil, fmt.Errorf("improvdex: %w", err)
	}
	obs.ObserveReload(cat.Len(), nil)

	return &Catalog{holder: catalogus.NewHolder(cat), obs: obs}, nil
}

// Close stops the file watcher, if any.
func (c *Catalog) Close() {
	if c.watcher != nil {
		c.watcher.Stop()
	}
}

// Reload fetches the source again. On failure the previous games stay active.
func (c *Catalog) Reload(ctx context.Context) error {
	if c.reloader == nil {
		return fmt.Errorf("improvdex: %w: catalog was not opened from a source", domain.ErrCatalogLoad)
	}
	// The reloader reports the outcome to the observer.
	if _, err := c.reloader.Reload(ctx); err != nil {
		return fmt.Errorf("improvdex: %w", err)
	}
	return nil
}

// Version is the content hash of the active document.
func (c *Catalog) Version() string { return c.snapshot().Version() }

// Len is the number of games.
func (c *Catalog) Len() int { return c.snapshot().Len() }

// Games returns every game, sorted by name.
func (c *Catalog) Games() []*Game { return c.snapshot().Games() }

// Game returns the game with the given id or ErrGameNotFound.
func (c *Catalog) Game(id string) (*Game, error) {
	g, err := c.snapshot().Get(id)
	if err != nil {
		return nil, fmt.Errorf("improvdex: %w", err)
	}
	return g, nil
}

// Categories returns the distinct non-empty categories, sorted ascending.
func (c *Catalog) Categories() []string {
	start := time.Now()
	cats := queryuc.DistinctCategories(c.snapshot().Games())
	c.obs.observe("categories", start, len(cats), nil)
	return cats
}

// Search returns the games whose name, setup, rules, tips, examples, tags
// or category contain text, ignoring case. Blank text returns every game.
func (c *Catalog) Search(text string) []*Game {
	start := time.Now()
	games := queryuc.Search(c.snapshot().Games(), text)
	c.obs.observe("search", start, len(games), nil)
	return games
}

// Filter returns the games satisfying every set constraint in f.
func (c *Catalog) Filter(f Filters) ([]*Game, error) {
	start := time.Now()
	df, err := f.toDomain()
	if err != nil {
		err = fmt.Errorf("improvdex: %w", err)
		c.obs.observe("filter", start, 0, err)
		return nil, err
	}
	games := queryuc.Filter(c.snapshot().Games(), df)
	c.obs.observe("filter", start, len(games), nil)
	return games, nil
}

// SearchAndFilter searches by text, then filters the matches.
// Only invalid filters produce an error; any text is accepted.
func (c *Catalog) SearchAndFilter(text string, f Filters) ([]*Game, error) {
	start := time.Now()
	df, err := f.toDomain()
	if err != nil {
		err = fmt.Errorf("improvdex: %w", err)
		c.obs.observe("search_filter", start, 0, err)
		return nil, err
	}
	games := queryuc.SearchAndFilter(c.snapshot().Games(), text, df)
	c.obs.observe("search_filter", start, len(games), nil)
	return games, nil
}

// Query starts a fluent query.
func (c *Catalog) Query() *QueryBuilder {
	return &QueryBuilder{cat: c}
}

func (c *Catalog) snapshot() *domcat.Catalog {
	if cat := c.holder.Current(); cat != nil {
		return cat
	}
	// Open and FromReader never return a Catalog without a snapshot.
	empty, _ := domcat.New(nil, "", time.Time{})
	return empty
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
