package catalog

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/improvdex/internal/domain"
	domcat "github.com/kailas-cloud/improvdex/internal/domain/catalog"
	"github.com/kailas-cloud/improvdex/internal/domain/game"
)

// Format is the catalog document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the format from a path or URL extension; JSON is the default.
func DetectFormat(name string) Format {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Loader turns a source document into a catalog snapshot.
type Loader struct {
	source Source
	format Format
	now    func() time.Time
}

// NewLoader creates a loader. An empty format is detected from the source name.
func NewLoader(source Source, format Format) *Loader {
	if format == "" {
		format = DetectFormat(source.Name())
	}
	return &Loader{source: source, format: format, now: time.Now}
}

// committer is implemented by sources that keep a copy of each valid document.
type committer interface {
	Commit(ctx context.Context, data []byte)
}

// Load fetches and parses the document. Errors wrap domain.ErrCatalogLoad.
// Only documents that parse are committed back to the source.
func (l *Loader) Load(ctx context.Context) (*domcat.Catalog, error) {
	data, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogLoad, err)
	}
	cat, err := Parse(data, l.format, l.now())
	if err != nil {
		return nil, err
	}
	if c, ok := l.source.(committer); ok {
		c.Commit(ctx, data)
	}
	return cat, nil
}

// Parse decodes a catalog document, attaches each game's category,
// validates every game and sorts the result by name.
func Parse(data []byte, format Format, loadedAt time.Time) (*domcat.Catalog, error) {
	var doc documentDTO
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: parse yaml: %w", domain.ErrCatalogLoad, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: parse json: %w", domain.ErrCatalogLoad, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", domain.ErrCatalogLoad, format)
	}

	games, err := flatten(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogLoad, err)
	}

	cat, err := domcat.New(games, documentVersion(data), loadedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogLoad, err)
	}
	return cat, nil
}

func flatten(doc documentDTO) ([]game.Game, error) {
	total := 0
	for _, c := range doc.Categories {
		total += len(c.Games)
	}

	games := make([]game.Game, 0, total)
	for i, c := range doc.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("category #%d has no name", i)
		}
		for j := range c.Games {
			g, err := game.New(c.Games[j].toParams(name))
			if err != nil {
				return nil, fmt.Errorf("category %q: %w", name, err)
			}
			games = append(games, g)
		}
	}
	return games, nil
}

func documentVersion(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
