package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/improvdex/internal/domain"
	"github.com/kailas-cloud/improvdex/internal/domain/query/filter"
)

// MaxQueryLength is the maximum allowed search text length in runes.
const MaxQueryLength = 256

// Request is a validated catalog query: free text plus attribute filters.
type Request struct {
	text    string
	filters filter.Filters
}

// New validates the query text. Empty text is allowed and matches every game.
// Surrounding whitespace does not count towards MaxQueryLength.
func New(text string, filters filter.Filters) (Request, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	return Request{text: text, filters: filters}, nil
}

// Text returns the raw search text.
func (r *Request) Text() string { return r.text }

// Filters returns the attribute constraints.
func (r *Request) Filters() filter.Filters { return r.filters }
