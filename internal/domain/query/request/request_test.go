package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/improvdex/internal/domain"
	"github.com/kailas-cloud/improvdex/internal/domain/query/filter"
)

func TestNew_Valid(t *testing.T) {
	f := filter.Reconstruct("Opening Games", "", nil, nil, nil)
	r, err := New("freeze", f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Text() != "freeze" {
		t.Errorf("Text() = %q", r.Text())
	}
	if r.Filters().Category() != "Opening Games" {
		t.Errorf("Filters().Category() = %q", r.Filters().Category())
	}
}

func TestNew_EmptyText(t *testing.T) {
	r, err := New("", filter.Filters{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Text() != "" {
		t.Errorf("Text() = %q", r.Text())
	}
}

func TestNew_TooLong(t *testing.T) {
	_, err := New(strings.Repeat("a", MaxQueryLength+1), filter.Filters{})
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestNew_MaxLengthCountsRunes(t *testing.T) {
	// Multi-byte characters count once each.
	if _, err := New(strings.Repeat("é", MaxQueryLength), filter.Filters{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_PaddingNotCounted(t *testing.T) {
	text := strings.Repeat(" ", MaxQueryLength) + "freeze" + strings.Repeat("\t", 10)
	r, err := New(text, filter.Filters{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Text() != text {
		t.Errorf("Text() should keep the raw text, got %q", r.Text())
	}
}
