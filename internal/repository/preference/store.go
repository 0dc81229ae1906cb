package preference

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/improvdex/internal/db"
	"github.com/kailas-cloud/improvdex/internal/domain"
	"github.com/kailas-cloud/improvdex/internal/domain/theme"
)

var keyPrefix = domain.KeyPrefix + "pref:"

// store is the consumer interface for preference operations (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Store persists per-client theme preferences in the key-value store.
type Store struct {
	store store
	ttl   time.Duration
}

// New creates a preference store. A non-positive ttl keeps keys forever.
func New(s store, ttl time.Duration) *Store {
	return &Store{store: s, ttl: ttl}
}

// Theme returns the stored theme; found is false when nothing is stored.
func (s *Store) Theme(ctx context.Context, clientID string) (t theme.Theme, found bool, err error) {
	key := themeKey(clientID)
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("preference GET %s: %w", key, err)
	}

	t, err = theme.Parse(string(data))
	if err != nil {
		// Stale or foreign value: treat as unset.
		return "", false, nil //nolint:nilerr // corrupt value falls back to the default theme
	}
	return t, true, nil
}

// SetTheme stores the theme, refreshing the TTL.
func (s *Store) SetTheme(ctx context.Context, clientID string, t theme.Theme) error {
	key := themeKey(clientID)
	if err := s.store.SetWithTTL(ctx, key, []byte(t), s.ttl); err != nil {
		return fmt.Errorf("preference SET %s: %w", key, err)
	}
	return nil
}

// themeKey follows the pattern improvdex:pref:{client}:theme.
func themeKey(clientID string) string {
	return keyPrefix + strings.TrimSpace(clientID) + ":theme"
}
