package preference

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/improvdex/internal/domain"
	"github.com/kailas-cloud/improvdex/internal/domain/theme"
	logpkg "github.com/kailas-cloud/improvdex/internal/logger"
)

// Service manages the light/dark theme preference of each client.
type Service struct {
	repo Repository
}

// New creates a preference service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the client's theme, theme.Default() when nothing is stored.
func (s *Service) Get(ctx context.Context, clientID string) (theme.Theme, error) {
	if err := validateClientID(clientID); err != nil {
		return "", err
	}
	t, found, err := s.repo.Theme(ctx, clientID)
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	if !found {
		return theme.Default(), nil
	}
	return t, nil
}

// Set validates and persists the client's theme.
func (s *Service) Set(ctx context.Context, clientID string, t theme.Theme) (theme.Theme, error) {
	if err := validateClientID(clientID); err != nil {
		return "", err
	}
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidTheme, t)
	}
	if err := s.repo.SetTheme(ctx, clientID, t); err != nil {
		return "", fmt.Errorf("set theme: %w", err)
	}
	logpkg.FromContext(ctx).Debug("Theme updated", zap.String("theme", string(t)))
	return t, nil
}

// Toggle flips the client's theme and persists the result.
func (s *Service) Toggle(ctx context.Context, clientID string) (theme.Theme, error) {
	current, err := s.Get(ctx, clientID)
	if err != nil {
		return "", err
	}
	return s.Set(ctx, clientID, current.Toggle())
}

func validateClientID(clientID string) error {
	if strings.TrimSpace(clientID) == "" {
		return fmt.Errorf("%w: client id is required", domain.ErrInvalidTheme)
	}
	return nil
}
