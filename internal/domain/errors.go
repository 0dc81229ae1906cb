package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrGameNotFound signals a missing game id.
	ErrGameNotFound = errors.New("game not found")
	// ErrDuplicateGame signals two games sharing one id.
	ErrDuplicateGame = errors.New("duplicate game id")
	// ErrInvalidGame signals a game that violates catalog invariants.
	ErrInvalidGame = errors.New("invalid game")
	// ErrInvalidQuery signals a malformed search or filter request.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidTheme signals an unknown theme value.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrCatalogNotLoaded signals that no catalog snapshot is available yet.
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
	// ErrCatalogLoad signals a failure to fetch or parse the catalog document.
	ErrCatalogLoad = errors.New("catalog load failed")
)

// GameError wraps ErrInvalidGame with the offending game id.
type GameError struct {
	ID     string
	Reason string
}

func (e *GameError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidGame.Error(), e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidGame.Error(), e.ID, e.Reason)
}

func (e *GameError) Unwrap() error { return ErrInvalidGame }

// NewGameError creates an invalid game error.
func NewGameError(id, reason string) error {
	return &GameError{ID: id, Reason: reason}
}
