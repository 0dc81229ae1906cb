package sdk

import (
	"errors"
	"fmt"

	"github.com/kailas-cloud/improvdex/internal/domain"
	chiTransport "github.com/kailas-cloud/improvdex/internal/transport/chi"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrGameNotFound     = domain.ErrGameNotFound
	ErrInvalidQuery     = domain.ErrInvalidQuery
	ErrInvalidTheme     = domain.ErrInvalidTheme
	ErrCatalogNotLoaded = domain.ErrCatalogNotLoaded

	// ErrUnauthorized signals a missing or rejected API key.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("improvdex api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("improvdex api: %s: %s (status %d)", e.Code, e.Message, e.StatusCode)
}

// Unwrap maps the error code to its sentinel so errors.Is works across the wire.
func (e *APIError) Unwrap() error {
	switch chiTransport.ErrorResponseCode(e.Code) {
	case chiTransport.ErrorResponseCodeGameNotFound:
		return ErrGameNotFound
	case chiTransport.ErrorResponseCodeInvalidQuery, chiTransport.ErrorResponseCodeBadRequest:
		return ErrInvalidQuery
	case chiTransport.ErrorResponseCodeInvalidTheme:
		return ErrInvalidTheme
	case chiTransport.ErrorResponseCodeCatalogNotLoaded:
		return ErrCatalogNotLoaded
	case chiTransport.ErrorResponseCodeUnauthorized:
		return ErrUnauthorized
	default:
		return nil
	}
}
