package preference

import (
	"context"

	"github.com/kailas-cloud/improvdex/internal/domain/theme"
)

// Repository persists theme preferences per client.
type Repository interface {
	Theme(ctx context.Context, clientID string) (t theme.Theme, found bool, err error)
	SetTheme(ctx context.Context, clientID string, t theme.Theme) error
}
