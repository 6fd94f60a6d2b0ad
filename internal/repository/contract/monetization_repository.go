package contract

import (
	"context"

	"santripay-be/internal/entity"
)

// MonetizationRepository manages the platform-wide settings singleton.
type MonetizationRepository interface {
	FindFirst(ctx context.Context) (*entity.MonetizationSettings, error)
	Create(ctx context.Context, settings *entity.MonetizationSettings) error
	Update(ctx context.Context, settings *entity.MonetizationSettings) error
}
