package contract

import (
	"context"

	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AdRepository interface {
	Create(ctx context.Context, ad *entity.Ad) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ad, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ad, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
