package contract

import (
	"context"

	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TagihanRepository interface {
	Create(ctx context.Context, tagihan *entity.Tagihan) error
	Update(ctx context.Context, tagihan *entity.Tagihan) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tagihan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tagihan, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
