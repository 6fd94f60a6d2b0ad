package contract

import (
	"context"

	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UstadzRepository interface {
	Create(ctx context.Context, ustadz *entity.Ustadz) error
	Update(ctx context.Context, ustadz *entity.Ustadz) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ustadz, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ustadz, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
