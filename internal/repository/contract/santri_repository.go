package contract

import (
	"context"

	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SantriRepository interface {
	Create(ctx context.Context, santri *entity.Santri) error
	Update(ctx context.Context, santri *entity.Santri) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Santri, error)
	// FindAllWithKelas preloads the kelas relation so the class name can be
	// rendered without per-row lookups.
	FindAllWithKelas(ctx context.Context, specs ...specification.Specification) ([]*entity.Santri, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
