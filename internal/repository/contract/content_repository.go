package contract

import (
	"context"

	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ContentCategoryRepository interface {
	Create(ctx context.Context, category *entity.ContentCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentCategory, error)
}

type GlobalContentRepository interface {
	Create(ctx context.Context, content *entity.GlobalContent) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GlobalContent, error)
	// FindAllWithPesantren preloads the owning pesantren for attribution.
	FindAllWithPesantren(ctx context.Context, specs ...specification.Specification) ([]*entity.GlobalContent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
