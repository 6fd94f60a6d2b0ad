package contract

import (
	"context"
	"time"

	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalRepository interface {
	Create(ctx context.Context, request *entity.WithdrawalRequest) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WithdrawalRequest, error)
	// FindAllWithRelations preloads the pesantren and bank account rows.
	FindAllWithRelations(ctx context.Context, specs ...specification.Specification) ([]*entity.WithdrawalRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SumAmount(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error)
	// SumProcessedSince totals the amounts completed at or after the given
	// time; rejected requests move no money and are excluded.
	SumProcessedSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}
