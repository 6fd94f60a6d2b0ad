package contract

import (
	"context"
	"time"

	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// KoperasiIncomeSince sums koperasi sales for one tenant from the given
	// time, joining through the tenant's koperasi rows.
	KoperasiIncomeSince(ctx context.Context, pesantrenId uuid.UUID, since time.Time) (decimal.Decimal, error)
}

type PlatformTransactionRepository interface {
	Create(ctx context.Context, transaction *entity.PlatformTransaction) error
	// FindAllWithPesantren preloads the pesantren relation for display names.
	FindAllWithPesantren(ctx context.Context, specs ...specification.Specification) ([]*entity.PlatformTransaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SumAmount(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error)
	SumFees(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error)
}
