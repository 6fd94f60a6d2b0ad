package contract

import (
	"context"

	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PesantrenRepository interface {
	Create(ctx context.Context, pesantren *entity.Pesantren) error
	Update(ctx context.Context, pesantren *entity.Pesantren) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Pesantren, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pesantren, error)
	// FindAllWithAdmin preloads the admin profile for list/detail views.
	FindAllWithAdmin(ctx context.Context, specs ...specification.Specification) ([]*entity.Pesantren, error)
	FindOneWithAdmin(ctx context.Context, specs ...specification.Specification) (*entity.Pesantren, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SumSantriCount totals the denormalized santri_count column.
	SumSantriCount(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type FinancialsRepository interface {
	Create(ctx context.Context, financials *entity.PesantrenFinancials) error
	FindByPesantren(ctx context.Context, pesantrenId uuid.UUID) (*entity.PesantrenFinancials, error)
	// DecrementAvailable atomically subtracts amount from available_balance
	// and records it as the last withdrawal.
	DecrementAvailable(ctx context.Context, pesantrenId uuid.UUID, amount decimal.Decimal) error
}

type BankAccountRepository interface {
	Create(ctx context.Context, account *entity.BankAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BankAccount, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BankAccount, error)
}
