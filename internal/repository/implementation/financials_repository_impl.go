package implementation

import (
	"context"
	"errors"

	"santripay-be/internal/entity"
	"santripay-be/internal/mapper"
	"santripay-be/internal/model"
	"santripay-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FinancialsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PesantrenMapper
}

func NewFinancialsRepository(db *gorm.DB) contract.FinancialsRepository {
	return &FinancialsRepositoryImpl{
		db:     db,
		mapper: mapper.NewPesantrenMapper(),
	}
}

func (r *FinancialsRepositoryImpl) Create(ctx context.Context, financials *entity.PesantrenFinancials) error {
	m := r.mapper.FinancialsToModel(financials)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*financials = *r.mapper.FinancialsToEntity(m)
	return nil
}

func (r *FinancialsRepositoryImpl) FindByPesantren(ctx context.Context, pesantrenId uuid.UUID) (*entity.PesantrenFinancials, error) {
	var m model.PesantrenFinancials
	if err := r.db.WithContext(ctx).Where("pesantren_id = ?", pesantrenId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FinancialsToEntity(&m), nil
}

// DecrementAvailable debits the tenant balance in a single UPDATE so
// concurrent withdrawals cannot read-modify-write over each other.
func (r *FinancialsRepositoryImpl) DecrementAvailable(ctx context.Context, pesantrenId uuid.UUID, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&model.PesantrenFinancials{}).
		Where("pesantren_id = ?", pesantrenId).
		Updates(map[string]interface{}{
			"available_balance": gorm.Expr("available_balance - ?", amount),
			"last_withdrawal":   amount,
		}).Error
}
