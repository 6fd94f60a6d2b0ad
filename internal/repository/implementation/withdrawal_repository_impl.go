package implementation

import (
	"context"
	"errors"
	"time"

	"santripay-be/internal/entity"
	"santripay-be/internal/mapper"
	"santripay-be/internal/model"
	"santripay-be/internal/repository/contract"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WithdrawalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WithdrawalMapper
}

func NewWithdrawalRepository(db *gorm.DB) contract.WithdrawalRepository {
	return &WithdrawalRepositoryImpl{
		db:     db,
		mapper: mapper.NewWithdrawalMapper(),
	}
}

func (r *WithdrawalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WithdrawalRepositoryImpl) Create(ctx context.Context, request *entity.WithdrawalRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *WithdrawalRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.WithdrawalRequest{}).Where("id = ?", id).Updates(fields).Error
}

func (r *WithdrawalRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WithdrawalRequest, error) {
	var m model.WithdrawalRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WithdrawalRepositoryImpl) FindAllWithRelations(ctx context.Context, specs ...specification.Specification) ([]*entity.WithdrawalRequest, error) {
	var models []*model.WithdrawalRequest
	query := r.applySpecifications(
		r.db.WithContext(ctx).Preload("Pesantren").Preload("BankAccount"),
		specs...,
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WithdrawalRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WithdrawalRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WithdrawalRepositoryImpl) SumAmount(ctx context.Context, specs ...specification.Specification) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WithdrawalRequest{}), specs...)
	if err := query.Select("SUM(amount)").Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *WithdrawalRepositoryImpl) SumProcessedSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&model.WithdrawalRequest{}).
		Select("SUM(amount)").
		Where("status = ?", string(entity.WithdrawalStatusCompleted)).
		Where("processed_at >= ?", since).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
