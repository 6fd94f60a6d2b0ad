package implementation

import (
	"context"
	"errors"

	"santripay-be/internal/entity"
	"santripay-be/internal/mapper"
	"santripay-be/internal/model"
	"santripay-be/internal/repository/contract"

	"gorm.io/gorm"
)

type MonetizationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MonetizationMapper
}

func NewMonetizationRepository(db *gorm.DB) contract.MonetizationRepository {
	return &MonetizationRepositoryImpl{
		db:     db,
		mapper: mapper.NewMonetizationMapper(),
	}
}

func (r *MonetizationRepositoryImpl) FindFirst(ctx context.Context) (*entity.MonetizationSettings, error) {
	var m model.MonetizationSettings
	if err := r.db.WithContext(ctx).Order("updated_at DESC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MonetizationRepositoryImpl) Create(ctx context.Context, settings *entity.MonetizationSettings) error {
	m := r.mapper.ToModel(settings)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.ToEntity(m)
	return nil
}

func (r *MonetizationRepositoryImpl) Update(ctx context.Context, settings *entity.MonetizationSettings) error {
	m := r.mapper.ToModel(settings)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.ToEntity(m)
	return nil
}
