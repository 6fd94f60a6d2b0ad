package implementation

import (
	"context"
	"errors"

	"santripay-be/internal/entity"
	"santripay-be/internal/mapper"
	"santripay-be/internal/model"
	"santripay-be/internal/repository/contract"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UstadzRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UstadzMapper
}

func NewUstadzRepository(db *gorm.DB) contract.UstadzRepository {
	return &UstadzRepositoryImpl{
		db:     db,
		mapper: mapper.NewUstadzMapper(),
	}
}

func (r *UstadzRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UstadzRepositoryImpl) Create(ctx context.Context, ustadz *entity.Ustadz) error {
	m := r.mapper.ToModel(ustadz)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*ustadz = *r.mapper.ToEntity(m)
	return nil
}

func (r *UstadzRepositoryImpl) Update(ctx context.Context, ustadz *entity.Ustadz) error {
	m := r.mapper.ToModel(ustadz)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*ustadz = *r.mapper.ToEntity(m)
	return nil
}

func (r *UstadzRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Ustadz{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UstadzRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Ustadz{}, id).Error
}

func (r *UstadzRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ustadz, error) {
	var m model.Ustadz
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UstadzRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ustadz, error) {
	var models []*model.Ustadz
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UstadzRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Ustadz{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
