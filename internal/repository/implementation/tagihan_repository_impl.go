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

type TagihanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TagihanMapper
}

func NewTagihanRepository(db *gorm.DB) contract.TagihanRepository {
	return &TagihanRepositoryImpl{
		db:     db,
		mapper: mapper.NewTagihanMapper(),
	}
}

func (r *TagihanRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TagihanRepositoryImpl) Create(ctx context.Context, tagihan *entity.Tagihan) error {
	m := r.mapper.ToModel(tagihan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tagihan = *r.mapper.ToEntity(m)
	return nil
}

func (r *TagihanRepositoryImpl) Update(ctx context.Context, tagihan *entity.Tagihan) error {
	m := r.mapper.ToModel(tagihan)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tagihan = *r.mapper.ToEntity(m)
	return nil
}

func (r *TagihanRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Tagihan{}).Where("id = ?", id).Updates(fields).Error
}

func (r *TagihanRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Tagihan{}, id).Error
}

func (r *TagihanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tagihan, error) {
	var m model.Tagihan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TagihanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tagihan, error) {
	var models []*model.Tagihan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TagihanRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Tagihan{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
