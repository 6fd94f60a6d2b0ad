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

type SantriRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SantriMapper
}

func NewSantriRepository(db *gorm.DB) contract.SantriRepository {
	return &SantriRepositoryImpl{
		db:     db,
		mapper: mapper.NewSantriMapper(),
	}
}

func (r *SantriRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SantriRepositoryImpl) Create(ctx context.Context, santri *entity.Santri) error {
	m := r.mapper.ToModel(santri)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*santri = *r.mapper.ToEntity(m)
	return nil
}

func (r *SantriRepositoryImpl) Update(ctx context.Context, santri *entity.Santri) error {
	m := r.mapper.ToModel(santri)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*santri = *r.mapper.ToEntity(m)
	return nil
}

func (r *SantriRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Santri{}).Where("id = ?", id).Updates(fields).Error
}

func (r *SantriRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Santri{}, id).Error
}

func (r *SantriRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Santri, error) {
	var m model.Santri
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SantriRepositoryImpl) FindAllWithKelas(ctx context.Context, specs ...specification.Specification) ([]*entity.Santri, error) {
	var models []*model.Santri
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Kelas"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SantriRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Santri{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
