package implementation

import (
	"context"
	"database/sql"
	"errors"

	"santripay-be/internal/entity"
	"santripay-be/internal/mapper"
	"santripay-be/internal/model"
	"santripay-be/internal/repository/contract"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PesantrenRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PesantrenMapper
}

func NewPesantrenRepository(db *gorm.DB) contract.PesantrenRepository {
	return &PesantrenRepositoryImpl{
		db:     db,
		mapper: mapper.NewPesantrenMapper(),
	}
}

func (r *PesantrenRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PesantrenRepositoryImpl) Create(ctx context.Context, pesantren *entity.Pesantren) error {
	m := r.mapper.ToModel(pesantren)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pesantren = *r.mapper.ToEntity(m)
	return nil
}

func (r *PesantrenRepositoryImpl) Update(ctx context.Context, pesantren *entity.Pesantren) error {
	m := r.mapper.ToModel(pesantren)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*pesantren = *r.mapper.ToEntity(m)
	return nil
}

func (r *PesantrenRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Pesantren{}).Where("id = ?", id).Updates(fields).Error
}

func (r *PesantrenRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Pesantren, error) {
	var m model.Pesantren
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PesantrenRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pesantren, error) {
	var models []*model.Pesantren
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PesantrenRepositoryImpl) FindAllWithAdmin(ctx context.Context, specs ...specification.Specification) ([]*entity.Pesantren, error) {
	var models []*model.Pesantren
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Admin"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PesantrenRepositoryImpl) FindOneWithAdmin(ctx context.Context, specs ...specification.Specification) (*entity.Pesantren, error) {
	var m model.Pesantren
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Admin"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PesantrenRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Pesantren{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PesantrenRepositoryImpl) SumSantriCount(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var total sql.NullInt64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Pesantren{}), specs...)
	if err := query.Select("SUM(santri_count)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total.Int64, nil
}
