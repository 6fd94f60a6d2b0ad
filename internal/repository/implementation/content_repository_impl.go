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

type ContentCategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewContentCategoryRepository(db *gorm.DB) contract.ContentCategoryRepository {
	return &ContentCategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ContentCategoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentCategoryRepositoryImpl) Create(ctx context.Context, category *entity.ContentCategory) error {
	m := r.mapper.CategoryToModel(category)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*category = *r.mapper.CategoryToEntity(m)
	return nil
}

func (r *ContentCategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ContentCategory{}, id).Error
}

func (r *ContentCategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContentCategory, error) {
	var models []*model.ContentCategory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CategoriesToEntities(models), nil
}

type GlobalContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewGlobalContentRepository(db *gorm.DB) contract.GlobalContentRepository {
	return &GlobalContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *GlobalContentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GlobalContentRepositoryImpl) Create(ctx context.Context, content *entity.GlobalContent) error {
	m := r.mapper.ToModel(content)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*content = *r.mapper.ToEntity(m)
	return nil
}

func (r *GlobalContentRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.GlobalContent{}).Where("id = ?", id).Updates(fields).Error
}

func (r *GlobalContentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.GlobalContent{}, id).Error
}

func (r *GlobalContentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GlobalContent, error) {
	var m model.GlobalContent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GlobalContentRepositoryImpl) FindAllWithPesantren(ctx context.Context, specs ...specification.Specification) ([]*entity.GlobalContent, error) {
	var models []*model.GlobalContent
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Pesantren"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GlobalContentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.GlobalContent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
