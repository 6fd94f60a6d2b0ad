package implementation

import (
	"context"

	"santripay-be/internal/entity"
	"santripay-be/internal/mapper"
	"santripay-be/internal/model"
	"santripay-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasterDataRepositoryImpl runs the same row shape against whichever table
// the caller resolved. Table names only ever come from the type registry,
// never from request input.
type MasterDataRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MasterDataMapper
}

func NewMasterDataRepository(db *gorm.DB) contract.MasterDataRepository {
	return &MasterDataRepositoryImpl{
		db:     db,
		mapper: mapper.NewMasterDataMapper(),
	}
}

func (r *MasterDataRepositoryImpl) FindAll(ctx context.Context, table string, pesantrenId uuid.UUID) ([]*entity.MasterDataItem, error) {
	var models []*model.MasterItem
	err := r.db.WithContext(ctx).
		Table(table).
		Where("pesantren_id = ?", pesantrenId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MasterDataRepositoryImpl) Insert(ctx context.Context, table string, item *entity.MasterDataItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Table(table).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *MasterDataRepositoryImpl) UpdateName(ctx context.Context, table string, pesantrenId, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		Where("pesantren_id = ?", pesantrenId).
		Update("name", name).Error
}

func (r *MasterDataRepositoryImpl) Delete(ctx context.Context, table string, pesantrenId, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		Where("pesantren_id = ?", pesantrenId).
		Delete(&model.MasterItem{}).Error
}
