package mapper

import (
	"santripay-be/internal/entity"
	"santripay-be/internal/model"
)

type MasterDataMapper struct{}

func NewMasterDataMapper() *MasterDataMapper {
	return &MasterDataMapper{}
}

func (m *MasterDataMapper) ToEntity(i *model.MasterItem) *entity.MasterDataItem {
	if i == nil {
		return nil
	}
	return &entity.MasterDataItem{
		Id:          i.Id,
		PesantrenId: i.PesantrenId,
		Name:        i.Name,
		CreatedAt:   i.CreatedAt,
	}
}

func (m *MasterDataMapper) ToModel(i *entity.MasterDataItem) *model.MasterItem {
	if i == nil {
		return nil
	}
	return &model.MasterItem{
		Id:          i.Id,
		PesantrenId: i.PesantrenId,
		Name:        i.Name,
		CreatedAt:   i.CreatedAt,
	}
}

func (m *MasterDataMapper) ToEntities(list []*model.MasterItem) []*entity.MasterDataItem {
	entities := make([]*entity.MasterDataItem, len(list))
	for i, item := range list {
		entities[i] = m.ToEntity(item)
	}
	return entities
}
