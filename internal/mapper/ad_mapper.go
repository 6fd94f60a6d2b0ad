package mapper

import (
	"santripay-be/internal/entity"
	"santripay-be/internal/model"

	"gorm.io/datatypes"
)

type AdMapper struct{}

func NewAdMapper() *AdMapper {
	return &AdMapper{}
}

func (m *AdMapper) ToEntity(a *model.Ad) *entity.Ad {
	if a == nil {
		return nil
	}
	return &entity.Ad{
		Id:                 a.Id,
		Title:              a.Title,
		Type:               a.Type,
		Status:             a.Status,
		ImageURL:           a.ImageURL,
		TargetURL:          a.TargetURL,
		StartDate:          a.StartDate,
		EndDate:            a.EndDate,
		Placement:          a.Placement,
		TargetPesantrenIds: []string(a.TargetPesantrenIds),
		CreatedAt:          a.CreatedAt,
	}
}

func (m *AdMapper) ToModel(a *entity.Ad) *model.Ad {
	if a == nil {
		return nil
	}
	return &model.Ad{
		Id:                 a.Id,
		Title:              a.Title,
		Type:               a.Type,
		Status:             a.Status,
		ImageURL:           a.ImageURL,
		TargetURL:          a.TargetURL,
		StartDate:          a.StartDate,
		EndDate:            a.EndDate,
		Placement:          a.Placement,
		TargetPesantrenIds: datatypes.NewJSONSlice(a.TargetPesantrenIds),
		CreatedAt:          a.CreatedAt,
	}
}

func (m *AdMapper) ToEntities(list []*model.Ad) []*entity.Ad {
	entities := make([]*entity.Ad, len(list))
	for i, a := range list {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
