package mapper

import (
	"santripay-be/internal/entity"
	"santripay-be/internal/model"
)

type TagihanMapper struct{}

func NewTagihanMapper() *TagihanMapper {
	return &TagihanMapper{}
}

func (m *TagihanMapper) ToEntity(t *model.Tagihan) *entity.Tagihan {
	if t == nil {
		return nil
	}
	return &entity.Tagihan{
		Id:           t.Id,
		PesantrenId:  t.PesantrenId,
		Title:        t.Title,
		Amount:       t.Amount,
		TotalTargets: t.TotalTargets,
		PaidCount:    t.PaidCount,
		DueDate:      t.DueDate,
		CreatedAt:    t.CreatedAt,
	}
}

func (m *TagihanMapper) ToModel(t *entity.Tagihan) *model.Tagihan {
	if t == nil {
		return nil
	}
	return &model.Tagihan{
		Id:           t.Id,
		PesantrenId:  t.PesantrenId,
		Title:        t.Title,
		Amount:       t.Amount,
		TotalTargets: t.TotalTargets,
		PaidCount:    t.PaidCount,
		DueDate:      t.DueDate,
		CreatedAt:    t.CreatedAt,
	}
}

func (m *TagihanMapper) ToEntities(list []*model.Tagihan) []*entity.Tagihan {
	entities := make([]*entity.Tagihan, len(list))
	for i, t := range list {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
