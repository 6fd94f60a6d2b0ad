package mapper

import (
	"santripay-be/internal/entity"
	"santripay-be/internal/model"
)

type SantriMapper struct{}

func NewSantriMapper() *SantriMapper {
	return &SantriMapper{}
}

func (m *SantriMapper) ToEntity(s *model.Santri) *entity.Santri {
	if s == nil {
		return nil
	}
	var kelas *entity.MasterDataItem
	if s.Kelas != nil {
		kelas = &entity.MasterDataItem{
			Id:          s.Kelas.Id,
			PesantrenId: s.Kelas.PesantrenId,
			Name:        s.Kelas.Name,
			CreatedAt:   s.Kelas.CreatedAt,
		}
	}
	return &entity.Santri{
		Id:             s.Id,
		PesantrenId:    s.PesantrenId,
		NIS:            s.NIS,
		Name:           s.Name,
		ClassId:        s.ClassId,
		Balance:        s.Balance,
		Status:         entity.SantriStatus(s.Status),
		TransactionPin: s.TransactionPin,
		PhotoURL:       s.PhotoURL,
		CreatedAt:      s.CreatedAt,
		Kelas:          kelas,
	}
}

func (m *SantriMapper) ToModel(s *entity.Santri) *model.Santri {
	if s == nil {
		return nil
	}
	return &model.Santri{
		Id:             s.Id,
		PesantrenId:    s.PesantrenId,
		NIS:            s.NIS,
		Name:           s.Name,
		ClassId:        s.ClassId,
		Balance:        s.Balance,
		Status:         string(s.Status),
		TransactionPin: s.TransactionPin,
		PhotoURL:       s.PhotoURL,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *SantriMapper) ToEntities(list []*model.Santri) []*entity.Santri {
	entities := make([]*entity.Santri, len(list))
	for i, s := range list {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
