package mapper

import (
	"santripay-be/internal/entity"
	"santripay-be/internal/model"
)

type MonetizationMapper struct{}

func NewMonetizationMapper() *MonetizationMapper {
	return &MonetizationMapper{}
}

func (m *MonetizationMapper) ToEntity(s *model.MonetizationSettings) *entity.MonetizationSettings {
	if s == nil {
		return nil
	}
	return &entity.MonetizationSettings{
		Id:                 s.Id,
		TagihanFee:         s.TagihanFee,
		TopupFee:           s.TopupFee,
		KoperasiCommission: s.KoperasiCommission,
		UpdatedAt:          s.UpdatedAt,
	}
}

func (m *MonetizationMapper) ToModel(s *entity.MonetizationSettings) *model.MonetizationSettings {
	if s == nil {
		return nil
	}
	return &model.MonetizationSettings{
		Id:                 s.Id,
		TagihanFee:         s.TagihanFee,
		TopupFee:           s.TopupFee,
		KoperasiCommission: s.KoperasiCommission,
		UpdatedAt:          s.UpdatedAt,
	}
}
