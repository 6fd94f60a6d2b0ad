package mapper

import (
	"santripay-be/internal/entity"
	"santripay-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:            p.Id,
		Email:         p.Email,
		PasswordHash:  p.PasswordHash,
		Name:          p.Name,
		Role:          entity.Role(p.Role),
		Status:        entity.AccountStatus(p.Status),
		TenantId:      p.TenantId,
		PesantrenName: p.PesantrenName,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:            p.Id,
		Email:         p.Email,
		PasswordHash:  p.PasswordHash,
		Name:          p.Name,
		Role:          string(p.Role),
		Status:        string(p.Status),
		TenantId:      p.TenantId,
		PesantrenName: p.PesantrenName,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToEntities(profiles []*model.Profile) []*entity.Profile {
	entities := make([]*entity.Profile, len(profiles))
	for i, p := range profiles {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
