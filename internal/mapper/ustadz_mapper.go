package mapper

import (
	"santripay-be/internal/entity"
	"santripay-be/internal/model"
)

type UstadzMapper struct{}

func NewUstadzMapper() *UstadzMapper {
	return &UstadzMapper{}
}

func (m *UstadzMapper) ToEntity(u *model.Ustadz) *entity.Ustadz {
	if u == nil {
		return nil
	}
	return &entity.Ustadz{
		Id:          u.Id,
		PesantrenId: u.PesantrenId,
		ProfileId:   u.ProfileId,
		Name:        u.Name,
		Email:       u.Email,
		Subject:     u.Subject,
		PhotoURL:    u.PhotoURL,
		CreatedAt:   u.CreatedAt,
	}
}

func (m *UstadzMapper) ToModel(u *entity.Ustadz) *model.Ustadz {
	if u == nil {
		return nil
	}
	return &model.Ustadz{
		Id:          u.Id,
		PesantrenId: u.PesantrenId,
		ProfileId:   u.ProfileId,
		Name:        u.Name,
		Email:       u.Email,
		Subject:     u.Subject,
		PhotoURL:    u.PhotoURL,
		CreatedAt:   u.CreatedAt,
	}
}

func (m *UstadzMapper) ToEntities(list []*model.Ustadz) []*entity.Ustadz {
	entities := make([]*entity.Ustadz, len(list))
	for i, u := range list {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
