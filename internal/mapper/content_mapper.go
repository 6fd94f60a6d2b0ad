package mapper

import (
	"santripay-be/internal/entity"
	"santripay-be/internal/model"
)

type ContentMapper struct {
	pesantrenMapper *PesantrenMapper
}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{pesantrenMapper: NewPesantrenMapper()}
}

func (m *ContentMapper) CategoryToEntity(c *model.ContentCategory) *entity.ContentCategory {
	if c == nil {
		return nil
	}
	return &entity.ContentCategory{
		Id:        c.Id,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContentMapper) CategoryToModel(c *entity.ContentCategory) *model.ContentCategory {
	if c == nil {
		return nil
	}
	return &model.ContentCategory{
		Id:        c.Id,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContentMapper) CategoriesToEntities(list []*model.ContentCategory) []*entity.ContentCategory {
	entities := make([]*entity.ContentCategory, len(list))
	for i, c := range list {
		entities[i] = m.CategoryToEntity(c)
	}
	return entities
}

func (m *ContentMapper) ToEntity(c *model.GlobalContent) *entity.GlobalContent {
	if c == nil {
		return nil
	}
	return &entity.GlobalContent{
		Id:              c.Id,
		PesantrenId:     c.PesantrenId,
		CategoryId:      c.CategoryId,
		Title:           c.Title,
		Author:          c.Author,
		Body:            c.Body,
		Status:          entity.ContentStatus(c.Status),
		Featured:        c.Featured,
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
		Pesantren:       m.pesantrenMapper.ToEntity(c.Pesantren),
	}
}

func (m *ContentMapper) ToModel(c *entity.GlobalContent) *model.GlobalContent {
	if c == nil {
		return nil
	}
	return &model.GlobalContent{
		Id:              c.Id,
		PesantrenId:     c.PesantrenId,
		CategoryId:      c.CategoryId,
		Title:           c.Title,
		Author:          c.Author,
		Body:            c.Body,
		Status:          string(c.Status),
		Featured:        c.Featured,
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *ContentMapper) ToEntities(list []*model.GlobalContent) []*entity.GlobalContent {
	entities := make([]*entity.GlobalContent, len(list))
	for i, c := range list {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
