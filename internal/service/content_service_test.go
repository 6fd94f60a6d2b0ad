package service

import (
	"context"
	"testing"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListContentAttributesOwnerlessRowsToPlatform(t *testing.T) {
	content := &fakeGlobalContentRepo{rows: []*entity.GlobalContent{
		{Id: uuid.New(), Title: "Pengumuman Libur", Status: entity.ContentStatusApproved},
		{
			Id:        uuid.New(),
			Title:     "Kajian Mingguan",
			Status:    entity.ContentStatusApproved,
			Pesantren: &entity.Pesantren{Name: "Al-Hikmah"},
		},
	}}
	svc := NewContentService(&fakeFactory{uow: &fakeUow{content: content}})

	res, err := svc.ListContent(context.Background(), &dto.ListRequest{})
	require.NoError(t, err)
	require.Len(t, res.Data, 2)

	assert.Equal(t, "Platform", res.Data[0].PesantrenName)
	assert.Equal(t, "Al-Hikmah", res.Data[1].PesantrenName)
}
