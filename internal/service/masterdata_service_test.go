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

func TestMasterDataInvalidTypeNeverReachesRepository(t *testing.T) {
	factory := &fakeFactory{uow: &fakeUow{masterData: &fakeMasterDataRepo{}}}
	svc := NewMasterDataService(factory)

	_, err := svc.List(context.Background(), uuid.New(), entity.MasterDataType("siswa"))
	assert.ErrorIs(t, err, entity.ErrInvalidMasterDataType)

	_, err = svc.Create(context.Background(), uuid.New(), entity.MasterDataType("siswa"), &dto.CreateMasterDataRequest{Name: "X"})
	assert.ErrorIs(t, err, entity.ErrInvalidMasterDataType)

	assert.Equal(t, 0, factory.newCalls)
}

func TestMasterDataReadOnlyTypeRejectsWrites(t *testing.T) {
	repo := &fakeMasterDataRepo{}
	factory := &fakeFactory{uow: &fakeUow{masterData: repo}}
	svc := NewMasterDataService(factory)

	_, err := svc.Create(context.Background(), uuid.New(), entity.MasterDataGrupPilihan, &dto.CreateMasterDataRequest{Name: "Tahfidz"})
	assert.ErrorIs(t, err, ErrMasterDataReadOnly)

	err = svc.Update(context.Background(), uuid.New(), entity.MasterDataGrupPilihan, uuid.New(), &dto.UpdateMasterDataRequest{Name: "Tahfidz"})
	assert.ErrorIs(t, err, ErrMasterDataReadOnly)

	err = svc.Delete(context.Background(), uuid.New(), entity.MasterDataGrupPilihan, uuid.New())
	assert.ErrorIs(t, err, ErrMasterDataReadOnly)

	assert.Empty(t, repo.insertedTo)
	assert.Equal(t, 0, repo.updates)
	assert.Equal(t, 0, repo.deletes)
}

func TestMasterDataReadOnlyTypeStillListable(t *testing.T) {
	repo := &fakeMasterDataRepo{
		items: []*entity.MasterDataItem{{Id: uuid.New(), Name: "Tahfidz"}},
	}
	svc := NewMasterDataService(&fakeFactory{uow: &fakeUow{masterData: repo}})

	items, err := svc.List(context.Background(), uuid.New(), entity.MasterDataGrupPilihan)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tahfidz", items[0].Name)
}

func TestMasterDataWritesCarryTenant(t *testing.T) {
	repo := &fakeMasterDataRepo{}
	svc := NewMasterDataService(&fakeFactory{uow: &fakeUow{masterData: repo}})
	pesantrenId := uuid.New()

	err := svc.Update(context.Background(), pesantrenId, entity.MasterDataKelas, uuid.New(), &dto.UpdateMasterDataRequest{Name: "7B"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), pesantrenId, entity.MasterDataKelas, uuid.New())
	require.NoError(t, err)

	// Both writes must be scoped to the requesting tenant.
	require.Len(t, repo.writeTenants, 2)
	assert.Equal(t, pesantrenId, repo.writeTenants[0])
	assert.Equal(t, pesantrenId, repo.writeTenants[1])
}

func TestMasterDataCreateBindsResolvedTable(t *testing.T) {
	repo := &fakeMasterDataRepo{}
	svc := NewMasterDataService(&fakeFactory{uow: &fakeUow{masterData: repo}})

	res, err := svc.Create(context.Background(), uuid.New(), entity.MasterDataMapel, &dto.CreateMasterDataRequest{Name: "Fiqih"})
	require.NoError(t, err)
	assert.Equal(t, "Fiqih", res.Name)
	assert.Equal(t, []string{"mata_pelajaran"}, repo.insertedTo)
}
