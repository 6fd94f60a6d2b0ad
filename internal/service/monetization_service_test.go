package service

import (
	"context"
	"testing"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMonetizationRepo struct {
	settings   *entity.MonetizationSettings
	findCalls  int
	createCall int
	updateCall int
}

func (r *fakeMonetizationRepo) FindFirst(ctx context.Context) (*entity.MonetizationSettings, error) {
	r.findCalls++
	return r.settings, nil
}

func (r *fakeMonetizationRepo) Create(ctx context.Context, settings *entity.MonetizationSettings) error {
	r.createCall++
	r.settings = settings
	return nil
}

func (r *fakeMonetizationRepo) Update(ctx context.Context, settings *entity.MonetizationSettings) error {
	r.updateCall++
	r.settings = settings
	return nil
}

func TestMonetizationGetCachesSettings(t *testing.T) {
	repo := &fakeMonetizationRepo{
		settings: &entity.MonetizationSettings{
			TagihanFee: decimal.NewFromInt(2500),
			TopupFee:   decimal.NewFromInt(1000),
		},
	}
	svc := NewMonetizationService(&fakeFactory{uow: &fakeUow{monetization: repo}})

	first, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2500).Equal(first.TagihanFee))

	_, err = svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findCalls)
}

func TestMonetizationGetWithoutRowReturnsZeroFees(t *testing.T) {
	repo := &fakeMonetizationRepo{}
	svc := NewMonetizationService(&fakeFactory{uow: &fakeUow{monetization: repo}})

	res, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, res.TagihanFee.IsZero())
	assert.True(t, res.TopupFee.IsZero())
	assert.True(t, res.KoperasiCommission.IsZero())
}

func TestMonetizationUpdateUpsertsAndInvalidatesCache(t *testing.T) {
	repo := &fakeMonetizationRepo{}
	svc := NewMonetizationService(&fakeFactory{uow: &fakeUow{monetization: repo}})

	// First update creates the singleton row.
	res, err := svc.Update(context.Background(), &dto.UpdateMonetizationSettingsRequest{
		TagihanFee: decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCall)
	assert.True(t, decimal.NewFromInt(3000).Equal(res.TagihanFee))

	// Second update mutates it in place.
	_, err = svc.Update(context.Background(), &dto.UpdateMonetizationSettingsRequest{
		TagihanFee: decimal.NewFromInt(3500),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCall)
	assert.Equal(t, 1, repo.updateCall)

	// The next read must see the new fee, not a stale cache entry.
	read, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3500).Equal(read.TagihanFee))
}
