package service

import (
	"context"
	"testing"
	"time"

	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovePesantrenStartsSubscription(t *testing.T) {
	adminId := uuid.New()
	pesantren := &fakePesantrenRepo{
		findOneResult: &entity.Pesantren{Id: uuid.New(), Name: "Al-Hikmah", AdminId: &adminId},
	}
	profiles := &fakeProfileRepo{}
	uow := &fakeUow{pesantren: pesantren, profiles: profiles}
	svc := NewPlatformService(&fakeFactory{uow: uow}, nopLogger{})

	err := svc.ApprovePesantren(context.Background(), pesantren.findOneResult.Id)
	require.NoError(t, err)

	assert.Equal(t, string(entity.PesantrenStatusActive), pesantren.updatedFields["status"])

	until, ok := pesantren.updatedFields["subscription_until"].(time.Time)
	require.True(t, ok, "approval must set the subscription expiry")
	assert.WithinDuration(t, time.Now().AddDate(1, 0, 0), until, time.Minute)

	assert.Equal(t, string(entity.AccountStatusActive), profiles.updatedFields["status"])
	assert.Equal(t, adminId, profiles.updatedId)
	assert.Equal(t, 1, uow.committed)
}

func TestRejectPesantrenRequiresReason(t *testing.T) {
	svc := NewPlatformService(&fakeFactory{uow: &fakeUow{}}, nopLogger{})

	err := svc.RejectPesantren(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestPlatformSummaryScopesRevenueToCurrentMonth(t *testing.T) {
	platformTx := &fakePlatformTxRepo{
		amountTotal: decimal.NewFromInt(5000000),
		feeTotal:    decimal.NewFromInt(250000),
	}
	uow := &fakeUow{
		pesantren:  &fakePesantrenRepo{},
		platformTx: platformTx,
	}
	svc := NewPlatformService(&fakeFactory{uow: uow}, nopLogger{})

	res, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250000).Equal(res.PendapatanPlatform))

	require.Len(t, platformTx.sumFeesSpecs, 1)
	require.Len(t, platformTx.sumFeesSpecs[0], 1)
	since, ok := platformTx.sumFeesSpecs[0][0].(specification.CreatedSince)
	require.True(t, ok, "platform revenue must carry a month lower bound")

	now := time.Now()
	assert.Equal(t, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), since.Since)
}

func TestPlatformSummarySumsDenormalizedSantriCounters(t *testing.T) {
	pesantren := &fakePesantrenRepo{santriTotal: 420}
	uow := &fakeUow{
		pesantren:  pesantren,
		platformTx: &fakePlatformTxRepo{},
	}
	svc := NewPlatformService(&fakeFactory{uow: uow}, nopLogger{})

	res, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 420, res.TotalSantri)
	assert.Equal(t, 1, pesantren.santriSums)
}
