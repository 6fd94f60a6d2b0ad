package service

import (
	"context"
	"testing"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestWithdrawalInvalidAmount(t *testing.T) {
	svc := NewFinanceService(&fakeFactory{uow: &fakeUow{}}, &fakePublisher{}, nopLogger{})

	_, err := svc.RequestWithdrawal(context.Background(), uuid.New(), &dto.RequestWithdrawalRequest{
		Amount: decimal.NewFromInt(-100),
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestRequestWithdrawalInsufficientBalance(t *testing.T) {
	financials := &fakeFinancialsRepo{
		byPesantren: &entity.PesantrenFinancials{AvailableBalance: decimal.NewFromInt(50000)},
	}
	withdrawals := &fakeWithdrawalRepo{}
	uow := &fakeUow{financials: financials, withdrawals: withdrawals}
	svc := NewFinanceService(&fakeFactory{uow: uow}, &fakePublisher{}, nopLogger{})

	_, err := svc.RequestWithdrawal(context.Background(), uuid.New(), &dto.RequestWithdrawalRequest{
		Amount: decimal.NewFromInt(100000),
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Empty(t, withdrawals.created)
}

func TestRequestWithdrawalCreatesPendingRequest(t *testing.T) {
	pesantrenId := uuid.New()
	financials := &fakeFinancialsRepo{
		byPesantren: &entity.PesantrenFinancials{AvailableBalance: decimal.NewFromInt(500000)},
	}
	withdrawals := &fakeWithdrawalRepo{}
	uow := &fakeUow{financials: financials, withdrawals: withdrawals}
	svc := NewFinanceService(&fakeFactory{uow: uow}, &fakePublisher{}, nopLogger{})

	res, err := svc.RequestWithdrawal(context.Background(), pesantrenId, &dto.RequestWithdrawalRequest{
		Amount: decimal.NewFromInt(200000),
	})
	require.NoError(t, err)
	require.Len(t, withdrawals.created, 1)
	assert.Equal(t, entity.WithdrawalStatusPending, withdrawals.created[0].Status)
	assert.Equal(t, "pending", res.Status)
	assert.Equal(t, pesantrenId, res.TenantId)

	// A request never moves money by itself.
	assert.Empty(t, financials.decremented)
}

func TestGetFinancialsPaginatesTransactions(t *testing.T) {
	pesantrenId := uuid.New()
	rows := make([]*entity.Transaction, 0, 3)
	for i := 0; i < 3; i++ {
		rows = append(rows, &entity.Transaction{
			Id:          uuid.New(),
			PesantrenId: pesantrenId,
			Amount:      decimal.NewFromInt(int64(1000 * (i + 1))),
		})
	}
	transactions := &fakeTransactionRepo{rows: rows}
	uow := &fakeUow{
		financials:   &fakeFinancialsRepo{},
		bankAccounts: &fakeBankAccountRepo{},
		transactions: transactions,
	}
	svc := NewFinanceService(&fakeFactory{uow: uow}, &fakePublisher{}, nopLogger{})

	res, err := svc.GetFinancials(context.Background(), pesantrenId, &dto.ListRequest{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.Transactions.Pagination.TotalItems)
	assert.Equal(t, 2, res.Transactions.Pagination.TotalPages)
	assert.Equal(t, 1, res.Transactions.Pagination.CurrentPage)

	var pagination *specification.Pagination
	for _, spec := range transactions.findSpecs {
		if p, ok := spec.(specification.Pagination); ok {
			pagination = &p
		}
	}
	require.NotNil(t, pagination, "the transaction listing must be limited")
	assert.Equal(t, 2, pagination.Limit)
	assert.Equal(t, 0, pagination.Offset)
}

func TestDashboardSummaryReadsCountersFromPesantrenRow(t *testing.T) {
	pesantrenId := uuid.New()
	pesantren := &fakePesantrenRepo{
		findOneResult: &entity.Pesantren{Id: pesantrenId, SantriCount: 150, UstadzCount: 12},
	}
	uow := &fakeUow{
		pesantren:    pesantren,
		tagihan:      &fakeTagihanRepo{},
		transactions: &fakeTransactionRepo{koperasiIncome: decimal.NewFromInt(750000)},
	}
	svc := NewFinanceService(&fakeFactory{uow: uow}, &fakePublisher{}, nopLogger{})

	res, err := svc.GetDashboardSummary(context.Background(), pesantrenId)
	require.NoError(t, err)

	assert.Equal(t, int64(150), res.JumlahSantri)
	assert.Equal(t, int64(12), res.JumlahUstadz)
	assert.True(t, decimal.NewFromInt(750000).Equal(res.PendapatanKoperasiBulanan))
}

func TestListWithdrawalsSearchesPesantrenName(t *testing.T) {
	withdrawals := &fakeWithdrawalRepo{}
	uow := &fakeUow{withdrawals: withdrawals}
	svc := NewFinanceService(&fakeFactory{uow: uow}, &fakePublisher{}, nopLogger{})

	_, err := svc.ListWithdrawals(context.Background(), &dto.ListRequest{Query: "Hikmah"})
	require.NoError(t, err)

	hasNameFilter := func(specs []specification.Specification) bool {
		for _, spec := range specs {
			if s, ok := spec.(specification.TenantNameSearch); ok && s.Query == "Hikmah" {
				return true
			}
		}
		return false
	}
	assert.True(t, hasNameFilter(withdrawals.countSpecs), "the count must share the name filter")
	assert.True(t, hasNameFilter(withdrawals.listSpecs), "the listing must share the name filter")
}

func TestWithdrawalStatsSumTodaysCompletedAmounts(t *testing.T) {
	withdrawals := &fakeWithdrawalRepo{
		processedTodaySum: decimal.NewFromInt(350000),
	}
	uow := &fakeUow{withdrawals: withdrawals}
	svc := NewFinanceService(&fakeFactory{uow: uow}, &fakePublisher{}, nopLogger{})

	res, err := svc.GetWithdrawalStats(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(350000).Equal(res.ProcessedToday))
}

func TestUpdateWithdrawalStatusRejectedNeedsReason(t *testing.T) {
	svc := NewFinanceService(&fakeFactory{uow: &fakeUow{}}, &fakePublisher{}, nopLogger{})

	err := svc.UpdateWithdrawalStatus(context.Background(), uuid.New(), &dto.UpdateWithdrawalStatusRequest{
		Status: "rejected",
	})
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestUpdateWithdrawalStatusNotFound(t *testing.T) {
	uow := &fakeUow{withdrawals: &fakeWithdrawalRepo{}}
	svc := NewFinanceService(&fakeFactory{uow: uow}, &fakePublisher{}, nopLogger{})

	err := svc.UpdateWithdrawalStatus(context.Background(), uuid.New(), &dto.UpdateWithdrawalStatusRequest{
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrWithdrawalNotFound)
}

func TestUpdateWithdrawalStatusAlreadyProcessed(t *testing.T) {
	withdrawals := &fakeWithdrawalRepo{
		findOneResult: &entity.WithdrawalRequest{
			Id:     uuid.New(),
			Status: entity.WithdrawalStatusCompleted,
		},
	}
	uow := &fakeUow{withdrawals: withdrawals}
	svc := NewFinanceService(&fakeFactory{uow: uow}, &fakePublisher{}, nopLogger{})

	err := svc.UpdateWithdrawalStatus(context.Background(), uuid.New(), &dto.UpdateWithdrawalStatusRequest{
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrWithdrawalProcessed)
}

func TestUpdateWithdrawalStatusCompletedDecrementsBalance(t *testing.T) {
	requestId := uuid.New()
	pesantrenId := uuid.New()
	amount := decimal.NewFromInt(150000)
	withdrawals := &fakeWithdrawalRepo{
		findOneResult: &entity.WithdrawalRequest{
			Id:          requestId,
			PesantrenId: pesantrenId,
			Amount:      amount,
			Status:      entity.WithdrawalStatusPending,
		},
	}
	financials := &fakeFinancialsRepo{}
	publisher := &fakePublisher{}
	uow := &fakeUow{withdrawals: withdrawals, financials: financials}
	svc := NewFinanceService(&fakeFactory{uow: uow}, publisher, nopLogger{})

	err := svc.UpdateWithdrawalStatus(context.Background(), requestId, &dto.UpdateWithdrawalStatusRequest{
		Status: "completed",
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", withdrawals.updatedFields["status"])
	assert.NotNil(t, withdrawals.updatedFields["processed_at"])

	require.Len(t, financials.decremented, 1)
	assert.True(t, amount.Equal(financials.decremented[0]))

	assert.Equal(t, 1, uow.committed)
	assert.Len(t, publisher.payloads, 1)
}

func TestUpdateWithdrawalStatusRejectedKeepsBalance(t *testing.T) {
	requestId := uuid.New()
	withdrawals := &fakeWithdrawalRepo{
		findOneResult: &entity.WithdrawalRequest{
			Id:          requestId,
			PesantrenId: uuid.New(),
			Amount:      decimal.NewFromInt(150000),
			Status:      entity.WithdrawalStatusPending,
		},
	}
	financials := &fakeFinancialsRepo{}
	uow := &fakeUow{withdrawals: withdrawals, financials: financials}
	svc := NewFinanceService(&fakeFactory{uow: uow}, &fakePublisher{}, nopLogger{})

	err := svc.UpdateWithdrawalStatus(context.Background(), requestId, &dto.UpdateWithdrawalStatusRequest{
		Status: "rejected",
		Reason: "Rekening tidak valid",
	})
	require.NoError(t, err)

	assert.Equal(t, "rejected", withdrawals.updatedFields["status"])
	assert.Equal(t, "Rekening tidak valid", withdrawals.updatedFields["reason"])
	assert.Empty(t, financials.decremented)
}
