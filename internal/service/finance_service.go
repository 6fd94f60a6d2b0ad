package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/pkg/logger"
	"santripay-be/internal/repository/scope"
	"santripay-be/internal/repository/specification"
	"santripay-be/internal/repository/unitofwork"
	"santripay-be/pkg/events"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrWithdrawalNotFound  = errors.New("Permintaan penarikan tidak ditemukan.")
	ErrWithdrawalProcessed = errors.New("Permintaan sudah diproses.")
	ErrInsufficientBalance = errors.New("Saldo tidak mencukupi.")
	ErrInvalidAmount       = errors.New("Jumlah penarikan tidak valid.")
)

type IFinanceService interface {
	GetFinancials(ctx context.Context, pesantrenId uuid.UUID, req *dto.ListRequest) (*dto.PesantrenFinancialsResponse, error)
	GetDashboardSummary(ctx context.Context, pesantrenId uuid.UUID) (*dto.PesantrenSummaryResponse, error)
	RequestWithdrawal(ctx context.Context, pesantrenId uuid.UUID, req *dto.RequestWithdrawalRequest) (*dto.WithdrawalResponse, error)
	ListWithdrawals(ctx context.Context, req *dto.ListRequest) (*dto.Paginated[dto.WithdrawalResponse], error)
	GetWithdrawalStats(ctx context.Context) (*dto.WithdrawalStatsResponse, error)
	UpdateWithdrawalStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateWithdrawalStatusRequest) error
}

type financeService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewFinanceService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IFinanceService {
	return &financeService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *financeService) GetFinancials(ctx context.Context, pesantrenId uuid.UUID, req *dto.ListRequest) (*dto.PesantrenFinancialsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	summary := dto.PesantrenFinancialsSummary{
		AvailableBalance: decimal.Zero,
		PendingBalance:   decimal.Zero,
		MonthlyIncome:    decimal.Zero,
		LastWithdrawal:   decimal.Zero,
	}
	financials, err := uow.FinancialsRepository().FindByPesantren(ctx, pesantrenId)
	if err != nil {
		return nil, err
	}
	if financials != nil {
		summary = dto.PesantrenFinancialsSummary{
			AvailableBalance: financials.AvailableBalance,
			PendingBalance:   financials.PendingBalance,
			MonthlyIncome:    financials.MonthlyIncome,
			LastWithdrawal:   financials.LastWithdrawal,
		}
	}

	accounts, err := uow.BankAccountRepository().FindAll(ctx, specification.TenantScope{PesantrenID: pesantrenId})
	if err != nil {
		return nil, err
	}
	bankAccounts := make([]dto.BankAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		bankAccounts = append(bankAccounts, dto.BankAccountResponse{
			Id:            account.Id,
			BankName:      account.BankName,
			AccountHolder: account.AccountHolder,
			AccountNumber: account.AccountNumber,
		})
	}

	offset := req.Normalize()
	tenantSpec := specification.TenantScope{PesantrenID: pesantrenId}

	totalItems, err := uow.TransactionRepository().Count(ctx, tenantSpec)
	if err != nil {
		return nil, err
	}

	rows, err := uow.TransactionRepository().FindAll(ctx,
		tenantSpec,
		specification.Scoped{Fn: scope.OrderByCreatedDesc},
		specification.Pagination{Limit: req.Limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	transactions := make([]dto.TransactionResponse, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, toTransactionResponse(row))
	}

	return &dto.PesantrenFinancialsResponse{
		Summary:      summary,
		BankAccounts: bankAccounts,
		Transactions: dto.NewPaginated(transactions, totalItems, req.Page, req.Limit),
	}, nil
}

func (s *financeService) GetDashboardSummary(ctx context.Context, pesantrenId uuid.UUID) (*dto.PesantrenSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The dashboard counters come off the pesantren row's denormalized
	// columns, not from scanning the santri/ustadz tables.
	pesantren, err := uow.PesantrenRepository().FindOne(ctx, specification.ByID{ID: pesantrenId})
	if err != nil {
		return nil, err
	}
	var santriCount, ustadzCount int64
	if pesantren != nil {
		santriCount = int64(pesantren.SantriCount)
		ustadzCount = int64(pesantren.UstadzCount)
	}

	tagihanRows, err := uow.TagihanRepository().FindAll(ctx, specification.TenantScope{PesantrenID: pesantrenId})
	if err != nil {
		return nil, err
	}
	unpaidTotal := decimal.Zero
	for _, tagihan := range tagihanRows {
		unpaidTotal = unpaidTotal.Add(tagihan.UnpaidTotal())
	}

	koperasiIncome, err := uow.TransactionRepository().KoperasiIncomeSince(ctx, pesantrenId, monthStart(time.Now()))
	if err != nil {
		return nil, err
	}

	activity, err := s.recentTransactions(ctx, uow, pesantrenId, 5)
	if err != nil {
		return nil, err
	}

	return &dto.PesantrenSummaryResponse{
		JumlahSantri:              santriCount,
		JumlahUstadz:              ustadzCount,
		TotalTagihanBelumLunas:    unpaidTotal,
		PendapatanKoperasiBulanan: koperasiIncome,
		AktivitasTerbaru:          activity,
	}, nil
}

func (s *financeService) RequestWithdrawal(ctx context.Context, pesantrenId uuid.UUID, req *dto.RequestWithdrawalRequest) (*dto.WithdrawalResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	financials, err := uow.FinancialsRepository().FindByPesantren(ctx, pesantrenId)
	if err != nil {
		return nil, err
	}
	if financials == nil || financials.AvailableBalance.LessThan(req.Amount) {
		return nil, ErrInsufficientBalance
	}

	request := entity.WithdrawalRequest{
		Id:            uuid.New(),
		PesantrenId:   pesantrenId,
		BankAccountId: req.BankAccountId,
		Amount:        req.Amount,
		Status:        entity.WithdrawalStatusPending,
		RequestedAt:   time.Now(),
	}
	if err := uow.WithdrawalRepository().Create(ctx, &request); err != nil {
		return nil, err
	}

	res := toWithdrawalResponse(&request)
	return &res, nil
}

func (s *financeService) ListWithdrawals(ctx context.Context, req *dto.ListRequest) (*dto.Paginated[dto.WithdrawalResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	offset := req.Normalize()

	filters := []specification.Specification{
		specification.StatusFilter{Status: req.Status},
		specification.TenantNameSearch{Query: req.Query},
	}

	totalItems, err := uow.WithdrawalRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	rows, err := uow.WithdrawalRepository().FindAllWithRelations(ctx, append(filters,
		specification.OrderBy{Field: "requested_at", Desc: true},
		specification.Pagination{Limit: req.Limit, Offset: offset},
	)...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.WithdrawalResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toWithdrawalResponse(row))
	}

	paginated := dto.NewPaginated(result, totalItems, req.Page, req.Limit)
	return &paginated, nil
}

func (s *financeService) GetWithdrawalStats(ctx context.Context) (*dto.WithdrawalStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pendingSpec := specification.Filter("status", string(entity.WithdrawalStatusPending))

	pendingCount, err := uow.WithdrawalRepository().Count(ctx, pendingSpec)
	if err != nil {
		return nil, err
	}

	pendingAmount, err := uow.WithdrawalRepository().SumAmount(ctx, pendingSpec)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	processedToday, err := uow.WithdrawalRepository().SumProcessedSince(ctx, todayStart)
	if err != nil {
		return nil, err
	}

	return &dto.WithdrawalStatsResponse{
		PendingCount:   pendingCount,
		PendingAmount:  pendingAmount,
		ProcessedToday: processedToday,
	}, nil
}

func (s *financeService) UpdateWithdrawalStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateWithdrawalStatusRequest) error {
	status := entity.WithdrawalStatus(req.Status)
	if status == entity.WithdrawalStatusRejected && req.Reason == "" {
		return ErrReasonRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.WithdrawalRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if request == nil {
		return ErrWithdrawalNotFound
	}
	if request.Status != entity.WithdrawalStatusPending {
		return ErrWithdrawalProcessed
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	now := time.Now()
	fields := map[string]interface{}{
		"status":       string(status),
		"reason":       req.Reason,
		"processed_at": now,
	}
	if err := uow.WithdrawalRepository().UpdateFields(ctx, id, fields); err != nil {
		return err
	}

	// Only completion moves money; rejection leaves the balance untouched.
	if status == entity.WithdrawalStatusCompleted {
		if err := uow.FinancialsRepository().DecrementAvailable(ctx, request.PesantrenId, request.Amount); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	event := events.NewWithdrawalProcessed(id, request.PesantrenId, string(status), request.Amount)
	s.logger.Info("FinanceService", "Withdrawal processed", event.Payload())

	description := "Penarikan dana disetujui"
	if status == entity.WithdrawalStatusRejected {
		description = "Penarikan dana ditolak: " + req.Reason
	}
	payload, _ := json.Marshal(dto.PublishActivityMessage{
		PesantrenId: request.PesantrenId,
		Type:        "withdrawal",
		Description: description,
		Amount:      request.Amount,
	})
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("FinanceService", "Failed to publish withdrawal activity", map[string]interface{}{"error": err.Error()})
	}

	return nil
}

func (s *financeService) recentTransactions(ctx context.Context, uow unitofwork.UnitOfWork, pesantrenId uuid.UUID, limit int) ([]dto.TransactionResponse, error) {
	rows, err := uow.TransactionRepository().FindAll(ctx,
		specification.TenantScope{PesantrenID: pesantrenId},
		specification.Scoped{Fn: scope.OrderByCreatedDesc},
		specification.Pagination{Limit: limit, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TransactionResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toTransactionResponse(row))
	}
	return result, nil
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		Id:          t.Id,
		Type:        t.Type,
		Description: t.Description,
		Amount:      t.Amount,
		Timestamp:   t.CreatedAt,
	}
}

func toWithdrawalResponse(w *entity.WithdrawalRequest) dto.WithdrawalResponse {
	tenantName := "Unknown"
	if w.Pesantren != nil {
		tenantName = w.Pesantren.Name
	}
	var bankAccount *dto.WithdrawalBankAccount
	if w.BankAccount != nil {
		bankAccount = &dto.WithdrawalBankAccount{
			BankName:      w.BankAccount.BankName,
			AccountHolder: w.BankAccount.AccountHolder,
			AccountNumber: w.BankAccount.AccountNumber,
		}
	}
	return dto.WithdrawalResponse{
		Id:          w.Id,
		TenantId:    w.PesantrenId,
		TenantName:  tenantName,
		RequestDate: w.RequestedAt,
		Amount:      w.Amount,
		Status:      string(w.Status),
		Reason:      w.Reason,
		BankAccount: bankAccount,
	}
}
