package service

import (
	"context"
	"errors"
	"time"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/pkg/logger"
	"santripay-be/internal/repository/specification"
	"santripay-be/internal/repository/unitofwork"
	"santripay-be/pkg/events"

	"github.com/google/uuid"
)

var (
	ErrPesantrenNotFound = errors.New("Pesantren tidak ditemukan.")
	ErrReasonRequired    = errors.New("Alasan penolakan wajib diisi.")
)

type IPlatformService interface {
	GetSummary(ctx context.Context) (*dto.PlatformSummaryResponse, error)
	GetFinancials(ctx context.Context, req *dto.ListRequest) (*dto.PlatformFinancialsResponse, error)
	ListPesantren(ctx context.Context, req *dto.ListRequest) (*dto.Paginated[dto.PesantrenResponse], error)
	GetPesantrenDetails(ctx context.Context, id uuid.UUID) (*dto.PesantrenResponse, error)
	ApprovePesantren(ctx context.Context, id uuid.UUID) error
	RejectPesantren(ctx context.Context, id uuid.UUID, reason string) error
}

type platformService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewPlatformService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IPlatformService {
	return &platformService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func (s *platformService) GetSummary(ctx context.Context) (*dto.PlatformSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalPesantren, err := uow.PesantrenRepository().Count(ctx, specification.StatusFilter{Status: string(entity.PesantrenStatusActive)})
	if err != nil {
		return nil, err
	}

	// The pesantren row carries denormalized santri/ustadz counters, so the
	// platform total is a sum over those columns, not a santri table scan.
	totalSantri, err := uow.PesantrenRepository().SumSantriCount(ctx)
	if err != nil {
		return nil, err
	}

	since := monthStart(time.Now())
	monthlyVolume, err := uow.PlatformTransactionRepository().SumAmount(ctx, specification.CreatedSince{Since: since})
	if err != nil {
		return nil, err
	}

	revenue, err := uow.PlatformTransactionRepository().SumFees(ctx, specification.CreatedSince{Since: since})
	if err != nil {
		return nil, err
	}

	return &dto.PlatformSummaryResponse{
		TotalPesantren:        int(totalPesantren),
		TotalSantri:           int(totalSantri),
		TotalTransaksiBulanan: monthlyVolume,
		PendapatanPlatform:    revenue,
	}, nil
}

func (s *platformService) GetFinancials(ctx context.Context, req *dto.ListRequest) (*dto.PlatformFinancialsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PlatformTransactionRepository()

	totalVolume, err := repo.SumAmount(ctx)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := repo.SumFees(ctx)
	if err != nil {
		return nil, err
	}

	since := monthStart(time.Now())
	monthlyTopup, err := repo.SumAmount(ctx,
		specification.Filter("type", string(entity.PlatformTxTopup)),
		specification.CreatedSince{Since: since},
	)
	if err != nil {
		return nil, err
	}
	monthlyWithdraw, err := repo.SumAmount(ctx,
		specification.Filter("type", string(entity.PlatformTxWithdrawal)),
		specification.CreatedSince{Since: since},
	)
	if err != nil {
		return nil, err
	}

	offset := req.Normalize()
	totalItems, err := repo.Count(ctx, specification.StatusFilter{Status: req.Status})
	if err != nil {
		return nil, err
	}

	rows, err := repo.FindAllWithPesantren(ctx,
		specification.StatusFilter{Status: req.Status},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: req.Limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	transactions := make([]dto.PlatformTransactionResponse, 0, len(rows))
	for _, row := range rows {
		name := "Unknown"
		if row.Pesantren != nil {
			name = row.Pesantren.Name
		}
		transactions = append(transactions, dto.PlatformTransactionResponse{
			Id:            row.Id,
			PesantrenName: name,
			Type:          string(row.Type),
			Amount:        row.Amount,
			Timestamp:     row.CreatedAt,
			Status:        "completed",
		})
	}

	return &dto.PlatformFinancialsResponse{
		Summary: dto.PlatformFinancialsSummary{
			TotalVolume:          totalVolume,
			TotalPendapatan:      totalRevenue,
			TotalTopUpBulanan:    monthlyTopup,
			TotalWithdrawBulanan: monthlyWithdraw,
		},
		Transactions: dto.NewPaginated(transactions, totalItems, req.Page, req.Limit),
	}, nil
}

func (s *platformService) ListPesantren(ctx context.Context, req *dto.ListRequest) (*dto.Paginated[dto.PesantrenResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	offset := req.Normalize()

	filters := []specification.Specification{
		specification.StatusFilter{Status: req.Status},
		specification.SearchQuery{Query: req.Query, Fields: []string{"name", "address"}},
	}

	totalItems, err := uow.PesantrenRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	rows, err := uow.PesantrenRepository().FindAllWithAdmin(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: req.Limit, Offset: offset},
	)...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.PesantrenResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toPesantrenResponse(row))
	}

	paginated := dto.NewPaginated(result, totalItems, req.Page, req.Limit)
	return &paginated, nil
}

func (s *platformService) GetPesantrenDetails(ctx context.Context, id uuid.UUID) (*dto.PesantrenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pesantren, err := uow.PesantrenRepository().FindOneWithAdmin(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if pesantren == nil {
		return nil, ErrPesantrenNotFound
	}

	res := toPesantrenResponse(pesantren)
	return &res, nil
}

func (s *platformService) ApprovePesantren(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pesantren, err := uow.PesantrenRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if pesantren == nil {
		return ErrPesantrenNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Approval starts the one-year subscription clock.
	if err := uow.PesantrenRepository().UpdateFields(ctx, id, map[string]interface{}{
		"status":             string(entity.PesantrenStatusActive),
		"subscription_until": time.Now().AddDate(1, 0, 0),
		"rejection_reason":   "",
	}); err != nil {
		return err
	}

	if pesantren.AdminId != nil {
		if err := uow.ProfileRepository().UpdateFields(ctx, *pesantren.AdminId, map[string]interface{}{
			"status": string(entity.AccountStatusActive),
		}); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	event := events.NewPesantrenApproved(id, pesantren.Name)
	s.logger.Info("PlatformService", "Pesantren approved", event.Payload())
	return nil
}

func (s *platformService) RejectPesantren(ctx context.Context, id uuid.UUID, reason string) error {
	if reason == "" {
		return ErrReasonRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	pesantren, err := uow.PesantrenRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if pesantren == nil {
		return ErrPesantrenNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.PesantrenRepository().UpdateFields(ctx, id, map[string]interface{}{
		"status":           string(entity.PesantrenStatusRejected),
		"rejection_reason": reason,
	}); err != nil {
		return err
	}

	if pesantren.AdminId != nil {
		if err := uow.ProfileRepository().UpdateFields(ctx, *pesantren.AdminId, map[string]interface{}{
			"status": string(entity.AccountStatusRejected),
		}); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func toPesantrenResponse(p *entity.Pesantren) dto.PesantrenResponse {
	admin := dto.PesantrenAdminInfo{Name: "Unknown", Email: "Unknown"}
	if p.Admin != nil {
		admin.Name = p.Admin.Name
		admin.Email = p.Admin.Email
	}
	return dto.PesantrenResponse{
		Id:                p.Id,
		Name:              p.Name,
		Address:           p.Address,
		Contact:           p.Contact,
		LogoURL:           p.LogoURL,
		DocumentURL:       p.DocumentURL,
		SantriCount:       p.SantriCount,
		UstadzCount:       p.UstadzCount,
		Status:            string(p.Status),
		SubscriptionUntil: p.SubscriptionUntil,
		RejectionReason:   p.RejectionReason,
		CreatedAt:         p.CreatedAt,
		Admin:             admin,
	}
}
