package service

import (
	"context"
	"errors"
	"time"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"
	"santripay-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrTagihanNotFound = errors.New("Tagihan tidak ditemukan.")

type ITagihanService interface {
	List(ctx context.Context, pesantrenId uuid.UUID, req *dto.ListRequest) (*dto.Paginated[dto.TagihanResponse], error)
	Create(ctx context.Context, pesantrenId uuid.UUID, req *dto.CreateTagihanRequest) (*dto.TagihanResponse, error)
	Update(ctx context.Context, pesantrenId, id uuid.UUID, req *dto.UpdateTagihanRequest) (*dto.TagihanResponse, error)
	Delete(ctx context.Context, pesantrenId, id uuid.UUID) error
}

type tagihanService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTagihanService(uowFactory unitofwork.RepositoryFactory) ITagihanService {
	return &tagihanService{uowFactory: uowFactory}
}

func (s *tagihanService) List(ctx context.Context, pesantrenId uuid.UUID, req *dto.ListRequest) (*dto.Paginated[dto.TagihanResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	offset := req.Normalize()

	filters := []specification.Specification{
		specification.TenantScope{PesantrenID: pesantrenId},
		specification.SearchQuery{Query: req.Query, Fields: []string{"title"}},
	}

	totalItems, err := uow.TagihanRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	rows, err := uow.TagihanRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: req.Limit, Offset: offset},
	)...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TagihanResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toTagihanResponse(row))
	}

	paginated := dto.NewPaginated(result, totalItems, req.Page, req.Limit)
	return &paginated, nil
}

func (s *tagihanService) Create(ctx context.Context, pesantrenId uuid.UUID, req *dto.CreateTagihanRequest) (*dto.TagihanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tagihan := entity.Tagihan{
		Id:           uuid.New(),
		PesantrenId:  pesantrenId,
		Title:        req.Title,
		Amount:       req.Amount,
		TotalTargets: req.TotalTargets,
		DueDate:      req.DueDate,
		CreatedAt:    time.Now(),
	}
	if err := uow.TagihanRepository().Create(ctx, &tagihan); err != nil {
		return nil, err
	}

	res := toTagihanResponse(&tagihan)
	return &res, nil
}

func (s *tagihanService) Update(ctx context.Context, pesantrenId, id uuid.UUID, req *dto.UpdateTagihanRequest) (*dto.TagihanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tagihan, err := uow.TagihanRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.TenantScope{PesantrenID: pesantrenId},
	)
	if err != nil {
		return nil, err
	}
	if tagihan == nil {
		return nil, ErrTagihanNotFound
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.TotalTargets != nil {
		fields["total_targets"] = *req.TotalTargets
	}
	if req.DueDate != nil {
		fields["due_date"] = *req.DueDate
	}
	if len(fields) > 0 {
		if err := uow.TagihanRepository().UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := uow.TagihanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTagihanNotFound
	}
	res := toTagihanResponse(updated)
	return &res, nil
}

func (s *tagihanService) Delete(ctx context.Context, pesantrenId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tagihan, err := uow.TagihanRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.TenantScope{PesantrenID: pesantrenId},
	)
	if err != nil {
		return err
	}
	if tagihan == nil {
		return ErrTagihanNotFound
	}

	return uow.TagihanRepository().Delete(ctx, id)
}

func toTagihanResponse(t *entity.Tagihan) dto.TagihanResponse {
	return dto.TagihanResponse{
		Id:           t.Id,
		Title:        t.Title,
		Amount:       t.Amount,
		TotalTargets: t.TotalTargets,
		PaidCount:    t.PaidCount,
		DueDate:      t.DueDate,
		CreatedAt:    t.CreatedAt,
	}
}
