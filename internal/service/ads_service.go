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
	"gorm.io/datatypes"
)

var ErrAdNotFound = errors.New("Iklan tidak ditemukan.")

type IAdsService interface {
	List(ctx context.Context, req *dto.ListRequest) (*dto.Paginated[dto.AdResponse], error)
	Create(ctx context.Context, req *dto.CreateAdRequest) (*dto.AdResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type adsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdsService(uowFactory unitofwork.RepositoryFactory) IAdsService {
	return &adsService{uowFactory: uowFactory}
}

func (s *adsService) List(ctx context.Context, req *dto.ListRequest) (*dto.Paginated[dto.AdResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	offset := req.Normalize()

	filters := []specification.Specification{
		specification.StatusFilter{Status: req.Status},
		specification.SearchQuery{Query: req.Query, Fields: []string{"title"}},
	}

	totalItems, err := uow.AdRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	rows, err := uow.AdRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: req.Limit, Offset: offset},
	)...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AdResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toAdResponse(row))
	}

	paginated := dto.NewPaginated(result, totalItems, req.Page, req.Limit)
	return &paginated, nil
}

func (s *adsService) Create(ctx context.Context, req *dto.CreateAdRequest) (*dto.AdResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := req.Status
	if status == "" {
		status = "active"
	}

	ad := entity.Ad{
		Id:                 uuid.New(),
		Title:              req.Title,
		Type:               req.Type,
		Status:             status,
		ImageURL:           req.Image,
		TargetURL:          req.TargetURL,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Placement:          req.Placement,
		TargetPesantrenIds: req.TargetPesantrenIds,
		CreatedAt:          time.Now(),
	}
	if err := uow.AdRepository().Create(ctx, &ad); err != nil {
		return nil, err
	}

	res := toAdResponse(&ad)
	return &res, nil
}

func (s *adsService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ad, err := uow.AdRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if ad == nil {
		return ErrAdNotFound
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Image != nil {
		fields["image_url"] = *req.Image
	}
	if req.TargetURL != nil {
		fields["target_url"] = *req.TargetURL
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.Placement != nil {
		fields["placement"] = *req.Placement
	}
	if req.TargetPesantrenIds != nil {
		fields["target_pesantren_ids"] = datatypes.NewJSONSlice(req.TargetPesantrenIds)
	}
	if len(fields) == 0 {
		return nil
	}
	return uow.AdRepository().UpdateFields(ctx, id, fields)
}

func (s *adsService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ad, err := uow.AdRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if ad == nil {
		return ErrAdNotFound
	}

	return uow.AdRepository().Delete(ctx, id)
}

func toAdResponse(a *entity.Ad) dto.AdResponse {
	targets := a.TargetPesantrenIds
	if targets == nil {
		targets = []string{}
	}
	return dto.AdResponse{
		Id:                 a.Id,
		Title:              a.Title,
		Type:               a.Type,
		Status:             a.Status,
		ImageURL:           a.ImageURL,
		TargetURL:          a.TargetURL,
		StartDate:          a.StartDate,
		EndDate:            a.EndDate,
		Placement:          a.Placement,
		TargetPesantrenIds: targets,
		CreatedAt:          a.CreatedAt,
	}
}
