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
	"github.com/shopspring/decimal"
)

var ErrSantriNotFound = errors.New("Santri tidak ditemukan.")

type ISantriService interface {
	List(ctx context.Context, pesantrenId uuid.UUID, req *dto.ListRequest) (*dto.Paginated[dto.SantriResponse], error)
	Create(ctx context.Context, pesantrenId uuid.UUID, req *dto.CreateSantriRequest) (*dto.SantriResponse, error)
	Update(ctx context.Context, pesantrenId, id uuid.UUID, req *dto.UpdateSantriRequest) (*dto.SantriResponse, error)
	Delete(ctx context.Context, pesantrenId, id uuid.UUID) error
}

type santriService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSantriService(uowFactory unitofwork.RepositoryFactory) ISantriService {
	return &santriService{uowFactory: uowFactory}
}

func (s *santriService) List(ctx context.Context, pesantrenId uuid.UUID, req *dto.ListRequest) (*dto.Paginated[dto.SantriResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	offset := req.Normalize()

	filters := []specification.Specification{
		specification.TenantScope{PesantrenID: pesantrenId},
		specification.StatusFilter{Status: req.Status},
		specification.SearchQuery{Query: req.Query, Fields: []string{"name", "nis"}},
	}

	totalItems, err := uow.SantriRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	rows, err := uow.SantriRepository().FindAllWithKelas(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: req.Limit, Offset: offset},
	)...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SantriResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toSantriResponse(row))
	}

	paginated := dto.NewPaginated(result, totalItems, req.Page, req.Limit)
	return &paginated, nil
}

func (s *santriService) Create(ctx context.Context, pesantrenId uuid.UUID, req *dto.CreateSantriRequest) (*dto.SantriResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := entity.SantriStatusActive
	if req.Status != "" {
		status = entity.SantriStatus(req.Status)
	}

	santri := entity.Santri{
		Id:          uuid.New(),
		PesantrenId: pesantrenId,
		NIS:         req.NIS,
		Name:        req.Name,
		ClassId:     req.ClassId,
		Balance:     decimal.Zero,
		Status:      status,
		PhotoURL:    req.Photo,
		CreatedAt:   time.Now(),
	}
	if err := uow.SantriRepository().Create(ctx, &santri); err != nil {
		return nil, err
	}

	// Re-read with the kelas join so the response matches list reads.
	created, err := s.findOneWithKelas(ctx, uow, santri.Id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = &santri
	}
	res := toSantriResponse(created)
	return &res, nil
}

func (s *santriService) Update(ctx context.Context, pesantrenId, id uuid.UUID, req *dto.UpdateSantriRequest) (*dto.SantriResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	santri, err := uow.SantriRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.TenantScope{PesantrenID: pesantrenId},
	)
	if err != nil {
		return nil, err
	}
	if santri == nil {
		return nil, ErrSantriNotFound
	}

	fields := map[string]interface{}{}
	if req.NIS != nil {
		fields["nis"] = *req.NIS
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ClassId != nil {
		fields["class_id"] = *req.ClassId
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Photo != nil {
		fields["photo_url"] = *req.Photo
	}
	if len(fields) > 0 {
		if err := uow.SantriRepository().UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.findOneWithKelas(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrSantriNotFound
	}
	res := toSantriResponse(updated)
	return &res, nil
}

func (s *santriService) Delete(ctx context.Context, pesantrenId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	santri, err := uow.SantriRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.TenantScope{PesantrenID: pesantrenId},
	)
	if err != nil {
		return err
	}
	if santri == nil {
		return ErrSantriNotFound
	}

	return uow.SantriRepository().Delete(ctx, id)
}

func (s *santriService) findOneWithKelas(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Santri, error) {
	rows, err := uow.SantriRepository().FindAllWithKelas(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func toSantriResponse(s *entity.Santri) dto.SantriResponse {
	className := dto.SantriUnassignedClass
	if s.Kelas != nil {
		className = s.Kelas.Name
	}
	return dto.SantriResponse{
		Id:        s.Id,
		NIS:       s.NIS,
		Name:      s.Name,
		ClassId:   s.ClassId,
		ClassName: className,
		Balance:   s.Balance,
		Status:    string(s.Status),
		PhotoURL:  s.PhotoURL,
		CreatedAt: s.CreatedAt,
	}
}
