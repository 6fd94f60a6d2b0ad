package service

import (
	"context"
	"errors"
	"time"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/pkg/identity"
	"santripay-be/internal/pkg/logger"
	"santripay-be/internal/repository/specification"
	"santripay-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var (
	ErrUstadzNotFound   = errors.New("Ustadz tidak ditemukan.")
	ErrUstadzCreateFail = errors.New("Email sudah terdaftar atau gagal menambahkan ustadz")
)

type IUstadzService interface {
	List(ctx context.Context, pesantrenId uuid.UUID, req *dto.ListRequest) (*dto.Paginated[dto.UstadzResponse], error)
	Create(ctx context.Context, pesantrenId uuid.UUID, req *dto.CreateUstadzRequest) (*dto.UstadzResponse, error)
	Update(ctx context.Context, pesantrenId, id uuid.UUID, req *dto.UpdateUstadzRequest) (*dto.UstadzResponse, error)
	Delete(ctx context.Context, pesantrenId, id uuid.UUID) error
}

type ustadzService struct {
	uowFactory      unitofwork.RepositoryFactory
	provider        identity.Provider
	defaultPassword string
	logger          logger.ILogger
}

func NewUstadzService(
	uowFactory unitofwork.RepositoryFactory,
	provider identity.Provider,
	defaultPassword string,
	log logger.ILogger,
) IUstadzService {
	return &ustadzService{
		uowFactory:      uowFactory,
		provider:        provider,
		defaultPassword: defaultPassword,
		logger:          log,
	}
}

func (s *ustadzService) List(ctx context.Context, pesantrenId uuid.UUID, req *dto.ListRequest) (*dto.Paginated[dto.UstadzResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	offset := req.Normalize()

	filters := []specification.Specification{
		specification.TenantScope{PesantrenID: pesantrenId},
		specification.SearchQuery{Query: req.Query, Fields: []string{"name", "email", "subject"}},
	}

	totalItems, err := uow.UstadzRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	rows, err := uow.UstadzRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: req.Limit, Offset: offset},
	)...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.UstadzResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, toUstadzResponse(row))
	}

	paginated := dto.NewPaginated(result, totalItems, req.Page, req.Limit)
	return &paginated, nil
}

func (s *ustadzService) Create(ctx context.Context, pesantrenId uuid.UUID, req *dto.CreateUstadzRequest) (*dto.UstadzResponse, error) {
	password := req.Password
	if password == "" {
		password = s.defaultPassword
	}

	// Credential first, ustadz row after. A failed row create leaves an
	// orphaned credential; both paths surface as ErrUstadzCreateFail.
	profile, err := s.provider.SignUp(ctx, identity.SignUpParams{
		Email:    req.Email,
		Password: password,
		Name:     req.Name,
		Role:     entity.RoleUstadz,
		Status:   entity.AccountStatusActive,
		TenantId: &pesantrenId,
	})
	if err != nil {
		s.logger.Error("UstadzService", "Sign-up failed", map[string]interface{}{"error": err.Error()})
		return nil, ErrUstadzCreateFail
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	ustadz := entity.Ustadz{
		Id:          uuid.New(),
		PesantrenId: pesantrenId,
		ProfileId:   profile.Id,
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		PhotoURL:    req.Photo,
		CreatedAt:   time.Now(),
	}
	if err := uow.UstadzRepository().Create(ctx, &ustadz); err != nil {
		s.logger.Error("UstadzService", "Ustadz row create failed", map[string]interface{}{"error": err.Error()})
		return nil, ErrUstadzCreateFail
	}

	res := toUstadzResponse(&ustadz)
	return &res, nil
}

func (s *ustadzService) Update(ctx context.Context, pesantrenId, id uuid.UUID, req *dto.UpdateUstadzRequest) (*dto.UstadzResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ustadz, err := uow.UstadzRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.TenantScope{PesantrenID: pesantrenId},
	)
	if err != nil {
		return nil, err
	}
	if ustadz == nil {
		return nil, ErrUstadzNotFound
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Subject != nil {
		fields["subject"] = *req.Subject
	}
	if req.Photo != nil {
		fields["photo_url"] = *req.Photo
	}
	if len(fields) > 0 {
		if err := uow.UstadzRepository().UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := uow.UstadzRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUstadzNotFound
	}
	res := toUstadzResponse(updated)
	return &res, nil
}

func (s *ustadzService) Delete(ctx context.Context, pesantrenId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ustadz, err := uow.UstadzRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.TenantScope{PesantrenID: pesantrenId},
	)
	if err != nil {
		return err
	}
	if ustadz == nil {
		return ErrUstadzNotFound
	}

	return uow.UstadzRepository().Delete(ctx, id)
}

func toUstadzResponse(u *entity.Ustadz) dto.UstadzResponse {
	return dto.UstadzResponse{
		Id:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		Subject:   u.Subject,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
	}
}
