package service

import (
	"context"
	"errors"
	"time"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/repository/scope"
	"santripay-be/internal/repository/specification"
	"santripay-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrContentNotFound = errors.New("Konten tidak ditemukan.")

type IContentService interface {
	ListCategories(ctx context.Context) ([]dto.ContentCategoryResponse, error)
	CreateCategory(ctx context.Context, req *dto.CreateContentCategoryRequest) (*dto.ContentCategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListContent(ctx context.Context, req *dto.ListRequest) (*dto.Paginated[dto.GlobalContentResponse], error)
	CreateContent(ctx context.Context, pesantrenId *uuid.UUID, req *dto.CreateGlobalContentRequest) (*dto.GlobalContentResponse, error)
	UpdateContent(ctx context.Context, id uuid.UUID, req *dto.UpdateGlobalContentRequest) error
	DeleteContent(ctx context.Context, id uuid.UUID) error
}

type contentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewContentService(uowFactory unitofwork.RepositoryFactory) IContentService {
	return &contentService{uowFactory: uowFactory}
}

func (s *contentService) ListCategories(ctx context.Context) ([]dto.ContentCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.ContentCategoryRepository().FindAll(ctx, specification.Scoped{Fn: scope.OrderByCreatedAsc})
	if err != nil {
		return nil, err
	}

	result := make([]dto.ContentCategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, dto.ContentCategoryResponse{
			Id:        category.Id,
			Name:      category.Name,
			CreatedAt: category.CreatedAt,
		})
	}
	return result, nil
}

func (s *contentService) CreateCategory(ctx context.Context, req *dto.CreateContentCategoryRequest) (*dto.ContentCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category := entity.ContentCategory{
		Id:        uuid.New(),
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := uow.ContentCategoryRepository().Create(ctx, &category); err != nil {
		return nil, err
	}

	return &dto.ContentCategoryResponse{
		Id:        category.Id,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}, nil
}

func (s *contentService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ContentCategoryRepository().Delete(ctx, id)
}

func (s *contentService) ListContent(ctx context.Context, req *dto.ListRequest) (*dto.Paginated[dto.GlobalContentResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	offset := req.Normalize()

	filters := []specification.Specification{
		specification.StatusFilter{Status: req.Status},
		specification.SearchQuery{Query: req.Query, Fields: []string{"title", "author"}},
	}

	totalItems, err := uow.GlobalContentRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	rows, err := uow.GlobalContentRepository().FindAllWithPesantren(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: req.Limit, Offset: offset},
	)...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.GlobalContentResponse, 0, len(rows))
	for _, row := range rows {
		// Content without an owning pesantren is authored by the platform.
		pesantrenName := "Platform"
		if row.Pesantren != nil {
			pesantrenName = row.Pesantren.Name
		}
		result = append(result, dto.GlobalContentResponse{
			Id:              row.Id,
			Title:           row.Title,
			Author:          row.Author,
			Body:            row.Body,
			CategoryId:      row.CategoryId,
			PesantrenName:   pesantrenName,
			Status:          string(row.Status),
			Featured:        row.Featured,
			RejectionReason: row.RejectionReason,
			CreatedAt:       row.CreatedAt,
		})
	}

	paginated := dto.NewPaginated(result, totalItems, req.Page, req.Limit)
	return &paginated, nil
}

func (s *contentService) CreateContent(ctx context.Context, pesantrenId *uuid.UUID, req *dto.CreateGlobalContentRequest) (*dto.GlobalContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content := entity.GlobalContent{
		Id:          uuid.New(),
		PesantrenId: pesantrenId,
		CategoryId:  req.CategoryId,
		Title:       req.Title,
		Author:      req.Author,
		Body:        req.Body,
		Status:      entity.ContentStatusPending,
		Featured:    req.Featured,
		CreatedAt:   time.Now(),
	}
	if err := uow.GlobalContentRepository().Create(ctx, &content); err != nil {
		return nil, err
	}

	return &dto.GlobalContentResponse{
		Id:         content.Id,
		Title:      content.Title,
		Author:     content.Author,
		Body:       content.Body,
		CategoryId: content.CategoryId,
		Status:     string(content.Status),
		Featured:   content.Featured,
		CreatedAt:  content.CreatedAt,
	}, nil
}

func (s *contentService) UpdateContent(ctx context.Context, id uuid.UUID, req *dto.UpdateGlobalContentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content, err := uow.GlobalContentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if content == nil {
		return ErrContentNotFound
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.Body != nil {
		fields["body"] = *req.Body
	}
	if req.CategoryId != nil {
		fields["category_id"] = *req.CategoryId
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.RejectionReason != nil {
		fields["rejection_reason"] = *req.RejectionReason
	}
	if len(fields) == 0 {
		return nil
	}
	return uow.GlobalContentRepository().UpdateFields(ctx, id, fields)
}

func (s *contentService) DeleteContent(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content, err := uow.GlobalContentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if content == nil {
		return ErrContentNotFound
	}

	return uow.GlobalContentRepository().Delete(ctx, id)
}
