package service

import (
	"context"
	"errors"
	"time"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrMasterDataReadOnly = errors.New("Data ini hanya dapat dibaca.")

type IMasterDataService interface {
	List(ctx context.Context, pesantrenId uuid.UUID, dataType entity.MasterDataType) ([]dto.MasterDataItemResponse, error)
	Create(ctx context.Context, pesantrenId uuid.UUID, dataType entity.MasterDataType, req *dto.CreateMasterDataRequest) (*dto.MasterDataItemResponse, error)
	Update(ctx context.Context, pesantrenId uuid.UUID, dataType entity.MasterDataType, id uuid.UUID, req *dto.UpdateMasterDataRequest) error
	Delete(ctx context.Context, pesantrenId uuid.UUID, dataType entity.MasterDataType, id uuid.UUID) error
}

type masterDataService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMasterDataService(uowFactory unitofwork.RepositoryFactory) IMasterDataService {
	return &masterDataService{uowFactory: uowFactory}
}

func (s *masterDataService) List(ctx context.Context, pesantrenId uuid.UUID, dataType entity.MasterDataType) ([]dto.MasterDataItemResponse, error) {
	// The type is validated before any query is composed; unknown types
	// never touch the database.
	table, err := entity.ResolveMasterDataTable(dataType)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.MasterDataRepository().FindAll(ctx, table.Table, pesantrenId)
	if err != nil {
		return nil, err
	}

	result := make([]dto.MasterDataItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, dto.MasterDataItemResponse{
			Id:        item.Id,
			Name:      item.Name,
			CreatedAt: item.CreatedAt,
		})
	}
	return result, nil
}

func (s *masterDataService) Create(ctx context.Context, pesantrenId uuid.UUID, dataType entity.MasterDataType, req *dto.CreateMasterDataRequest) (*dto.MasterDataItemResponse, error) {
	table, err := s.resolveWritable(dataType)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	item := entity.MasterDataItem{
		Id:          uuid.New(),
		PesantrenId: pesantrenId,
		Name:        req.Name,
		CreatedAt:   time.Now(),
	}
	if err := uow.MasterDataRepository().Insert(ctx, table.Table, &item); err != nil {
		return nil, err
	}

	return &dto.MasterDataItemResponse{
		Id:        item.Id,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	}, nil
}

func (s *masterDataService) Update(ctx context.Context, pesantrenId uuid.UUID, dataType entity.MasterDataType, id uuid.UUID, req *dto.UpdateMasterDataRequest) error {
	table, err := s.resolveWritable(dataType)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MasterDataRepository().UpdateName(ctx, table.Table, pesantrenId, id, req.Name)
}

func (s *masterDataService) Delete(ctx context.Context, pesantrenId uuid.UUID, dataType entity.MasterDataType, id uuid.UUID) error {
	table, err := s.resolveWritable(dataType)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MasterDataRepository().Delete(ctx, table.Table, pesantrenId, id)
}

func (s *masterDataService) resolveWritable(dataType entity.MasterDataType) (entity.MasterDataTable, error) {
	table, err := entity.ResolveMasterDataTable(dataType)
	if err != nil {
		return entity.MasterDataTable{}, err
	}
	if table.ReadOnly {
		return entity.MasterDataTable{}, ErrMasterDataReadOnly
	}
	return table, nil
}
