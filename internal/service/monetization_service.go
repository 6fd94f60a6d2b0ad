package service

import (
	"context"
	"time"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const monetizationCacheKey = "monetization_settings"

type IMonetizationService interface {
	Get(ctx context.Context) (*dto.MonetizationSettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateMonetizationSettingsRequest) (*dto.MonetizationSettingsResponse, error)
}

// monetizationService fronts the settings singleton with a short cache; the
// fees are read on every priced operation but change rarely.
type monetizationService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewMonetizationService(uowFactory unitofwork.RepositoryFactory) IMonetizationService {
	return &monetizationService{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *monetizationService) Get(ctx context.Context) (*dto.MonetizationSettingsResponse, error) {
	if cached, found := s.cache.Get(monetizationCacheKey); found {
		res := cached.(dto.MonetizationSettingsResponse)
		return &res, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.MonetizationRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}

	res := dto.MonetizationSettingsResponse{}
	if settings != nil {
		res = dto.MonetizationSettingsResponse{
			TagihanFee:         settings.TagihanFee,
			TopupFee:           settings.TopupFee,
			KoperasiCommission: settings.KoperasiCommission,
		}
	}

	s.cache.Set(monetizationCacheKey, res, gocache.DefaultExpiration)
	return &res, nil
}

func (s *monetizationService) Update(ctx context.Context, req *dto.UpdateMonetizationSettingsRequest) (*dto.MonetizationSettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings, err := uow.MonetizationRepository().FindFirst(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.MonetizationSettings{
			Id:                 uuid.New(),
			TagihanFee:         req.TagihanFee,
			TopupFee:           req.TopupFee,
			KoperasiCommission: req.KoperasiCommission,
		}
		if err := uow.MonetizationRepository().Create(ctx, settings); err != nil {
			return nil, err
		}
	} else {
		settings.TagihanFee = req.TagihanFee
		settings.TopupFee = req.TopupFee
		settings.KoperasiCommission = req.KoperasiCommission
		if err := uow.MonetizationRepository().Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	s.cache.Delete(monetizationCacheKey)

	return &dto.MonetizationSettingsResponse{
		TagihanFee:         settings.TagihanFee,
		TopupFee:           settings.TopupFee,
		KoperasiCommission: settings.KoperasiCommission,
	}, nil
}
