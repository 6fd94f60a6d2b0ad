package service

import (
	"context"
	"errors"
	"time"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/pkg/identity"
	"santripay-be/internal/pkg/logger"
	"santripay-be/internal/repository/unitofwork"
	"santripay-be/pkg/events"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrWrongCredentials  = errors.New("Email atau kata sandi salah.")
	ErrAccountPending    = errors.New("Akun Anda sedang menunggu verifikasi oleh Admin Platform.")
	ErrAccountRejected   = errors.New("Akun Anda ditolak. Silakan hubungi admin platform.")
	ErrRegistrationFail  = errors.New("Gagal melakukan registrasi")
	ErrEmailAlreadyTaken = errors.New("Email sudah terdaftar")
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RegisterPesantren(ctx context.Context, req *dto.RegisterPesantrenRequest) (*dto.RegisterPesantrenResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   identity.Provider
	logger     logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	provider identity.Provider,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		provider:   provider,
		logger:     log,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, token, err := s.provider.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, ErrWrongCredentials
		}
		return nil, err
	}

	// Pending and rejected accounts hold a valid credential but may not enter.
	switch profile.Status {
	case entity.AccountStatusPending:
		return nil, ErrAccountPending
	case entity.AccountStatusRejected:
		return nil, ErrAccountRejected
	}

	s.logger.Info("AuthService", "User logged in", map[string]interface{}{
		"user_id": profile.Id.String(),
		"role":    string(profile.Role),
	})

	return &dto.LoginResponse{
		Token: token,
		User:  toProfileResponse(profile),
	}, nil
}

func (s *authService) RegisterPesantren(ctx context.Context, req *dto.RegisterPesantrenRequest) (*dto.RegisterPesantrenResponse, error) {
	// The credential is created first; everything after runs in one
	// transaction so a failed step never leaves a half-registered tenant.
	profile, err := s.provider.SignUp(ctx, identity.SignUpParams{
		Email:         req.AdminEmail,
		Password:      req.Password,
		Name:          req.AdminName,
		Role:          entity.RolePesantrenAdmin,
		Status:        entity.AccountStatusPending,
		PesantrenName: req.PesantrenName,
	})
	if err != nil {
		if errors.Is(err, identity.ErrEmailRegistered) {
			return nil, ErrEmailAlreadyTaken
		}
		s.logger.Error("AuthService", "Registration sign-up failed", map[string]interface{}{"error": err.Error()})
		return nil, ErrRegistrationFail
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, ErrRegistrationFail
	}
	defer uow.Rollback()

	pesantren := entity.Pesantren{
		Id:          uuid.New(),
		Name:        req.PesantrenName,
		Address:     req.Address,
		Contact:     req.Phone,
		LogoURL:     req.Logo,
		SantriCount: req.SantriCount,
		UstadzCount: req.UstadzCount,
		Status:      entity.PesantrenStatusPending,
		AdminId:     &profile.Id,
		CreatedAt:   time.Now(),
	}
	if err := uow.PesantrenRepository().Create(ctx, &pesantren); err != nil {
		s.logger.Error("AuthService", "Registration pesantren create failed", map[string]interface{}{"error": err.Error()})
		return nil, ErrRegistrationFail
	}

	if err := uow.ProfileRepository().UpdateFields(ctx, profile.Id, map[string]interface{}{
		"tenant_id": pesantren.Id,
	}); err != nil {
		return nil, ErrRegistrationFail
	}

	financials := entity.PesantrenFinancials{
		PesantrenId:      pesantren.Id,
		AvailableBalance: decimal.Zero,
		PendingBalance:   decimal.Zero,
		MonthlyIncome:    decimal.Zero,
		LastWithdrawal:   decimal.Zero,
	}
	if err := uow.FinancialsRepository().Create(ctx, &financials); err != nil {
		return nil, ErrRegistrationFail
	}

	if err := uow.Commit(); err != nil {
		return nil, ErrRegistrationFail
	}

	event := events.NewPesantrenRegistered(pesantren.Id, pesantren.Name, req.AdminEmail)
	s.logger.Info("AuthService", "Pesantren registered", event.Payload())

	return &dto.RegisterPesantrenResponse{
		Success: true,
		Message: "Registrasi berhasil. Akun Anda akan diverifikasi oleh Admin Platform.",
	}, nil
}

func toProfileResponse(profile *entity.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		Id:            profile.Id,
		Email:         profile.Email,
		Name:          profile.Name,
		Role:          string(profile.Role),
		Status:        string(profile.Status),
		TenantId:      profile.TenantId,
		PesantrenName: profile.PesantrenName,
		CreatedAt:     profile.CreatedAt,
	}
}
