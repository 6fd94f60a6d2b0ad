package identity

import (
	"context"
	"time"

	"santripay-be/internal/entity"
	"santripay-be/internal/repository/specification"
	"santripay-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider stores credentials in the profiles table: bcrypt for
// passwords, HS256 tokens for sessions.
type LocalProvider struct {
	uowFactory unitofwork.RepositoryFactory
	secret     []byte
	tokenTTL   time.Duration
}

func NewLocalProvider(uowFactory unitofwork.RepositoryFactory, secret string, tokenTTL time.Duration) Provider {
	return &LocalProvider{
		uowFactory: uowFactory,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
	}
}

func (p *LocalProvider) SignUp(ctx context.Context, params SignUpParams) (*entity.Profile, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ProfileRepository().FindOne(ctx, specification.Filter("email", params.Email))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hash := string(hashed)

	profile := entity.Profile{
		Id:            uuid.New(),
		Email:         params.Email,
		PasswordHash:  &hash,
		Name:          params.Name,
		Role:          params.Role,
		Status:        params.Status,
		TenantId:      params.TenantId,
		PesantrenName: params.PesantrenName,
		CreatedAt:     time.Now(),
	}
	if err := uow.ProfileRepository().Create(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p *LocalProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Profile, string, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.Filter("email", email))
	if err != nil {
		return nil, "", err
	}
	if profile == nil || profile.PasswordHash == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*profile.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := p.issueToken(profile)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

func (p *LocalProvider) issueToken(profile *entity.Profile) (string, error) {
	claims := jwt.MapClaims{
		"user_id": profile.Id.String(),
		"role":    string(profile.Role),
		"exp":     time.Now().Add(p.tokenTTL).Unix(),
	}
	if profile.TenantId != nil {
		claims["tenant_id"] = profile.TenantId.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}
