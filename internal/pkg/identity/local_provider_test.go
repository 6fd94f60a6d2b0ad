package identity

import (
	"context"
	"testing"
	"time"

	"santripay-be/internal/entity"
	"santripay-be/internal/repository/contract"
	"santripay-be/internal/repository/specification"
	"santripay-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubProfileRepo struct {
	byEmail map[string]*entity.Profile
	created []*entity.Profile
}

func (r *stubProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	r.created = append(r.created, profile)
	return nil
}

func (r *stubProfileRepo) Update(ctx context.Context, profile *entity.Profile) error { return nil }

func (r *stubProfileRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return nil
}

func (r *stubProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	for _, profile := range r.byEmail {
		return profile, nil
	}
	return nil, nil
}

func (r *stubProfileRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error) {
	return nil, nil
}

type stubUow struct {
	unitofwork.UnitOfWork
	profiles contract.ProfileRepository
}

func (u *stubUow) ProfileRepository() contract.ProfileRepository { return u.profiles }

type stubFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

func newProvider(profiles *stubProfileRepo) Provider {
	return NewLocalProvider(&stubFactory{uow: &stubUow{profiles: profiles}}, "test-secret", time.Hour)
}

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hashed)
	return &s
}

func TestSignInWithPassword(t *testing.T) {
	tenantId := uuid.New()
	profiles := &stubProfileRepo{byEmail: map[string]*entity.Profile{
		"admin@pesantren.id": {
			Id:           uuid.New(),
			Email:        "admin@pesantren.id",
			PasswordHash: hashOf(t, "rahasia"),
			Role:         entity.RolePesantrenAdmin,
			Status:       entity.AccountStatusActive,
			TenantId:     &tenantId,
		},
	}}
	provider := newProvider(profiles)

	profile, token, err := provider.SignInWithPassword(context.Background(), "admin@pesantren.id", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, "admin@pesantren.id", profile.Email)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, profile.Id.String(), claims["user_id"])
	assert.Equal(t, "pesantren_admin", claims["role"])
	assert.Equal(t, tenantId.String(), claims["tenant_id"])
}

func TestSignInWithWrongPassword(t *testing.T) {
	profiles := &stubProfileRepo{byEmail: map[string]*entity.Profile{
		"admin@pesantren.id": {
			Id:           uuid.New(),
			Email:        "admin@pesantren.id",
			PasswordHash: hashOf(t, "rahasia"),
		},
	}}
	provider := newProvider(profiles)

	_, _, err := provider.SignInWithPassword(context.Background(), "admin@pesantren.id", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInUnknownEmail(t *testing.T) {
	provider := newProvider(&stubProfileRepo{})

	_, _, err := provider.SignInWithPassword(context.Background(), "nobody@pesantren.id", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpRejectsRegisteredEmail(t *testing.T) {
	profiles := &stubProfileRepo{byEmail: map[string]*entity.Profile{
		"taken@pesantren.id": {Id: uuid.New(), Email: "taken@pesantren.id"},
	}}
	provider := newProvider(profiles)

	_, err := provider.SignUp(context.Background(), SignUpParams{
		Email:    "taken@pesantren.id",
		Password: "rahasia",
	})
	assert.ErrorIs(t, err, ErrEmailRegistered)
	assert.Empty(t, profiles.created)
}

func TestSignUpHashesPassword(t *testing.T) {
	profiles := &stubProfileRepo{}
	provider := newProvider(profiles)

	profile, err := provider.SignUp(context.Background(), SignUpParams{
		Email:    "baru@pesantren.id",
		Password: "rahasia",
		Role:     entity.RoleUstadz,
		Status:   entity.AccountStatusActive,
	})
	require.NoError(t, err)
	require.NotNil(t, profile.PasswordHash)
	assert.NotEqual(t, "rahasia", *profile.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*profile.PasswordHash), []byte("rahasia")))
}
