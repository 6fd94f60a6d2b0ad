package identity

import (
	"context"
	"errors"

	"santripay-be/internal/entity"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailRegistered    = errors.New("email already registered")
)

type SignUpParams struct {
	Email         string
	Password      string
	Name          string
	Role          entity.Role
	Status        entity.AccountStatus
	TenantId      *uuid.UUID
	PesantrenName string
}

// Provider owns credentials: it creates accounts and exchanges a password
// for a signed token plus the profile it belongs to.
type Provider interface {
	SignUp(ctx context.Context, params SignUpParams) (*entity.Profile, error)
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Profile, string, error)
}
