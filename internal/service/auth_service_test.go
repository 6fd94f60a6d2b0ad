package service

import (
	"context"
	"testing"

	"santripay-be/internal/dto"
	"santripay-be/internal/entity"
	"santripay-be/internal/pkg/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginWrongCredentials(t *testing.T) {
	provider := &fakeProvider{signInErr: identity.ErrInvalidCredentials}
	svc := NewAuthService(&fakeFactory{uow: &fakeUow{}}, provider, nopLogger{})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.id", Password: "x"})
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestLoginBlockedStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  entity.AccountStatus
		wantErr error
	}{
		{name: "pending account", status: entity.AccountStatusPending, wantErr: ErrAccountPending},
		{name: "rejected account", status: entity.AccountStatusRejected, wantErr: ErrAccountRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{
				signInProfile: &entity.Profile{
					Id:     uuid.New(),
					Email:  "admin@pesantren.id",
					Role:   entity.RolePesantrenAdmin,
					Status: tt.status,
				},
				signInToken: "token",
			}
			svc := NewAuthService(&fakeFactory{uow: &fakeUow{}}, provider, nopLogger{})

			_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@pesantren.id", Password: "x"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoginActiveAccount(t *testing.T) {
	tenantId := uuid.New()
	provider := &fakeProvider{
		signInProfile: &entity.Profile{
			Id:       uuid.New(),
			Email:    "admin@pesantren.id",
			Name:     "Ahmad",
			Role:     entity.RolePesantrenAdmin,
			Status:   entity.AccountStatusActive,
			TenantId: &tenantId,
		},
		signInToken: "signed-token",
	}
	svc := NewAuthService(&fakeFactory{uow: &fakeUow{}}, provider, nopLogger{})

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@pesantren.id", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, "Ahmad", res.User.Name)
	assert.Equal(t, "pesantren_admin", res.User.Role)
}

func TestRegisterPesantrenEmailTaken(t *testing.T) {
	provider := &fakeProvider{signUpErr: identity.ErrEmailRegistered}
	svc := NewAuthService(&fakeFactory{uow: &fakeUow{}}, provider, nopLogger{})

	_, err := svc.RegisterPesantren(context.Background(), &dto.RegisterPesantrenRequest{
		PesantrenName: "PP Al-Ikhlas",
		AdminEmail:    "taken@pesantren.id",
		AdminName:     "Ahmad",
		Password:      "rahasia",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyTaken)
}

func TestRegisterPesantrenCreatesTenantInOneTransaction(t *testing.T) {
	adminId := uuid.New()
	provider := &fakeProvider{
		signUpProfile: &entity.Profile{
			Id:     adminId,
			Email:  "admin@alikhlas.id",
			Role:   entity.RolePesantrenAdmin,
			Status: entity.AccountStatusPending,
		},
	}
	profiles := &fakeProfileRepo{}
	pesantren := &fakePesantrenRepo{}
	financials := &fakeFinancialsRepo{}
	uow := &fakeUow{profiles: profiles, pesantren: pesantren, financials: financials}
	svc := NewAuthService(&fakeFactory{uow: uow}, provider, nopLogger{})

	res, err := svc.RegisterPesantren(context.Background(), &dto.RegisterPesantrenRequest{
		PesantrenName: "PP Al-Ikhlas",
		Address:       "Jl. Raya No. 1",
		AdminEmail:    "admin@alikhlas.id",
		AdminName:     "Ahmad",
		Password:      "rahasia",
	})
	require.NoError(t, err)
	assert.True(t, res.Success)

	require.Len(t, pesantren.created, 1)
	assert.Equal(t, entity.PesantrenStatusPending, pesantren.created[0].Status)
	require.NotNil(t, pesantren.created[0].AdminId)
	assert.Equal(t, adminId, *pesantren.created[0].AdminId)

	require.Len(t, financials.created, 1)
	assert.True(t, financials.created[0].AvailableBalance.IsZero())

	assert.Equal(t, pesantren.created[0].Id, profiles.updatedFields["tenant_id"])
	assert.Equal(t, 1, uow.begun)
	assert.Equal(t, 1, uow.committed)
}
