package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string
type AccountStatus string

const (
	RolePlatformAdmin  Role = "platform_admin"
	RolePesantrenAdmin Role = "pesantren_admin"
	RoleUstadz         Role = "ustadz"

	AccountStatusPending  AccountStatus = "pending"
	AccountStatusActive   AccountStatus = "active"
	AccountStatusRejected AccountStatus = "rejected"
)

// Profile is both the credential identity and the user profile row. The
// identity provider owns email/password_hash; everything else is profile data.
type Profile struct {
	Id            uuid.UUID
	Email         string
	PasswordHash  *string
	Name          string
	Role          Role
	Status        AccountStatus
	TenantId      *uuid.UUID
	PesantrenName string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
