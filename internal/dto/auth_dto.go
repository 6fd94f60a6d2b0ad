package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProfileResponse struct {
	Id            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	TenantId      *uuid.UUID `json:"tenantId,omitempty"`
	PesantrenName string     `json:"pesantrenName,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

type RegisterPesantrenRequest struct {
	PesantrenName string `json:"pesantrenName" validate:"required"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Logo          string `json:"logo"`
	SantriCount   int    `json:"santriCount" validate:"gte=0"`
	UstadzCount   int    `json:"ustadzCount" validate:"gte=0"`
	AdminName     string `json:"adminName" validate:"required"`
	AdminEmail    string `json:"adminEmail" validate:"required,email"`
	Password      string `json:"password"`
}

type RegisterPesantrenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
