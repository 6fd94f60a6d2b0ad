package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SantriUnassignedClass is the display name used when a santri has no kelas.
const SantriUnassignedClass = "Tidak ada kelas"

type SantriResponse struct {
	Id        uuid.UUID       `json:"id"`
	NIS       string          `json:"nis"`
	Name      string          `json:"name"`
	ClassId   *uuid.UUID      `json:"classId"`
	ClassName string          `json:"className"`
	Balance   decimal.Decimal `json:"balance"`
	Status    string          `json:"status"`
	PhotoURL  string          `json:"photoUrl"`
	CreatedAt time.Time       `json:"createdAt"`
}

type CreateSantriRequest struct {
	NIS     string     `json:"nis" validate:"required"`
	Name    string     `json:"name" validate:"required"`
	ClassId *uuid.UUID `json:"classId"`
	Status  string     `json:"status"`
	Photo   string     `json:"photo"`
}

type UpdateSantriRequest struct {
	NIS     *string    `json:"nis"`
	Name    *string    `json:"name"`
	ClassId *uuid.UUID `json:"classId"`
	Status  *string    `json:"status"`
	Photo   *string    `json:"photo"`
}
