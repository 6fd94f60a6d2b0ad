package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TagihanResponse struct {
	Id           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	TotalTargets int             `json:"totalTargets"`
	PaidCount    int             `json:"paidCount"`
	DueDate      *time.Time      `json:"dueDate"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type CreateTagihanRequest struct {
	Title        string          `json:"title" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	TotalTargets int             `json:"totalTargets" validate:"gte=0"`
	DueDate      *time.Time      `json:"dueDate"`
}

type UpdateTagihanRequest struct {
	Title        *string          `json:"title"`
	Amount       *decimal.Decimal `json:"amount"`
	TotalTargets *int             `json:"totalTargets"`
	DueDate      *time.Time       `json:"dueDate"`
}
