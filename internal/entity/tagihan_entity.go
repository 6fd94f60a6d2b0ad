package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Tagihan struct {
	Id           uuid.UUID
	PesantrenId  uuid.UUID
	Title        string
	Amount       decimal.Decimal
	TotalTargets int
	PaidCount    int
	DueDate      *time.Time
	CreatedAt    time.Time
}

// UnpaidTotal is amount x unpaid targets. Overshooting paid counts clamp to
// zero instead of going negative.
func (t Tagihan) UnpaidTotal() decimal.Decimal {
	unpaid := t.TotalTargets - t.PaidCount
	if unpaid < 0 {
		unpaid = 0
	}
	return t.Amount.Mul(decimal.NewFromInt(int64(unpaid)))
}
