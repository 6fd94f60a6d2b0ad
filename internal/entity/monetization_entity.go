package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonetizationSettings is a platform-wide singleton row.
type MonetizationSettings struct {
	Id                 uuid.UUID
	TagihanFee         decimal.Decimal
	TopupFee           decimal.Decimal
	KoperasiCommission decimal.Decimal
	UpdatedAt          time.Time
}
