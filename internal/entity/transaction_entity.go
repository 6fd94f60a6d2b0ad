package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the per-tenant activity feed row (topups, payments, admin
// actions). The event consumer also posts rows here.
type Transaction struct {
	Id          uuid.UUID
	PesantrenId uuid.UUID
	Type        string
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

type PlatformTransactionType string

const (
	PlatformTxTopup      PlatformTransactionType = "topup"
	PlatformTxWithdrawal PlatformTransactionType = "withdrawal"
	PlatformTxFee        PlatformTransactionType = "fee"
)

// PlatformTransaction is the platform-level money movement log used for
// platform dashboards.
type PlatformTransaction struct {
	Id          uuid.UUID
	PesantrenId *uuid.UUID
	Type        PlatformTransactionType
	Amount      decimal.Decimal
	FeeAmount   decimal.Decimal
	CreatedAt   time.Time

	Pesantren *Pesantren
}

// Koperasi is a tenant-owned shop whose sales feed the tenant dashboard.
type Koperasi struct {
	Id          uuid.UUID
	PesantrenId uuid.UUID
	Name        string
	CreatedAt   time.Time
}

type KoperasiTransaction struct {
	Id         uuid.UUID
	KoperasiId uuid.UUID
	Total      decimal.Decimal
	CreatedAt  time.Time
}
