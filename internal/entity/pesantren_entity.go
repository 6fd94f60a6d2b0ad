package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PesantrenStatus string

const (
	PesantrenStatusPending  PesantrenStatus = "pending"
	PesantrenStatusActive   PesantrenStatus = "active"
	PesantrenStatusRejected PesantrenStatus = "rejected"
)

type Pesantren struct {
	Id                uuid.UUID
	Name              string
	Address           string
	Contact           string
	LogoURL           string
	DocumentURL       string
	SantriCount       int
	UstadzCount       int
	Status            PesantrenStatus
	SubscriptionUntil *time.Time
	RejectionReason   string
	AdminId           *uuid.UUID
	CreatedAt         time.Time

	// Joined admin profile, set only by list/detail reads.
	Admin *Profile
}

// PesantrenFinancials is the 1:1 balance sheet row per tenant. Mutated by
// withdrawal completion here; transaction postings come from other services.
type PesantrenFinancials struct {
	PesantrenId      uuid.UUID
	AvailableBalance decimal.Decimal
	PendingBalance   decimal.Decimal
	MonthlyIncome    decimal.Decimal
	LastWithdrawal   decimal.Decimal
	UpdatedAt        time.Time
}

type BankAccount struct {
	Id            uuid.UUID
	PesantrenId   uuid.UUID
	BankName      string
	AccountHolder string
	AccountNumber string
	CreatedAt     time.Time
}
