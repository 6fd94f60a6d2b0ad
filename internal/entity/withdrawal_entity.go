package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

type WithdrawalRequest struct {
	Id            uuid.UUID
	PesantrenId   uuid.UUID
	BankAccountId *uuid.UUID
	Amount        decimal.Decimal
	Status        WithdrawalStatus
	Reason        string
	RequestedAt   time.Time
	ProcessedAt   *time.Time

	// Joined relations, set by list reads.
	Pesantren   *Pesantren
	BankAccount *BankAccount
}
