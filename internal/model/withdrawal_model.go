package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalRequest struct {
	Id            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PesantrenId   uuid.UUID       `gorm:"type:uuid;not null;index"`
	BankAccountId *uuid.UUID      `gorm:"type:uuid"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Status        string          `gorm:"type:varchar(50);not null;default:'pending';index"`
	Reason        string          `gorm:"type:text"`
	RequestedAt   time.Time       `gorm:"autoCreateTime;index"`
	ProcessedAt   *time.Time

	Pesantren   *Pesantren   `gorm:"foreignKey:PesantrenId;references:Id"`
	BankAccount *BankAccount `gorm:"foreignKey:BankAccountId;references:Id"`
}

func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}
