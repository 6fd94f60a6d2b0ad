package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Pesantren struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string     `gorm:"type:varchar(255);not null"`
	Address           string     `gorm:"type:text"`
	Contact           string     `gorm:"type:varchar(50)"`
	LogoURL           string     `gorm:"column:logo_url;type:text"`
	DocumentURL       string     `gorm:"column:document_url;type:text"`
	SantriCount       int        `gorm:"default:0"`
	UstadzCount       int        `gorm:"default:0"`
	Status            string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	SubscriptionUntil *time.Time `gorm:"type:date"`
	RejectionReason   string     `gorm:"type:text"`
	AdminId           *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`

	Admin *Profile `gorm:"foreignKey:AdminId;references:Id"`
}

func (Pesantren) TableName() string {
	return "pesantren"
}

type PesantrenFinancials struct {
	PesantrenId      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AvailableBalance decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	PendingBalance   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	MonthlyIncome    decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	LastWithdrawal   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime"`
}

func (PesantrenFinancials) TableName() string {
	return "pesantren_financials"
}

type BankAccount struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PesantrenId   uuid.UUID `gorm:"type:uuid;not null;index"`
	BankName      string    `gorm:"type:varchar(100)"`
	AccountHolder string    `gorm:"type:varchar(255)"`
	AccountNumber string    `gorm:"type:varchar(50)"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (BankAccount) TableName() string {
	return "pesantren_bank_accounts"
}
