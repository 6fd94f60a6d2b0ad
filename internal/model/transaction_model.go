package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	Id          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PesantrenId uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(50);not null"`
	Description string          `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type PlatformTransaction struct {
	Id          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PesantrenId *uuid.UUID      `gorm:"type:uuid;index"`
	Type        string          `gorm:"type:varchar(50);not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	FeeAmount   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index"`

	Pesantren *Pesantren `gorm:"foreignKey:PesantrenId;references:Id"`
}

func (PlatformTransaction) TableName() string {
	return "platform_transactions"
}

type Koperasi struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PesantrenId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Koperasi) TableName() string {
	return "koperasi"
}

type KoperasiTransaction struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	KoperasiId uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total      decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	CreatedAt  time.Time       `gorm:"autoCreateTime;index"`
}

func (KoperasiTransaction) TableName() string {
	return "koperasi_transactions"
}
