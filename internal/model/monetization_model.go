package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MonetizationSettings struct {
	Id                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TagihanFee         decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	TopupFee           decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	KoperasiCommission decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime"`
}

func (MonetizationSettings) TableName() string {
	return "monetization_settings"
}
