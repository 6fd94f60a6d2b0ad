package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Tagihan struct {
	Id           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PesantrenId  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title        string          `gorm:"type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	TotalTargets int             `gorm:"default:0"`
	PaidCount    int             `gorm:"default:0"`
	DueDate      *time.Time      `gorm:"type:date"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}

func (Tagihan) TableName() string {
	return "tagihan"
}
