package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Santri struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PesantrenId    uuid.UUID       `gorm:"type:uuid;not null;index"`
	NIS            string          `gorm:"column:nis;type:varchar(50)"`
	Name           string          `gorm:"type:varchar(255);not null"`
	ClassId        *uuid.UUID      `gorm:"type:uuid;index"`
	Balance        decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Status         string          `gorm:"type:varchar(50);not null;default:'active';index"`
	TransactionPin *string         `gorm:"type:varchar(255)"`
	PhotoURL       string          `gorm:"column:photo_url;type:text"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`

	Kelas *Kelas `gorm:"foreignKey:ClassId;references:Id"`
}

func (Santri) TableName() string {
	return "santri"
}
