package model

import (
	"time"

	"github.com/google/uuid"
)

type Ustadz struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PesantrenId uuid.UUID `gorm:"type:uuid;not null;index"`
	ProfileId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
	Subject     string    `gorm:"type:varchar(255)"`
	PhotoURL    string    `gorm:"column:photo_url;type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Ustadz) TableName() string {
	return "ustadz"
}
