package model

import (
	"time"

	"gorm.io/datatypes"

	"github.com/google/uuid"
)

type Ad struct {
	Id                 uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title              string                      `gorm:"type:varchar(255);not null"`
	Type               string                      `gorm:"type:varchar(50)"`
	Status             string                      `gorm:"type:varchar(50);not null;default:'inactive'"`
	ImageURL           string                      `gorm:"column:image_url;type:text"`
	TargetURL          string                      `gorm:"column:target_url;type:text"`
	StartDate          *time.Time                  `gorm:"type:date"`
	EndDate            *time.Time                  `gorm:"type:date"`
	Placement          string                      `gorm:"type:varchar(100)"`
	TargetPesantrenIds datatypes.JSONSlice[string] `gorm:"column:target_pesantren_ids"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime;index"`
}

func (Ad) TableName() string {
	return "ads"
}
