package model

import (
	"time"

	"github.com/google/uuid"
)

type ContentCategory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ContentCategory) TableName() string {
	return "content_categories"
}

type GlobalContent struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PesantrenId     *uuid.UUID `gorm:"type:uuid;index"`
	CategoryId      *uuid.UUID `gorm:"type:uuid;index"`
	Title           string     `gorm:"type:varchar(255);not null"`
	Author          string     `gorm:"type:varchar(255)"`
	Body            string     `gorm:"type:text"`
	Status          string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	Featured        bool       `gorm:"default:false"`
	RejectionReason string     `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;index"`

	Pesantren *Pesantren `gorm:"foreignKey:PesantrenId;references:Id"`
}

func (GlobalContent) TableName() string {
	return "global_content"
}
