package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  *string    `gorm:"type:varchar(255)"`
	Name          string     `gorm:"type:varchar(255)"`
	Role          string     `gorm:"type:varchar(50);not null;default:'pesantren_admin'"`
	Status        string     `gorm:"type:varchar(50);not null;default:'pending'"`
	TenantId      *uuid.UUID `gorm:"type:uuid;index"`
	PesantrenName string     `gorm:"type:varchar(255)"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
