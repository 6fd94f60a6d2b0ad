package entity

import (
	"time"

	"github.com/google/uuid"
)

type Ustadz struct {
	Id          uuid.UUID
	PesantrenId uuid.UUID
	ProfileId   uuid.UUID
	Name        string
	Email       string
	Subject     string
	PhotoURL    string
	CreatedAt   time.Time
}
