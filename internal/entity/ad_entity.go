package entity

import (
	"time"

	"github.com/google/uuid"
)

type Ad struct {
	Id                 uuid.UUID
	Title              string
	Type               string
	Status             string
	ImageURL           string
	TargetURL          string
	StartDate          *time.Time
	EndDate            *time.Time
	Placement          string
	TargetPesantrenIds []string
	CreatedAt          time.Time
}
