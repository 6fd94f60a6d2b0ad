package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdResponse struct {
	Id                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	Type               string     `json:"type"`
	Status             string     `json:"status"`
	ImageURL           string     `json:"imageUrl"`
	TargetURL          string     `json:"targetUrl"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	Placement          string     `json:"placement"`
	TargetPesantrenIds []string   `json:"targetPesantrenIds"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type CreateAdRequest struct {
	Title              string     `json:"title" validate:"required"`
	Type               string     `json:"type"`
	Status             string     `json:"status"`
	Image              string     `json:"image"`
	TargetURL          string     `json:"targetUrl"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	Placement          string     `json:"placement"`
	TargetPesantrenIds []string   `json:"targetPesantrenIds"`
}

type UpdateAdRequest struct {
	Title              *string    `json:"title"`
	Type               *string    `json:"type"`
	Status             *string    `json:"status"`
	Image              *string    `json:"image"`
	TargetURL          *string    `json:"targetUrl"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	Placement          *string    `json:"placement"`
	TargetPesantrenIds []string   `json:"targetPesantrenIds"`
}
