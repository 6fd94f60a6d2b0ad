package dto

import (
	"time"

	"github.com/google/uuid"
)

type UstadzResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	PhotoURL  string    `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateUstadzRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Subject  string `json:"subject"`
	Photo    string `json:"photo"`
	Password string `json:"password"`
}

type UpdateUstadzRequest struct {
	Name    *string `json:"name"`
	Subject *string `json:"subject"`
	Photo   *string `json:"photo"`
}
