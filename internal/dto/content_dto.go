package dto

import (
	"time"

	"github.com/google/uuid"
)

type ContentCategoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateContentCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type GlobalContentResponse struct {
	Id              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	Body            string     `json:"body,omitempty"`
	CategoryId      *uuid.UUID `json:"categoryId"`
	PesantrenName   string     `json:"pesantrenName,omitempty"`
	Status          string     `json:"status"`
	Featured        bool       `json:"featured"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type CreateGlobalContentRequest struct {
	Title       string     `json:"title" validate:"required"`
	Author      string     `json:"author"`
	Body        string     `json:"body"`
	CategoryId  *uuid.UUID `json:"categoryId"`
	PesantrenId *uuid.UUID `json:"pesantrenId"`
	Featured    bool       `json:"featured"`
}

type UpdateGlobalContentRequest struct {
	Title           *string    `json:"title"`
	Author          *string    `json:"author"`
	Body            *string    `json:"body"`
	CategoryId      *uuid.UUID `json:"categoryId"`
	Status          *string    `json:"status"`
	Featured        *bool      `json:"featured"`
	RejectionReason *string    `json:"rejectionReason"`
}
