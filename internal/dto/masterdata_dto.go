package dto

import (
	"time"

	"github.com/google/uuid"
)

type MasterDataItemResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateMasterDataRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateMasterDataRequest struct {
	Name string `json:"name" validate:"required"`
}
