package dto

import (
	"time"

	"github.com/google/uuid"
)

type PesantrenAdminInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PesantrenResponse struct {
	Id                uuid.UUID          `json:"id"`
	Name              string             `json:"name"`
	Address           string             `json:"address"`
	Contact           string             `json:"contact"`
	LogoURL           string             `json:"logoUrl"`
	DocumentURL       string             `json:"documentUrl"`
	SantriCount       int                `json:"santriCount"`
	UstadzCount       int                `json:"ustadzCount"`
	Status            string             `json:"status"`
	SubscriptionUntil *time.Time         `json:"subscriptionUntil,omitempty"`
	RejectionReason   string             `json:"rejectionReason,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	Admin             PesantrenAdminInfo `json:"admin"`
}

type RejectPesantrenRequest struct {
	Reason string `json:"reason" validate:"required"`
}
