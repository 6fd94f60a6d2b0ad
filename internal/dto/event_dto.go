package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PublishActivityMessage is the queue payload for posting an activity row
// into a tenant's transaction feed.
type PublishActivityMessage struct {
	PesantrenId uuid.UUID       `json:"pesantrenId"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}
