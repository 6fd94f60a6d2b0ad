package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event defines the contract for all system events.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewPesantrenRegistered(pesantrenId uuid.UUID, name, adminEmail string) Event {
	return BaseEvent{
		Type: "PESANTREN_REGISTERED",
		Data: map[string]interface{}{
			"pesantren_id": pesantrenId.String(),
			"name":         name,
			"admin_email":  adminEmail,
		},
		OccurredAt: time.Now(),
	}
}

func NewPesantrenApproved(pesantrenId uuid.UUID, name string) Event {
	return BaseEvent{
		Type: "PESANTREN_APPROVED",
		Data: map[string]interface{}{
			"pesantren_id": pesantrenId.String(),
			"name":         name,
		},
		OccurredAt: time.Now(),
	}
}

func NewWithdrawalProcessed(requestId, pesantrenId uuid.UUID, status string, amount decimal.Decimal) Event {
	return BaseEvent{
		Type: "WITHDRAWAL_PROCESSED",
		Data: map[string]interface{}{
			"request_id":   requestId.String(),
			"pesantren_id": pesantrenId.String(),
			"status":       status,
			"amount":       amount.String(),
		},
		OccurredAt: time.Now(),
	}
}
