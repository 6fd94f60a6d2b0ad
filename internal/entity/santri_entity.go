package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SantriStatus string

const (
	SantriStatusActive   SantriStatus = "active"
	SantriStatusInactive SantriStatus = "inactive"
)

type Santri struct {
	Id             uuid.UUID
	PesantrenId    uuid.UUID
	NIS            string
	Name           string
	ClassId        *uuid.UUID
	Balance        decimal.Decimal
	Status         SantriStatus
	TransactionPin *string
	PhotoURL       string
	CreatedAt      time.Time

	// Joined kelas row, set by list reads.
	Kelas *MasterDataItem
}
