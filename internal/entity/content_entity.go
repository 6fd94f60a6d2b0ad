package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContentStatus string

const (
	ContentStatusPending  ContentStatus = "pending"
	ContentStatusApproved ContentStatus = "approved"
	ContentStatusRejected ContentStatus = "rejected"
)

type ContentCategory struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// GlobalContent is platform-level content, optionally attributed to a tenant.
type GlobalContent struct {
	Id              uuid.UUID
	PesantrenId     *uuid.UUID
	CategoryId      *uuid.UUID
	Title           string
	Author          string
	Body            string
	Status          ContentStatus
	Featured        bool
	RejectionReason string
	CreatedAt       time.Time

	Pesantren *Pesantren
}
