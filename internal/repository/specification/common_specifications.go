package specification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// TenantScope restricts a query to one pesantren's rows. Every tenant-owned
// repository applies it before any other filter.
type TenantScope struct {
	PesantrenID uuid.UUID
}

func (s TenantScope) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pesantren_id = ?", s.PesantrenID)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

// FilterBy Generic Filter
type FilterBy struct {
	Field string
	Value interface{}
}

func (s FilterBy) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s = ?", s.Field)
	return db.Where(query, s.Value)
}

func Filter(field string, value interface{}) Specification {
	return FilterBy{Field: field, Value: value}
}

// StatusFilter filters by a status column, treating "" and "all" as no-op so
// list handlers can pass the raw query value through.
type StatusFilter struct {
	Status string
}

func (s StatusFilter) Apply(db *gorm.DB) *gorm.DB {
	if s.Status == "" || s.Status == "all" {
		return db
	}
	return db.Where("status = ?", s.Status)
}

// CreatedSince filters rows created at or after the given time.
type CreatedSince struct {
	Since time.Time
}

func (s CreatedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Since)
}
