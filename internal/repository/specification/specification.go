package specification

import "gorm.io/gorm"

// Specification defines the interface for query specifications
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// Scoped adapts a plain gorm scope function to a Specification.
type Scoped struct {
	Fn func(db *gorm.DB) *gorm.DB
}

func (s Scoped) Apply(db *gorm.DB) *gorm.DB {
	return s.Fn(db)
}
