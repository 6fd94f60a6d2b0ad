package specification

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// SearchQuery matches the pattern case-insensitively against any of the
// given columns. Empty queries are a no-op.
type SearchQuery struct {
	Query  string
	Fields []string
}

func (s SearchQuery) Apply(db *gorm.DB) *gorm.DB {
	if s.Query == "" || len(s.Fields) == 0 {
		return db
	}
	pattern := "%" + s.Query + "%"
	clauses := make([]string, len(s.Fields))
	args := make([]interface{}, len(s.Fields))
	for i, field := range s.Fields {
		clauses[i] = fmt.Sprintf("%s ILIKE ?", field)
		args[i] = pattern
	}
	return db.Where(strings.Join(clauses, " OR "), args...)
}

// TenantNameSearch matches rows whose owning pesantren's name contains the
// pattern. A subquery keeps it usable on count queries where a preload
// would not join.
type TenantNameSearch struct {
	Query string
}

func (s TenantNameSearch) Apply(db *gorm.DB) *gorm.DB {
	if s.Query == "" {
		return db
	}
	return db.Where("pesantren_id IN (SELECT id FROM pesantren WHERE name ILIKE ?)", "%"+s.Query+"%")
}
