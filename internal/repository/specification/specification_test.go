package specification

import (
	"testing"

	"santripay-be/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 mockDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DryRun:                 true,
	})
	require.NoError(t, err)
	return db
}

func buildSQL(t *testing.T, db *gorm.DB, specs ...Specification) string {
	t.Helper()

	query := db.Model(&model.Santri{})
	for _, spec := range specs {
		query = spec.Apply(query)
	}

	var rows []model.Santri
	stmt := query.Find(&rows).Statement
	return stmt.SQL.String()
}

func TestTenantScopeFiltersByPesantren(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, db, TenantScope{PesantrenID: uuid.New()})
	assert.Contains(t, sql, "pesantren_id = ")
}

func TestTenantNameSearchFiltersThroughOwningPesantren(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, db, TenantNameSearch{Query: "Hikmah"})
	assert.Contains(t, sql, "pesantren_id IN (SELECT id FROM pesantren WHERE name ILIKE ")

	empty := buildSQL(t, newDryRunDB(t), TenantNameSearch{})
	assert.NotContains(t, empty, "ILIKE")
}

func TestStatusFilter(t *testing.T) {
	db := newDryRunDB(t)

	tests := []struct {
		name       string
		status     string
		wantFilter bool
	}{
		{name: "concrete status filters", status: "pending", wantFilter: true},
		{name: "empty status is a no-op", status: "", wantFilter: false},
		{name: "all is a no-op", status: "all", wantFilter: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := buildSQL(t, db, StatusFilter{Status: tt.status})
			if tt.wantFilter {
				assert.Contains(t, sql, "status = ")
			} else {
				assert.NotContains(t, sql, "status = ")
			}
		})
	}
}

func TestSearchQueryJoinsFieldsWithOr(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, db, SearchQuery{Query: "ahmad", Fields: []string{"name", "nis"}})
	assert.Contains(t, sql, "name ILIKE ")
	assert.Contains(t, sql, " OR ")
	assert.Contains(t, sql, "nis ILIKE ")
}

func TestSearchQueryEmptyIsNoOp(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, db, SearchQuery{Query: "", Fields: []string{"name"}})
	assert.NotContains(t, sql, "ILIKE")
}

func TestPaginationAndOrdering(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, db,
		OrderBy{Field: "created_at", Desc: true},
		Pagination{Limit: 10, Offset: 20},
	)
	assert.Contains(t, sql, "ORDER BY created_at DESC")
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
}

func TestCombinedSpecificationsCompose(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, db,
		TenantScope{PesantrenID: uuid.New()},
		StatusFilter{Status: "active"},
		Pagination{Limit: 10, Offset: 0},
	)
	assert.Contains(t, sql, "pesantren_id = ")
	assert.Contains(t, sql, "status = ")
	assert.Contains(t, sql, "LIMIT")
}
