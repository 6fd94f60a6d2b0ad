package implementation

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 mockDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestMasterDataUpdateNameScopedToTenant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMasterDataRepository(db)

	mock.ExpectExec(`UPDATE "kelas" SET "name"=\$1 WHERE id = \$2 AND pesantren_id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateName(context.Background(), "kelas", uuid.New(), uuid.New(), "7B")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMasterDataDeleteScopedToTenant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMasterDataRepository(db)

	mock.ExpectExec(`DELETE FROM "kelas" WHERE id = \$1 AND pesantren_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "kelas", uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
