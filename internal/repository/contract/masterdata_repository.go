package contract

import (
	"context"

	"santripay-be/internal/entity"

	"github.com/google/uuid"
)

// MasterDataRepository works over the shared master-data row shape. Every
// call is bound to a physical table resolved from the type registry, so one
// implementation serves kelas, mata_pelajaran, ruangan and grup_pilihan.
type MasterDataRepository interface {
	FindAll(ctx context.Context, table string, pesantrenId uuid.UUID) ([]*entity.MasterDataItem, error)
	Insert(ctx context.Context, table string, item *entity.MasterDataItem) error
	UpdateName(ctx context.Context, table string, pesantrenId, id uuid.UUID, name string) error
	Delete(ctx context.Context, table string, pesantrenId, id uuid.UUID) error
}
