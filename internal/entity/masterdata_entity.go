package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MasterDataType is the closed set of per-tenant reference lists.
type MasterDataType string

const (
	MasterDataKelas       MasterDataType = "kelas"
	MasterDataMapel       MasterDataType = "mapel"
	MasterDataRuangan     MasterDataType = "ruangan"
	MasterDataGrupPilihan MasterDataType = "grupPilihan"
)

var ErrInvalidMasterDataType = errors.New("Invalid master data type")

// MasterDataTable binds a type to its physical table. ReadOnly lists are
// exposed for reads but managed elsewhere.
type MasterDataTable struct {
	Type     MasterDataType
	Table    string
	ReadOnly bool
}

var masterDataTables = map[MasterDataType]MasterDataTable{
	MasterDataKelas:       {Type: MasterDataKelas, Table: "kelas"},
	MasterDataMapel:       {Type: MasterDataMapel, Table: "mata_pelajaran"},
	MasterDataRuangan:     {Type: MasterDataRuangan, Table: "ruangan"},
	MasterDataGrupPilihan: {Type: MasterDataGrupPilihan, Table: "grup_pilihan", ReadOnly: true},
}

// ResolveMasterDataTable validates the type before any query is composed.
func ResolveMasterDataTable(t MasterDataType) (MasterDataTable, error) {
	table, ok := masterDataTables[t]
	if !ok {
		return MasterDataTable{}, ErrInvalidMasterDataType
	}
	return table, nil
}

type MasterDataItem struct {
	Id          uuid.UUID
	PesantrenId uuid.UUID
	Name        string
	CreatedAt   time.Time
}
