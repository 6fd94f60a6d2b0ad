package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMasterDataTable(t *testing.T) {
	tests := []struct {
		name         string
		dataType     MasterDataType
		wantTable    string
		wantReadOnly bool
		wantErr      error
	}{
		{name: "kelas", dataType: MasterDataKelas, wantTable: "kelas"},
		{name: "mapel maps to mata_pelajaran", dataType: MasterDataMapel, wantTable: "mata_pelajaran"},
		{name: "ruangan", dataType: MasterDataRuangan, wantTable: "ruangan"},
		{name: "grupPilihan is read-only", dataType: MasterDataGrupPilihan, wantTable: "grup_pilihan", wantReadOnly: true},
		{name: "unknown type rejected", dataType: MasterDataType("siswa"), wantErr: ErrInvalidMasterDataType},
		{name: "empty type rejected", dataType: MasterDataType(""), wantErr: ErrInvalidMasterDataType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ResolveMasterDataTable(tt.dataType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTable, table.Table)
			assert.Equal(t, tt.wantReadOnly, table.ReadOnly)
		})
	}
}
