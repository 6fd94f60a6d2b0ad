package mapper

import (
	"testing"

	"santripay-be/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSantriMapperCarriesJoinedKelas(t *testing.T) {
	m := NewSantriMapper()
	classId := uuid.New()

	e := m.ToEntity(&model.Santri{
		Id:          uuid.New(),
		PesantrenId: uuid.New(),
		NIS:         "2024001",
		Name:        "Ahmad",
		ClassId:     &classId,
		Balance:     decimal.NewFromInt(25000),
		Status:      "active",
		Kelas:       &model.Kelas{Id: classId, Name: "1A"},
	})

	require.NotNil(t, e.Kelas)
	assert.Equal(t, "1A", e.Kelas.Name)
	assert.Equal(t, classId, e.Kelas.Id)
}

func TestSantriMapperWithoutKelas(t *testing.T) {
	m := NewSantriMapper()

	e := m.ToEntity(&model.Santri{
		Id:     uuid.New(),
		Name:   "Budi",
		Status: "inactive",
	})

	assert.Nil(t, e.Kelas)
	assert.Nil(t, e.ClassId)
}

func TestSantriMapperNilSafe(t *testing.T) {
	m := NewSantriMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}

func TestSantriMapperRoundTripKeepsBalance(t *testing.T) {
	m := NewSantriMapper()
	original := &model.Santri{
		Id:      uuid.New(),
		Name:    "Ahmad",
		Balance: decimal.RequireFromString("12500.50"),
		Status:  "active",
	}

	back := m.ToModel(m.ToEntity(original))
	assert.True(t, original.Balance.Equal(back.Balance))
	assert.Equal(t, original.Status, back.Status)
}
