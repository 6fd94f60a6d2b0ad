package serverutils

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessResponseEnvelope(t *testing.T) {
	res := SuccessResponse(map[string]string{"id": "abc"})

	raw, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","data":{"id":"abc"}}`, string(raw))
}

func TestErrorResponseEnvelope(t *testing.T) {
	res := ErrorResponse("Terjadi kesalahan")

	raw, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","message":"Terjadi kesalahan"}`, string(raw))
}

func TestErrorResponseOr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{name: "error message wins", err: errors.New("Saldo tidak mencukupi."), fallback: "Terjadi kesalahan", want: "Saldo tidak mencukupi."},
		{name: "nil error uses fallback", err: nil, fallback: "Terjadi kesalahan", want: "Terjadi kesalahan"},
		{name: "empty message uses fallback", err: errors.New(""), fallback: "Terjadi kesalahan", want: "Terjadi kesalahan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ErrorResponseOr(tt.err, tt.fallback)
			assert.Equal(t, "error", res.Status)
			assert.Equal(t, tt.want, res.Message)
		})
	}
}
