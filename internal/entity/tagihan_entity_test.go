package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTagihanUnpaidTotal(t *testing.T) {
	tests := []struct {
		name         string
		amount       int64
		totalTargets int
		paidCount    int
		want         int64
	}{
		{name: "partially paid", amount: 50000, totalTargets: 10, paidCount: 3, want: 350000},
		{name: "fully paid", amount: 50000, totalTargets: 10, paidCount: 10, want: 0},
		{name: "overshoot clamps to zero", amount: 50000, totalTargets: 5, paidCount: 8, want: 0},
		{name: "no targets", amount: 50000, totalTargets: 0, paidCount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tagihan := Tagihan{
				Amount:       decimal.NewFromInt(tt.amount),
				TotalTargets: tt.totalTargets,
				PaidCount:    tt.paidCount,
			}
			assert.True(t, decimal.NewFromInt(tt.want).Equal(tagihan.UnpaidTotal()))
		})
	}
}
