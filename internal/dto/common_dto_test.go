package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListRequestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		req        ListRequest
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{
			name:       "defaults applied",
			req:        ListRequest{},
			wantPage:   1,
			wantLimit:  10,
			wantOffset: 0,
		},
		{
			name:       "negative page resets to first",
			req:        ListRequest{Page: -3, Limit: 20},
			wantPage:   1,
			wantLimit:  20,
			wantOffset: 0,
		},
		{
			name:       "offset derived from page",
			req:        ListRequest{Page: 3, Limit: 15},
			wantPage:   3,
			wantLimit:  15,
			wantOffset: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := tt.req.Normalize()
			assert.Equal(t, tt.wantPage, tt.req.Page)
			assert.Equal(t, tt.wantLimit, tt.req.Limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		page       int
		limit      int
		wantPages  int
	}{
		{name: "exact division", totalItems: 40, page: 1, limit: 10, wantPages: 4},
		{name: "partial last page", totalItems: 41, page: 2, limit: 10, wantPages: 5},
		{name: "zero limit yields zero pages", totalItems: 41, page: 1, limit: 0, wantPages: 0},
		{name: "empty result", totalItems: 0, page: 1, limit: 10, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.totalItems, tt.page, tt.limit)
			assert.Equal(t, tt.totalItems, p.TotalItems)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.limit, p.Limit)
		})
	}
}

func TestNewPaginatedNeverNilData(t *testing.T) {
	paginated := NewPaginated[string](nil, 0, 1, 10)
	assert.NotNil(t, paginated.Data)
	assert.Len(t, paginated.Data, 0)
}
