package dto

import "math"

// ListRequest is the shared query-string shape of every paginated list
// endpoint. Status supports the sentinel "all" (same as empty).
type ListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Query  string `query:"query"`
	Status string `query:"status"`
}

// Normalize applies the list defaults and returns the row offset.
func (r *ListRequest) Normalize() int {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	offset := (r.Page - 1) * r.Limit
	if offset < 0 {
		offset = 0
	}
	return offset
}

type Pagination struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

// NewPagination derives page counts from a filtered total. A zero limit
// yields zero pages instead of dividing by zero.
func NewPagination(totalItems int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}
	return Pagination{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
	}
}

// Paginated wraps a page of rows with its pagination block. Data is always a
// non-nil slice so empty pages serialize as [].
type Paginated[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func NewPaginated[T any](data []T, totalItems int64, page, limit int) Paginated[T] {
	if data == nil {
		data = []T{}
	}
	return Paginated[T]{
		Data:       data,
		Pagination: NewPagination(totalItems, page, limit),
	}
}
