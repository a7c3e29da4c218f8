package domain

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest is 1-based.
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize fixes out-of-range values. Oversized pages are clamped, never rejected.
// Page is capped so Offset cannot overflow.
func (p PageRequest) Normalize(defaultSize, maxSize int) PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	if lastPage := math.MaxInt / p.PageSize; p.Page > lastPage {
		p.Page = lastPage
	}
	return p
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type Page[T any] struct {
	Items    []T
	Page     int
	PageSize int
	Total    int
	HasNext  bool
}

func NewPage[T any](items []T, req PageRequest, total int) Page[T] {
	return Page[T]{
		Items:    items,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
		HasNext:  req.Offset()+len(items) < total,
	}
}
