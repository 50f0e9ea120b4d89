package dto

import "court-reservation-api/core/entity"

type Pagination[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}

// ToPagination converts a repository page into a response page using conv for each item.
func ToPagination[E any, R any](page *entity.Pagination[E], conv func(*E) *R) *Pagination[R] {
	if page == nil {
		return &Pagination[R]{Items: []R{}}
	}

	items := make([]R, len(page.Items))
	for i := range page.Items {
		items[i] = *conv(&page.Items[i])
	}

	totalPages := 0
	if page.PageSize > 0 {
		totalPages = (page.TotalItems + page.PageSize - 1) / page.PageSize
	}

	return &Pagination[R]{
		Items:      items,
		TotalItems: page.TotalItems,
		TotalPages: totalPages,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
