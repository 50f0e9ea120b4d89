package entity

type Pagination[T any] struct {
	Items      []T
	TotalItems int
	PageNumber int
	PageSize   int
}
