package dto

import (
	"strconv"
	"testing"

	"court-reservation-api/core/entity"

	"github.com/stretchr/testify/assert"
)

func TestToPagination(t *testing.T) {
	page := &entity.Pagination[int]{
		Items:      []int{1, 2, 3},
		TotalItems: 23,
		PageNumber: 2,
		PageSize:   10,
	}

	out := ToPagination(page, func(i *int) *string {
		s := strconv.Itoa(*i * 10)
		return &s
	})

	assert.Equal(t, []string{"10", "20", "30"}, out.Items)
	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, 23, out.TotalItems)
	assert.Equal(t, 2, out.PageNumber)
}

func TestToPagination_Nil(t *testing.T) {
	out := ToPagination[int, int](nil, func(i *int) *int { return i })

	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
	assert.Zero(t, out.TotalPages)
}
