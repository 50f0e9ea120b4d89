package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationResult(t *testing.T) {
	v := NewValidationResult()
	assert.False(t, v.HasError())

	v.Required("name", "  ")
	v.Email("email", "not-an-email")
	v.Date("date", "19-10-2026")
	v.Time("start_time", "18:00")
	v.OneOf("status", "unknown", "a", "b")
	v.RUT("rut", "abc")

	assert.True(t, v.HasError())
	assert.Len(t, v.Errors, 6)
	assert.Equal(t, "name", v.Errors[0].Field)
}

func TestValidationResult_ValidValues(t *testing.T) {
	v := NewValidationResult()

	v.Required("name", "Cancha 1")
	v.Email("email", "ana@example.com")
	v.Date("date", "2026-10-19")
	v.Time("start_time", "18:00:00")
	v.OneOf("status", "b", "a", "b")
	v.RUT("rut", "12345678-K")

	assert.False(t, v.HasError())
}
