package validator

import (
	"testing"

	"court-reservation-api/modules/earning/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateEarning(t *testing.T) {
	n, total, negative := 3, 1500.0, -1.0

	assert.True(t, ValidateCreateEarning(&dto.EarningRequest{}).HasError())
	assert.True(t, ValidateCreateEarning(&dto.EarningRequest{Bookings: &n, Period: "2026-10", Total: &negative}).HasError())
	assert.False(t, ValidateCreateEarning(&dto.EarningRequest{Bookings: &n, Period: "2026-10", Total: &total}).HasError())
}

func TestValidateUpdateEarning(t *testing.T) {
	negative := -5.0
	assert.True(t, ValidateUpdateEarning(&dto.EarningRequest{Total: &negative}).HasError())
	assert.False(t, ValidateUpdateEarning(&dto.EarningRequest{Period: "2026-11"}).HasError())
}

func TestValidateRecalculate(t *testing.T) {
	assert.True(t, ValidateRecalculate(&dto.RecalculateRequest{Period: "2026/10"}).HasError())
	assert.False(t, ValidateRecalculate(&dto.RecalculateRequest{Period: "2026-10"}).HasError())
}
