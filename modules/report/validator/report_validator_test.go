package validator

import (
	"testing"

	"court-reservation-api/modules/report/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateReport(t *testing.T) {
	assert.True(t, ValidateCreateReport(&dto.ReportRequest{}).HasError())
	assert.True(t, ValidateCreateReport(&dto.ReportRequest{Type: "incidente", Description: "x", UserRut: "abc"}).HasError())
	assert.False(t, ValidateCreateReport(&dto.ReportRequest{Type: "incidente", Description: "x", UserRut: "11111111-1"}).HasError())
}

func TestValidateUpdateReport(t *testing.T) {
	assert.True(t, ValidateUpdateReport(&dto.ReportRequest{Date: "2026/10/01"}).HasError())
	assert.False(t, ValidateUpdateReport(&dto.ReportRequest{Description: "y"}).HasError())
}
