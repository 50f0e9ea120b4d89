package validator

import (
	"testing"

	"court-reservation-api/modules/request/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateRequest(t *testing.T) {
	assert.True(t, ValidateCreateRequest(&dto.CreateRequestRequest{}).HasError())
	assert.True(t, ValidateCreateRequest(&dto.CreateRequestRequest{Reason: "x", Type: "cambio", NewStartTime: "25:00"}).HasError())
	assert.False(t, ValidateCreateRequest(&dto.CreateRequestRequest{Reason: "x", Type: "cambio"}).HasError())
}

func TestValidateCreateAnswer(t *testing.T) {
	assert.True(t, ValidateCreateAnswer(&dto.CreateAnswerRequest{Message: "ok", Status: "tal vez"}).HasError())
	assert.True(t, ValidateCreateAnswer(&dto.CreateAnswerRequest{Status: "aprobada"}).HasError())
	assert.False(t, ValidateCreateAnswer(&dto.CreateAnswerRequest{Message: "ok", Status: "rechazada"}).HasError())
}
