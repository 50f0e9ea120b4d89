package validator

import (
	"testing"

	"court-reservation-api/modules/payment/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidatePaymentRequest(t *testing.T) {
	valid := &dto.PaymentRequest{Amount: 15000, Method: "tarjeta", UserRut: "11111111-1", ReservationID: 3}
	assert.False(t, ValidatePaymentRequest(valid).HasError())

	result := ValidatePaymentRequest(&dto.PaymentRequest{Amount: 0})
	fields := map[string]bool{}
	for _, e := range result.Errors {
		fields[e.Field] = true
	}
	assert.True(t, fields["amount"])
	assert.True(t, fields["method"])
	assert.True(t, fields["user_rut"])
	assert.True(t, fields["reservation_id"])

	bad := *valid
	bad.Status = "pagado"
	assert.True(t, ValidatePaymentRequest(&bad).HasError())
}

func TestValidateDateRange(t *testing.T) {
	assert.True(t, ValidateDateRange(&dto.DateRangeRequest{StartDate: "2026-10-01"}).HasError())
	assert.False(t, ValidateDateRange(&dto.DateRangeRequest{StartDate: "2026-10-01", EndDate: "2026-10-31"}).HasError())
}
