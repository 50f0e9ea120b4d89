package mapper

import (
	"testing"

	"court-reservation-api/modules/reservation/entity"

	"github.com/stretchr/testify/assert"
)

func TestToReservationResponse_Joins(t *testing.T) {
	court, kind, name := "Cancha 1", "padel", "Ana Rojas"
	r := &entity.Reservation{ID: 1, CourtID: 3, UserRut: "1-9", CourtName: &court, CourtType: &kind, UserFullName: &name}

	resp := ToReservationResponse(r)

	assert.Equal(t, "Cancha 1", resp.Court.Name)
	assert.Equal(t, int64(3), resp.Court.ID)
	assert.Equal(t, "Ana Rojas", resp.User.FullName)
	assert.Empty(t, resp.User.Email)
}

func TestToReservationResponse_NoJoins(t *testing.T) {
	resp := ToReservationResponse(&entity.Reservation{ID: 1})

	assert.Nil(t, resp.Court)
	assert.Nil(t, resp.User)
}
