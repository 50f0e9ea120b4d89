package mapper

import (
	"testing"

	"court-reservation-api/modules/court/dto"

	"github.com/stretchr/testify/assert"
)

func TestToCourtEntity_DefaultStatus(t *testing.T) {
	court := ToCourtEntity(&dto.CourtRequest{Name: " Cancha Ñuñoa ", PricePerHour: 15000})

	assert.Equal(t, "Cancha Ñuñoa", court.Name)
	assert.Equal(t, "disponible", court.Status)
}

func TestToCourtResponse_Slug(t *testing.T) {
	court := ToCourtEntity(&dto.CourtRequest{Name: "Cancha Pádel 2", Status: "mantenimiento"})
	court.ID = 2

	resp := ToCourtResponse(court)

	assert.Equal(t, "cancha-padel-2", resp.Slug)
	assert.Equal(t, int64(2), resp.ID)
	assert.Equal(t, "mantenimiento", resp.Status)
}
