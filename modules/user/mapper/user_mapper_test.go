package mapper

import (
	"testing"

	"court-reservation-api/modules/user/dto"
	"court-reservation-api/modules/user/entity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := map[string]struct {
		want string
		ok   bool
	}{
		"activo":    {"Activo", true},
		" ACTIVO ":  {"Activo", true},
		"inactive":  {"Inactivo", true},
		"Inactivo":  {"Inactivo", true},
		"bloqueado": {"", false},
		"":          {"", false},
	}
	for input, tt := range tests {
		got, ok := NormalizeStatus(input)
		assert.Equal(t, tt.want, got, input)
		assert.Equal(t, tt.ok, ok, input)
	}
}

func TestApplyUpdate_IgnoresEmptyFields(t *testing.T) {
	phone := "+56911111111"
	user := &entity.User{
		Rut: "11111111-1", Name: "Ana", LastName: "Rojas", Email: "ana@example.com",
		Password: "hash", Role: "cliente", Status: "Activo", Phone: &phone,
	}

	ApplyUpdate(user, &dto.UpdateUserRequest{LastName: "Soto", Status: "inactivo", Email: " ANA@Example.com "}, "")

	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "Soto", user.LastName)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "hash", user.Password)
	assert.Equal(t, "Inactivo", user.Status)
	assert.Equal(t, "+56911111111", *user.Phone)
}

func TestToUserEntity_Defaults(t *testing.T) {
	user := ToUserEntity(&dto.RegisterRequest{Rut: "11111111-1", Name: "Ana", Email: "Ana@Example.com"}, "hash")

	assert.Equal(t, "cliente", user.Role)
	assert.Equal(t, "Activo", user.Status)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Nil(t, user.Phone)
	assert.Empty(t, ToUserResponse(user).Phone)
}
