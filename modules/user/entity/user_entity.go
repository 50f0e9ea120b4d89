package entity

import "court-reservation-api/core/entity"

// User maps a row of usuarios. The table is keyed by rut.
type User struct {
	Rut      string  `db:"rut"`
	Name     string  `db:"nombre"`
	LastName string  `db:"apellido"`
	Email    string  `db:"correo"`
	Password string  `db:"contrasena"`
	Role     string  `db:"rol"`
	Status   string  `db:"estado"`
	Phone    *string `db:"telefono"`
}

type PaginatedUserResponse = entity.Pagination[User]
