package dto

import "court-reservation-api/core/dto"

type RegisterRequest struct {
	Rut      string `json:"rut"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

// UpdateUserRequest ignores empty fields.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Phone    string `json:"phone"`
}

type UserResponse struct {
	Rut      string `json:"rut"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Phone    string `json:"phone,omitempty"`
}

type PaginatedUserResponse = dto.Pagination[UserResponse]
