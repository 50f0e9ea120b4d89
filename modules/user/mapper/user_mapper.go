package mapper

import (
	"strings"

	"court-reservation-api/core/constants"
	coreDto "court-reservation-api/core/dto"
	"court-reservation-api/modules/user/dto"
	"court-reservation-api/modules/user/entity"
)

func ToUserEntity(req *dto.RegisterRequest, hashedPassword string) *entity.User {
	user := &entity.User{
		Rut:      strings.TrimSpace(req.Rut),
		Name:     strings.TrimSpace(req.Name),
		LastName: strings.TrimSpace(req.LastName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashedPassword,
		Role:     constants.RoleClient,
		Status:   constants.UserStatusActive,
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		user.Phone = &phone
	}
	return user
}

func ToUserResponse(user *entity.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		Rut:      user.Rut,
		Name:     user.Name,
		LastName: user.LastName,
		Email:    user.Email,
		Role:     user.Role,
		Status:   user.Status,
	}
	if user.Phone != nil {
		resp.Phone = *user.Phone
	}
	return resp
}

func ToUserPaginationResponse(page *entity.PaginatedUserResponse) *dto.PaginatedUserResponse {
	return coreDto.ToPagination(page, ToUserResponse)
}

// NormalizeStatus maps free-form input to Activo/Inactivo. ok is false for anything else.
func NormalizeStatus(status string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "activo", "active":
		return constants.UserStatusActive, true
	case "inactivo", "inactive":
		return constants.UserStatusInactive, true
	default:
		return "", false
	}
}

// ApplyUpdate copies the non-empty fields of req onto user.
func ApplyUpdate(user *entity.User, req *dto.UpdateUserRequest, hashedPassword string) {
	if v := strings.TrimSpace(req.Name); v != "" {
		user.Name = v
	}
	if v := strings.TrimSpace(req.LastName); v != "" {
		user.LastName = v
	}
	if v := strings.TrimSpace(req.Email); v != "" {
		user.Email = strings.ToLower(v)
	}
	if hashedPassword != "" {
		user.Password = hashedPassword
	}
	if v := strings.TrimSpace(req.Role); v != "" {
		user.Role = v
	}
	if status, ok := NormalizeStatus(req.Status); ok {
		user.Status = status
	}
	if v := strings.TrimSpace(req.Phone); v != "" {
		user.Phone = &v
	}
}
