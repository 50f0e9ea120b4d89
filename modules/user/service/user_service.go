package service

import (
	"context"
	"strings"
	"time"

	"court-reservation-api/core/cache"
	"court-reservation-api/core/constants"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/logger"
	"court-reservation-api/core/params"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/user/dto"
	"court-reservation-api/modules/user/mapper"
	"court-reservation-api/modules/user/repository"
)

type UserServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Logout(ctx context.Context, token string, claims *utils.TokenClaims) *errors.AppError
	ValidateToken(ctx context.Context, token string) (*utils.TokenClaims, *errors.AppError)
	GetUser(ctx context.Context, rut string) (*dto.UserResponse, *errors.AppError)
	GetUsers(ctx context.Context, params params.QueryParams) (*dto.PaginatedUserResponse, *errors.AppError)
	UpdateUser(ctx context.Context, rut string, req *dto.UpdateUserRequest, actor *utils.TokenClaims) (*dto.UserResponse, *errors.AppError)
	DeleteUser(ctx context.Context, rut string) *errors.AppError
}

type UserService struct {
	repo  repository.UserRepositoryInterface
	cache cache.Cache
}

func NewUserService(repo repository.UserRepositoryInterface, cache cache.Cache) UserServiceInterface {
	return &UserService{repo: repo, cache: cache}
}

func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to check email", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email already registered", nil)
	}

	byRut, err := s.repo.GetByRut(ctx, strings.TrimSpace(req.Rut))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to check rut", err)
	}
	if byRut != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "rut already registered", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := mapper.ToUserEntity(req, hashed)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "register user failed", err)
	}

	logger.Info("UserService:Register:Success", "rut", user.Rut)
	return mapper.ToUserResponse(user), nil
}

// Login authenticates by e-mail and password. Repeated failures lock the
// account for constants.BlockDuration.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	loginKey := constants.CacheKeyLoginAttempt + strings.ToLower(strings.TrimSpace(req.Email))

	blocked, err := s.cache.IsLoginBlocked(ctx, loginKey)
	if err != nil {
		logger.Error("UserService:Login:IsLoginBlocked:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get login attempt", err)
	}
	if blocked {
		if errExpire := s.cache.Expire(ctx, loginKey, constants.BlockDuration); errExpire != nil {
			logger.Error("UserService:Login:Expire:Error:", errExpire)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "too many failed attempts, try again in 15 minutes", nil)
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get user", err)
	}
	if user == nil || !utils.ComparePassword(user.Password, req.Password) {
		if errIncrement := s.cache.IncrementLoginAttempt(ctx, loginKey); errIncrement != nil {
			logger.Error("UserService:Login:IncrementLoginAttempt:Error:", errIncrement)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}
	if user.Status == constants.UserStatusInactive {
		return nil, errors.NewAppError(errors.ErrForbidden, "user is inactive", nil)
	}

	token, err := utils.GenerateToken(utils.TokenClaims{
		UserID:   user.Rut,
		Role:     user.Role,
		Name:     user.Name,
		LastName: user.LastName,
		Email:    user.Email,
	}, constants.AccessTokenDuration)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}

	if errDel := s.cache.Del(ctx, loginKey); errDel != nil {
		logger.Error("UserService:Login:Del:Error:", errDel)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(constants.AccessTokenDuration.Seconds()),
		User:        mapper.ToUserResponse(user),
	}, nil
}

func (s *UserService) Logout(ctx context.Context, token string, claims *utils.TokenClaims) *errors.AppError {
	ttl := constants.AccessTokenDuration
	if claims != nil && claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.cache.AddToTokenBlacklist(ctx, token, ttl); err != nil {
		logger.Error("UserService:Logout:AddToBlacklist:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to add token to blacklist", err)
	}
	return nil
}

func (s *UserService) ValidateToken(ctx context.Context, token string) (*utils.TokenClaims, *errors.AppError) {
	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, token)
	if err != nil {
		logger.Error("UserService:ValidateToken:IsTokenBlacklisted:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "token has been revoked", nil)
	}

	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		if err == utils.ErrTokenExpired {
			return nil, errors.NewAppError(errors.ErrTokenExpired, "token expired", err)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token", err)
	}
	return claims, nil
}

func (s *UserService) GetUser(ctx context.Context, rut string) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	user, err := s.repo.GetByRut(ctx, rut)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return mapper.ToUserResponse(user), nil
}

func (s *UserService) GetUsers(ctx context.Context, params params.QueryParams) (*dto.PaginatedUserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	users, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get users failed", err)
	}
	return mapper.ToUserPaginationResponse(users), nil
}

// UpdateUser lets users edit themselves; only admins may edit others or change roles.
func (s *UserService) UpdateUser(ctx context.Context, rut string, req *dto.UpdateUserRequest, actor *utils.TokenClaims) (*dto.UserResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if actor == nil || (actor.UserID != rut && !actor.IsAdmin()) {
		return nil, errors.NewAppError(errors.ErrForbidden, "not allowed to update this user", nil)
	}
	if req.Role != "" && !actor.IsAdmin() {
		return nil, errors.NewAppError(errors.ErrForbidden, "only admins can change roles", nil)
	}

	user, err := s.repo.GetByRut(ctx, rut)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	if req.Email != "" && !strings.EqualFold(req.Email, user.Email) {
		other, err := s.repo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "failed to check email", err)
		}
		if other != nil {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "email already registered", nil)
		}
	}

	hashed := ""
	if req.Password != "" {
		if hashed, err = utils.HashPassword(req.Password); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
		}
	}

	mapper.ApplyUpdate(user, req, hashed)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update user failed", err)
	}
	return mapper.ToUserResponse(user), nil
}

func (s *UserService) DeleteUser(ctx context.Context, rut string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	deleted, err := s.repo.Delete(ctx, rut)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete user failed", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}
	return nil
}
