package service

import (
	"context"
	"testing"
	"time"

	"court-reservation-api/core/config"
	"court-reservation-api/core/errors"
	"court-reservation-api/core/params"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/user/dto"
	"court-reservation-api/modules/user/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users map[string]*entity.User
}

func newFakeRepo(users ...*entity.User) *fakeRepo {
	r := &fakeRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.Rut] = u
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.Rut] = user
	return nil
}

func (r *fakeRepo) GetByRut(ctx context.Context, rut string) (*entity.User, error) {
	if u, ok := r.users[rut]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) List(ctx context.Context, p params.QueryParams) (*entity.PaginatedUserResponse, error) {
	items := []entity.User{}
	for _, u := range r.users {
		items = append(items, *u)
	}
	return &entity.PaginatedUserResponse{Items: items, TotalItems: len(items), PageNumber: p.PageNumber, PageSize: p.PageSize}, nil
}

func (r *fakeRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.Rut] = user
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, rut string) (bool, error) {
	_, ok := r.users[rut]
	delete(r.users, rut)
	return ok, nil
}

type fakeCache struct {
	attempts  map[string]int
	blacklist map[string]time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{attempts: map[string]int{}, blacklist: map[string]time.Duration{}}
}

func (c *fakeCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	_, ok := c.blacklist[token]
	return ok, nil
}

func (c *fakeCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	c.blacklist[token] = ttl
	return nil
}

func (c *fakeCache) IsLoginBlocked(ctx context.Context, key string) (bool, error) {
	return c.attempts[key] >= 5, nil
}

func (c *fakeCache) IncrementLoginAttempt(ctx context.Context, key string) error {
	c.attempts[key]++
	return nil
}

func (c *fakeCache) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }

func (c *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.attempts, k)
	}
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func setupConfig(t *testing.T) {
	t.Helper()
	prev, _ := config.GetSafe()
	config.Set(&config.Config{JWT: config.JWTConfig{Secret: "secret"}})
	t.Cleanup(func() { config.Set(prev) })
}

func registerReq() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Rut: "11111111-1", Name: "Ana", LastName: "Rojas",
		Email: "ana@example.com", Password: "secret123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	setupConfig(t)
	repo := newFakeRepo()
	svc := NewUserService(repo, newFakeCache())
	ctx := context.Background()

	user, err := svc.Register(ctx, registerReq())
	require.Nil(t, err)
	assert.Equal(t, "cliente", user.Role)
	assert.NotEqual(t, "secret123", repo.users["11111111-1"].Password)

	_, err = svc.Register(ctx, registerReq())
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrAlreadyExists, err.Code)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	require.Nil(t, err)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := svc.ValidateToken(ctx, resp.AccessToken)
	require.Nil(t, err)
	assert.Equal(t, "11111111-1", claims.UserID)
	assert.Equal(t, "Rojas", claims.LastName)
}

func TestLogin_LocksAfterRepeatedFailures(t *testing.T) {
	setupConfig(t)
	repo := newFakeRepo()
	svc := NewUserService(repo, newFakeCache())
	ctx := context.Background()
	_, appErr := svc.Register(ctx, registerReq())
	require.Nil(t, appErr)

	for i := 0; i < 5; i++ {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
		require.NotNil(t, err)
		assert.Equal(t, errors.ErrUnauthorized, err.Code)
	}

	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "too many failed attempts")
}

func TestLogin_InactiveUser(t *testing.T) {
	setupConfig(t)
	hash, _ := utils.HashPassword("secret123")
	repo := newFakeRepo(&entity.User{Rut: "2-2", Email: "b@example.com", Password: hash, Status: "Inactivo"})
	svc := NewUserService(repo, newFakeCache())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "b@example.com", Password: "secret123"})

	require.NotNil(t, err)
	assert.Equal(t, errors.ErrForbidden, err.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	setupConfig(t)
	svc := NewUserService(newFakeRepo(), newFakeCache())
	ctx := context.Background()

	token, genErr := utils.GenerateToken(utils.TokenClaims{UserID: "1-9"}, time.Hour)
	require.NoError(t, genErr)
	claims, err := svc.ValidateToken(ctx, token)
	require.Nil(t, err)

	require.Nil(t, svc.Logout(ctx, token, claims))

	_, err = svc.ValidateToken(ctx, token)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrUnauthorized, err.Code)
}

func TestUpdateUser_Permissions(t *testing.T) {
	repo := newFakeRepo(
		&entity.User{Rut: "1-9", Name: "Ana", Email: "a@example.com", Role: "cliente", Status: "Activo"},
		&entity.User{Rut: "2-7", Name: "Beto", Email: "b@example.com", Role: "cliente", Status: "Activo"},
	)
	svc := NewUserService(repo, newFakeCache())
	ctx := context.Background()
	self := &utils.TokenClaims{UserID: "1-9", Role: "cliente"}
	admin := &utils.TokenClaims{UserID: "9-9", Role: "admin"}

	_, err := svc.UpdateUser(ctx, "2-7", &dto.UpdateUserRequest{Name: "X"}, self)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrForbidden, err.Code)

	_, err = svc.UpdateUser(ctx, "1-9", &dto.UpdateUserRequest{Role: "admin"}, self)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrForbidden, err.Code)

	_, err = svc.UpdateUser(ctx, "1-9", &dto.UpdateUserRequest{Email: "b@example.com"}, self)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrAlreadyExists, err.Code)

	updated, err := svc.UpdateUser(ctx, "2-7", &dto.UpdateUserRequest{Status: "inactivo", Role: "admin"}, admin)
	require.Nil(t, err)
	assert.Equal(t, "Inactivo", updated.Status)
	assert.Equal(t, "admin", updated.Role)
	assert.Equal(t, "Beto", updated.Name)

	_, err = svc.UpdateUser(ctx, "404-0", &dto.UpdateUserRequest{Name: "X"}, admin)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)
}

func TestDeleteUser(t *testing.T) {
	svc := NewUserService(newFakeRepo(&entity.User{Rut: "1-9"}), newFakeCache())

	require.Nil(t, svc.DeleteUser(context.Background(), "1-9"))

	err := svc.DeleteUser(context.Background(), "1-9")
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)
}
