package service

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"court-reservation-api/core/errors"
	"court-reservation-api/modules/court/dto"
	"court-reservation-api/modules/court/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	courts    map[int64]entity.Court
	nextID    int64
	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{courts: map[int64]entity.Court{}, nextID: 1}
}

func (r *fakeRepo) Create(ctx context.Context, court *entity.Court) (*entity.Court, error) {
	court.ID = r.nextID
	r.nextID++
	r.courts[court.ID] = *court
	return court, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*entity.Court, error) {
	if c, ok := r.courts[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]entity.Court, error) {
	r.listCalls++
	out := []entity.Court{}
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.courts[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, court *entity.Court) (*entity.Court, error) {
	if _, ok := r.courts[court.ID]; !ok {
		return nil, nil
	}
	r.courts[court.ID] = *court
	return court, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := r.courts[id]
	delete(r.courts, id)
	return ok, nil
}

type memCache struct {
	data   map[string][]byte
	getErr error
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) IsTokenBlacklisted(context.Context, string) (bool, error)         { return false, nil }
func (m *memCache) AddToTokenBlacklist(context.Context, string, time.Duration) error { return nil }
func (m *memCache) IsLoginBlocked(context.Context, string) (bool, error)             { return false, nil }
func (m *memCache) IncrementLoginAttempt(context.Context, string) error              { return nil }
func (m *memCache) Expire(context.Context, string, time.Duration) error              { return nil }

func (m *memCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func TestGetCourts_UsesCacheUntilWrite(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCourtService(repo, newMemCache())
	ctx := context.Background()

	_, err := svc.CreateCourt(ctx, &dto.CourtRequest{Name: "Cancha 1", Location: "Norte", Type: "padel", PricePerHour: 12000})
	require.Nil(t, err)

	first, err := svc.GetCourts(ctx)
	require.Nil(t, err)
	second, err := svc.GetCourts(ctx)
	require.Nil(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, "cancha-1", second[0].Slug)

	_, err = svc.CreateCourt(ctx, &dto.CourtRequest{Name: "Cancha 2", Location: "Sur", Type: "tenis", PricePerHour: 9000})
	require.Nil(t, err)

	third, err := svc.GetCourts(ctx)
	require.Nil(t, err)
	assert.Len(t, third, 2)
	assert.Equal(t, 2, repo.listCalls)
}

func TestGetCourts_CacheErrorFallsBack(t *testing.T) {
	repo := newFakeRepo()
	cache := newMemCache()
	cache.getErr = stdErrors.New("redis down")
	svc := NewCourtService(repo, cache)

	courts, err := svc.GetCourts(context.Background())

	require.Nil(t, err)
	assert.Empty(t, courts)
	assert.Equal(t, 1, repo.listCalls)
}

func TestCourt_NotFound(t *testing.T) {
	svc := NewCourtService(newFakeRepo(), newMemCache())
	ctx := context.Background()

	_, err := svc.GetCourt(ctx, 9)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)

	_, err = svc.UpdateCourt(ctx, 9, &dto.CourtRequest{Name: "X"})
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)

	err = svc.DeleteCourt(ctx, 9)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)
}
