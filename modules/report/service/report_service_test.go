package service

import (
	"context"
	stdErrors "errors"
	"strings"
	"testing"
	"time"

	"court-reservation-api/core/errors"
	"court-reservation-api/core/utils"
	"court-reservation-api/core/worker"
	"court-reservation-api/modules/report/dto"
	"court-reservation-api/modules/report/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items    map[int64]entity.Report
	paid     []entity.PaidBooking
	nextID   int64
	from, to time.Time
}

func newFakeRepo(items ...entity.Report) *fakeRepo {
	r := &fakeRepo{items: map[int64]entity.Report{}, nextID: 1}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, rep *entity.Report) (*entity.Report, error) {
	rep.ID = r.nextID
	r.nextID++
	r.items[rep.ID] = *rep
	return rep, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*entity.Report, error) {
	if it, ok := r.items[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]entity.Report, error) {
	out := []entity.Report{}
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, rep *entity.Report) (*entity.Report, error) {
	r.items[rep.ID] = *rep
	return rep, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

func (r *fakeRepo) PaidBookings(ctx context.Context, from, to time.Time) ([]entity.PaidBooking, error) {
	r.from, r.to = from, to
	return r.paid, nil
}

type fakeStore struct {
	key  string
	body []byte
	err  error
}

func (s *fakeStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.key, s.body = key, body
	return "s3://bucket/" + key, nil
}

type fakeEnqueuer struct {
	taskType string
	payload  any
}

func (f *fakeEnqueuer) Enqueue(ctx context.Context, taskType string, payload any) error {
	f.taskType, f.payload = taskType, payload
	return nil
}

var (
	client = &utils.TokenClaims{UserID: "11111111-1", Role: "cliente"}
	admin  = &utils.TokenClaims{UserID: "99999999-9", Role: "admin"}

	now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
)

func newTestService(repo *fakeRepo, store *fakeStore, enq *fakeEnqueuer) *ReportService {
	svc := &ReportService{repo: repo, enqueuer: enq, loc: time.UTC, now: func() time.Time { return now }}
	if store != nil {
		svc.store = store
	}
	return svc
}

func TestCreateReport(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil, &fakeEnqueuer{})
	ctx := context.Background()

	resp, err := svc.CreateReport(ctx, &dto.ReportRequest{Type: "incidente", Description: "red rota", UserRut: client.UserID}, client)
	require.Nil(t, err)
	assert.Equal(t, now, resp.Date)
	assert.Equal(t, "incidente", resp.Type)

	resp, err = svc.CreateReport(ctx, &dto.ReportRequest{Type: "incidente", Description: "x", UserRut: client.UserID, Date: "01-10-2026"}, admin)
	require.Nil(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), resp.Date)

	_, err = svc.CreateReport(ctx, &dto.ReportRequest{Type: "incidente", Description: "x", UserRut: "22222222-2"}, client)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrForbidden, err.Code)
}

func TestUpdateAndDeleteReport(t *testing.T) {
	repo := newFakeRepo(entity.Report{ID: 1, Type: "incidente", Description: "red rota", UserRut: client.UserID, Date: now})
	svc := newTestService(repo, nil, &fakeEnqueuer{})
	ctx := context.Background()

	resp, err := svc.UpdateReport(ctx, 1, &dto.ReportRequest{Description: "red reparada"})
	require.Nil(t, err)
	assert.Equal(t, "red reparada", resp.Description)
	assert.Equal(t, "incidente", resp.Type)

	require.Nil(t, svc.DeleteReport(ctx, 1))
	err = svc.DeleteReport(ctx, 1)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)
}

func TestGetStatistics_QueriesWindow(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil, &fakeEnqueuer{})

	stats, err := svc.GetStatistics(context.Background())
	require.Nil(t, err)
	assert.Len(t, stats.RevenueData, 6)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), repo.from)
	assert.Equal(t, now, repo.to)
}

func TestRequestExport(t *testing.T) {
	enq := &fakeEnqueuer{}
	svc := newTestService(newFakeRepo(), nil, enq)

	resp, err := svc.RequestExport(context.Background(), admin)
	require.Nil(t, err)
	assert.Equal(t, "report:export", enq.taskType)
	assert.Equal(t, worker.ExportReportPayload{RequestedBy: admin.UserID, AsOf: "2026-10-19T12:00:00Z"}, enq.payload)
	assert.Equal(t, "2026-10-19T12:00:00Z", resp.AsOf)
}

func TestExportStatistics(t *testing.T) {
	repo := newFakeRepo()
	repo.paid = []entity.PaidBooking{{Amount: 15000, PaidAt: now, StartTime: "18:00:00", CourtName: "Cancha 1"}}
	store := &fakeStore{}
	svc := newTestService(repo, store, nil)

	resp, err := svc.ExportStatistics(context.Background(), worker.ExportReportPayload{RequestedBy: admin.UserID, AsOf: "2026-10-19T12:00:00Z"})
	require.Nil(t, err)
	assert.True(t, strings.HasPrefix(store.key, "reports/2026-10/"))
	assert.True(t, strings.HasSuffix(store.key, ".json"))
	assert.Contains(t, string(store.body), `"total_bookings":1`)
	assert.Equal(t, "estadisticas", resp.Type)
	assert.Equal(t, "s3://bucket/"+store.key, resp.Description)
	assert.Equal(t, admin.UserID, resp.UserRut)
}

func TestExportStatistics_Failures(t *testing.T) {
	payload := worker.ExportReportPayload{RequestedBy: admin.UserID, AsOf: "2026-10-19T12:00:00Z"}

	_, err := newTestService(newFakeRepo(), nil, nil).ExportStatistics(context.Background(), payload)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrInternalServer, err.Code)
	assert.ErrorIs(t, err, ErrNoObjectStore)

	svc := newTestService(newFakeRepo(), &fakeStore{err: stdErrors.New("access denied")}, nil)
	_, err = svc.ExportStatistics(context.Background(), payload)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrInternalServer, err.Code)

	_, err = svc.ExportStatistics(context.Background(), worker.ExportReportPayload{AsOf: "yesterday"})
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrInvalidInput, err.Code)
}
