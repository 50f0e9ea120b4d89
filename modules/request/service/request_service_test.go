package service

import (
	"context"
	"testing"
	"time"

	"court-reservation-api/core/errors"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/request/dto"
	"court-reservation-api/modules/request/entity"
	"court-reservation-api/modules/request/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items   map[int64]entity.Request
	answers map[int64]entity.Response
	nextID  int64
}

func newFakeRepo(items ...entity.Request) *fakeRepo {
	r := &fakeRepo{items: map[int64]entity.Request{}, answers: map[int64]entity.Response{}, nextID: 10}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, req *entity.Request) (*entity.Request, error) {
	req.ID = r.nextID
	r.nextID++
	r.items[req.ID] = *req
	return req, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*entity.Request, error) {
	if it, ok := r.items[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]entity.Request, error) {
	out := []entity.Request{}
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *fakeRepo) ListByUser(ctx context.Context, rut string) ([]entity.Request, error) {
	out := []entity.Request{}
	for _, it := range r.items {
		if it.UserRut == rut {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, req *entity.Request) error {
	r.items[req.ID] = *req
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

func (r *fakeRepo) GetAnswer(ctx context.Context, requestID int64) (*entity.Response, error) {
	if a, ok := r.answers[requestID]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *fakeRepo) CreateAnswer(ctx context.Context, a *entity.Response) (*entity.Response, error) {
	req, ok := r.items[a.RequestID]
	if !ok {
		return nil, repository.ErrRequestNotFound
	}
	req.Status = a.Status
	r.items[a.RequestID] = req
	a.ID = 1
	r.answers[a.RequestID] = *a
	return a, nil
}

var (
	client = &utils.TokenClaims{UserID: "11111111-1", Role: "cliente"}
	other  = &utils.TokenClaims{UserID: "22222222-2", Role: "cliente"}
	admin  = &utils.TokenClaims{UserID: "99999999-9", Role: "admin"}
)

func pending(id int64, rut string) entity.Request {
	return entity.Request{ID: id, Reason: "cambio de hora", Type: "cambio", Status: "pendiente", UserRut: rut}
}

func newTestService(repo *fakeRepo, now time.Time) *RequestService {
	return &RequestService{repo: repo, now: func() time.Time { return now }}
}

func TestCreateRequest(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeRepo(), now)

	resp, err := svc.CreateRequest(context.Background(), &dto.CreateRequestRequest{
		Reason: " lluvia ", Type: "cambio", NewStartTime: "19:00:00", UserRut: "22222222-2",
	}, client)

	require.Nil(t, err)
	assert.Equal(t, "11111111-1", resp.UserRut)
	assert.Equal(t, "pendiente", resp.Status)
	assert.Equal(t, "lluvia", resp.Reason)
	assert.Equal(t, now, resp.RequestedAt)
	require.NotNil(t, resp.NewStartTime)
	assert.Equal(t, "19:00:00", *resp.NewStartTime)
	assert.Nil(t, resp.NewEndTime)

	resp, err = svc.CreateRequest(context.Background(), &dto.CreateRequestRequest{
		Reason: "x", Type: "cambio", UserRut: "22222222-2",
	}, admin)
	require.Nil(t, err)
	assert.Equal(t, "22222222-2", resp.UserRut)
}

func TestUpdateRequest_StatusIsAdminOnly(t *testing.T) {
	svc := newTestService(newFakeRepo(pending(1, client.UserID)), time.Now())
	ctx := context.Background()

	_, err := svc.UpdateRequest(ctx, 1, &dto.UpdateRequestRequest{Status: "aprobada"}, client)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrForbidden, err.Code)

	resp, err := svc.UpdateRequest(ctx, 1, &dto.UpdateRequestRequest{Reason: "otra razón"}, client)
	require.Nil(t, err)
	assert.Equal(t, "otra razón", resp.Reason)
	assert.Equal(t, "pendiente", resp.Status)

	resp, err = svc.UpdateRequest(ctx, 1, &dto.UpdateRequestRequest{Status: "aprobada"}, admin)
	require.Nil(t, err)
	assert.Equal(t, "aprobada", resp.Status)
}

func TestRequestAccess(t *testing.T) {
	svc := newTestService(newFakeRepo(pending(1, client.UserID)), time.Now())
	ctx := context.Background()

	_, err := svc.GetRequest(ctx, 1, other)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrForbidden, err.Code)

	_, err = svc.GetRequest(ctx, 5, admin)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)

	_, err = svc.GetRequest(ctx, 1, nil)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrUnauthorized, err.Code)

	mine, err := svc.GetMyRequests(ctx, other)
	require.Nil(t, err)
	assert.Empty(t, mine)

	assert.Nil(t, svc.DeleteRequest(ctx, 1, client))
	_, err = svc.GetRequest(ctx, 1, client)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)
}

func TestAnswerRequest_UpdatesStatus(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	repo := newFakeRepo(pending(1, client.UserID))
	svc := newTestService(repo, now)
	ctx := context.Background()

	_, err := svc.GetAnswer(ctx, 1, client)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)

	answer, err := svc.AnswerRequest(ctx, 1, &dto.CreateAnswerRequest{Message: " ok ", Status: "aprobada"})
	require.Nil(t, err)
	assert.Equal(t, "ok", answer.Message)
	assert.Equal(t, now, answer.RespondedAt)
	assert.Equal(t, "aprobada", repo.items[1].Status)

	got, err := svc.GetAnswer(ctx, 1, client)
	require.Nil(t, err)
	assert.Equal(t, answer.ID, got.ID)
}

func TestAnswerRequest_MissingRequest(t *testing.T) {
	svc := newTestService(newFakeRepo(), time.Now())

	_, err := svc.AnswerRequest(context.Background(), 42, &dto.CreateAnswerRequest{Message: "ok", Status: "rechazada"})
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)
}
