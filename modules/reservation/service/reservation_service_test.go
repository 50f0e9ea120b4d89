package service

import (
	"context"
	"testing"

	"court-reservation-api/core/errors"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/reservation/dto"
	"court-reservation-api/modules/reservation/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items  map[int64]entity.Reservation
	nextID int64
	byDate string
}

func newFakeRepo(items ...entity.Reservation) *fakeRepo {
	r := &fakeRepo{items: map[int64]entity.Reservation{}, nextID: 100}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, res *entity.Reservation) (*entity.Reservation, error) {
	res.ID = r.nextID
	r.nextID++
	r.items[res.ID] = *res
	return res, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	if it, ok := r.items[id]; ok {
		return &it, nil
	}
	return nil, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]entity.Reservation, error) {
	out := []entity.Reservation{}
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *fakeRepo) ListByDate(ctx context.Context, date string) ([]entity.Reservation, error) {
	r.byDate = date
	out := []entity.Reservation{}
	for _, it := range r.items {
		if it.Date == date {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByUser(ctx context.Context, rut string) ([]entity.Reservation, error) {
	out := []entity.Reservation{}
	for _, it := range r.items {
		if it.UserRut == rut {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, res *entity.Reservation) (*entity.Reservation, error) {
	if _, ok := r.items[res.ID]; !ok {
		return nil, nil
	}
	r.items[res.ID] = *res
	return res, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

func (r *fakeRepo) ExistsConfirmed(ctx context.Context, res *entity.Reservation) (bool, error) {
	for _, it := range r.items {
		if it.ID != res.ID && it.Status == "confirmada" && it.Date == res.Date &&
			it.CourtID == res.CourtID && it.StartTime == res.StartTime && it.EndTime == res.EndTime {
			return true, nil
		}
	}
	return false, nil
}

var (
	client = &utils.TokenClaims{UserID: "11111111-1", Role: "cliente"}
	other  = &utils.TokenClaims{UserID: "22222222-2", Role: "cliente"}
	admin  = &utils.TokenClaims{UserID: "99999999-9", Role: "admin"}
)

func confirmed(id int64, rut string) entity.Reservation {
	return entity.Reservation{
		ID: id, Date: "2026-10-20", StartTime: "18:00:00", EndTime: "19:00:00",
		Status: "confirmada", CourtID: 1, UserRut: rut,
	}
}

func TestCreateReservation_UsesCallerRut(t *testing.T) {
	repo := newFakeRepo()
	svc := NewReservationService(repo)

	resp, err := svc.CreateReservation(context.Background(), &dto.ReservationRequest{
		Date: "2026-10-20", StartTime: "18:00:00", EndTime: "19:00:00", CourtID: 1, UserRut: "22222222-2",
	}, client)

	require.Nil(t, err)
	assert.Equal(t, "11111111-1", resp.UserRut)
	assert.Equal(t, "pendiente", resp.Status)
}

func TestCreateReservation_AdminOnBehalf(t *testing.T) {
	svc := NewReservationService(newFakeRepo())

	resp, err := svc.CreateReservation(context.Background(), &dto.ReservationRequest{
		Date: "2026-10-20", StartTime: "18:00:00", EndTime: "19:00:00", CourtID: 1, UserRut: "22222222-2",
	}, admin)

	require.Nil(t, err)
	assert.Equal(t, "22222222-2", resp.UserRut)
}

func TestCreateReservation_ConflictOnConfirmedDuplicate(t *testing.T) {
	svc := NewReservationService(newFakeRepo(confirmed(1, other.UserID)))
	req := &dto.ReservationRequest{Date: "2026-10-20", StartTime: "18:00:00", EndTime: "19:00:00", CourtID: 1, Status: "confirmada"}

	_, err := svc.CreateReservation(context.Background(), req, admin)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrConflict, err.Code)

	req.Status = "pendiente"
	_, err = svc.CreateReservation(context.Background(), req, client)
	assert.Nil(t, err)
}

func TestReservationStatus_OnlyAdminsConfirm(t *testing.T) {
	pending := confirmed(1, client.UserID)
	pending.Status = "pendiente"
	repo := newFakeRepo(pending)
	svc := NewReservationService(repo)
	ctx := context.Background()
	req := &dto.ReservationRequest{Date: "2026-10-21", StartTime: "20:00:00", EndTime: "21:00:00", CourtID: 2, Status: "confirmada"}

	_, err := svc.CreateReservation(ctx, req, client)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrForbidden, err.Code)

	_, err = svc.UpdateReservation(ctx, 1, req, client)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrForbidden, err.Code)
	assert.Equal(t, "pendiente", repo.items[1].Status)

	req.Status = ""
	resp, err := svc.UpdateReservation(ctx, 1, req, client)
	require.Nil(t, err)
	assert.Equal(t, "pendiente", resp.Status)
	assert.Equal(t, "20:00:00", resp.StartTime)

	req.Status = "confirmada"
	resp, err = svc.UpdateReservation(ctx, 1, req, admin)
	require.Nil(t, err)
	assert.Equal(t, "confirmada", resp.Status)

	resp, err = svc.CreateReservation(ctx, &dto.ReservationRequest{
		Date: "2026-10-22", StartTime: "18:00:00", EndTime: "19:00:00", CourtID: 1, Status: "confirmada",
	}, admin)
	require.Nil(t, err)
	assert.Equal(t, "confirmada", resp.Status)
}

func TestUpdateReservation_SameRowIsNotAConflict(t *testing.T) {
	svc := NewReservationService(newFakeRepo(confirmed(1, client.UserID)))

	resp, err := svc.UpdateReservation(context.Background(), 1, &dto.ReservationRequest{
		Date: "2026-10-20", StartTime: "18:00:00", EndTime: "19:00:00", CourtID: 1, Status: "confirmada",
	}, client)

	require.Nil(t, err)
	assert.Equal(t, client.UserID, resp.UserRut)
}

func TestReservationAccess(t *testing.T) {
	svc := NewReservationService(newFakeRepo(confirmed(1, client.UserID)))
	ctx := context.Background()

	_, err := svc.GetReservation(ctx, 1, other)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrForbidden, err.Code)

	_, err = svc.GetReservation(ctx, 1, admin)
	assert.Nil(t, err)

	_, err = svc.GetReservation(ctx, 2, admin)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)

	err = svc.DeleteReservation(ctx, 1, other)
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrForbidden, err.Code)

	assert.Nil(t, svc.DeleteReservation(ctx, 1, client))
}

func TestGetReservations_ByDateAndMine(t *testing.T) {
	late := confirmed(2, other.UserID)
	late.Date = "2026-10-21"
	repo := newFakeRepo(confirmed(1, client.UserID), late)
	svc := NewReservationService(repo)
	ctx := context.Background()

	byDate, err := svc.GetReservations(ctx, "2026-10-21")
	require.Nil(t, err)
	assert.Len(t, byDate, 1)
	assert.Equal(t, "2026-10-21", repo.byDate)

	all, err := svc.GetReservations(ctx, "")
	require.Nil(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.GetMyReservations(ctx, client)
	require.Nil(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(1), mine[0].ID)
}
