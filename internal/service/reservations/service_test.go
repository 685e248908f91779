package reservations

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/infra/cache"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	"github.com/m04kA/HSB-ReservationService/internal/session"
	"github.com/m04kA/HSB-ReservationService/internal/transform"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubClient struct {
	getPayload *sahaapi.ReservationPayload
	getErr     error
	getCalls   int

	listRaw   json.RawMessage
	listErr   error
	listCalls int

	updatePayload *sahaapi.ReservationPayload
	updateErr     error
	updateCalls   int
	updateStatus  string
}

func (s *stubClient) GetReservation(ctx context.Context, token, reservationID string) (*sahaapi.ReservationPayload, error) {
	s.getCalls++
	return s.getPayload, s.getErr
}

func (s *stubClient) ListUserReservations(ctx context.Context, token string) (json.RawMessage, error) {
	s.listCalls++
	return s.listRaw, s.listErr
}

func (s *stubClient) UpdateReservation(ctx context.Context, token, reservationID string, req *sahaapi.UpdateReservationRequest) (*sahaapi.ReservationPayload, error) {
	s.updateCalls++
	if req.Status != nil {
		s.updateStatus = *req.Status
	}
	return s.updatePayload, s.updateErr
}

type stubCache struct {
	reservations map[string]*domain.Reservation
	lists        map[string][]domain.Reservation

	setCalls     int
	replaced     []*domain.Reservation
	invalidated  []string
	listSetCalls int
}

func (s *stubCache) GetReservation(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	if r, ok := s.reservations[reservationID]; ok {
		return r, nil
	}
	return nil, cache.ErrCacheMiss
}

func (s *stubCache) SetReservation(ctx context.Context, reservation *domain.Reservation) error {
	s.setCalls++
	return nil
}

func (s *stubCache) GetUserReservations(ctx context.Context, userID string) ([]domain.Reservation, error) {
	if list, ok := s.lists[userID]; ok {
		return list, nil
	}
	return nil, cache.ErrCacheMiss
}

func (s *stubCache) SetUserReservations(ctx context.Context, userID string, reservations []domain.Reservation) error {
	s.listSetCalls++
	return nil
}

func (s *stubCache) ReplaceReservation(ctx context.Context, reservation *domain.Reservation) error {
	s.replaced = append(s.replaced, reservation)
	return nil
}

func (s *stubCache) InvalidateField(ctx context.Context, fieldID string) error {
	s.invalidated = append(s.invalidated, fieldID)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)
	return loc
}

func testSession() *session.Session {
	return &session.Session{UserID: "u1", Name: "Mehmet", Token: "tok"}
}

func newTestService(t *testing.T, client *stubClient, store *stubCache, now time.Time) *Service {
	t.Helper()
	loc := testLocation(t)
	svc := NewService(client, store, transform.New(loc, 250, nopLogger{}), loc, 2, 24, nopLogger{})
	svc.timeProvider = &fixedClock{now: now}
	return svc
}

func futureReservation(t *testing.T, now time.Time, userID string, status domain.ReservationStatus) *domain.Reservation {
	t.Helper()
	return &domain.Reservation{
		ID:      "r1",
		UserID:  userID,
		FieldID: "f1",
		Instant: now.Add(5 * time.Hour),
		Status:  status,
	}
}

func TestGetByIDCacheHitSkipsBackend(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, time.September, 12, 10, 0, 0, 0, loc)

	client := &stubClient{}
	store := &stubCache{reservations: map[string]*domain.Reservation{
		"r1": futureReservation(t, now, "u1", domain.StatusPending),
	}}
	svc := newTestService(t, client, store, now)

	resp, err := svc.GetByID(context.Background(), testSession(), "r1")
	require.NoError(t, err)

	assert.Equal(t, "r1", resp.ID)
	assert.True(t, resp.CanCancel, "5h away, cancel notice is 2h")
	assert.False(t, resp.CanEdit, "5h away, edit notice is 24h")
	assert.Zero(t, client.getCalls, "cache hit must not reach the backend")
}

func TestGetByIDCacheMissFallsBackToBackend(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, time.September, 12, 10, 0, 0, 0, loc)

	client := &stubClient{getPayload: &sahaapi.ReservationPayload{
		ID:      "r1",
		UserID:  "u1",
		FieldID: "f1",
		Date:    "2026-09-12T15:00:00+03:00",
		Status:  "pending",
	}}
	store := &stubCache{}
	svc := newTestService(t, client, store, now)

	resp, err := svc.GetByID(context.Background(), testSession(), "r1")
	require.NoError(t, err)

	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, "15:00", resp.Hour)
	assert.Equal(t, 1, client.getCalls)
	assert.Equal(t, 1, store.setCalls, "backend result is cached")
}

func TestGetByIDForeignReservation(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, time.September, 12, 10, 0, 0, 0, loc)

	store := &stubCache{reservations: map[string]*domain.Reservation{
		"r1": futureReservation(t, now, "someone-else", domain.StatusPending),
	}}
	svc := newTestService(t, &stubClient{}, store, now)

	_, err := svc.GetByID(context.Background(), testSession(), "r1")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserReservationsCacheMiss(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, time.September, 12, 10, 0, 0, 0, loc)

	client := &stubClient{listRaw: json.RawMessage(`[
		{"_id":"r1","userId":"u1","fieldId":"f1","date":"2026-09-12T15:00:00+03:00","status":"pending"},
		{"_id":"broken","date":"not-a-date","status":"pending"},
		{"_id":"r2","userId":"u1","fieldId":"f2","date":"2026-09-10T20:00:00+03:00","status":"cancelled"}
	]`)}
	store := &stubCache{}
	svc := newTestService(t, client, store, now)

	resp, err := svc.GetUserReservations(context.Background(), testSession())
	require.NoError(t, err)

	// Нечитаемая запись пропущена, остальное закешировано
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, store.listSetCalls)

	assert.True(t, resp.Reservations[0].CanCancel)
	assert.False(t, resp.Reservations[1].CanCancel, "cancelled reservation stays cancelled")
}

func TestGetUserReservationsCacheHit(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, time.September, 12, 10, 0, 0, 0, loc)

	client := &stubClient{}
	store := &stubCache{lists: map[string][]domain.Reservation{
		"u1": {*futureReservation(t, now, "u1", domain.StatusPending)},
	}}
	svc := newTestService(t, client, store, now)

	resp, err := svc.GetUserReservations(context.Background(), testSession())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Zero(t, client.listCalls)
}

func TestCancelHappyPath(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, time.September, 12, 10, 0, 0, 0, loc)

	client := &stubClient{updatePayload: &sahaapi.ReservationPayload{
		ID:      "r1",
		UserID:  "u1",
		FieldID: "f1",
		Date:    "2026-09-12T15:00:00+03:00",
		Status:  "cancelled",
	}}
	store := &stubCache{reservations: map[string]*domain.Reservation{
		"r1": futureReservation(t, now, "u1", domain.StatusPending),
	}}
	svc := newTestService(t, client, store, now)

	resp, err := svc.Cancel(context.Background(), testSession(), "r1")
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, 1, client.updateCalls)
	assert.Equal(t, "cancelled", client.updateStatus)

	// Ответ бэкенда замещает копию в кеше, снимок поля сбрасывается
	require.Len(t, store.replaced, 1)
	assert.Equal(t, domain.StatusCancelled, store.replaced[0].Status)
	assert.Equal(t, []string{"f1"}, store.invalidated)
}

func TestCancelInsideNoticeWindow(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, time.September, 12, 10, 0, 0, 0, loc)

	client := &stubClient{}
	store := &stubCache{reservations: map[string]*domain.Reservation{
		"r1": {
			ID:      "r1",
			UserID:  "u1",
			FieldID: "f1",
			Instant: now.Add(time.Hour), // notice is 2h
			Status:  domain.StatusPending,
		},
	}}
	svc := newTestService(t, client, store, now)

	_, err := svc.Cancel(context.Background(), testSession(), "r1")
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Zero(t, client.updateCalls, "doomed request never leaves the service")
}

func TestCancelNonPendingReservation(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, time.September, 12, 10, 0, 0, 0, loc)

	client := &stubClient{}
	store := &stubCache{reservations: map[string]*domain.Reservation{
		"r1": futureReservation(t, now, "u1", domain.StatusApproved),
	}}
	svc := newTestService(t, client, store, now)

	_, err := svc.Cancel(context.Background(), testSession(), "r1")
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Zero(t, client.updateCalls)
}

func TestCancelForeignReservation(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2026, time.September, 12, 10, 0, 0, 0, loc)

	client := &stubClient{}
	store := &stubCache{reservations: map[string]*domain.Reservation{
		"r1": futureReservation(t, now, "someone-else", domain.StatusPending),
	}}
	svc := newTestService(t, client, store, now)

	_, err := svc.Cancel(context.Background(), testSession(), "r1")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, client.updateCalls)
}
