package create_reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	"github.com/m04kA/HSB-ReservationService/internal/session"
	"github.com/m04kA/HSB-ReservationService/internal/transform"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubFieldProvider struct {
	field *domain.Field
	err   error
}

func (s *stubFieldProvider) GetField(ctx context.Context, fieldID string) (*domain.Field, error) {
	return s.field, s.err
}

type stubClient struct {
	preflightPayload *sahaapi.FieldPayload
	preflightErr     error

	createPayload *sahaapi.ReservationPayload
	createErr     error
	createCalls   int
}

func (s *stubClient) GetField(ctx context.Context, fieldID string) (*sahaapi.FieldPayload, error) {
	return s.preflightPayload, s.preflightErr
}

func (s *stubClient) CreateReservation(ctx context.Context, token string, req *sahaapi.CreateReservationRequest) (*sahaapi.ReservationPayload, error) {
	s.createCalls++
	return s.createPayload, s.createErr
}

type stubCache struct {
	pushed      []*domain.Reservation
	invalidated []string
}

func (s *stubCache) PushReservation(ctx context.Context, reservation *domain.Reservation) error {
	s.pushed = append(s.pushed, reservation)
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

func testRequest(loc *time.Location) *Request {
	return &Request{
		Session: testSession(),
		FieldID: "f1",
		Date:    time.Date(2026, time.September, 12, 0, 0, 0, 0, loc),
		Hour:    "14:00",
	}
}

func newTestUseCase(t *testing.T, provider *stubFieldProvider, client *stubClient, cache *stubCache) *UseCase {
	t.Helper()
	loc := testLocation(t)
	uc := NewUseCase(provider, client, cache, transform.New(loc, 250, nopLogger{}), loc, nopLogger{})
	uc.timeProvider = &fixedClock{now: time.Date(2026, time.September, 12, 10, 0, 0, 0, loc)}
	return uc
}

func TestExecuteSuccessUpdatesCache(t *testing.T) {
	loc := testLocation(t)
	client := &stubClient{
		preflightPayload: &sahaapi.FieldPayload{ID: "f1"},
		createPayload: &sahaapi.ReservationPayload{
			ID:      "r1",
			UserID:  "u1",
			FieldID: "f1",
			Date:    "2026-09-12T14:00:00+03:00",
			Status:  "pending",
		},
	}
	cache := &stubCache{}
	uc := newTestUseCase(t, &stubFieldProvider{field: &domain.Field{ID: "f1"}}, client, cache)

	resp, err := uc.Execute(context.Background(), testRequest(loc))
	require.NoError(t, err)

	assert.Equal(t, OutcomeConfirmed, resp.Outcome)
	require.NotNil(t, resp.Reservation)
	assert.Equal(t, "r1", resp.Reservation.ID)

	// Новое бронирование попало в кеш, снимок занятости поля сброшен
	require.Len(t, cache.pushed, 1)
	assert.Equal(t, "r1", cache.pushed[0].ID)
	assert.Equal(t, []string{"f1"}, cache.invalidated)
}

func TestExecuteLocalConflictSkipsNetwork(t *testing.T) {
	loc := testLocation(t)
	booked, err := domain.ToInstant(time.Date(2026, time.September, 12, 0, 0, 0, 0, loc), "14:00", loc)
	require.NoError(t, err)

	client := &stubClient{}
	cache := &stubCache{}
	uc := newTestUseCase(t, &stubFieldProvider{field: &domain.Field{
		ID:          "f1",
		BookedSlots: domain.BookedSlotSet{booked},
	}}, client, cache)

	_, err = uc.Execute(context.Background(), testRequest(loc))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Zero(t, client.createCalls, "no create attempt on local conflict")
	assert.Empty(t, cache.pushed)
}

func TestExecutePreflightConflictAborts(t *testing.T) {
	loc := testLocation(t)
	client := &stubClient{
		preflightPayload: &sahaapi.FieldPayload{
			ID:          "f1",
			BookedDates: []string{"2026-09-12T11:00:00Z"}, // 14:00 Istanbul
		},
	}
	cache := &stubCache{}
	uc := newTestUseCase(t, &stubFieldProvider{field: &domain.Field{ID: "f1"}}, client, cache)

	_, err := uc.Execute(context.Background(), testRequest(loc))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Zero(t, client.createCalls, "fresh snapshot conflict blocks the attempt")
}

func TestExecutePreflightUnavailableProceeds(t *testing.T) {
	loc := testLocation(t)
	client := &stubClient{
		preflightErr: fmt.Errorf("%w: connection refused", sahaapi.ErrInternal),
		createPayload: &sahaapi.ReservationPayload{
			ID:      "r1",
			UserID:  "u1",
			FieldID: "f1",
			Date:    "2026-09-12T14:00:00+03:00",
			Status:  "pending",
		},
	}
	cache := &stubCache{}
	uc := newTestUseCase(t, &stubFieldProvider{field: &domain.Field{ID: "f1"}}, client, cache)

	resp, err := uc.Execute(context.Background(), testRequest(loc))
	require.NoError(t, err)

	// Совещательная проверка: недоступность бэкенда не блокирует попытку
	assert.Equal(t, OutcomeConfirmed, resp.Outcome)
	assert.Equal(t, 1, client.createCalls)
}

func TestExecuteBackendRejectionRollsBack(t *testing.T) {
	loc := testLocation(t)
	client := &stubClient{
		preflightPayload: &sahaapi.FieldPayload{ID: "f1"},
		createErr:        fmt.Errorf("%w: slot already reserved", sahaapi.ErrConflict),
	}
	cache := &stubCache{}
	uc := newTestUseCase(t, &stubFieldProvider{field: &domain.Field{ID: "f1"}}, client, cache)

	resp, err := uc.Execute(context.Background(), testRequest(loc))
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrSlotTaken)
	require.NotNil(t, resp)
	assert.Equal(t, OutcomeRolledBack, resp.Outcome)
	assert.Nil(t, resp.Reservation)

	// Локальное состояние не тронуто
	assert.Empty(t, cache.pushed)
	assert.Empty(t, cache.invalidated)
}

func TestExecuteValidation(t *testing.T) {
	loc := testLocation(t)
	uc := newTestUseCase(t, &stubFieldProvider{field: &domain.Field{ID: "f1"}}, &stubClient{}, &stubCache{})

	t.Run("no session", func(t *testing.T) {
		req := testRequest(loc)
		req.Session = nil
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("selection incomplete", func(t *testing.T) {
		req := testRequest(loc)
		req.Hour = ""
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSelectionIncomplete)
	})

	t.Run("hour off the grid", func(t *testing.T) {
		req := testRequest(loc)
		req.Hour = "14:30"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("past slot", func(t *testing.T) {
		req := testRequest(loc)
		req.Hour = "09:00" // now is 10:00
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPastSlot)
	})
}
