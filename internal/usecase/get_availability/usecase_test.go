package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	fieldsService "github.com/m04kA/HSB-ReservationService/internal/service/fields"
	"github.com/m04kA/HSB-ReservationService/pkg/types"
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

func TestExecuteBuildsDayGrid(t *testing.T) {
	loc := testLocation(t)
	date := time.Date(2026, time.September, 12, 0, 0, 0, 0, loc)
	now := time.Date(2026, time.September, 12, 10, 30, 0, 0, loc)

	booked, err := domain.ToInstant(date, "14:00", loc)
	require.NoError(t, err)

	uc := NewUseCase(&stubFieldProvider{field: &domain.Field{
		ID:          "f1",
		OpenHour:    "08:00",
		CloseHour:   "23:00",
		BookedSlots: domain.BookedSlotSet{booked},
	}}, loc, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}

	resp, err := uc.Execute(context.Background(), &Request{FieldID: "f1", Date: date})
	require.NoError(t, err)

	// Рабочее окно 08:00-23:00 дает 15 слотов
	require.Len(t, resp.Slots, 15)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].Hour)
	assert.Equal(t, types.TimeString("22:00"), resp.Slots[len(resp.Slots)-1].Hour)

	bySlot := make(map[types.TimeString]Slot, len(resp.Slots))
	for _, s := range resp.Slots {
		bySlot[s.Hour] = s
	}

	assert.True(t, bySlot["14:00"].Booked)
	assert.False(t, bySlot["15:00"].Booked)

	// 10:00 уже наступило в 10:30, 11:00 еще нет
	assert.True(t, bySlot["10:00"].Past)
	assert.False(t, bySlot["11:00"].Past)

	assert.Equal(t, []types.TimeString{"14:00"}, resp.BookedLabels)
	assert.Equal(t, 14, resp.FreeCount)
	assert.True(t, resp.CountKnown)
}

func TestExecuteUnreadableHoursShowFullGrid(t *testing.T) {
	loc := testLocation(t)
	date := time.Date(2026, time.September, 12, 0, 0, 0, 0, loc)

	uc := NewUseCase(&stubFieldProvider{field: &domain.Field{ID: "f1"}}, loc, nopLogger{})
	uc.timeProvider = &fixedClock{now: time.Date(2026, time.September, 11, 12, 0, 0, 0, loc)}

	resp, err := uc.Execute(context.Background(), &Request{FieldID: "f1", Date: date})
	require.NoError(t, err)

	// Нечитаемые часы работы не прячут день: полная сетка, счетчик неизвестен
	assert.Len(t, resp.Slots, 16)
	assert.False(t, resp.CountKnown)
	assert.Zero(t, resp.FreeCount)
}

func TestExecuteFieldNotFound(t *testing.T) {
	loc := testLocation(t)

	uc := NewUseCase(&stubFieldProvider{err: fieldsService.ErrFieldNotFound}, loc, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: "missing",
		Date:    time.Date(2026, time.September, 12, 0, 0, 0, 0, loc),
	})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestExecuteValidatesInput(t *testing.T) {
	loc := testLocation(t)
	uc := NewUseCase(&stubFieldProvider{}, loc, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FieldID: "f1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
