package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return New(rdb, 5*time.Minute, 10*time.Minute, 30*time.Minute, nil, nopLogger{}), mr
}

func testReservation(id, userID string) *domain.Reservation {
	return &domain.Reservation{
		ID:      id,
		UserID:  userID,
		FieldID: "f1",
		Instant: time.Date(2026, time.September, 12, 11, 0, 0, 0, time.UTC),
		Status:  domain.StatusPending,
	}
}

func TestFieldRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, err := c.GetField(ctx, "f1")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.SetField(ctx, &domain.Field{ID: "f1", Name: "Arena", PricePerHour: 300}))

	field, err := c.GetField(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "Arena", field.Name)
	assert.Equal(t, 300.0, field.PricePerHour)
}

func TestInvalidateFieldDropsListToo(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetField(ctx, &domain.Field{ID: "f1"}))
	require.NoError(t, c.SetFieldList(ctx, []domain.Field{{ID: "f1"}, {ID: "f2"}}))

	require.NoError(t, c.InvalidateField(ctx, "f1"))

	_, err := c.GetField(ctx, "f1")
	assert.ErrorIs(t, err, ErrCacheMiss)

	// Списочный кеш сбрасывается вместе со снимком поля
	_, err = c.GetFieldList(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestFieldTTLExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetField(ctx, &domain.Field{ID: "f1"}))

	mr.FastForward(6 * time.Minute)

	_, err := c.GetField(ctx, "f1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestPushReservationHeadInsert(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetUserReservations(ctx, "u1", []domain.Reservation{
		*testReservation("r1", "u1"),
	}))

	require.NoError(t, c.PushReservation(ctx, testReservation("r2", "u1")))

	list, err := c.GetUserReservations(ctx, "u1")
	require.NoError(t, err)

	// Список newest-first, новая запись в голове
	require.Len(t, list, 2)
	assert.Equal(t, "r2", list[0].ID)
	assert.Equal(t, "r1", list[1].ID)

	single, err := c.GetReservation(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, "r2", single.ID)
}

func TestPushReservationNoListNoFabrication(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.PushReservation(ctx, testReservation("r1", "u1")))

	// Одиночный ключ записан, но список не выдуман
	_, err := c.GetReservation(ctx, "r1")
	require.NoError(t, err)

	_, err = c.GetUserReservations(ctx, "u1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestReplaceReservationInList(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetUserReservations(ctx, "u1", []domain.Reservation{
		*testReservation("r1", "u1"),
		*testReservation("r2", "u1"),
	}))

	cancelled := testReservation("r2", "u1")
	cancelled.Status = domain.StatusCancelled
	require.NoError(t, c.ReplaceReservation(ctx, cancelled))

	list, err := c.GetUserReservations(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, domain.StatusPending, list[0].Status)
	assert.Equal(t, domain.StatusCancelled, list[1].Status)

	single, err := c.GetReservation(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, single.Status)
}

func TestInvalidateUserReservations(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetUserReservations(ctx, "u1", []domain.Reservation{
		*testReservation("r1", "u1"),
	}))
	require.NoError(t, c.InvalidateUserReservations(ctx, "u1"))

	_, err := c.GetUserReservations(ctx, "u1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestFieldReviewsRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, err := c.GetFieldReviews(ctx, "f1")
	assert.ErrorIs(t, err, ErrCacheMiss)

	reviews := []domain.Review{
		{ID: "rev1", FieldID: "f1", UserID: "u1", Rating: 5, Comment: "Harika"},
	}
	require.NoError(t, c.SetFieldReviews(ctx, "f1", reviews))

	got, err := c.GetFieldReviews(ctx, "f1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rev1", got[0].ID)

	require.NoError(t, c.InvalidateFieldReviews(ctx, "f1"))
	_, err = c.GetFieldReviews(ctx, "f1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
