package sahaapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, 2*time.Second, 100, 100, nil, nopLogger{})
}

func TestGetFieldDecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/fields/f1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"_id":"f1","name":"Arena","bookedDates":["2026-09-12T11:00:00Z"]}`))
	}))
	defer srv.Close()

	field, err := newTestClient(srv.URL).GetField(context.Background(), "f1")
	require.NoError(t, err)

	assert.Equal(t, "f1", field.ID)
	require.NotNil(t, field.Name)
	assert.Equal(t, "Arena", *field.Name)
	assert.Equal(t, []string{"2026-09-12T11:00:00Z"}, field.BookedDates)
}

func TestErrorMessagePreservedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Bu saat dilimi dolu"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateReservation(context.Background(), "tok", &CreateReservationRequest{
		UserID:  "u1",
		FieldID: "f1",
		Date:    "2026-09-12T11:00:00Z",
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Bu saat dilimi dolu", Message(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrBackend},
	}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).GetReservation(context.Background(), "tok", "r1")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEmptyErrorBodyFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetReservation(context.Background(), "tok", "r1")
	require.Error(t, err)
	assert.Equal(t, http.StatusText(http.StatusNotFound), Message(err))
}

func TestReadRetriedOnceOnTransportError(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Обрыв соединения без ответа
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		_, _ = w.Write([]byte(`{"_id":"f1"}`))
	}))
	defer srv.Close()

	field, err := newTestClient(srv.URL).GetField(context.Background(), "f1")
	require.NoError(t, err)

	assert.Equal(t, "f1", field.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestBackendErrorNotRetried(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"db down"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetField(context.Background(), "f1")
	require.Error(t, err)

	// Ответ бэкенда (даже 5xx) не транспортная ошибка, повтора нет
	assert.Equal(t, int32(1), calls.Load())
}

func TestMutationNeverRetried(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateReservation(context.Background(), "tok", &CreateReservationRequest{
		UserID:  "u1",
		FieldID: "f1",
		Date:    "2026-09-12T11:00:00Z",
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, int32(1), calls.Load(), "a mutation must be attempted exactly once")
}

func TestCreateReservationHeaders(t *testing.T) {
	var gotAuth, gotIdempotency string
	var gotBody CreateReservationRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotIdempotency = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"r1","userId":"u1","fieldId":"f1","date":"2026-09-12T11:00:00Z","status":"pending"}`))
	}))
	defer srv.Close()

	created, err := newTestClient(srv.URL).CreateReservation(context.Background(), "tok", &CreateReservationRequest{
		UserID:  "u1",
		FieldID: "f1",
		Date:    "2026-09-12T11:00:00Z",
		Status:  "pending",
	})
	require.NoError(t, err)

	assert.Equal(t, "r1", created.ID)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.NotEmpty(t, gotIdempotency, "mutations carry an idempotency key")
	assert.Equal(t, "pending", gotBody.Status)
}

func TestListFieldsReturnsRawJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"f1"},"garbage"]`))
	}))
	defer srv.Close()

	raw, err := newTestClient(srv.URL).ListFields(context.Background())
	require.NoError(t, err)

	// Сырой JSON отдается как есть, разбор остается за transform
	assert.JSONEq(t, `[{"_id":"f1"},"garbage"]`, string(raw))
}
