package reviews

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/infra/cache"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	"github.com/m04kA/HSB-ReservationService/internal/service/reviews/models"
	"github.com/m04kA/HSB-ReservationService/internal/session"
	"github.com/m04kA/HSB-ReservationService/internal/transform"
	"github.com/m04kA/HSB-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubClient struct {
	listRaw json.RawMessage
	listErr error

	createPayload *sahaapi.ReviewPayload
	createErr     error
	createCalls   int

	updatePayload *sahaapi.ReviewPayload
	updateErr     error
	updateCalls   int

	deleteErr   error
	deleteCalls int
}

func (s *stubClient) ListFieldReviews(ctx context.Context, fieldID string) (json.RawMessage, error) {
	return s.listRaw, s.listErr
}

func (s *stubClient) CreateReview(ctx context.Context, token string, req *sahaapi.CreateReviewRequest) (*sahaapi.ReviewPayload, error) {
	s.createCalls++
	return s.createPayload, s.createErr
}

func (s *stubClient) UpdateReview(ctx context.Context, token, reviewID string, req *sahaapi.UpdateReviewRequest) (*sahaapi.ReviewPayload, error) {
	s.updateCalls++
	return s.updatePayload, s.updateErr
}

func (s *stubClient) DeleteReview(ctx context.Context, token, reviewID string) error {
	s.deleteCalls++
	return s.deleteErr
}

type stubReviewCache struct {
	reviews     map[string][]domain.Review
	setCalls    int
	invalidated []string
}

func (s *stubReviewCache) GetFieldReviews(ctx context.Context, fieldID string) ([]domain.Review, error) {
	if list, ok := s.reviews[fieldID]; ok {
		return list, nil
	}
	return nil, cache.ErrCacheMiss
}

func (s *stubReviewCache) SetFieldReviews(ctx context.Context, fieldID string, reviews []domain.Review) error {
	s.setCalls++
	return nil
}

func (s *stubReviewCache) InvalidateFieldReviews(ctx context.Context, fieldID string) error {
	s.invalidated = append(s.invalidated, fieldID)
	return nil
}

type stubFieldCache struct {
	invalidated []string
}

func (s *stubFieldCache) InvalidateField(ctx context.Context, fieldID string) error {
	s.invalidated = append(s.invalidated, fieldID)
	return nil
}

func testSession() *session.Session {
	return &session.Session{UserID: "u1", Name: "Mehmet", Token: "tok"}
}

func newTestService(t *testing.T, client *stubClient, reviewStore *stubReviewCache, fieldStore *stubFieldCache) *Service {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)
	return NewService(client, reviewStore, fieldStore, transform.New(loc, 250, nopLogger{}), nopLogger{})
}

func cachedReviews(owner string) map[string][]domain.Review {
	return map[string][]domain.Review{
		"f1": {
			{ID: "rev1", FieldID: "f1", UserID: owner, Rating: 5, Comment: "Harika saha"},
			{ID: "rev2", FieldID: "f1", UserID: "u2", Rating: 3, Comment: "Ortalama"},
		},
	}
}

func TestListFieldReviewsMarksOwn(t *testing.T) {
	store := &stubReviewCache{reviews: cachedReviews("u1")}
	svc := newTestService(t, &stubClient{}, store, &stubFieldCache{})

	resp, err := svc.ListFieldReviews(context.Background(), "f1", "u1")
	require.NoError(t, err)

	require.Equal(t, 2, resp.Total)
	assert.True(t, resp.Reviews[0].IsMine)
	assert.False(t, resp.Reviews[1].IsMine)
}

func TestListFieldReviewsCacheMiss(t *testing.T) {
	client := &stubClient{listRaw: json.RawMessage(`[
		{"_id":"rev1","fieldId":"f1","userId":"u1","rating":5,"comment":"Harika"},
		"garbage",
		{"_id":"rev2","fieldId":"f1","userId":"u2","rating":4,"comment":"Iyi"}
	]`)}
	store := &stubReviewCache{}
	svc := newTestService(t, client, store, &stubFieldCache{})

	resp, err := svc.ListFieldReviews(context.Background(), "f1", "")
	require.NoError(t, err)

	// Нечитаемая запись пропущена, нормализованный список закеширован
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, store.setCalls)
}

func TestCreateValidatesBeforeNetwork(t *testing.T) {
	client := &stubClient{}
	svc := newTestService(t, client, &stubReviewCache{}, &stubFieldCache{})

	cases := []struct {
		name    string
		rating  int
		comment string
		wantErr error
	}{
		{"rating below range", 0, "ok saha", ErrInvalidRating},
		{"rating above range", 6, "ok saha", ErrInvalidRating},
		{"blank comment", 4, "   ", ErrEmptyComment},
		{"comment too long", 4, strings.Repeat("ч", domain.MaxCommentLength+1), ErrCommentTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &models.CreateReviewRequest{
				Session: testSession(),
				FieldID: "f1",
				Rating:  tc.rating,
				Comment: tc.comment,
			})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	assert.Zero(t, client.createCalls, "invalid review never reaches the backend")
}

func TestCreateInvalidatesCaches(t *testing.T) {
	client := &stubClient{createPayload: &sahaapi.ReviewPayload{
		ID:      "rev9",
		FieldID: "f1",
		UserID:  ptr.Ptr("u1"),
		Rating:  ptr.Ptr(5),
		Comment: ptr.Ptr("Harika saha"),
	}}
	reviewStore := &stubReviewCache{}
	fieldStore := &stubFieldCache{}
	svc := newTestService(t, client, reviewStore, fieldStore)

	resp, err := svc.Create(context.Background(), &models.CreateReviewRequest{
		Session: testSession(),
		FieldID: "f1",
		Rating:  5,
		Comment: "  Harika saha  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "rev9", resp.ID)
	assert.True(t, resp.IsMine)

	// Рейтинг поля пересчитывает бэкенд: сбрасываются оба кеша
	assert.Equal(t, []string{"f1"}, reviewStore.invalidated)
	assert.Equal(t, []string{"f1"}, fieldStore.invalidated)
}

func TestUpdateForeignReviewBlockedLocally(t *testing.T) {
	client := &stubClient{}
	store := &stubReviewCache{reviews: cachedReviews("u1")}
	svc := newTestService(t, client, store, &stubFieldCache{})

	_, err := svc.Update(context.Background(), &models.UpdateReviewRequest{
		Session:  testSession(),
		ReviewID: "rev2", // owned by u2
		FieldID:  "f1",
		Rating:   ptr.Ptr(1),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, client.updateCalls, "ownership check must precede the network call")
}

func TestUpdateUnknownReview(t *testing.T) {
	client := &stubClient{}
	store := &stubReviewCache{reviews: cachedReviews("u1")}
	svc := newTestService(t, client, store, &stubFieldCache{})

	_, err := svc.Update(context.Background(), &models.UpdateReviewRequest{
		Session:  testSession(),
		ReviewID: "missing",
		FieldID:  "f1",
		Rating:   ptr.Ptr(4),
	})
	assert.ErrorIs(t, err, ErrReviewNotFound)
	assert.Zero(t, client.updateCalls)
}

func TestUpdateOwnReview(t *testing.T) {
	client := &stubClient{updatePayload: &sahaapi.ReviewPayload{
		ID:      "rev1",
		FieldID: "f1",
		UserID:  ptr.Ptr("u1"),
		Rating:  ptr.Ptr(4),
		Comment: ptr.Ptr("Guncellendi"),
	}}
	reviewStore := &stubReviewCache{reviews: cachedReviews("u1")}
	fieldStore := &stubFieldCache{}
	svc := newTestService(t, client, reviewStore, fieldStore)

	resp, err := svc.Update(context.Background(), &models.UpdateReviewRequest{
		Session:  testSession(),
		ReviewID: "rev1",
		FieldID:  "f1",
		Rating:   ptr.Ptr(4),
		Comment:  ptr.Ptr("Guncellendi"),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Rating)
	assert.Equal(t, 1, client.updateCalls)
	assert.Equal(t, []string{"f1"}, reviewStore.invalidated)
	assert.Equal(t, []string{"f1"}, fieldStore.invalidated)
}

func TestDeleteForeignReviewBlockedLocally(t *testing.T) {
	client := &stubClient{}
	store := &stubReviewCache{reviews: cachedReviews("u1")}
	svc := newTestService(t, client, store, &stubFieldCache{})

	err := svc.Delete(context.Background(), &models.DeleteReviewRequest{
		Session:  testSession(),
		ReviewID: "rev2",
		FieldID:  "f1",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, client.deleteCalls)
}

func TestDeleteOwnReview(t *testing.T) {
	client := &stubClient{}
	reviewStore := &stubReviewCache{reviews: cachedReviews("u1")}
	fieldStore := &stubFieldCache{}
	svc := newTestService(t, client, reviewStore, fieldStore)

	err := svc.Delete(context.Background(), &models.DeleteReviewRequest{
		Session:  testSession(),
		ReviewID: "rev1",
		FieldID:  "f1",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, client.deleteCalls)
	assert.Equal(t, []string{"f1"}, reviewStore.invalidated)
	assert.Equal(t, []string{"f1"}, fieldStore.invalidated)
}
