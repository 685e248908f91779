package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/infra/cache"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	"github.com/m04kA/HSB-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/HSB-ReservationService/internal/session"
	"github.com/m04kA/HSB-ReservationService/pkg/ptr"
)

// Service сервис для работы с бронированиями пользователя.
// Бэкенд - единственный владелец данных: кеш хранит только снимки,
// после мутаций авторитетный ответ бэкенда замещает локальные копии.
type Service struct {
	client           SahaAPIClient
	reservationCache ReservationCache
	transformer      Transformer
	timeProvider     TimeProvider
	loc              *time.Location
	cancelNotice     int // Минимум часов до начала для отмены
	editNotice       int // Минимум часов до начала для переноса
	logger           Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	client SahaAPIClient,
	reservationCache ReservationCache,
	transformer Transformer,
	loc *time.Location,
	cancelNoticeHours int,
	editNoticeHours int,
	logger Logger,
) *Service {
	return &Service{
		client:           client,
		reservationCache: reservationCache,
		transformer:      transformer,
		timeProvider:     &RealTimeProvider{},
		loc:              loc,
		cancelNotice:     cancelNoticeHours,
		editNotice:       editNoticeHours,
		logger:           logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только собственные бронирования.
func (s *Service) GetByID(ctx context.Context, sess *session.Session, reservationID string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for user=%s", reservationID, sess.UserID)

	reservation, err := s.fetchReservation(ctx, sess, reservationID)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if reservation.UserID != sess.UserID {
		s.logger.Warn("GetByID: access denied for user=%s to reservation id=%s", sess.UserID, reservationID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(reservation, s.timeProvider.Now(), s.loc, s.cancelNotice, s.editNotice), nil
}

// GetUserReservations получает историю бронирований пользователя (newest-first)
func (s *Service) GetUserReservations(ctx context.Context, sess *session.Session) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%s", sess.UserID)

	now := s.timeProvider.Now()

	cached, err := s.reservationCache.GetUserReservations(ctx, sess.UserID)
	if err == nil {
		return models.FromDomainReservationList(cached, now, s.loc, s.cancelNotice, s.editNotice), nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("GetUserReservations: cache error for user=%s: %v", sess.UserID, err)
	}

	raw, err := s.client.ListUserReservations(ctx, sess.Token)
	if err != nil {
		s.logger.Error("GetUserReservations: backend error for user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - backend error: %v", ErrInternal, err)
	}

	// Тотальная нормализация: нечитаемые записи пропускаются
	list := s.transformer.Reservations(raw)
	if err := s.reservationCache.SetUserReservations(ctx, sess.UserID, list); err != nil {
		s.logger.Warn("GetUserReservations: failed to cache list for user=%s: %v", sess.UserID, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%s", len(list), sess.UserID)
	return models.FromDomainReservationList(list, now, s.loc, s.cancelNotice, s.editNotice), nil
}

// Cancel отменяет бронирование пользователя.
// Локальные проверки (владение, статус, срок до начала) отсекают
// заведомо недопустимые запросы, затем отмену подтверждает бэкенд.
func (s *Service) Cancel(ctx context.Context, sess *session.Session, reservationID string) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%s by user=%s", reservationID, sess.UserID)

	reservation, err := s.fetchReservation(ctx, sess, reservationID)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if reservation.UserID != sess.UserID {
		s.logger.Warn("Cancel: access denied for user=%s to reservation id=%s", sess.UserID, reservationID)
		return nil, ErrAccessDenied
	}

	// Проверяем допустимость перехода и политику срока отмены
	now := s.timeProvider.Now()
	if !reservation.CanTransitionTo(domain.StatusCancelled) || !reservation.CanBeCancelledAt(now, s.cancelNotice) {
		s.logger.Warn("Cancel: reservation id=%s cannot be cancelled, status=%s, starts=%s",
			reservationID, reservation.Status, reservation.Instant.Format(time.RFC3339))
		return nil, ErrCannotCancel
	}

	// Отправляем отмену на бэкенд
	payload, err := s.client.UpdateReservation(ctx, sess.Token, reservationID, &sahaapi.UpdateReservationRequest{
		Status: ptr.Ptr(string(domain.StatusCancelled)),
	})
	if err != nil {
		s.logger.Warn("Cancel: backend rejected cancellation of reservation id=%s: %v", reservationID, err)
		return nil, s.mapBackendError(err)
	}

	// Авторитетный ответ замещает локальные копии
	cancelled, err := s.transformer.Reservation(payload)
	if err != nil {
		s.logger.Error("Cancel: malformed backend response for reservation id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: malformed backend response: %v", ErrInternal, err)
	}

	if err := s.reservationCache.ReplaceReservation(ctx, cancelled); err != nil {
		s.logger.Warn("Cancel: failed to update cache for reservation id=%s: %v", reservationID, err)
	}
	if err := s.reservationCache.InvalidateField(ctx, cancelled.FieldID); err != nil {
		s.logger.Warn("Cancel: failed to invalidate field cache id=%s: %v", cancelled.FieldID, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", reservationID)
	return models.FromDomainReservation(cancelled, now, s.loc, s.cancelNotice, s.editNotice), nil
}

// fetchReservation читает бронирование из кеша, при промахе - с бэкенда
func (s *Service) fetchReservation(ctx context.Context, sess *session.Session, reservationID string) (*domain.Reservation, error) {
	cached, err := s.reservationCache.GetReservation(ctx, reservationID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("fetchReservation: cache error for id=%s: %v", reservationID, err)
	}

	payload, err := s.client.GetReservation(ctx, sess.Token, reservationID)
	if err != nil {
		if errors.Is(err, sahaapi.ErrNotFound) {
			s.logger.Warn("fetchReservation: reservation id=%s not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("fetchReservation: backend error for id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: fetchReservation - backend error: %v", ErrInternal, err)
	}

	reservation, err := s.transformer.Reservation(payload)
	if err != nil {
		s.logger.Error("fetchReservation: malformed backend response for id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: malformed backend response: %v", ErrInternal, err)
	}

	if err := s.reservationCache.SetReservation(ctx, reservation); err != nil {
		s.logger.Warn("fetchReservation: failed to cache reservation id=%s: %v", reservationID, err)
	}

	return reservation, nil
}

// mapBackendError конвертирует ошибку бэкенда в ошибку сервиса.
// Исходная ошибка остается в цепочке: хендлер достает из нее
// дословное сообщение бэкенда для показа пользователю.
func (s *Service) mapBackendError(err error) error {
	switch {
	case errors.Is(err, sahaapi.ErrNotFound):
		return ErrReservationNotFound
	case errors.Is(err, sahaapi.ErrUnauthorized):
		return ErrAccessDenied
	case errors.Is(err, sahaapi.ErrConflict):
		return fmt.Errorf("%w: %w", ErrCannotCancel, err)
	default:
		return fmt.Errorf("%w: %w", ErrBackendRejected, err)
	}
}
