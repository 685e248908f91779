package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	fieldsService "github.com/m04kA/HSB-ReservationService/internal/service/fields"
)

// UseCase use case для создания бронирования.
// Владелец данных - бэкенд: локальная проверка конфликтов только
// отсекает заведомо проигрышные запросы, финальное слово за ответом
// бэкенда.
type UseCase struct {
	fieldProvider    FieldProvider
	client           SahaAPIClient
	reservationCache ReservationCache
	transformer      Transformer
	timeProvider     TimeProvider
	loc              *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	fieldProvider FieldProvider,
	client SahaAPIClient,
	reservationCache ReservationCache,
	transformer Transformer,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		fieldProvider:    fieldProvider,
		client:           client,
		reservationCache: reservationCache,
		transformer:      transformer,
		timeProvider:     &RealTimeProvider{},
		loc:              loc,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных и сессии
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: user=%s, field=%s, date=%s, hour=%s",
		req.Session.UserID, req.FieldID, req.Date.Format(domain.DateFormat), req.Hour)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем нормализованное поле (кеш или бэкенд)
	field, err := uc.fieldProvider.GetField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldsService.ErrFieldNotFound) {
			uc.logger.Warn("CreateReservation: field id=%s not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("CreateReservation: failed to get field id=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 4. Проверяем слот по локальному снимку занятости
	if err := uc.validateSlot(req, field.BookedSlots, now); err != nil {
		return nil, err
	}

	// 5. Предполётная проверка по свежему снимку бэкенда.
	// Совещательная: недоступность бэкенда не блокирует попытку,
	// подтверждённый конфликт - блокирует.
	if err := uc.preflightCheck(ctx, req); err != nil {
		return nil, err
	}

	// 6. Отправляем бронирование на бэкенд
	instant, err := req.Slot().Instant(uc.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build slot instant: %v", ErrInternal, err)
	}

	payload, err := uc.client.CreateReservation(ctx, req.Session.Token, &sahaapi.CreateReservationRequest{
		UserID:         req.Session.UserID,
		FieldID:        req.FieldID,
		Date:           instant.Format(time.RFC3339),
		Status:         string(domain.StatusPending),
		Recurring:      req.Recurring,
		SubscriptionID: req.SubscriptionID,
	})
	if err != nil {
		// Отказ бэкенда: локальное состояние не трогаем, кеш остаётся
		// как был до попытки
		uc.logger.Warn("CreateReservation: backend rejected reservation for user=%s, field=%s: %v",
			req.Session.UserID, req.FieldID, err)
		return &Response{Outcome: OutcomeRolledBack}, uc.mapBackendError(err)
	}

	// 7. Нормализуем подтверждённое бронирование
	reservation, err := uc.transformer.Reservation(payload)
	if err != nil {
		// Бронирование создано, но ответ нечитаем: сбрасываем кеши,
		// чтобы следующее чтение ушло на бэкенд
		uc.logger.Error("CreateReservation: malformed backend response for user=%s: %v", req.Session.UserID, err)
		uc.invalidate(ctx, req.FieldID)
		return nil, fmt.Errorf("%w: malformed backend response: %v", ErrInternal, err)
	}

	// 8. Обновляем кеш: новое бронирование в голову списка, снимок
	// занятости поля сбрасываем (не правим)
	if err := uc.reservationCache.PushReservation(ctx, reservation); err != nil {
		uc.logger.Warn("CreateReservation: failed to cache reservation id=%s: %v", reservation.ID, err)
	}
	uc.invalidate(ctx, req.FieldID)

	uc.logger.Info("CreateReservation: successfully created reservation id=%s for user=%s",
		reservation.ID, req.Session.UserID)

	return &Response{
		Outcome:     OutcomeConfirmed,
		Reservation: reservation,
	}, nil
}

// validateSlot проверяет слот по локальному снимку занятости поля
func (uc *UseCase) validateSlot(req *Request, booked domain.BookedSlotSet, now time.Time) error {
	err := domain.ValidateSlot(req.Slot(), booked, now, uc.loc)
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrSelectionIncomplete):
		uc.logger.Warn("CreateReservation: selection incomplete for user=%s", req.Session.UserID)
		return ErrSelectionIncomplete
	case errors.Is(err, domain.ErrPastSlot):
		uc.logger.Warn("CreateReservation: past slot for user=%s: %v", req.Session.UserID, err)
		return ErrPastSlot
	case errors.Is(err, domain.ErrSlotTaken):
		uc.logger.Warn("CreateReservation: slot conflict for user=%s: %v", req.Session.UserID, err)
		return ErrSlotTaken
	case errors.Is(err, domain.ErrInvalidHourLabel):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: slot validation failed: %v", ErrInternal, err)
	}
}

// preflightCheck сверяет слот со свежим снимком занятости бэкенда
func (uc *UseCase) preflightCheck(ctx context.Context, req *Request) error {
	payload, err := uc.client.GetField(ctx, req.FieldID)
	if err != nil {
		// Совещательная проверка: бэкенд недоступен - продолжаем,
		// финальную проверку сделает сам бэкенд при создании
		uc.logger.Warn("CreateReservation: preflight snapshot unavailable for field=%s: %v", req.FieldID, err)
		return nil
	}

	booked := uc.transformer.ParseInstants(payload.BookedDates)
	instant, err := req.Slot().Instant(uc.loc)
	if err != nil {
		return fmt.Errorf("%w: failed to build slot instant: %v", ErrInternal, err)
	}

	if booked.Contains(instant) {
		uc.logger.Warn("CreateReservation: preflight conflict for field=%s, slot=%s %s",
			req.FieldID, req.Date.Format(domain.DateFormat), req.Hour)
		return ErrSlotTaken
	}

	return nil
}

// mapBackendError конвертирует ошибку бэкенда в ошибку usecase.
// Исходная ошибка остается в цепочке: хендлер достает из нее
// дословное сообщение бэкенда для показа пользователю.
func (uc *UseCase) mapBackendError(err error) error {
	if errors.Is(err, sahaapi.ErrConflict) {
		return fmt.Errorf("%w: %w", ErrSlotTaken, err)
	}
	if errors.Is(err, sahaapi.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	if errors.Is(err, sahaapi.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrFieldNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrBackendRejected, err)
}

// invalidate сбрасывает кешированный снимок занятости поля
func (uc *UseCase) invalidate(ctx context.Context, fieldID string) {
	if err := uc.reservationCache.InvalidateField(ctx, fieldID); err != nil {
		uc.logger.Warn("CreateReservation: failed to invalidate field cache id=%s: %v", fieldID, err)
	}
}
