package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/service/fields"
)

// UseCase use case построения дневной сетки доступности поля
type UseCase struct {
	fieldProvider FieldProvider
	timeProvider  TimeProvider
	loc           *time.Location
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(fieldProvider FieldProvider, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		fieldProvider: fieldProvider,
		timeProvider:  &RealTimeProvider{},
		loc:           loc,
		logger:        logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: field=%s, date=%s", req.FieldID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.FieldID == "" {
		return nil, fmt.Errorf("%w: fieldID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем нормализованное поле (кеш или бэкенд)
	field, err := uc.fieldProvider.GetField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fields.ErrFieldNotFound) {
			uc.logger.Warn("GetAvailability: field id=%s not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetAvailability: failed to get field id=%s: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 4. Занятые часы на дату: фильтрация по календарной дате в таймзоне
	// политики, хронологический порядок
	bookedLabels := field.BookedSlots.OnDate(req.Date, uc.loc).Labels(uc.loc)

	// 5. Сетка слотов рабочего окна
	grid := slotGrid(req.Date, field.OpenHour, field.CloseHour, field.BookedSlots, now, uc.loc)

	// 6. Грубая оценка свободной емкости generic-дня (для карточек)
	freeCount, countKnown := domain.CountAvailable(field.OpenHour, field.CloseHour, len(field.BookedSlots))
	if !countKnown {
		uc.logger.Warn("GetAvailability: field id=%s has unparsable operating hours (%q - %q)",
			req.FieldID, field.OpenHour, field.CloseHour)
	}

	uc.logger.Info("GetAvailability: field=%s, date=%s, slots=%d, booked=%d",
		req.FieldID, req.Date.Format(domain.DateFormat), len(grid), len(bookedLabels))

	return &Response{
		FieldID:      req.FieldID,
		Date:         req.Date,
		OpenHour:     field.OpenHour,
		CloseHour:    field.CloseHour,
		Slots:        grid,
		BookedLabels: bookedLabels,
		FreeCount:    freeCount,
		CountKnown:   countKnown,
	}, nil
}
