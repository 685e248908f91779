package create_reservation

import (
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	"github.com/m04kA/HSB-ReservationService/internal/session"
	"github.com/m04kA/HSB-ReservationService/pkg/types"
)

// Outcome итог попытки создания бронирования
type Outcome string

const (
	// OutcomeConfirmed бэкенд подтвердил бронирование
	OutcomeConfirmed Outcome = "confirmed"

	// OutcomeRolledBack бэкенд отклонил бронирование, локальное
	// состояние не изменилось
	OutcomeRolledBack Outcome = "rolled_back"
)

// Request модель запроса на создание бронирования
type Request struct {
	Session        *session.Session // Сессия пользователя
	FieldID        string           // ID поля
	Date           time.Time        // Календарная дата слота
	Hour           types.TimeString // Метка часа ("14:00")
	Recurring      bool             // Еженедельное бронирование
	SubscriptionID *string          // ID абонемента (для recurring)
}

// Slot возвращает выбранный слот как единицу бронирования
func (r *Request) Slot() domain.TimeSlot {
	return domain.TimeSlot{Date: r.Date, Hour: r.Hour}
}

// Response модель ответа на создание бронирования
type Response struct {
	Outcome     Outcome             // Итог: confirmed или rolled_back
	Reservation *domain.Reservation // Созданное бронирование (при confirmed)
}
