package create_reservation

import (
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
	resModels "github.com/m04kA/HSB-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/HSB-ReservationService/internal/session"
	createReservation "github.com/m04kA/HSB-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/HSB-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FieldID        string  `json:"fieldId"`
	Date           string  `json:"date"` // "2026-08-30"
	Hour           string  `json:"hour"` // "14:00"
	Recurring      bool    `json:"isRecurring,omitempty"`
	SubscriptionID *string `json:"subscriptionId,omitempty"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Outcome     string                         `json:"outcome"` // confirmed | rolled_back
	Reservation *resModels.ReservationResponse `json:"reservation,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пустые дата и час не считаются ошибкой парсинга: usecase различает
// неполный выбор и некорректный ввод.
func (r *CreateReservationRequest) ToUseCaseRequest(sess *session.Session, loc *time.Location) (*createReservation.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	var hour types.TimeString
	if r.Hour != "" {
		parsed, err := types.NewTimeStringFromString(r.Hour)
		if err != nil {
			return nil, err
		}
		hour = parsed
	}

	return &createReservation.Request{
		Session:        sess,
		FieldID:        r.FieldID,
		Date:           date,
		Hour:           hour,
		Recurring:      r.Recurring,
		SubscriptionID: r.SubscriptionID,
	}, nil
}
