package models

import (
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/domain"
)

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID             string  `json:"id"`
	FieldID        string  `json:"fieldId"`
	FieldName      string  `json:"fieldName"`
	Date           string  `json:"date"`    // "2026-08-30"
	Hour           string  `json:"hour"`    // "14:00"
	Instant        string  `json:"instant"` // ISO-8601
	Status         string  `json:"status"`  // pending | approved | cancelled
	Recurring      bool    `json:"isRecurring"`
	SubscriptionID *string `json:"subscriptionId,omitempty"`
	PricePerHour   float64 `json:"pricePerHour"`
	CanCancel      bool    `json:"canCancel"` // Укладывается ли отмена в политику
	CanEdit        bool    `json:"canEdit"`   // Укладывается ли перенос в политику
	CreatedAt      string  `json:"createdAt,omitempty"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain бронирование в response.
// Дата и час отображаются в таймзоне политики, canCancel и canEdit
// вычисляются на момент now.
func FromDomainReservation(r *domain.Reservation, now time.Time, loc *time.Location, cancelNoticeHours, editNoticeHours int) *ReservationResponse {
	date, hour := domain.FromInstant(r.Instant, loc)

	resp := &ReservationResponse{
		ID:             r.ID,
		FieldID:        r.FieldID,
		FieldName:      r.FieldName,
		Date:           date.Format(domain.DateFormat),
		Hour:           string(hour),
		Instant:        r.Instant.Format(time.RFC3339),
		Status:         string(r.Status),
		Recurring:      r.Recurring,
		SubscriptionID: r.SubscriptionID,
		PricePerHour:   r.PricePerHour,
		CanCancel:      r.CanBeCancelledAt(now, cancelNoticeHours),
		CanEdit:        r.CanBeEditedAt(now, editNoticeHours),
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// FromDomainReservationList конвертирует список domain бронирований в response
func FromDomainReservationList(list []domain.Reservation, now time.Time, loc *time.Location, cancelNoticeHours, editNoticeHours int) *ReservationListResponse {
	reservations := make([]ReservationResponse, 0, len(list))
	for i := range list {
		reservations = append(reservations, *FromDomainReservation(&list[i], now, loc, cancelNoticeHours, editNoticeHours))
	}
	return &ReservationListResponse{
		Reservations: reservations,
		Total:        len(reservations),
	}
}
