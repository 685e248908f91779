package get_availability

import (
	"github.com/m04kA/HSB-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/HSB-ReservationService/internal/usecase/get_availability"
)

// SlotResponse один час дневной сетки
type SlotResponse struct {
	Hour   string `json:"hour"`
	Booked bool   `json:"booked"`
	Past   bool   `json:"past"`
}

// AvailabilityResponse HTTP response model дневной сетки доступности
type AvailabilityResponse struct {
	FieldID     string         `json:"fieldId"`
	Date        string         `json:"date"`
	OpenHour    string         `json:"openHour"`
	CloseHour   string         `json:"closeHour"`
	Slots       []SlotResponse `json:"slots"`
	BookedHours []string       `json:"bookedHours"`
	FreeSlots   int            `json:"freeSlots"`
	FreeKnown   bool           `json:"freeKnown"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Hour:   s.Hour.String(),
			Booked: s.Booked,
			Past:   s.Past,
		})
	}

	bookedHours := make([]string, 0, len(resp.BookedLabels))
	for _, label := range resp.BookedLabels {
		bookedHours = append(bookedHours, label.String())
	}

	return &AvailabilityResponse{
		FieldID:     resp.FieldID,
		Date:        resp.Date.Format(domain.DateFormat),
		OpenHour:    resp.OpenHour.String(),
		CloseHour:   resp.CloseHour.String(),
		Slots:       slots,
		BookedHours: bookedHours,
		FreeSlots:   resp.FreeCount,
		FreeKnown:   resp.CountKnown,
	}
}
