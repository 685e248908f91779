package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/HSB-ReservationService/internal/usecase/get_availability"
)

const (
	msgMissingFieldID = "отсутствует ID поля"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgFieldNotFound  = "поле не найдено"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID := mux.Vars(r)["fieldId"]
	if fieldID == "" {
		h.logger.Warn("GET /fields/{id}/availability - Missing field ID")
		handlers.RespondBadRequest(w, msgMissingFieldID)
		return
	}

	// Дата парсится в таймзоне политики, а не в UTC
	date, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("date"), h.loc)
	if err != nil {
		h.logger.Warn("GET /fields/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		FieldID: fieldID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{id}/availability - Field not found: field_id=%s", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /fields/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /fields/{id}/availability - Failed: field_id=%s, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /fields/{id}/availability - Availability retrieved: field_id=%s, date=%s",
		fieldID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
