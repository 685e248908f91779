package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/api/middleware"
	"github.com/m04kA/HSB-ReservationService/internal/integrations/sahaapi"
	resModels "github.com/m04kA/HSB-ReservationService/internal/service/reservations/models"
	createReservation "github.com/m04kA/HSB-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrHour   = "некорректная дата или время слота"
	msgSelectionIncomplete = "выберите дату и время"
	msgPastSlot            = "нельзя забронировать слот в прошлом"
	msgSlotTaken           = "этот слот уже занят"
	msgFieldNotFound       = "поле не найдено"
	msgMissingSession      = "требуется авторизация"
)

type Handler struct {
	useCase      CreateReservationUseCase
	loc          *time.Location
	cancelNotice int
	editNotice   int
	logger       Logger
}

func NewHandler(useCase CreateReservationUseCase, loc *time.Location, cancelNoticeHours, editNoticeHours int, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		loc:          loc,
		cancelNotice: cancelNoticeHours,
		editNotice:   editNoticeHours,
		logger:       logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r)
	if !ok {
		h.logger.Warn("POST /reservations - Missing session")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sess, h.loc)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrHour)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrNotAuthenticated):
			h.logger.Warn("POST /reservations - Not authenticated: user_id=%s", sess.UserID)
			handlers.RespondUnauthorized(w, msgMissingSession)

		case errors.Is(err, createReservation.ErrSelectionIncomplete):
			h.logger.Warn("POST /reservations - Selection incomplete: user_id=%s", sess.UserID)
			handlers.RespondBadRequest(w, msgSelectionIncomplete)

		case errors.Is(err, createReservation.ErrPastSlot):
			h.logger.Warn("POST /reservations - Past slot: user_id=%s, field_id=%s", sess.UserID, req.FieldID)
			handlers.RespondBadRequest(w, msgPastSlot)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: user_id=%s, field_id=%s", sess.UserID, req.FieldID)
			handlers.RespondError(w, http.StatusConflict, backendMessage(err, msgSlotTaken))

		case errors.Is(err, createReservation.ErrFieldNotFound):
			h.logger.Warn("POST /reservations - Field not found: field_id=%s", req.FieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateOrHour)

		case errors.Is(err, createReservation.ErrBackendRejected):
			// Сообщение бэкенда отдаем дословно
			h.logger.Warn("POST /reservations - Backend rejected: user_id=%s, error=%v", sess.UserID, err)
			handlers.RespondError(w, http.StatusBadGateway, sahaapi.Message(err))

		default:
			h.logger.Error("POST /reservations - Failed: user_id=%s, field_id=%s, error=%v",
				sess.UserID, req.FieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &CreateReservationResponse{Outcome: string(result.Outcome)}
	if result.Reservation != nil {
		response.Reservation = resModels.FromDomainReservation(result.Reservation, time.Now(), h.loc, h.cancelNotice, h.editNotice)
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, user_id=%s, field_id=%s",
		result.Reservation.ID, sess.UserID, req.FieldID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// backendMessage достает дословное сообщение бэкенда из цепочки ошибок,
// при его отсутствии возвращает fallback
func backendMessage(err error, fallback string) string {
	var apiErr *sahaapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}
