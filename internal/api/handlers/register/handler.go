package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/service/auth"
	"github.com/m04kA/HSB-ReservationService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "укажите имя, email и пароль"
	msgEmailTaken         = "этот email уже зарегистрирован"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input")
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, auth.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email taken: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/register - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Registration successful: user_id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
