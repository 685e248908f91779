package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/service/auth"
	"github.com/m04kA/HSB-ReservationService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "укажите email и пароль"
	msgInvalidCredentials = "неверный email или пароль"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input")
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials for email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Login successful: user_id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
