package get_fields

import (
	"net/http"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/service/fields/models"
)

type Handler struct {
	service FieldService
	logger  Logger
}

func NewHandler(service FieldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// FieldListResponse ответ со списком карточек полей
type FieldListResponse struct {
	Fields []models.FieldCard `json:"fields"`
	Total  int                `json:"total"`
}

// Handle GET /api/v1/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.ListFields(r.Context())
	if err != nil {
		h.logger.Error("GET /fields - Failed to list fields: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /fields - Returned %d fields", len(cards))
	handlers.RespondJSON(w, http.StatusOK, FieldListResponse{
		Fields: cards,
		Total:  len(cards),
	})
}
