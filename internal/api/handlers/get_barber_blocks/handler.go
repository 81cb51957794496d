package get_barber_blocks

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/agendabarber/AB-BookingService/internal/api/handlers"
	"github.com/agendabarber/AB-BookingService/internal/api/middleware"
	"github.com/agendabarber/AB-BookingService/internal/domain"
	"github.com/agendabarber/AB-BookingService/internal/service/blocks"
	"github.com/agendabarber/AB-BookingService/internal/service/blocks/models"
)

const (
	msgInvalidBarberID = "ID do barbeiro inválido"
	msgMissingDate     = "data é obrigatória"
	msgInvalidDate     = "formato de data inválido, esperado YYYY-MM-DD"
	msgBarberNotFound  = "barbeiro não encontrado"
	msgAccessDenied    = "acesso negado"
	msgUnauthorized    = "usuário não autenticado"
)

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/blocks
// Query params: date (obrigatório, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /barbers/{id}/blocks - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/blocks - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /barbers/{id}/blocks - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/blocks - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListBlocksRequest{
		UserID:   userID,
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/blocks - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, blocks.ErrAccessDenied):
			h.logger.Warn("GET /barbers/{id}/blocks - Access denied: barber_id=%d, user_id=%d", barberID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)

		default:
			h.logger.Error("GET /barbers/{id}/blocks - Failed to list blocks: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/blocks - Blocks retrieved: barber_id=%d, date=%s, count=%d",
		barberID, dateStr, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
