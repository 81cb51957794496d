package create_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendabarber/AB-BookingService/internal/api/handlers"
	"github.com/agendabarber/AB-BookingService/internal/api/middleware"
	"github.com/agendabarber/AB-BookingService/internal/service/blocks"
)

const (
	msgInvalidBarberID = "ID do barbeiro inválido"
	msgInvalidBody     = "corpo da requisição inválido"
	msgInvalidDate     = "formato de data inválido, esperado YYYY-MM-DD"
	msgBarberNotFound  = "barbeiro não encontrado"
	msgAccessDenied    = "acesso negado"
	msgInvalidBlock    = "dados do bloqueio inválidos"
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

// Handle POST /api/v1/barbers/{barberId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /barbers/{id}/blocks - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /barbers/{id}/blocks - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID, barberID)
	if err != nil {
		h.logger.Warn("POST /barbers/{id}/blocks - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrBarberNotFound):
			h.logger.Warn("POST /barbers/{id}/blocks - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, blocks.ErrAccessDenied):
			h.logger.Warn("POST /barbers/{id}/blocks - Access denied: barber_id=%d, user_id=%d", barberID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /barbers/{id}/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		default:
			h.logger.Error("POST /barbers/{id}/blocks - Failed to create block: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbers/{id}/blocks - Block created: block_id=%d, barber_id=%d, user_id=%d",
		result.ID, barberID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
