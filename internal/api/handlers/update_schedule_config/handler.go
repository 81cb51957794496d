package update_schedule_config

import (
	"errors"
	"net/http"

	"github.com/agendabarber/AB-BookingService/internal/api/handlers"
	"github.com/agendabarber/AB-BookingService/internal/api/middleware"
	configService "github.com/agendabarber/AB-BookingService/internal/service/config"
)

const (
	msgInvalidBody    = "corpo da requisição inválido"
	msgBarberNotFound = "barbeiro não encontrado"
	msgAccessDenied   = "acesso negado"
	msgInvalidConfig  = "configuração de horários inválida"
	msgUnauthorized   = "usuário não autenticado"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /schedule-config - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpsertConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrBarberNotFound):
			h.logger.Warn("PUT /schedule-config - Barber not found: barber_id=%v", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, configService.ErrAccessDenied):
			h.logger.Warn("PUT /schedule-config - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, configService.ErrInvalidInput):
			h.logger.Warn("PUT /schedule-config - Invalid config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /schedule-config - Failed to upsert config: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule-config - Config saved: config_id=%d, barber_id=%v, user_id=%d",
		result.ID, req.BarberID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
