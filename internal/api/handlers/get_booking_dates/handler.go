package get_booking_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendabarber/AB-BookingService/internal/api/handlers"
	getBookingDates "github.com/agendabarber/AB-BookingService/internal/usecase/get_booking_dates"
)

const (
	msgInvalidBarberID = "ID do barbeiro inválido"
	msgBarberNotFound  = "barbeiro não encontrado"
)

type Handler struct {
	useCase GetBookingDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/booking-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/booking-dates - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookingDates.Request{BarberID: barberID})
	if err != nil {
		switch {
		case errors.Is(err, getBookingDates.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/booking-dates - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getBookingDates.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/booking-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)

		default:
			h.logger.Error("GET /barbers/{id}/booking-dates - Failed to get dates: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/booking-dates - Dates retrieved: barber_id=%d, dates_count=%d",
		barberID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
