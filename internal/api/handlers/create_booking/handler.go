package create_booking

import (
	"errors"
	"net/http"

	"github.com/agendabarber/AB-BookingService/internal/api/handlers"
	"github.com/agendabarber/AB-BookingService/internal/api/middleware"
	createBooking "github.com/agendabarber/AB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidBody      = "corpo da requisição inválido"
	msgInvalidDate      = "formato de data inválido, esperado YYYY-MM-DD"
	msgBarberNotFound   = "barbeiro não encontrado"
	msgServiceNotFound  = "serviço não encontrado"
	msgDateInPast       = "a data não pode estar no passado"
	msgDateTooFar       = "data além da janela de agendamento"
	msgShopClosed       = "a barbearia não atende nesta data"
	msgSlotNotAvailable = "horário indisponível"
	msgInvalidTimeSlot  = "horário fora da grade de atendimento"
	msgTooLateToBook    = "horário muito próximo, escolha outro"
	msgInvalidInput     = "dados de agendamento inválidos"
	msgUnauthorized     = "usuário não autenticado"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrBarberNotFound):
			h.logger.Warn("POST /bookings - Barber not found: barber_id=%d", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in past: customer_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date beyond horizon: customer_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrShopClosed):
			h.logger.Warn("POST /bookings - Shop closed: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgShopClosed)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: barber_id=%d, date=%s, start=%s",
				req.BarberID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Time slot off grid: barber_id=%d, start=%s", req.BarberID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: barber_id=%d, date=%s, start=%s",
				req.BarberID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, barber_id=%d, error=%v",
				userID, req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, customer_id=%d, barber_id=%d, date=%s, start=%s",
		result.ID, userID, result.BarberID, req.Date, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
