package get_booking_dates

import (
	"context"

	getBookingDates "github.com/agendabarber/AB-BookingService/internal/usecase/get_booking_dates"
)

type GetBookingDatesUseCase interface {
	Execute(ctx context.Context, req *getBookingDates.Request) (*getBookingDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
