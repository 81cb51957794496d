package get_booking_dates

import "time"

// Request modelo de requisição das datas disponíveis para agendamento
type Request struct {
	BarberID int64 // ID do barbeiro
}

// BookingDate uma data dentro da janela de agendamento
type BookingDate struct {
	Date  time.Time // A data, sem horário
	Label string    // Rótulo amigável ("Seg, 10 de Março")
	Open  bool      // A barbearia atende nesse dia da semana?
}

// Response modelo de resposta com a janela de agendamento
type Response struct {
	BarberID int64         // ID do barbeiro
	Dates    []BookingDate // Hoje + advance_booking_days datas, em ordem
}
