package get_available_slots

import (
	"time"

	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// Request modelo de requisição de horários disponíveis
type Request struct {
	BarberID  int64     // ID do barbeiro
	ServiceID int64     // ID do serviço (define a duração do atendimento)
	Date      time.Time // Data consultada (sem horário)
}

// Response modelo de resposta com os horários livres
type Response struct {
	Date            time.Time          // Data consultada
	BarberID        int64              // ID do barbeiro
	ServiceID       int64              // ID do serviço
	DurationMinutes int                // Duração do atendimento
	Slots           []types.TimeString // Horários de início disponíveis, em ordem
}
