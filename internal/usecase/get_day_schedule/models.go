package get_day_schedule

import (
	"time"

	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// Request modelo de requisição da grade do dia
type Request struct {
	BarberID  int64     // ID do barbeiro
	ServiceID int64     // ID do serviço (define a duração dos slots)
	Date      time.Time // Data consultada
}

// Slot uma posição da grade do dia
type Slot struct {
	Start     types.TimeString // Horário de início
	End       types.TimeString // Horário de término (início + duração do serviço)
	Available bool             // O serviço cabe começando aqui?
	Ref       string           // Ocupante que invalida o início ("booking:<id>" / "block:<id>"), vazio se livre
}

// Response modelo de resposta com a grade completa do dia
type Response struct {
	Date            time.Time // Data consultada
	BarberID        int64     // ID do barbeiro
	ServiceID       int64     // ID do serviço
	DurationMinutes int       // Duração do atendimento
	Open            bool      // A barbearia atende nesse dia da semana?
	Slots           []Slot    // Grade completa, um item por início possível
}
