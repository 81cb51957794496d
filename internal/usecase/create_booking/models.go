package create_booking

import (
	"time"

	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// Request modelo de requisição de criação de agendamento
type Request struct {
	CustomerID   int64            // ID do cliente
	CustomerName string           // Nome do cliente (denormalizado no agendamento)
	BarberID     int64            // ID do barbeiro
	ServiceID    int64            // ID do serviço
	Date         time.Time        // Data do agendamento (sem horário)
	StartTime    types.TimeString // Horário de início ("10:00")
	Notes        *string          // Observações (opcional)
}

// Response modelo de resposta com o agendamento criado
type Response struct {
	ID              int64            // ID do agendamento criado
	CustomerID      int64            // ID do cliente
	BarberID        int64            // ID do barbeiro
	ServiceID       int64            // ID do serviço
	BookingDate     time.Time        // Data do agendamento
	StartTime       types.TimeString // Horário de início
	EndTime         types.TimeString // Horário de término (início + duração)
	DurationMinutes int              // Duração em minutos
	Status          string           // Status do agendamento

	// Dados denormalizados
	CustomerName string  // Nome do cliente
	ServiceName  string  // Nome do serviço
	ServicePrice float64 // Preço do serviço
	Notes        *string // Observações

	CreatedAt time.Time // Criado em
	UpdatedAt time.Time // Atualizado em
}
