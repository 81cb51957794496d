package models

import (
	"time"

	"github.com/agendabarber/AB-BookingService/internal/domain"
)

// Request modelos

// CreateBlockRequest requisição de criação de bloqueio de agenda
type CreateBlockRequest struct {
	UserID          int64     `json:"userId"`
	BarberID        int64     `json:"barberId"`
	Date            time.Time `json:"date"`
	StartTime       string    `json:"startTime"` // "14:00"
	DurationMinutes int       `json:"durationMinutes"`
	Reason          *string   `json:"reason,omitempty"`
}

// ListBlocksRequest requisição dos bloqueios de um barbeiro numa data
type ListBlocksRequest struct {
	UserID   int64     `json:"userId"`
	BarberID int64     `json:"barberId"`
	Date     time.Time `json:"date"`
}

// Response modelos

// BlockResponse resposta com os dados de um bloqueio
type BlockResponse struct {
	ID              int64     `json:"id"`
	BarberID        int64     `json:"barberId"`
	BlockDate       string    `json:"blockDate"` // "2025-10-15"
	StartTime       string    `json:"startTime"` // "14:00"
	DurationMinutes int       `json:"durationMinutes"`
	Reason          *string   `json:"reason,omitempty"`
	CreatedBy       int64     `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BlockListResponse resposta com lista de bloqueios
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// Conversões

// FromDomainBlock converte o modelo de domínio para DTO
func FromDomainBlock(b *domain.ScheduleBlock) *BlockResponse {
	if b == nil {
		return nil
	}

	return &BlockResponse{
		ID:              b.ID,
		BarberID:        b.BarberID,
		BlockDate:       b.BlockDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Reason:          b.Reason,
		CreatedBy:       b.CreatedBy,
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBlockList converte a lista de modelos de domínio para DTO
func FromDomainBlockList(blocks []*domain.ScheduleBlock) *BlockListResponse {
	resp := &BlockListResponse{
		Blocks: make([]BlockResponse, 0, len(blocks)),
	}

	for _, b := range blocks {
		resp.Blocks = append(resp.Blocks, *FromDomainBlock(b))
	}

	return resp
}
