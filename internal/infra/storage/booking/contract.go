package booking

import (
	"context"
	"database/sql"

	"github.com/agendabarber/AB-BookingService/pkg/dbmetrics"
)

// Reaproveitamos as interfaces do dbmetrics para acesso ao banco
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface para iniciar transações
// Suporta *sql.DB e *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
