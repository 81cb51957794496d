package block

import "github.com/agendabarber/AB-BookingService/pkg/dbmetrics"

// Reaproveitamos as interfaces do dbmetrics para acesso ao banco
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
