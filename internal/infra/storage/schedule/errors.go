package schedule

import "errors"

var (
	// ErrConfigNotFound é retornado quando a configuração não é encontrada
	ErrConfigNotFound = errors.New("schedule.repository: config not found")

	// ErrBuildQuery é retornado em erro de construção do SQL
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery é retornado em erro de execução do SQL
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow é retornado em erro de leitura do resultado
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
