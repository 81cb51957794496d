package block

import "errors"

var (
	// ErrBlockNotFound é retornado quando o bloqueio não é encontrado
	ErrBlockNotFound = errors.New("block.repository: block not found")

	// ErrBuildQuery é retornado em erro de construção do SQL
	ErrBuildQuery = errors.New("block.repository: failed to build query")

	// ErrExecQuery é retornado em erro de execução do SQL
	ErrExecQuery = errors.New("block.repository: failed to execute query")

	// ErrScanRow é retornado em erro de leitura do resultado
	ErrScanRow = errors.New("block.repository: failed to scan row")
)
