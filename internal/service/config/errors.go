package config

import "errors"

var (
	// ErrConfigNotFound é retornado quando a configuração não é encontrada
	ErrConfigNotFound = errors.New("config not found")

	// ErrBarberNotFound é retornado quando o barbeiro não é encontrado
	ErrBarberNotFound = errors.New("barber not found")

	// ErrAccessDenied é retornado quando o usuário não tem permissão
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput é retornado para entrada inválida
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal é retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
