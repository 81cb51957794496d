package catalogservice

import "errors"

var (
	// ErrShopNotFound é retornado quando a barbearia não existe no catálogo
	ErrShopNotFound = errors.New("shop not found")

	// ErrBarberNotFound é retornado quando o barbeiro não existe
	ErrBarberNotFound = errors.New("barber not found")

	// ErrServiceNotFound é retornado quando o serviço não existe
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal é retornado em erros internos do cliente
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse é retornado quando a resposta do catálogo é inválida
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
