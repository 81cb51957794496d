package schedule

import "errors"

var (
	// ErrInvalidConfig é retornado quando a configuração de horário é inválida:
	// abertura >= fechamento, passo não positivo, duração não positiva,
	// janela de almoço fora do expediente ou aritmética cruzando a meia-noite.
	// A validação acontece antes de qualquer cálculo de slot - nunca há
	// resultado parcial.
	ErrInvalidConfig = errors.New("schedule: invalid configuration")
)
