package types

import (
	"fmt"
	"time"
)

// timeStringLayout formato canônico de horário (hora:minuto, 24h)
const timeStringLayout = "15:04"

const minutesInDay = 24 * 60

// TimeString representa um horário do dia no formato "HH:MM".
// O formato com zero à esquerda garante que comparação lexicográfica
// equivale à comparação cronológica.
type TimeString string

// NewTimeString cria um TimeString a partir de um time.Time (descarta a data)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString cria um TimeString validando o formato HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// NewTimeStringFromMinutes cria um TimeString a partir de minutos desde a meia-noite
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesInDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String retorna a representação "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero retorna true se o horário não foi preenchido
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate verifica que o valor está no formato canônico HH:MM
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	// time.Parse aceita formas não canônicas como "9:05"; exigimos zero à esquerda
	if parsed.Format(timeStringLayout) != string(t) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Minutes retorna o horário como minutos desde a meia-noite
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	parsed, _ := time.Parse(timeStringLayout, string(t))
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes soma minutos ao horário, com rollover de hora (09:45 + 30 = 10:15).
// Retorna erro se o resultado cruzar a meia-noite - horário comercial nunca cruza.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= minutesInDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}

	return NewTimeStringFromMinutes(total)
}

// IsBefore retorna true se t é estritamente anterior a other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter retorna true se t é estritamente posterior a other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Equal retorna true se os dois horários são iguais
func (t TimeString) Equal(other TimeString) bool {
	return t == other
}
