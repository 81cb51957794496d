package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateWithinHorizon_InclusiveBounds(t *testing.T) {
	// "Hoje" com componente de horário para garantir comparação só de data
	now := time.Date(2025, 3, 10, 14, 37, 22, 0, time.UTC)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"hoje", today, true},
		{"hoje com horário", today.Add(23 * time.Hour), true},
		{"meio da janela", today.AddDate(0, 0, 10), true},
		{"último dia da janela", today.AddDate(0, 0, 15), true},
		{"ontem", today.AddDate(0, 0, -1), false},
		{"um dia além da janela", today.AddDate(0, 0, 16), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateWithinHorizon(tt.date, now, 15))
		})
	}
}

func TestDateWithinHorizon_ZeroDaysAhead(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.True(t, DateWithinHorizon(now, now, 0))
	assert.False(t, DateWithinHorizon(now.AddDate(0, 0, 1), now, 0))
}

func TestDateWithinHorizon_NegativeDaysAhead(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.False(t, DateWithinHorizon(now, now, -1))
}

func TestHorizonDates_LengthAndOrder(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC)

	dates := HorizonDates(now, 15)
	require.Len(t, dates, 16) // daysAhead + 1, inclusivo nas duas pontas

	assert.True(t, dates[0].Date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, 24*time.Hour, dates[i].Date.Sub(dates[i-1].Date))
	}

	// Toda data enumerada é válida para agendamento e vice-versa
	for _, d := range dates {
		assert.True(t, DateWithinHorizon(d.Date, now, 15))
	}
	assert.False(t, DateWithinHorizon(dates[len(dates)-1].Date.AddDate(0, 0, 1), now, 15))
}

func TestHorizonDates_ZeroAndNegative(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	dates := HorizonDates(now, 0)
	require.Len(t, dates, 1)
	assert.True(t, dates[0].Date.Equal(DateOnly(now)))

	assert.Empty(t, HorizonDates(now, -3))
}

func TestHorizonDates_Labels(t *testing.T) {
	// 10/03/2025 é uma segunda-feira
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	dates := HorizonDates(now, 2)
	require.Len(t, dates, 3)
	assert.Equal(t, "Seg, 10 de Março", dates[0].Label)
	assert.Equal(t, "Ter, 11 de Março", dates[1].Label)
	assert.Equal(t, "Qua, 12 de Março", dates[2].Label)
}

func TestSameDayAndDateInPast(t *testing.T) {
	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(morning, nextDay))

	assert.True(t, DateInPast(morning, nextDay))
	assert.False(t, DateInPast(nextDay, morning))
	assert.False(t, DateInPast(morning, evening))
}
