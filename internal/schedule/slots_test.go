package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendabarber/AB-BookingService/pkg/ptr"
	"github.com/agendabarber/AB-BookingService/pkg/types"
)

func workingHours(step int) WorkingHours {
	return WorkingHours{
		Open:        "09:00",
		Close:       "18:00",
		StepMinutes: step,
	}
}

func TestGrid_FixedStep(t *testing.T) {
	grid, err := Grid(workingHours(30))
	require.NoError(t, err)

	// 9 horas de expediente / 30 min = 18 candidatos, 09:00..17:30
	require.Len(t, grid, 18)
	assert.Equal(t, types.TimeString("09:00"), grid[0])
	assert.Equal(t, types.TimeString("09:30"), grid[1])
	assert.Equal(t, types.TimeString("17:30"), grid[len(grid)-1])

	// Estritamente crescente, sem duplicatas
	for i := 1; i < len(grid); i++ {
		assert.True(t, grid[i-1].IsBefore(grid[i]))
	}
}

func TestGrid_Deterministic(t *testing.T) {
	first, err := Grid(workingHours(20))
	require.NoError(t, err)
	second, err := Grid(workingHours(20))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 27) // 540 / 20
}

func TestGrid_ExcludesCloseTime(t *testing.T) {
	grid, err := Grid(workingHours(30))
	require.NoError(t, err)

	for _, slot := range grid {
		assert.True(t, slot.IsBefore("18:00"), "slot %s deveria ser anterior ao fechamento", slot)
	}
}

func TestGrid_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		wh   WorkingHours
	}{
		{"abertura depois do fechamento", WorkingHours{Open: "18:00", Close: "09:00", StepMinutes: 30}},
		{"abertura igual ao fechamento", WorkingHours{Open: "09:00", Close: "09:00", StepMinutes: 30}},
		{"passo zero", WorkingHours{Open: "09:00", Close: "18:00", StepMinutes: 0}},
		{"passo negativo", WorkingHours{Open: "09:00", Close: "18:00", StepMinutes: -15}},
		{"horário malformado", WorkingHours{Open: "9h00", Close: "18:00", StepMinutes: 30}},
		{"almoço sem fim", WorkingHours{Open: "09:00", Close: "18:00", StepMinutes: 30, LunchStart: ptr.Ptr(types.TimeString("12:00"))}},
		{"almoço invertido", WorkingHours{Open: "09:00", Close: "18:00", StepMinutes: 30,
			LunchStart: ptr.Ptr(types.TimeString("13:00")), LunchEnd: ptr.Ptr(types.TimeString("12:00"))}},
		{"almoço fora do expediente", WorkingHours{Open: "09:00", Close: "18:00", StepMinutes: 30,
			LunchStart: ptr.Ptr(types.TimeString("17:30")), LunchEnd: ptr.Ptr(types.TimeString("18:30"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Grid(tt.wh)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestOverlaps_SymmetricAndHalfOpen(t *testing.T) {
	tests := []struct {
		name string
		a, b minuteInterval
		want bool
	}{
		{"sobreposição parcial", minuteInterval{start: 540, end: 580}, minuteInterval{start: 560, end: 600}, true},
		{"um contém o outro", minuteInterval{start: 540, end: 660}, minuteInterval{start: 570, end: 600}, true},
		{"idênticos", minuteInterval{start: 540, end: 570}, minuteInterval{start: 540, end: 570}, true},
		{"encostados não sobrepõem", minuteInterval{start: 540, end: 570}, minuteInterval{start: 570, end: 600}, false},
		{"disjuntos", minuteInterval{start: 540, end: 570}, minuteInterval{start: 600, end: 630}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlaps(tt.a, tt.b))
			// O predicado é simétrico: trocar os rótulos não muda o resultado
			assert.Equal(t, tt.want, overlaps(tt.b, tt.a))
		})
	}
}

func TestAvailableStarts_NoBookings25MinService(t *testing.T) {
	starts, err := AvailableStarts(workingHours(25), 25, nil)
	require.NoError(t, err)

	require.NotEmpty(t, starts)
	assert.Equal(t, types.TimeString("09:00"), starts[0])
	assert.Equal(t, types.TimeString("09:25"), starts[1])
	assert.Equal(t, types.TimeString("09:50"), starts[2])

	// Todo início válido termina até as 18:00
	for _, start := range starts {
		end, err := EndTime(start, 25)
		require.NoError(t, err)
		assert.False(t, end.IsAfter("18:00"))
	}
}

func TestAvailableStarts_NoBookings30MinService(t *testing.T) {
	starts, err := AvailableStarts(workingHours(30), 30, nil)
	require.NoError(t, err)

	require.Len(t, starts, 18)
	assert.Equal(t, types.TimeString("09:00"), starts[0])
	assert.Equal(t, types.TimeString("09:30"), starts[1])
	assert.Equal(t, types.TimeString("17:30"), starts[len(starts)-1])
}

func TestAvailableStarts_ClosingBoundary(t *testing.T) {
	// Serviço de 60 min: último início válido é 17:00 (termina exatamente 18:00)
	starts, err := AvailableStarts(workingHours(30), 60, nil)
	require.NoError(t, err)

	require.NotEmpty(t, starts)
	assert.Equal(t, types.TimeString("17:00"), starts[len(starts)-1])
	assert.NotContains(t, starts, types.TimeString("17:30"))
}

func TestAvailableStarts_BookingBlocksWindow(t *testing.T) {
	// Atendimento de 40 min às 09:00 ocupa [09:00, 09:40): com grade de 20
	// min, 09:00 e 09:20 conflitam, 09:40 é o primeiro início livre
	occupied := []OccupiedInterval{{Start: "09:00", DurationMinutes: 40, Ref: "booking:1"}}

	starts, err := AvailableStarts(workingHours(20), 40, occupied)
	require.NoError(t, err)

	require.NotEmpty(t, starts)
	assert.Equal(t, types.TimeString("09:40"), starts[0])
	assert.NotContains(t, starts, types.TimeString("09:00"))
	assert.NotContains(t, starts, types.TimeString("09:20"))
}

func TestAvailableStarts_TouchingIsNotConflict(t *testing.T) {
	// Ocupado [10:00, 10:30): candidato terminando exatamente às 10:00 é
	// livre, assim como o candidato começando exatamente às 10:30
	occupied := []OccupiedInterval{{Start: "10:00", DurationMinutes: 30, Ref: "booking:7"}}

	starts, err := AvailableStarts(workingHours(30), 30, occupied)
	require.NoError(t, err)

	assert.Contains(t, starts, types.TimeString("09:30"))
	assert.Contains(t, starts, types.TimeString("10:30"))
	assert.NotContains(t, starts, types.TimeString("10:00"))
}

func TestAvailableStarts_FullyBookedDayIsEmptyNotError(t *testing.T) {
	occupied := make([]OccupiedInterval, 0, 18)
	start := types.TimeString("09:00")
	for !start.IsAfter("17:30") {
		occupied = append(occupied, OccupiedInterval{Start: start, DurationMinutes: 30})
		next, err := start.AddMinutes(30)
		require.NoError(t, err)
		start = next
	}

	starts, err := AvailableStarts(workingHours(30), 30, occupied)
	require.NoError(t, err)
	assert.Empty(t, starts)
}

func TestAvailableStarts_MonotonicShrink(t *testing.T) {
	// Adicionar um intervalo ocupado só pode remover candidatos, nunca criar
	base := []OccupiedInterval{{Start: "11:00", DurationMinutes: 45}}
	extra := append(append([]OccupiedInterval{}, base...), OccupiedInterval{Start: "14:10", DurationMinutes: 25})

	before, err := AvailableStarts(workingHours(15), 30, base)
	require.NoError(t, err)
	after, err := AvailableStarts(workingHours(15), 30, extra)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(after), len(before))
	for _, slot := range after {
		assert.Contains(t, before, slot)
	}
}

func TestAvailableStarts_RedundantOverlappingInputTolerated(t *testing.T) {
	// Entradas duplicadas e sobrepostas não tornam um horário livre ocupado
	occupied := []OccupiedInterval{
		{Start: "10:00", DurationMinutes: 30, Ref: "booking:1"},
		{Start: "10:00", DurationMinutes: 30, Ref: "booking:1"},
		{Start: "10:10", DurationMinutes: 10, Ref: "block:2"},
	}

	starts, err := AvailableStarts(workingHours(30), 30, occupied)
	require.NoError(t, err)

	assert.NotContains(t, starts, types.TimeString("10:00"))
	assert.Contains(t, starts, types.TimeString("09:30"))
	assert.Contains(t, starts, types.TimeString("10:30"))
}

func TestAvailableStarts_LunchBreakBlocksSlots(t *testing.T) {
	wh := workingHours(30)
	wh.LunchStart = ptr.Ptr(types.TimeString("12:00"))
	wh.LunchEnd = ptr.Ptr(types.TimeString("13:00"))

	starts, err := AvailableStarts(wh, 30, nil)
	require.NoError(t, err)

	assert.NotContains(t, starts, types.TimeString("12:00"))
	assert.NotContains(t, starts, types.TimeString("12:30"))
	// Encostar na janela de almoço é permitido
	assert.Contains(t, starts, types.TimeString("11:30"))
	assert.Contains(t, starts, types.TimeString("13:00"))
}

func TestDaySlots_TagsMatchAvailableProjection(t *testing.T) {
	// As duas formas de chamada derivam do mesmo predicado: a projeção de
	// disponíveis é exatamente o subconjunto marcado como livre
	occupied := []OccupiedInterval{
		{Start: "09:30", DurationMinutes: 60, Ref: "booking:3"},
		{Start: "15:00", DurationMinutes: 30, Ref: "block:9"},
	}
	wh := workingHours(30)

	tagged, err := DaySlots(wh, 30, occupied)
	require.NoError(t, err)
	starts, err := AvailableStarts(wh, 30, occupied)
	require.NoError(t, err)

	grid, err := Grid(wh)
	require.NoError(t, err)
	require.Len(t, tagged, len(grid))

	fromTagged := make([]types.TimeString, 0, len(tagged))
	for _, slot := range tagged {
		if slot.Available {
			assert.Empty(t, slot.Ref)
			fromTagged = append(fromTagged, slot.Start)
		}
	}
	assert.Equal(t, starts, fromTagged)
}

func TestDaySlots_RefPassedThrough(t *testing.T) {
	occupied := []OccupiedInterval{{Start: "10:00", DurationMinutes: 30, Ref: "booking:42"}}

	tagged, err := DaySlots(workingHours(30), 30, occupied)
	require.NoError(t, err)

	var at10 *TaggedSlot
	for i := range tagged {
		if tagged[i].Start == "10:00" {
			at10 = &tagged[i]
		}
	}
	require.NotNil(t, at10)
	assert.False(t, at10.Available)
	assert.Equal(t, "booking:42", at10.Ref)
}

func TestStartAvailable_MatchesProjection(t *testing.T) {
	occupied := []OccupiedInterval{{Start: "11:00", DurationMinutes: 50, Ref: "booking:5"}}
	wh := workingHours(30)

	tagged, err := DaySlots(wh, 40, occupied)
	require.NoError(t, err)

	for _, slot := range tagged {
		got, err := StartAvailable(wh, slot.Start, 40, occupied)
		require.NoError(t, err)
		assert.Equal(t, slot.Available, got, "divergência no horário %s", slot.Start)
	}
}

func TestStartAvailable_RejectsBeforeOpening(t *testing.T) {
	free, err := StartAvailable(workingHours(30), "08:30", 30, nil)
	require.NoError(t, err)
	assert.False(t, free)
}

func TestStartAvailable_InvalidDuration(t *testing.T) {
	_, err := StartAvailable(workingHours(30), "09:00", 0, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = StartAvailable(workingHours(30), "09:00", -10, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEndTime(t *testing.T) {
	end, err := EndTime("09:45", 30)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:15"), end)

	end, err = EndTime("17:00", 60)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), end)

	_, err = EndTime("23:50", 30)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = EndTime("10:00", 0)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDaySlots_OccupiedInputValidation(t *testing.T) {
	_, err := DaySlots(workingHours(30), 30, []OccupiedInterval{{Start: "10:00", DurationMinutes: 0}})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = DaySlots(workingHours(30), 30, []OccupiedInterval{{Start: "25:00", DurationMinutes: 30}})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestOnGrid(t *testing.T) {
	w := workingHours(30)

	cases := []struct {
		start types.TimeString
		want  bool
	}{
		{"09:00", true},
		{"09:30", true},
		{"17:30", true},
		{"18:00", false}, // fechamento não é posição da grade
		{"08:30", false}, // antes da abertura
		{"09:15", false}, // desalinhado do passo
		{"10:07", false},
	}

	for _, tc := range cases {
		got, err := OnGrid(w, tc.start)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "start %s", tc.start)
	}
}

func TestOnGrid_InvalidStart(t *testing.T) {
	_, err := OnGrid(workingHours(30), "25:00")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
