package schedule

import (
	"fmt"

	"github.com/agendabarber/AB-BookingService/pkg/types"
)

// OccupiedInterval is an existing commitment that blocks time: a booking or
// an administrative block, reduced to start plus duration. The engine does
// not distinguish between the two. Ref is an opaque occupier identity passed
// through untouched to the tagged projection.
//
// O conjunto de intervalos ocupados não precisa estar ordenado nem ser livre
// de sobreposições - entradas redundantes são toleradas.
type OccupiedInterval struct {
	Start           types.TimeString
	DurationMinutes int
	Ref             string
}

// TaggedSlot is a grid candidate tagged with its availability, for UI
// surfaces that render occupied slots as disabled instead of hiding them.
type TaggedSlot struct {
	Start     types.TimeString
	Available bool
	Ref       string // identidade do ocupante; vazio quando disponível
}

// minuteInterval intervalo semiaberto [start, end) em minutos desde a meia-noite
type minuteInterval struct {
	start int
	end   int
	ref   string
}

// overlaps reporta se os intervalos semiabertos [a.start, a.end) e
// [b.start, b.end) se intersectam. Forma canônica de duas desigualdades:
// encostar não é sobrepor.
func overlaps(a, b minuteInterval) bool {
	return a.start < b.end && b.start < a.end
}

// Grid gera a sequência ordenada de horários candidatos do dia: começa em
// Open, avança StepMinutes por vez e para estritamente antes de Close.
func Grid(w WorkingHours) ([]types.TimeString, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	openMin, err := w.Open.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: open time: %v", ErrInvalidConfig, err)
	}
	closeMin, err := w.Close.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: close time: %v", ErrInvalidConfig, err)
	}

	grid := make([]types.TimeString, 0, (closeMin-openMin)/w.StepMinutes+1)
	for m := openMin; m < closeMin; m += w.StepMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		grid = append(grid, slot)
	}

	return grid, nil
}

// OnGrid verifica se o horário é uma posição válida da grade: não antes da
// abertura, estritamente antes do fechamento e alinhado ao passo.
func OnGrid(w WorkingHours, start types.TimeString) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}

	startMin, err := start.Minutes()
	if err != nil {
		return false, fmt.Errorf("%w: start time: %v", ErrInvalidConfig, err)
	}

	openMin, _ := w.Open.Minutes()
	closeMin, _ := w.Close.Minutes()

	if startMin < openMin || startMin >= closeMin {
		return false, nil
	}

	return (startMin-openMin)%w.StepMinutes == 0, nil
}

// EndTime calcula o horário de término de um atendimento: início + duração,
// com rollover de hora (09:45 + 30 = 10:15). Cruzar a meia-noite é erro de
// configuração - expediente nunca atravessa o dia.
func EndTime(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	if durationMinutes <= 0 {
		return "", fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidConfig, durationMinutes)
	}
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return end, nil
}

// DaySlots retorna TODOS os candidatos da grade marcados como livres ou
// ocupados, para o calendário interativo renderizar também os botões
// desabilitados. Ref carrega a identidade do primeiro intervalo em conflito.
func DaySlots(w WorkingHours, serviceDurationMinutes int, occupied []OccupiedInterval) ([]TaggedSlot, error) {
	if serviceDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: service duration must be positive, got %d", ErrInvalidConfig, serviceDurationMinutes)
	}

	grid, err := Grid(w)
	if err != nil {
		return nil, err
	}

	busy, err := busyIntervals(w, occupied)
	if err != nil {
		return nil, err
	}

	closeMin, _ := w.Close.Minutes()

	slots := make([]TaggedSlot, 0, len(grid))
	for _, start := range grid {
		startMin, err := start.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}

		free, ref := startFree(startMin, serviceDurationMinutes, closeMin, busy)
		slots = append(slots, TaggedSlot{Start: start, Available: free, Ref: ref})
	}

	return slots, nil
}

// AvailableStarts retorna somente os candidatos livres - a projeção usada no
// fluxo de agendamento do cliente. Mesma grade e mesmo predicado do DaySlots.
func AvailableStarts(w WorkingHours, serviceDurationMinutes int, occupied []OccupiedInterval) ([]types.TimeString, error) {
	tagged, err := DaySlots(w, serviceDurationMinutes, occupied)
	if err != nil {
		return nil, err
	}

	starts := make([]types.TimeString, 0, len(tagged))
	for _, slot := range tagged {
		if slot.Available {
			starts = append(starts, slot.Start)
		}
	}

	return starts, nil
}

// StartAvailable verifica se um horário específico comporta o atendimento:
// termina até o fechamento (terminar exatamente no fechamento é permitido) e
// não sobrepõe nenhum intervalo ocupado nem a janela de almoço. É o mesmo
// predicado das projeções, exposto para a validação do commit de agendamento.
func StartAvailable(w WorkingHours, start types.TimeString, serviceDurationMinutes int, occupied []OccupiedInterval) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}
	if serviceDurationMinutes <= 0 {
		return false, fmt.Errorf("%w: service duration must be positive, got %d", ErrInvalidConfig, serviceDurationMinutes)
	}

	startMin, err := start.Minutes()
	if err != nil {
		return false, fmt.Errorf("%w: start time: %v", ErrInvalidConfig, err)
	}

	busy, err := busyIntervals(w, occupied)
	if err != nil {
		return false, err
	}

	openMin, _ := w.Open.Minutes()
	closeMin, _ := w.Close.Minutes()
	if startMin < openMin {
		return false, nil
	}

	free, _ := startFree(startMin, serviceDurationMinutes, closeMin, busy)
	return free, nil
}

// startFree é o predicado central de disponibilidade sobre o qual as duas
// projeções e a validação de commit são construídas. Retorna também a
// identidade do primeiro ocupante em conflito.
func startFree(startMin, durationMinutes, closeMin int, busy []minuteInterval) (bool, string) {
	candidate := minuteInterval{start: startMin, end: startMin + durationMinutes}

	// O atendimento precisa terminar até o fechamento (== fechamento é válido)
	if candidate.end > closeMin {
		return false, ""
	}

	for _, b := range busy {
		if overlaps(candidate, b) {
			return false, b.ref
		}
	}

	return true, ""
}

// busyIntervals converte os intervalos ocupados para minutos e anexa a
// janela de almoço como mais um intervalo ocupado - para o motor, almoço e
// bloqueio administrativo são a mesma coisa.
func busyIntervals(w WorkingHours, occupied []OccupiedInterval) ([]minuteInterval, error) {
	busy := make([]minuteInterval, 0, len(occupied)+1)

	for _, occ := range occupied {
		if occ.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: occupied interval at %s has non-positive duration %d",
				ErrInvalidConfig, occ.Start, occ.DurationMinutes)
		}
		startMin, err := occ.Start.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: occupied interval start: %v", ErrInvalidConfig, err)
		}
		busy = append(busy, minuteInterval{
			start: startMin,
			end:   startMin + occ.DurationMinutes,
			ref:   occ.Ref,
		})
	}

	if w.HasLunchBreak() {
		lunchStart, err := w.LunchStart.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: lunch start: %v", ErrInvalidConfig, err)
		}
		lunchEnd, err := w.LunchEnd.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: lunch end: %v", ErrInvalidConfig, err)
		}
		busy = append(busy, minuteInterval{start: lunchStart, end: lunchEnd})
	}

	return busy, nil
}
