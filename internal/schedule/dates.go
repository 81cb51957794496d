package schedule

import (
	"fmt"
	"time"
)

// HorizonDate pareia a data legível por máquina com o rótulo de exibição.
// O rótulo é preocupação de apresentação - o contrato de enumeração
// (quantidade, ordem, primeira data = hoje) independe dele.
type HorizonDate struct {
	Date  time.Time
	Label string
}

// DateOnly trunca o componente de horário, mantendo a localização
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay verifica se as duas datas caem no mesmo dia de calendário
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateInPast verifica se a data é anterior ao dia de hoje (só a data conta)
func DateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}

// DateWithinHorizon verifica se a data cai na janela inclusiva
// [hoje, hoje + daysAhead]. Compara apenas datas, ignorando o horário.
// "Agora" é injetado pelo chamador - a função nunca lê o relógio do sistema.
func DateWithinHorizon(date, now time.Time, daysAhead int) bool {
	if daysAhead < 0 {
		return false
	}

	day := DateOnly(date)
	today := DateOnly(now)
	last := today.AddDate(0, 0, daysAhead)

	return !day.Before(today) && !day.After(last)
}

// HorizonDates enumera as daysAhead+1 datas agendáveis em ordem crescente,
// começando hoje, cada uma com seu rótulo de exibição em pt-BR.
func HorizonDates(now time.Time, daysAhead int) []HorizonDate {
	if daysAhead < 0 {
		return []HorizonDate{}
	}

	today := DateOnly(now)
	dates := make([]HorizonDate, 0, daysAhead+1)
	for i := 0; i <= daysAhead; i++ {
		day := today.AddDate(0, 0, i)
		dates = append(dates, HorizonDate{Date: day, Label: DateLabel(day)})
	}

	return dates
}

var weekdayNamesPT = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

var monthNamesPT = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// DateLabel formata a data para exibição: "Seg, 02 de Março"
func DateLabel(date time.Time) string {
	return fmt.Sprintf("%s, %02d de %s",
		weekdayNamesPT[date.Weekday()], date.Day(), monthNamesPT[date.Month()-1])
}
