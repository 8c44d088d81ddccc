package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var monthAbbreviations = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

var monthByName = func() map[string]int {
	m := make(map[string]int, len(monthNames))
	for i, name := range monthNames {
		m[norm.NFC.String(name)] = i + 1
	}
	return m
}()

// MonthFromName converte o nome do mês em português (ex: "Março") para 1-12.
// Nomes fora da tabela retornam false.
func MonthFromName(name string) (int, bool) {
	month, ok := monthByName[norm.NFC.String(strings.TrimSpace(name))]
	return month, ok
}

// MonthName retorna o nome completo do mês
func MonthName(month int) string {
	if !ValidMonth(month) {
		return ""
	}
	return monthNames[month-1]
}

// MonthLabel retorna a abreviação usada nos gráficos
func MonthLabel(month int) string {
	if !ValidMonth(month) {
		return ""
	}
	return monthAbbreviations[month-1]
}

func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// MonthSet representa a seleção de meses do filtro. Um MonthSet nil
// significa "todos os meses".
type MonthSet map[int]bool

func NewMonthSet(months ...int) MonthSet {
	set := make(MonthSet, len(months))
	for _, m := range months {
		set[m] = true
	}
	return set
}

// Contains informa se o mês faz parte da seleção
func (s MonthSet) Contains(month int) bool {
	if s == nil {
		return true
	}
	return s[month]
}

// Sorted retorna os meses selecionados em ordem crescente
func (s MonthSet) Sorted() []int {
	months := make([]int, 0, len(s))
	for m, ok := range s {
		if ok {
			months = append(months, m)
		}
	}
	sort.Ints(months)
	return months
}
