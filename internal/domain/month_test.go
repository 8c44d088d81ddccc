package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestMonthFromName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{name: "janeiro", input: "Janeiro", want: 1, ok: true},
		{name: "com espaços", input: "  Dezembro ", want: 12, ok: true},
		{name: "março em NFD", input: norm.NFD.String("Março"), want: 3, ok: true},
		{name: "minúsculo não é reconhecido", input: "janeiro", ok: false},
		{name: "abreviação não é reconhecida", input: "Jan", ok: false},
		{name: "vazio", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MonthFromName(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthLabels(t *testing.T) {
	assert.Equal(t, "Fev", MonthLabel(2))
	assert.Equal(t, "Set", MonthLabel(9))
	assert.Equal(t, "Outubro", MonthName(10))
	assert.Empty(t, MonthLabel(0))
	assert.Empty(t, MonthName(13))
}

func TestMonthSet(t *testing.T) {
	var all MonthSet
	assert.True(t, all.Contains(7), "MonthSet nil representa todos os meses")

	empty := NewMonthSet()
	assert.False(t, empty.Contains(7))
	assert.Empty(t, empty.Sorted())

	set := NewMonthSet(11, 2, 5)
	assert.True(t, set.Contains(5))
	assert.False(t, set.Contains(6))
	assert.Equal(t, []int{2, 5, 11}, set.Sorted())
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		ratio float64
		want  Severity
	}{
		{ratio: 150, want: SeveritySuccess},
		{ratio: 100, want: SeveritySuccess},
		{ratio: 99.99, want: SeverityWarning},
		{ratio: 70, want: SeverityWarning},
		{ratio: 69.99, want: SeverityDanger},
		{ratio: 0, want: SeverityDanger},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityFor(tt.ratio), "ratio %.2f", tt.ratio)
	}
}

func TestDataset_AvailableMonthsAndSalespeople(t *testing.T) {
	ds := &Dataset{
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Sales: []SalesRecord{
			{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Salesperson: "Bruno"},
			{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Salesperson: "Ana"},
			{Date: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Salesperson: ""},
			{Date: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), Salesperson: "Ana"},
		},
	}

	assert.Equal(t, []int{1, 3}, ds.AvailableMonths())
	assert.Equal(t, []string{"Ana", "Bruno"}, ds.Salespeople())
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), ds.ExpiresAt(2*time.Hour))
}

func TestReport_Chart(t *testing.T) {
	r := &Report{Charts: []Chart{{ID: ChartDistribution}, {ID: ChartCumulative, Title: "Evolução"}}}

	c, ok := r.Chart(ChartCumulative)
	assert.True(t, ok)
	assert.Equal(t, "Evolução", c.Title)

	_, ok = r.Chart("inexistente")
	assert.False(t, ok)
}
