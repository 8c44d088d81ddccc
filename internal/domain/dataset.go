package domain

import (
	"sort"
	"time"
)

// Dataset guarda as duas planilhas já interpretadas de uma sessão de análise
type Dataset struct {
	ID                 string              `json:"id"`
	SalesFile          string              `json:"sales_file"`
	TargetsFile        string              `json:"targets_file"`
	Sales              []SalesRecord       `json:"-"`
	Targets            []MonthlyTarget     `json:"-"`
	SalespersonTargets []SalespersonTarget `json:"-"`
	DroppedRows        int                 `json:"dropped_rows"`
	CreatedAt          time.Time           `json:"created_at"`
}

// AvailableMonths lista os meses com vendas, em ordem crescente
func (d *Dataset) AvailableMonths() []int {
	set := make(MonthSet)
	for _, s := range d.Sales {
		set[s.Month()] = true
	}
	return set.Sorted()
}

// Salespeople lista os vendedores distintos da planilha de vendas, ordenados
func (d *Dataset) Salespeople() []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, s := range d.Sales {
		if s.Salesperson == "" || seen[s.Salesperson] {
			continue
		}
		seen[s.Salesperson] = true
		names = append(names, s.Salesperson)
	}
	sort.Strings(names)
	return names
}

// ExpiresAt calcula quando o dataset deixa de estar disponível
func (d *Dataset) ExpiresAt(ttl time.Duration) time.Time {
	return d.CreatedAt.Add(ttl)
}

// DatasetSummary é a resposta do upload
type DatasetSummary struct {
	ID          string    `json:"id"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Months      []int     `json:"months"`
	Salespeople []string  `json:"salespeople"`
	SalesRows   int       `json:"sales_rows"`
	DroppedRows int       `json:"dropped_rows"`
}
