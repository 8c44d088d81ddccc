package domain

import "time"

// ReportScope diferencia a visão geral da visão por vendedor
type ReportScope string

const (
	ScopeOverview    ReportScope = "overview"
	ScopeSalesperson ReportScope = "salesperson"
)

// PeriodView é um período agregado com os atingimentos já calculados
type PeriodView struct {
	AggregatedPeriod
	AmountFormatted string     `json:"amount_formatted"`
	VsInitial       Attainment `json:"vs_initial"`
	VsMonthly       Attainment `json:"vs_monthly"`
	VsAccumulated   Attainment `json:"vs_accumulated"`
}

// CumulativePoint é um ponto da série acumulada. TargetMissing marca meses
// presentes sem meta, que não somam nada ao acumulado da meta.
type CumulativePoint struct {
	Month         int     `json:"month"`
	MonthLabel    string  `json:"month_label"`
	Realized      float64 `json:"realized"`
	Target        float64 `json:"target"`
	TargetMissing bool    `json:"target_missing"`
}

// KPI é um indicador do topo do painel
type KPI struct {
	Label      string   `json:"label"`
	Value      string   `json:"value"`
	Delta      string   `json:"delta,omitempty"`
	Raw        *float64 `json:"raw"`
	Applicable bool     `json:"applicable"`
}

type KPIs struct {
	TotalRevenue      KPI `json:"total_revenue"`
	VsMonthly         KPI `json:"vs_monthly"`
	VsInitial         KPI `json:"vs_initial"`
	RemainingToTarget KPI `json:"remaining_to_target"`
	AverageTicket     KPI `json:"average_ticket"`
}

// ReportOptions são as escolhas do usuário para uma renderização
type ReportOptions struct {
	Months     MonthSet
	Percent    bool
	ShowLabels bool

	// SkipSnapshots evita regravar snapshots em recomputações só para desenhar gráficos
	SkipSnapshots bool
}

// Report é o resultado completo de uma passada de recomputação
type Report struct {
	DatasetID   string            `json:"dataset_id"`
	Scope       ReportScope       `json:"scope"`
	Salesperson string            `json:"salesperson,omitempty"`
	Months      []int             `json:"months"`
	Periods     []PeriodView      `json:"periods"`
	Totals      Totals            `json:"totals"`
	KPIs        KPIs              `json:"kpis"`
	Cumulative  []CumulativePoint `json:"cumulative"`
	Insights    []Insight         `json:"insights"`
	Charts      []Chart           `json:"charts"`
	Sales       []SaleDetail      `json:"sales,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// Chart procura um gráfico do relatório pelo identificador
func (r *Report) Chart(id string) (Chart, bool) {
	for _, c := range r.Charts {
		if c.ID == id {
			return c, true
		}
	}
	return Chart{}, false
}

// ReportSnapshot é a linha gravada para auditoria de cada período calculado
type ReportSnapshot struct {
	ID                int64       `json:"id"`
	DatasetID         string      `json:"dataset_id"`
	Scope             ReportScope `json:"scope"`
	Salesperson       string      `json:"salesperson"`
	Month             int         `json:"month"`
	Realized          float64     `json:"realized"`
	Orders            int         `json:"orders"`
	InitialTarget     *float64    `json:"initial_target"`
	MonthlyTarget     *float64    `json:"monthly_target"`
	AccumulatedTarget *float64    `json:"accumulated_target"`
	Ratio             *float64    `json:"ratio"`
	Severity          Severity    `json:"severity"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
