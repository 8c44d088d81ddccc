package domain

// MonthlyTarget é uma linha da aba de metas gerais. Month igual a zero indica
// que o nome do mês não foi reconhecido; a linha não participa de junções.
type MonthlyTarget struct {
	Month             int      `json:"month"`
	MonthName         string   `json:"month_name"`
	InitialTarget     *float64 `json:"initial_target"`
	MonthlyTarget     *float64 `json:"monthly_target"`
	AccumulatedTarget *float64 `json:"accumulated_target"`
}

// SalespersonTarget é uma linha da aba de metas por vendedor
type SalespersonTarget struct {
	Salesperson       string   `json:"salesperson"`
	Month             int      `json:"month"`
	MonthName         string   `json:"month_name"`
	InitialTarget     *float64 `json:"initial_target"`
	MonthlyTarget     *float64 `json:"monthly_target"`
	AccumulatedTarget *float64 `json:"accumulated_target"`
}

// AsMonthlyTarget descarta o vendedor para reaproveitar a junção por mês
func (t SalespersonTarget) AsMonthlyTarget() MonthlyTarget {
	return MonthlyTarget{
		Month:             t.Month,
		MonthName:         t.MonthName,
		InitialTarget:     t.InitialTarget,
		MonthlyTarget:     t.MonthlyTarget,
		AccumulatedTarget: t.AccumulatedTarget,
	}
}

// TargetKind identifica qual coluna de meta uma visão compara
type TargetKind string

const (
	TargetInitial     TargetKind = "initial"
	TargetMonthly     TargetKind = "monthly"
	TargetAccumulated TargetKind = "accumulated"
)
