package domain

// AggregatedPeriod é a soma das vendas de um mês unida às metas do mesmo mês.
// Campos de meta ficam nil quando não existe linha de meta para o mês.
type AggregatedPeriod struct {
	Month             int      `json:"month"`
	MonthLabel        string   `json:"month_label"`
	TotalAmount       float64  `json:"total_amount"`
	TotalOrders       int      `json:"total_orders"`
	InitialTarget     *float64 `json:"initial_target"`
	MonthlyTarget     *float64 `json:"monthly_target"`
	AccumulatedTarget *float64 `json:"accumulated_target"`
}

// Target devolve a meta da coluna pedida
func (p AggregatedPeriod) Target(kind TargetKind) *float64 {
	switch kind {
	case TargetInitial:
		return p.InitialTarget
	case TargetMonthly:
		return p.MonthlyTarget
	case TargetAccumulated:
		return p.AccumulatedTarget
	}
	return nil
}

// Totals consolida os períodos filtrados. Metas nulas são ignoradas na soma.
type Totals struct {
	Amount            float64 `json:"amount"`
	Orders            int     `json:"orders"`
	InitialTarget     float64 `json:"initial_target"`
	MonthlyTarget     float64 `json:"monthly_target"`
	AccumulatedTarget float64 `json:"accumulated_target"`
	AverageTicket     float64 `json:"average_ticket"`
	MeanMonthly       float64 `json:"mean_monthly"`
	MaxMonthly        float64 `json:"max_monthly"`
	MinMonthly        float64 `json:"min_monthly"`
}
