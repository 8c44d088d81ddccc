package reporting

import (
	"fmt"
	"math"
	"sort"

	"github.com/vfg2006/metas-dashboard/internal/domain"
)

// Aggregate soma as vendas dos meses selecionados por mês e une as metas pelo
// número do mês (left join). Meses sem venda não geram período.
func Aggregate(sales []domain.SalesRecord, targets []domain.MonthlyTarget, months domain.MonthSet) []domain.AggregatedPeriod {
	byMonth := make(map[int]*domain.AggregatedPeriod)

	for _, s := range sales {
		m := s.Month()
		if !months.Contains(m) {
			continue
		}

		p, ok := byMonth[m]
		if !ok {
			p = &domain.AggregatedPeriod{Month: m, MonthLabel: domain.MonthLabel(m)}
			byMonth[m] = p
		}
		p.TotalAmount += s.Amount
		p.TotalOrders += s.OrderCount
	}

	joined := indexTargets(targets)

	periods := make([]domain.AggregatedPeriod, 0, len(byMonth))
	for m, p := range byMonth {
		if t, ok := joined[m]; ok {
			p.InitialTarget = t.InitialTarget
			p.MonthlyTarget = t.MonthlyTarget
			p.AccumulatedTarget = t.AccumulatedTarget
		}
		periods = append(periods, *p)
	}

	sort.Slice(periods, func(i, j int) bool { return periods[i].Month < periods[j].Month })

	return periods
}

// AggregateSalesperson aplica o mesmo pipeline filtrando vendas e metas pelo
// vendedor. Sem nenhuma linha de meta para o vendedor o relatório é interrompido.
func AggregateSalesperson(
	sales []domain.SalesRecord,
	targets []domain.SalespersonTarget,
	salesperson string,
	months domain.MonthSet,
) ([]domain.AggregatedPeriod, error) {
	if salesperson == "" {
		return nil, ErrEmptySalesperson
	}

	ownTargets := make([]domain.MonthlyTarget, 0)
	for _, t := range targets {
		if t.Salesperson == salesperson {
			ownTargets = append(ownTargets, t.AsMonthlyTarget())
		}
	}
	if len(ownTargets) == 0 {
		return nil, fmt.Errorf("%w para '%s'", ErrNoSalespersonTargets, salesperson)
	}

	return Aggregate(FilterSales(sales, salesperson), ownTargets, months), nil
}

// FilterSales mantém apenas as vendas do vendedor
func FilterSales(sales []domain.SalesRecord, salesperson string) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0)
	for _, s := range sales {
		if s.Salesperson == salesperson {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// indexTargets agrupa as metas por mês. Linhas repetidas para o mesmo mês
// são somadas campo a campo; meses não reconhecidos ficam de fora.
func indexTargets(targets []domain.MonthlyTarget) map[int]domain.MonthlyTarget {
	idx := make(map[int]domain.MonthlyTarget)
	for _, t := range targets {
		if !domain.ValidMonth(t.Month) {
			continue
		}
		current, ok := idx[t.Month]
		if !ok {
			idx[t.Month] = t
			continue
		}
		current.InitialTarget = addOptional(current.InitialTarget, t.InitialTarget)
		current.MonthlyTarget = addOptional(current.MonthlyTarget, t.MonthlyTarget)
		current.AccumulatedTarget = addOptional(current.AccumulatedTarget, t.AccumulatedTarget)
		idx[t.Month] = current
	}
	return idx
}

func addOptional(a, b *float64) *float64 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	sum := *a + *b
	return &sum
}

// ComputeTotals consolida os períodos. Metas nulas não entram na soma.
func ComputeTotals(periods []domain.AggregatedPeriod) domain.Totals {
	var t domain.Totals
	if len(periods) == 0 {
		return t
	}

	t.MaxMonthly = math.Inf(-1)
	t.MinMonthly = math.Inf(1)

	for _, p := range periods {
		t.Amount += p.TotalAmount
		t.Orders += p.TotalOrders
		t.InitialTarget += valueOrZero(p.InitialTarget)
		t.MonthlyTarget += valueOrZero(p.MonthlyTarget)
		t.AccumulatedTarget += valueOrZero(p.AccumulatedTarget)
		t.MaxMonthly = math.Max(t.MaxMonthly, p.TotalAmount)
		t.MinMonthly = math.Min(t.MinMonthly, p.TotalAmount)
	}

	t.MeanMonthly = t.Amount / float64(len(periods))
	if t.Orders > 0 {
		t.AverageTicket = t.Amount / float64(t.Orders)
	}

	return t
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
