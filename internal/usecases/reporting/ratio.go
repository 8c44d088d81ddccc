package reporting

import (
	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/pkg/utils"
)

const notApplicable = "N/A"

// Ratio calcula o atingimento do realizado sobre a meta. Meta nula ou zero
// resulta em ratio nil e faixa neutra, nunca em divisão por zero.
func Ratio(realized float64, target *float64) domain.Attainment {
	a := domain.Attainment{
		Realized: realized,
		Target:   target,
		Severity: domain.SeverityNeutral,
		Display:  notApplicable,
	}

	if target == nil || *target == 0 {
		return a
	}

	ratio := realized / *target * 100
	a.Ratio = &ratio
	a.Severity = domain.SeverityFor(ratio)
	a.Display = utils.FormatPercent(ratio)

	return a
}

// TotalRatio aplica a mesma regra a um total já somado, onde zero (ou menos)
// indica ausência de meta. KPIs e insights passam por aqui.
func TotalRatio(realized, target float64) domain.Attainment {
	if target <= 0 {
		return Ratio(realized, nil)
	}
	return Ratio(realized, &target)
}

func periodView(p domain.AggregatedPeriod) domain.PeriodView {
	return domain.PeriodView{
		AggregatedPeriod: p,
		AmountFormatted:  utils.FormatBRL(p.TotalAmount),
		VsInitial:        Ratio(p.TotalAmount, p.InitialTarget),
		VsMonthly:        Ratio(p.TotalAmount, p.MonthlyTarget),
		VsAccumulated:    Ratio(p.TotalAmount, p.AccumulatedTarget),
	}
}
