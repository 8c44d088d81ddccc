package reporting

import (
	"fmt"

	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/pkg/utils"
)

// BuildKPIs monta os indicadores do topo do painel a partir dos totais
func BuildKPIs(t domain.Totals, revenueLabel string) domain.KPIs {
	amount := t.Amount
	ticket := t.AverageTicket

	return domain.KPIs{
		TotalRevenue: domain.KPI{
			Label:      revenueLabel,
			Value:      utils.FormatBRL(amount),
			Raw:        &amount,
			Applicable: true,
		},
		VsMonthly:         attainmentKPI("vs Meta Mensal", amount, t.MonthlyTarget),
		VsInitial:         attainmentKPI("vs Meta Inicial", amount, t.InitialTarget),
		RemainingToTarget: remainingKPI(amount, t.AccumulatedTarget),
		AverageTicket: domain.KPI{
			Label:      "Ticket Médio",
			Value:      utils.FormatBRL(ticket),
			Delta:      fmt.Sprintf("%d pedidos", t.Orders),
			Raw:        &ticket,
			Applicable: true,
		},
	}
}

func attainmentKPI(label string, realized, target float64) domain.KPI {
	a := TotalRatio(realized, target)
	if a.Ratio == nil {
		return domain.KPI{Label: label, Value: a.Display}
	}

	perc := *a.Ratio
	return domain.KPI{
		Label:      label,
		Value:      a.Display,
		Delta:      utils.FormatSignedPercent(perc - 100),
		Raw:        &perc,
		Applicable: true,
	}
}

// remainingKPI mostra quanto falta para a meta acumulada, com sinal invertido
func remainingKPI(realized, target float64) domain.KPI {
	const label = "Falta para Meta"
	if target <= 0 {
		return domain.KPI{Label: label, Value: notApplicable}
	}

	missing := target - realized
	kpi := domain.KPI{
		Label:      label,
		Value:      utils.FormatBRL(-missing),
		Raw:        &missing,
		Applicable: true,
		Delta:      "Meta atingida! 🎉",
	}
	if missing > 0 {
		kpi.Delta = fmt.Sprintf("%.1f%% da meta", missing/target*100)
	}
	return kpi
}
