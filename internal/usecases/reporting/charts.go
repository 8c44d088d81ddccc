package reporting

import (
	"fmt"

	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/pkg/utils"
)

// AttainmentPie mostra o realizado contra a meta em uma rosca. Sem meta o
// gráfico traz apenas o aviso "Meta não definida".
func AttainmentPie(id string, realized, target float64, title string, showLabels bool) domain.Chart {
	chart := domain.Chart{
		ID:         id,
		Type:       domain.ChartPie,
		Title:      title,
		ShowLabels: showLabels,
	}

	if target == 0 {
		chart.Placeholder = "Meta não definida"
		return chart
	}

	perc := realized / target * 100

	var (
		labels      []string
		values      []float64
		colors      []string
		centerColor string
	)

	if realized >= target {
		labels = []string{"Meta Atingida", "Superação"}
		values = []float64{target, realized - target}
		colors = []string{domain.Colors["success"], domain.Colors["primary"]}
		centerColor = domain.Colors["success"]
	} else {
		labels = []string{"Realizado", "Falta Atingir"}
		values = []float64{realized, target - realized}
		colors = []string{domain.Colors["info"], domain.Colors["border"]}
		centerColor = domain.SeverityColor(domain.SeverityFor(perc))
	}

	chart.Categories = labels
	chart.Series = []domain.ChartSeries{{
		Name:   title,
		Kind:   domain.ChartPie,
		Values: optionalValues(values),
		Colors: colors,
		Labels: currencyLabels(values, showLabels),
	}}
	chart.Annotations = []domain.ChartAnnotation{
		{Text: utils.FormatPercent(perc), Color: centerColor},
		{Text: "da Meta"},
	}

	return chart
}

// DistributionPie reparte o faturamento dos meses filtrados
func DistributionPie(periods []domain.AggregatedPeriod, showLabels bool) domain.Chart {
	categories, amounts := monthlyAmounts(periods)

	colors := make([]string, len(amounts))
	for i := range colors {
		colors[i] = domain.DistributionPalette[i%len(domain.DistributionPalette)]
	}

	var total float64
	for _, v := range amounts {
		total += v
	}

	return domain.Chart{
		ID:         domain.ChartDistribution,
		Type:       domain.ChartPie,
		Title:      "Distribuição de Faturamento por Mês",
		Categories: categories,
		ShowLabels: showLabels,
		Series: []domain.ChartSeries{{
			Name:   "Faturamento",
			Kind:   domain.ChartPie,
			Values: optionalValues(amounts),
			Colors: colors,
			Labels: currencyLabels(amounts, showLabels),
		}},
		Annotations: []domain.ChartAnnotation{
			{Text: "Total " + utils.FormatBRL(total)},
		},
	}
}

// TargetBar compara o realizado mensal com a meta da coluna escolhida. As
// barras recebem a cor da faixa de atingimento. No modo percentual, meses
// sem meta ficam sem valor em vez de 0%.
func TargetBar(periods []domain.AggregatedPeriod, kind domain.TargetKind, percent, showLabels bool) domain.Chart {
	chart := domain.Chart{
		Type:       domain.ChartBar,
		XAxis:      "Mês",
		Percent:    percent,
		ShowLabels: showLabels,
	}

	switch kind {
	case domain.TargetAccumulated:
		chart.ID = domain.ChartBarAccumulated
		chart.Title = "Desempenho Mensal vs Meta Acumulada (Ajustada)"
	default:
		chart.ID = domain.ChartBarInitial
		chart.Title = "Desempenho Mensal vs Meta"
	}

	categories := make([]string, len(periods))
	colors := make([]string, len(periods))
	attainments := make([]domain.Attainment, len(periods))

	for i, p := range periods {
		categories[i] = p.MonthLabel
		attainments[i] = Ratio(p.TotalAmount, p.Target(kind))
		colors[i] = domain.SeverityColor(attainments[i].Severity)
	}
	chart.Categories = categories

	if percent {
		values := make([]*float64, len(periods))
		labels := make([]string, len(periods))
		for i, a := range attainments {
			values[i] = a.Ratio
			labels[i] = a.Display
		}
		if !showLabels {
			labels = nil
		}

		chart.YAxis = "Percentual de Atingimento (%)"
		chart.Series = []domain.ChartSeries{{
			Name:   "Atingimento",
			Kind:   domain.ChartBar,
			Values: values,
			Colors: colors,
			Labels: labels,
		}}
		chart.Annotations = []domain.ChartAnnotation{
			{Text: "Meta (100%)", Color: domain.Colors["success"]},
		}
		return chart
	}

	_, amounts := monthlyAmounts(periods)

	targets := make([]*float64, len(periods))
	targetLabels := make([]string, len(periods))
	for i, p := range periods {
		targets[i] = p.Target(kind)
		targetLabels[i] = optionalCurrency(targets[i])
	}
	if !showLabels {
		targetLabels = nil
	}

	chart.YAxis = "Valor (R$)"
	chart.Series = []domain.ChartSeries{
		{
			Name:   "Realizado",
			Kind:   domain.ChartBar,
			Values: optionalValues(amounts),
			Colors: colors,
			Labels: currencyLabels(amounts, showLabels),
		},
		{
			Name:   "Meta",
			Kind:   domain.ChartArea,
			Values: targets,
			Color:  domain.Colors["primary"],
			Labels: targetLabels,
		},
	}

	return chart
}

// CumulativeChart desenha a evolução acumulada do realizado e da meta acumulada
func CumulativeChart(points []domain.CumulativePoint, showLabels bool) domain.Chart {
	categories := make([]string, len(points))
	realized := make([]float64, len(points))
	target := make([]float64, len(points))

	for i, p := range points {
		categories[i] = p.MonthLabel
		realized[i] = p.Realized
		target[i] = p.Target
	}

	return domain.Chart{
		ID:         domain.ChartCumulative,
		Type:       domain.ChartArea,
		Title:      "Evolução Acumulada no Ano",
		Categories: categories,
		XAxis:      "Mês",
		YAxis:      "Valor Acumulado (R$)",
		ShowLabels: showLabels,
		Series: []domain.ChartSeries{
			{
				Name:   "Realizado Acumulado",
				Kind:   domain.ChartArea,
				Values: optionalValues(realized),
				Color:  domain.Colors["success"],
				Labels: currencyLabels(realized, showLabels),
			},
			{
				Name:   "Meta Acumulada",
				Kind:   domain.ChartArea,
				Values: optionalValues(target),
				Color:  domain.Colors["primary"],
				Labels: currencyLabels(target, showLabels),
			},
		},
	}
}

// HeatmapChart é uma única linha com a intensidade do faturamento por mês
func HeatmapChart(periods []domain.AggregatedPeriod) domain.Chart {
	categories, amounts := monthlyAmounts(periods)

	return domain.Chart{
		ID:         domain.ChartHeatmapRevenue,
		Type:       domain.ChartHeatmap,
		Title:      "Mapa de Calor - Intensidade de Faturamento",
		Categories: categories,
		ShowLabels: true,
		Series: []domain.ChartSeries{{
			Name:   "Faturamento",
			Kind:   domain.ChartHeatmap,
			Values: optionalValues(amounts),
			Colors: heatColors(amounts),
			Labels: currencyLabels(amounts, true),
		}},
	}
}

// HistogramChart mostra o faturamento de cada mês em barras
func HistogramChart(periods []domain.AggregatedPeriod) domain.Chart {
	categories, amounts := monthlyAmounts(periods)

	return domain.Chart{
		ID:         domain.ChartHistogramRevenue,
		Type:       domain.ChartHistogram,
		Title:      "Histograma - Valores de Faturamento por Mês",
		Categories: categories,
		XAxis:      "Mês",
		YAxis:      "Faturamento (R$)",
		ShowLabels: true,
		Series: []domain.ChartSeries{{
			Name:   "Faturamento",
			Kind:   domain.ChartBar,
			Values: optionalValues(amounts),
			Colors: heatColors(amounts),
			Labels: currencyLabels(amounts, true),
		}},
	}
}

func monthlyAmounts(periods []domain.AggregatedPeriod) ([]string, []float64) {
	categories := make([]string, len(periods))
	amounts := make([]float64, len(periods))
	for i, p := range periods {
		categories[i] = p.MonthLabel
		amounts[i] = p.TotalAmount
	}
	return categories, amounts
}

// heatColors posiciona cada valor na escala entre o mínimo e o máximo
func heatColors(values []float64) []string {
	colors := make([]string, len(values))
	if len(values) == 0 {
		return colors
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	scale := domain.HeatmapScale
	for i, v := range values {
		pos := 0
		if hi > lo {
			pos = int((v - lo) / (hi - lo) * float64(len(scale)-1))
		}
		colors[i] = scale[pos]
	}
	return colors
}

func optionalValues(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

func currencyLabels(values []float64, show bool) []string {
	if !show {
		return nil
	}
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = utils.FormatBRL(v)
	}
	return labels
}

func optionalCurrency(v *float64) string {
	if v == nil {
		return notApplicable
	}
	return utils.FormatBRL(*v)
}

func salespersonPieTitle(name string) string {
	return fmt.Sprintf("Atingimento - %s", name)
}
