package reporting

import (
	"fmt"
	"sort"

	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/pkg/utils"
)

// Insights aplica as regras na ordem: atingimento geral, tendência e melhor
// mês. Cada regra é independente e todas as aplicáveis são emitidas.
func Insights(periods []domain.AggregatedPeriod, totalRealized, totalTarget float64) []domain.Insight {
	insights := make([]domain.Insight, 0, 3)

	if in, ok := attainmentInsight(totalRealized, totalTarget); ok {
		insights = append(insights, in)
	}

	ordered := make([]domain.AggregatedPeriod, len(periods))
	copy(ordered, periods)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Month < ordered[j].Month })

	if in, ok := trendInsight(ordered); ok {
		insights = append(insights, in)
	}

	if in, ok := bestPeriodInsight(ordered); ok {
		insights = append(insights, in)
	}

	return insights
}

func attainmentInsight(totalRealized, totalTarget float64) (domain.Insight, bool) {
	a := TotalRatio(totalRealized, totalTarget)
	if a.Ratio == nil {
		return domain.Insight{}, false
	}

	perc := *a.Ratio
	in := domain.Insight{
		Kind:    domain.InsightAttainment,
		Type:    a.Severity,
		Percent: &perc,
	}

	switch in.Type {
	case domain.SeveritySuccess:
		in.Title = "🎯 Meta Atingida!"
		in.Text = fmt.Sprintf("Parabéns! Você atingiu %.1f%% da meta total, superando em %s.",
			perc, utils.FormatBRL(totalRealized-totalTarget))
	case domain.SeverityWarning:
		in.Title = "⚡ Quase lá!"
		in.Text = fmt.Sprintf("Você está em %.1f%% da meta. Faltam %s para atingir o objetivo.",
			perc, utils.FormatBRL(totalTarget-totalRealized))
	default:
		in.Title = "📊 Atenção Necessária"
		in.Text = fmt.Sprintf("O atingimento atual é de %.1f%%. Revise a estratégia para melhorar os resultados.", perc)
	}

	return in, true
}

// trendInsight compara os dois últimos meses presentes (ordem de mês, não de calendário)
func trendInsight(ordered []domain.AggregatedPeriod) (domain.Insight, bool) {
	if len(ordered) < 2 {
		return domain.Insight{}, false
	}

	earlier := ordered[len(ordered)-2].TotalAmount
	later := ordered[len(ordered)-1].TotalAmount

	if later > earlier {
		in := domain.Insight{
			Kind:  domain.InsightTrend,
			Type:  domain.SeveritySuccess,
			Title: "📈 Tendência Positiva",
			Text:  "Crescimento no último mês analisado em relação ao anterior.",
		}
		if earlier != 0 {
			growth := (later/earlier - 1) * 100
			in.Percent = &growth
			in.Text = fmt.Sprintf("Crescimento de %.1f%% no último mês analisado em relação ao anterior.", growth)
		}
		return in, true
	}

	in := domain.Insight{
		Kind:  domain.InsightTrend,
		Type:  domain.SeverityWarning,
		Title: "📉 Atenção à Queda",
		Text:  "Redução no último mês. Considere ações corretivas.",
	}
	if later != 0 {
		decline := (earlier/later - 1) * 100
		in.Percent = &decline
		in.Text = fmt.Sprintf("Redução de %.1f%% no último mês. Considere ações corretivas.", decline)
	}
	return in, true
}

// bestPeriodInsight escolhe o mês de maior faturamento; empates ficam com o primeiro
func bestPeriodInsight(ordered []domain.AggregatedPeriod) (domain.Insight, bool) {
	if len(ordered) == 0 {
		return domain.Insight{}, false
	}

	best := ordered[0]
	for _, p := range ordered[1:] {
		if p.TotalAmount > best.TotalAmount {
			best = p
		}
	}

	return domain.Insight{
		Kind:  domain.InsightBestPeriod,
		Type:  domain.SeverityInfo,
		Title: "🏆 Melhor Performance",
		Text:  fmt.Sprintf("%s foi o melhor mês com %s em vendas.", best.MonthLabel, utils.FormatBRL(best.TotalAmount)),
	}, true
}
