package reporting

import (
	"sort"

	"github.com/vfg2006/metas-dashboard/internal/domain"
)

// Cumulative produz as somas corridas do realizado e da meta escolhida sobre
// os meses presentes, em ordem crescente. Meses ausentes não são preenchidos
// com zero; um mês presente sem meta não soma nada ao acumulado da meta.
func Cumulative(periods []domain.AggregatedPeriod, kind domain.TargetKind) []domain.CumulativePoint {
	ordered := make([]domain.AggregatedPeriod, len(periods))
	copy(ordered, periods)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Month < ordered[j].Month })

	points := make([]domain.CumulativePoint, 0, len(ordered))
	var realized, target float64

	for _, p := range ordered {
		realized += p.TotalAmount

		t := p.Target(kind)
		if t != nil {
			target += *t
		}

		points = append(points, domain.CumulativePoint{
			Month:         p.Month,
			MonthLabel:    p.MonthLabel,
			Realized:      realized,
			Target:        target,
			TargetMissing: t == nil,
		})
	}

	return points
}
