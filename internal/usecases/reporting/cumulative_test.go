package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metas-dashboard/internal/domain"
)

func TestCumulative(t *testing.T) {
	periods := []domain.AggregatedPeriod{
		period(3, 300, ptr(250)),
		period(1, 100, ptr(150)),
		period(2, 200, nil),
	}

	points := Cumulative(periods, domain.TargetAccumulated)
	require.Len(t, points, 3)

	assert.Equal(t, []int{1, 2, 3}, []int{points[0].Month, points[1].Month, points[2].Month})

	assert.Equal(t, 100.0, points[0].Realized)
	assert.Equal(t, 150.0, points[0].Target)
	assert.False(t, points[0].TargetMissing)

	assert.Equal(t, 300.0, points[1].Realized)
	assert.Equal(t, 150.0, points[1].Target, "mês sem meta não soma")
	assert.True(t, points[1].TargetMissing)

	assert.Equal(t, 600.0, points[2].Realized)
	assert.Equal(t, 400.0, points[2].Target)
}

func TestCumulative_NonDecreasingAndMatchesTotals(t *testing.T) {
	periods := []domain.AggregatedPeriod{
		period(1, 1000, ptr(800)),
		period(5, 0, ptr(0)),
		period(9, 250.5, ptr(1000)),
		period(12, 10, nil),
	}

	points := Cumulative(periods, domain.TargetAccumulated)
	require.Len(t, points, len(periods), "meses ausentes não são preenchidos")

	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].Realized, points[i-1].Realized)
		assert.GreaterOrEqual(t, points[i].Target, points[i-1].Target)
	}

	totals := ComputeTotals(periods)
	last := points[len(points)-1]
	assert.InDelta(t, totals.Amount, last.Realized, 1e-9)
	assert.InDelta(t, totals.AccumulatedTarget, last.Target, 1e-9)
}

func TestCumulative_Empty(t *testing.T) {
	assert.Empty(t, Cumulative(nil, domain.TargetAccumulated))
}
