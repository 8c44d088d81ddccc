package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metas-dashboard/internal/domain"
)

func TestAttainmentPie(t *testing.T) {
	tests := []struct {
		name     string
		realized float64
		target   float64
		validate func(t *testing.T, chart domain.Chart)
	}{
		{
			name:     "sem meta mostra apenas o aviso",
			realized: 1000,
			target:   0,
			validate: func(t *testing.T, chart domain.Chart) {
				assert.Equal(t, "Meta não definida", chart.Placeholder)
				assert.True(t, chart.Empty())
				assert.Empty(t, chart.Series)
			},
		},
		{
			name:     "meta superada separa a superação",
			realized: 1200,
			target:   1000,
			validate: func(t *testing.T, chart domain.Chart) {
				assert.Equal(t, []string{"Meta Atingida", "Superação"}, chart.Categories)
				require.Len(t, chart.Series, 1)
				assert.Equal(t, 1000.0, *chart.Series[0].Values[0])
				assert.Equal(t, 200.0, *chart.Series[0].Values[1])
				assert.Equal(t, "120.0%", chart.Annotations[0].Text)
				assert.Equal(t, domain.Colors["success"], chart.Annotations[0].Color)
			},
		},
		{
			name:     "abaixo da meta mostra o que falta",
			realized: 750,
			target:   1000,
			validate: func(t *testing.T, chart domain.Chart) {
				assert.Equal(t, []string{"Realizado", "Falta Atingir"}, chart.Categories)
				assert.Equal(t, 250.0, *chart.Series[0].Values[1])
				assert.Equal(t, domain.Colors["warning"], chart.Annotations[0].Color)
				assert.Equal(t, []string{"R$ 750,00", "R$ 250,00"}, chart.Series[0].Labels)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := AttainmentPie(domain.ChartAttainmentMonthly, tt.realized, tt.target, "Vs Meta Mensal", true)
			assert.Equal(t, domain.ChartAttainmentMonthly, chart.ID)
			assert.Equal(t, domain.ChartPie, chart.Type)
			tt.validate(t, chart)
		})
	}
}

func TestTargetBar(t *testing.T) {
	periods := []domain.AggregatedPeriod{
		{Month: 1, MonthLabel: "Jan", TotalAmount: 1000, InitialTarget: ptr(800), AccumulatedTarget: ptr(800)},
		{Month: 2, MonthLabel: "Fev", TotalAmount: 500, InitialTarget: ptr(0), AccumulatedTarget: ptr(1000)},
		{Month: 3, MonthLabel: "Mar", TotalAmount: 300},
	}

	t.Run("modo valor traz realizado e meta", func(t *testing.T) {
		chart := TargetBar(periods, domain.TargetInitial, false, true)

		assert.Equal(t, domain.ChartBarInitial, chart.ID)
		assert.Equal(t, []string{"Jan", "Fev", "Mar"}, chart.Categories)
		require.Len(t, chart.Series, 2)

		realized := chart.Series[0]
		assert.Equal(t, []string{
			domain.Colors["success"],
			domain.Colors["neutral"],
			domain.Colors["neutral"],
		}, realized.Colors)

		meta := chart.Series[1]
		assert.Nil(t, meta.Values[2])
		assert.Equal(t, "N/A", meta.Labels[2])
	})

	t.Run("modo percentual deixa N/A sem valor", func(t *testing.T) {
		chart := TargetBar(periods, domain.TargetAccumulated, true, true)

		assert.Equal(t, domain.ChartBarAccumulated, chart.ID)
		assert.True(t, chart.Percent)
		require.Len(t, chart.Series, 1)

		series := chart.Series[0]
		require.NotNil(t, series.Values[0])
		assert.InDelta(t, 125.0, *series.Values[0], 1e-9)
		require.NotNil(t, series.Values[1])
		assert.InDelta(t, 50.0, *series.Values[1], 1e-9)
		assert.Nil(t, series.Values[2], "mês sem meta nunca vira 0%")
		assert.Equal(t, []string{"125.0%", "50.0%", "N/A"}, series.Labels)
		assert.Equal(t, domain.Colors["danger"], series.Colors[1])
	})

	t.Run("rótulos desligados", func(t *testing.T) {
		chart := TargetBar(periods, domain.TargetInitial, true, false)
		assert.Nil(t, chart.Series[0].Labels)
	})
}

func TestDistributionPie(t *testing.T) {
	periods := []domain.AggregatedPeriod{period(1, 1000, nil), period(2, 500, nil)}

	chart := DistributionPie(periods, false)

	assert.Equal(t, domain.ChartDistribution, chart.ID)
	assert.Equal(t, []string{"Jan", "Fev"}, chart.Categories)
	assert.Nil(t, chart.Series[0].Labels)
	assert.Equal(t, "Total R$ 1.500,00", chart.Annotations[0].Text)
}

func TestCumulativeChart(t *testing.T) {
	points := Cumulative([]domain.AggregatedPeriod{
		period(1, 1000, ptr(800)),
		period(2, 500, ptr(1000)),
	}, domain.TargetAccumulated)

	chart := CumulativeChart(points, true)

	assert.Equal(t, domain.ChartArea, chart.Type)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, 1500.0, *chart.Series[0].Values[1])
	assert.Equal(t, 1800.0, *chart.Series[1].Values[1])
}

func TestHeatColors(t *testing.T) {
	colors := heatColors([]float64{100, 300, 200})

	assert.Equal(t, domain.HeatmapScale[0], colors[0])
	assert.Equal(t, domain.HeatmapScale[len(domain.HeatmapScale)-1], colors[1])
	assert.Equal(t, domain.HeatmapScale[2], colors[2])

	flat := heatColors([]float64{5, 5})
	assert.Equal(t, []string{domain.HeatmapScale[0], domain.HeatmapScale[0]}, flat)

	assert.Empty(t, heatColors(nil))
}
