package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metas-dashboard/internal/domain"
)

func TestBuildKPIs(t *testing.T) {
	totals := domain.Totals{
		Amount:            1500,
		Orders:            5,
		InitialTarget:     1200,
		MonthlyTarget:     0,
		AccumulatedTarget: 1800,
		AverageTicket:     300,
	}

	kpis := BuildKPIs(totals, "Faturamento Total")

	assert.Equal(t, "Faturamento Total", kpis.TotalRevenue.Label)
	assert.Equal(t, "R$ 1.500,00", kpis.TotalRevenue.Value)

	assert.False(t, kpis.VsMonthly.Applicable, "meta mensal zerada")
	assert.Equal(t, "N/A", kpis.VsMonthly.Value)
	assert.Nil(t, kpis.VsMonthly.Raw)

	assert.True(t, kpis.VsInitial.Applicable)
	assert.Equal(t, "125.0%", kpis.VsInitial.Value)
	assert.Equal(t, "+25.0%", kpis.VsInitial.Delta)

	assert.Equal(t, "R$ -300,00", kpis.RemainingToTarget.Value)
	assert.Equal(t, "16.7% da meta", kpis.RemainingToTarget.Delta)
	require.NotNil(t, kpis.RemainingToTarget.Raw)
	assert.Equal(t, 300.0, *kpis.RemainingToTarget.Raw)

	assert.Equal(t, "R$ 300,00", kpis.AverageTicket.Value)
	assert.Equal(t, "5 pedidos", kpis.AverageTicket.Delta)
}

func TestBuildKPIs_TargetReached(t *testing.T) {
	kpis := BuildKPIs(domain.Totals{Amount: 2000, AccumulatedTarget: 1800}, "Faturamento")

	assert.Equal(t, "R$ 200,00", kpis.RemainingToTarget.Value)
	assert.Equal(t, "Meta atingida! 🎉", kpis.RemainingToTarget.Delta)
}

func TestBuildKPIs_NoTargets(t *testing.T) {
	kpis := BuildKPIs(domain.Totals{Amount: 100}, "Faturamento")

	assert.Equal(t, "N/A", kpis.VsInitial.Value)
	assert.Equal(t, "N/A", kpis.RemainingToTarget.Value)
	assert.False(t, kpis.RemainingToTarget.Applicable)
}
