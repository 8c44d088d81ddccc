package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metas-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/metas-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func testDataset() *domain.Dataset {
	return &domain.Dataset{
		ID: "ds-1",
		Sales: []domain.SalesRecord{
			sale(1, 10, 600, 2, "Ana"),
			sale(1, 20, 400, 1, "Bruno"),
			sale(2, 5, 300, 1, "Ana"),
			sale(2, 25, 200, 1, "Bruno"),
		},
		Targets: []domain.MonthlyTarget{
			target(1, ptr(800), ptr(800), ptr(800)),
			target(2, ptr(1000), ptr(1000), ptr(1000)),
		},
		SalespersonTargets: []domain.SalespersonTarget{
			{Salesperson: "Ana", Month: 1, InitialTarget: ptr(500), MonthlyTarget: ptr(500), AccumulatedTarget: ptr(500)},
			{Salesperson: "Ana", Month: 2, InitialTarget: ptr(500), MonthlyTarget: ptr(500), AccumulatedTarget: ptr(500)},
		},
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestService_Overview(t *testing.T) {
	svc := NewService()
	svc.now = fixedNow

	report, err := svc.Overview(context.Background(), testDataset(), domain.ReportOptions{ShowLabels: true})
	require.NoError(t, err)

	assert.Equal(t, "ds-1", report.DatasetID)
	assert.Equal(t, domain.ScopeOverview, report.Scope)
	assert.Equal(t, []int{1, 2}, report.Months)
	assert.Equal(t, fixedNow(), report.GeneratedAt)

	require.Len(t, report.Periods, 2)
	assert.Equal(t, "R$ 1.000,00", report.Periods[0].AmountFormatted)
	assert.Equal(t, domain.SeveritySuccess, report.Periods[0].VsAccumulated.Severity)
	assert.Equal(t, domain.SeverityDanger, report.Periods[1].VsAccumulated.Severity)

	assert.Equal(t, 1500.0, report.Totals.Amount)
	assert.Equal(t, "83.3%", report.KPIs.VsMonthly.Value)

	require.Len(t, report.Insights, 3)
	assert.Equal(t, domain.SeverityWarning, report.Insights[0].Type)

	ids := make([]string, len(report.Charts))
	for i, c := range report.Charts {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{
		domain.ChartAttainmentInitial,
		domain.ChartAttainmentMonthly,
		domain.ChartDistribution,
		domain.ChartHeatmapRevenue,
		domain.ChartHistogramRevenue,
		domain.ChartBarInitial,
		domain.ChartBarAccumulated,
		domain.ChartCumulative,
	}, ids)

	assert.Empty(t, report.Sales, "detalhamento só na visão do vendedor")
}

func TestService_Overview_EmptySelection(t *testing.T) {
	svc := NewService()

	_, err := svc.Overview(context.Background(), testDataset(), domain.ReportOptions{Months: domain.MonthSet{}})
	assert.ErrorIs(t, err, ErrNoMonthsSelected)
}

func TestService_Salesperson(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name     string
		person   string
		opts     domain.ReportOptions
		wantErr  error
		validate func(t *testing.T, report *domain.Report)
	}{
		{
			name:   "relatório da vendedora com detalhamento",
			person: "Ana",
			opts:   domain.ReportOptions{ShowLabels: true},
			validate: func(t *testing.T, report *domain.Report) {
				assert.Equal(t, domain.ScopeSalesperson, report.Scope)
				assert.Equal(t, "Ana", report.Salesperson)
				assert.Equal(t, 900.0, report.Totals.Amount)
				assert.Equal(t, "Faturamento", report.KPIs.TotalRevenue.Label)
				assert.Equal(t, domain.KPI{}, report.KPIs.RemainingToTarget)

				require.Len(t, report.Charts, 5)
				assert.Equal(t, "Atingimento - Ana", report.Charts[0].Title)

				require.Len(t, report.Sales, 2)
				assert.True(t, report.Sales[0].Date.After(report.Sales[1].Date), "mais recente primeiro")
				assert.Equal(t, "R$ 300,00", report.Sales[0].AmountFormatted)
			},
		},
		{
			name:   "filtro de meses vale também para o detalhamento",
			person: "Ana",
			opts:   domain.ReportOptions{Months: domain.NewMonthSet(1)},
			validate: func(t *testing.T, report *domain.Report) {
				require.Len(t, report.Sales, 1)
				assert.Equal(t, 600.0, report.Sales[0].Amount)
				assert.Equal(t, []int{1}, report.Months)
			},
		},
		{
			name:    "vendedor sem metas",
			person:  "Bruno",
			wantErr: ErrNoSalespersonTargets,
		},
		{
			name:    "seleção vazia",
			person:  "Ana",
			opts:    domain.ReportOptions{Months: domain.MonthSet{}},
			wantErr: ErrNoMonthsSelected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := svc.Salesperson(context.Background(), testDataset(), tt.person, tt.opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, report)
				return
			}
			require.NoError(t, err)
			tt.validate(t, report)
		})
	}
}

func TestService_RecordSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := mocks.NewMockReportSnapshotRepository(ctrl)
	svc := NewService().WithSnapshots(mockSnapshots)

	var saved []*domain.ReportSnapshot
	mockSnapshots.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.ReportSnapshot) error {
			saved = append(saved, s)
			return nil
		}).
		Times(2)

	_, err := svc.Overview(context.Background(), testDataset(), domain.ReportOptions{})
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, "ds-1", saved[0].DatasetID)
	assert.Equal(t, domain.ScopeOverview, saved[0].Scope)
	assert.Equal(t, 1, saved[0].Month)
	assert.Equal(t, 1000.0, saved[0].Realized)
	require.NotNil(t, saved[0].Ratio)
	assert.Equal(t, 125.0, *saved[0].Ratio)
	assert.Equal(t, domain.SeverityDanger, saved[1].Severity)
}

func TestService_SkipSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := mocks.NewMockReportSnapshotRepository(ctrl)
	svc := NewService().WithSnapshots(mockSnapshots)

	mockSnapshots.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Times(0)

	opts := domain.ReportOptions{SkipSnapshots: true}

	overview, err := svc.Overview(context.Background(), testDataset(), opts)
	require.NoError(t, err)
	assert.Len(t, overview.Periods, 2)

	_, err = svc.Salesperson(context.Background(), testDataset(), "Ana", opts)
	require.NoError(t, err)
}

func TestService_RecordSnapshots_FailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshots := mocks.NewMockReportSnapshotRepository(ctrl)
	svc := NewService().WithSnapshots(mockSnapshots)

	mockSnapshots.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		Return(errors.New("conexão recusada")).
		Times(1)

	report, err := svc.Salesperson(context.Background(), testDataset(), "Ana", domain.ReportOptions{Months: domain.NewMonthSet(2)})
	require.NoError(t, err)
	assert.Len(t, report.Periods, 1)
}
