package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/metas-dashboard/infrastructure/repository"
	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/pkg/log"
	"github.com/vfg2006/metas-dashboard/pkg/utils"
)

// Reporter recalcula o relatório inteiro a cada interação do usuário
type Reporter interface {
	// Overview monta a visão geral com todos os vendedores
	Overview(ctx context.Context, ds *domain.Dataset, opts domain.ReportOptions) (*domain.Report, error)

	// Salesperson monta a visão individual de um vendedor
	Salesperson(ctx context.Context, ds *domain.Dataset, name string, opts domain.ReportOptions) (*domain.Report, error)
}

type Service struct {
	snapshots repository.ReportSnapshotRepository
	now       func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// WithSnapshots habilita a gravação de um snapshot por período calculado
func (s *Service) WithSnapshots(repo repository.ReportSnapshotRepository) *Service {
	s.snapshots = repo
	return s
}

func (s *Service) Overview(ctx context.Context, ds *domain.Dataset, opts domain.ReportOptions) (*domain.Report, error) {
	if err := checkMonths(opts.Months); err != nil {
		return nil, err
	}

	periods := Aggregate(ds.Sales, ds.Targets, opts.Months)
	totals := ComputeTotals(periods)

	report := s.newReport(ds, domain.ScopeOverview, periods, totals)
	report.KPIs = BuildKPIs(totals, "Faturamento Total")
	report.Cumulative = Cumulative(periods, domain.TargetAccumulated)
	report.Insights = Insights(periods, totals.Amount, totals.MonthlyTarget)
	report.Charts = []domain.Chart{
		AttainmentPie(domain.ChartAttainmentInitial, totals.Amount, totals.InitialTarget, "Vs Meta Inicial", opts.ShowLabels),
		AttainmentPie(domain.ChartAttainmentMonthly, totals.Amount, totals.MonthlyTarget, "Vs Meta Mensal", opts.ShowLabels),
		DistributionPie(periods, opts.ShowLabels),
		HeatmapChart(periods),
		HistogramChart(periods),
		TargetBar(periods, domain.TargetInitial, opts.Percent, opts.ShowLabels),
		TargetBar(periods, domain.TargetAccumulated, opts.Percent, opts.ShowLabels),
		CumulativeChart(report.Cumulative, opts.ShowLabels),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset_id":     ds.ID,
		"report_periods": len(periods),
		"report_scope":   domain.ScopeOverview,
	}).Debug("Visão geral calculada")

	if !opts.SkipSnapshots {
		s.recordSnapshots(ctx, report)
	}

	return report, nil
}

func (s *Service) Salesperson(ctx context.Context, ds *domain.Dataset, name string, opts domain.ReportOptions) (*domain.Report, error) {
	if err := checkMonths(opts.Months); err != nil {
		return nil, err
	}

	periods, err := AggregateSalesperson(ds.Sales, ds.SalespersonTargets, name, opts.Months)
	if err != nil {
		return nil, err
	}
	totals := ComputeTotals(periods)

	report := s.newReport(ds, domain.ScopeSalesperson, periods, totals)
	report.Salesperson = name
	report.KPIs = BuildKPIs(totals, "Faturamento")
	report.KPIs.RemainingToTarget = domain.KPI{}
	report.Cumulative = Cumulative(periods, domain.TargetAccumulated)
	report.Insights = Insights(periods, totals.Amount, totals.MonthlyTarget)
	report.Charts = []domain.Chart{
		AttainmentPie(domain.ChartAttainmentMonthly, totals.Amount, totals.MonthlyTarget, salespersonPieTitle(name), opts.ShowLabels),
		DistributionPie(periods, opts.ShowLabels),
		TargetBar(periods, domain.TargetInitial, opts.Percent, opts.ShowLabels),
		TargetBar(periods, domain.TargetAccumulated, opts.Percent, opts.ShowLabels),
		CumulativeChart(report.Cumulative, opts.ShowLabels),
	}
	report.Sales = salesDetail(FilterSales(ds.Sales, name), opts.Months)

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset_id":     ds.ID,
		"salesperson":    name,
		"report_periods": len(periods),
		"report_scope":   domain.ScopeSalesperson,
	}).Debug("Visão do vendedor calculada")

	if !opts.SkipSnapshots {
		s.recordSnapshots(ctx, report)
	}

	return report, nil
}

func (s *Service) newReport(ds *domain.Dataset, scope domain.ReportScope, periods []domain.AggregatedPeriod, totals domain.Totals) *domain.Report {
	views := make([]domain.PeriodView, len(periods))
	months := make([]int, len(periods))
	for i, p := range periods {
		views[i] = periodView(p)
		months[i] = p.Month
	}

	return &domain.Report{
		DatasetID:   ds.ID,
		Scope:       scope,
		Months:      months,
		Periods:     views,
		Totals:      totals,
		GeneratedAt: s.now(),
	}
}

// checkMonths barra a seleção vazia. Um MonthSet nil continua valendo "todos".
func checkMonths(months domain.MonthSet) error {
	if months != nil && len(months.Sorted()) == 0 {
		return ErrNoMonthsSelected
	}
	return nil
}

// salesDetail lista as vendas do vendedor da mais recente para a mais antiga
func salesDetail(sales []domain.SalesRecord, months domain.MonthSet) []domain.SaleDetail {
	details := make([]domain.SaleDetail, 0, len(sales))
	for _, sale := range sales {
		if !months.Contains(sale.Month()) {
			continue
		}
		details = append(details, domain.SaleDetail{
			Date:            sale.Date,
			Amount:          sale.Amount,
			AmountFormatted: utils.FormatBRL(sale.Amount),
			OrderCount:      sale.OrderCount,
		})
	}

	sort.SliceStable(details, func(i, j int) bool { return details[i].Date.After(details[j].Date) })

	return details
}

// recordSnapshots grava um registro por período. Falhas só geram log.
func (s *Service) recordSnapshots(ctx context.Context, report *domain.Report) {
	if s.snapshots == nil {
		return
	}

	for _, p := range report.Periods {
		snapshot := &domain.ReportSnapshot{
			DatasetID:         report.DatasetID,
			Scope:             report.Scope,
			Salesperson:       report.Salesperson,
			Month:             p.Month,
			Realized:          utils.RoundWithTwoDecimalPlace(p.TotalAmount),
			Orders:            p.TotalOrders,
			InitialTarget:     p.InitialTarget,
			MonthlyTarget:     p.MonthlyTarget,
			AccumulatedTarget: p.AccumulatedTarget,
			Ratio:             roundOptional(p.VsAccumulated.Ratio),
			Severity:          p.VsAccumulated.Severity,
		}

		if err := s.snapshots.SaveOrUpdate(ctx, snapshot); err != nil {
			log.ForContext(ctx).WithError(err).WithFields(log.Fields{
				"dataset_id":   report.DatasetID,
				"report_month": p.Month,
			}).Warn("Erro ao gravar snapshot do relatório")
		}
	}
}

func roundOptional(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return utils.FloatPtr(utils.RoundWithTwoDecimalPlace(*v))
}
