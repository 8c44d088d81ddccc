package repository

//go:generate mockgen -source=report_snapshot.go -destination=mocks/report_snapshot.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/metas-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/metas-dashboard/internal/domain"
)

const (
	reportSnapshotsTable = "report_snapshots"
)

var reportSnapshotColumns = []string{
	"id", "dataset_id", "scope", "salesperson", "month", "realized", "orders",
	"initial_target", "monthly_target", "accumulated_target", "ratio", "severity",
	"created_at", "updated_at",
}

type ReportSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.ReportSnapshot) error
	ListByDataset(ctx context.Context, datasetID string) ([]*domain.ReportSnapshot, error)
	DeleteByDataset(ctx context.Context, datasetID string) (int64, error)
}

type reportSnapshotRepository struct {
	conn postgres.Queryer
}

func NewReportSnapshotRepository(conn postgres.Queryer) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

func (r *reportSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.ReportSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert(reportSnapshotsTable).
		Columns(
			"dataset_id", "scope", "salesperson", "month", "realized", "orders",
			"initial_target", "monthly_target", "accumulated_target", "ratio", "severity",
		).
		Values(
			snapshot.DatasetID,
			snapshot.Scope,
			snapshot.Salesperson,
			snapshot.Month,
			snapshot.Realized,
			snapshot.Orders,
			nullFloat(snapshot.InitialTarget),
			nullFloat(snapshot.MonthlyTarget),
			nullFloat(snapshot.AccumulatedTarget),
			nullFloat(snapshot.Ratio),
			snapshot.Severity,
		).
		Suffix(`
			ON CONFLICT (dataset_id, scope, salesperson, month) DO UPDATE SET
				realized = EXCLUDED.realized,
				orders = EXCLUDED.orders,
				initial_target = EXCLUDED.initial_target,
				monthly_target = EXCLUDED.monthly_target,
				accumulated_target = EXCLUDED.accumulated_target,
				ratio = EXCLUDED.ratio,
				severity = EXCLUDED.severity,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *reportSnapshotRepository) ListByDataset(ctx context.Context, datasetID string) ([]*domain.ReportSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select(reportSnapshotColumns...).
		From(reportSnapshotsTable).
		Where(squirrel.Eq{"dataset_id": datasetID}).
		OrderBy("scope ASC", "salesperson ASC", "month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.ReportSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *reportSnapshotRepository) DeleteByDataset(ctx context.Context, datasetID string) (int64, error) {
	sqlQuery, args, err := squirrel.Delete(reportSnapshotsTable).
		Where(squirrel.Eq{"dataset_id": datasetID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func scanSnapshot(rows *sql.Rows) (*domain.ReportSnapshot, error) {
	s := &domain.ReportSnapshot{}
	var initial, monthly, accumulated, ratio sql.NullFloat64

	err := rows.Scan(
		&s.ID,
		&s.DatasetID,
		&s.Scope,
		&s.Salesperson,
		&s.Month,
		&s.Realized,
		&s.Orders,
		&initial,
		&monthly,
		&accumulated,
		&ratio,
		&s.Severity,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.InitialTarget = floatPtr(initial)
	s.MonthlyTarget = floatPtr(monthly)
	s.AccumulatedTarget = floatPtr(accumulated)
	s.Ratio = floatPtr(ratio)

	return s, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
