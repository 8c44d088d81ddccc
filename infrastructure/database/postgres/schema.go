package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS report_snapshots (
		id                 BIGSERIAL PRIMARY KEY,
		dataset_id         VARCHAR(32)      NOT NULL,
		scope              VARCHAR(16)      NOT NULL,
		salesperson        VARCHAR(255)     NOT NULL DEFAULT '',
		month              SMALLINT         NOT NULL,
		realized           DOUBLE PRECISION NOT NULL,
		orders             INTEGER          NOT NULL,
		initial_target     DOUBLE PRECISION,
		monthly_target     DOUBLE PRECISION,
		accumulated_target DOUBLE PRECISION,
		ratio              DOUBLE PRECISION,
		severity           VARCHAR(16)      NOT NULL,
		created_at         TIMESTAMPTZ      NOT NULL DEFAULT NOW(),
		updated_at         TIMESTAMPTZ      NOT NULL DEFAULT NOW(),
		UNIQUE (dataset_id, scope, salesperson, month)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_report_snapshots_dataset ON report_snapshots (dataset_id)`,
}

// EnsureSchema cria as tabelas usadas pelos snapshots de relatório em uma única transação
func EnsureSchema(ctx context.Context, conn Conn) error {
	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao aplicar schema (passo %d): %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("statements", len(schemaStatements)).Info("Schema de snapshots verificado")
	return nil
}
