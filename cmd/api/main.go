package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metas-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/metas-dashboard/infrastructure/render"
	"github.com/vfg2006/metas-dashboard/infrastructure/repository"
	"github.com/vfg2006/metas-dashboard/internal/api"
	"github.com/vfg2006/metas-dashboard/internal/config"
	"github.com/vfg2006/metas-dashboard/internal/scheduler"
	"github.com/vfg2006/metas-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/metas-dashboard/internal/usecases/dataset"
	"github.com/vfg2006/metas-dashboard/internal/usecases/loading"
	"github.com/vfg2006/metas-dashboard/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasetRepo := repository.NewMemoryDatasetRepository()
	authenticator := authenticating.NewService(cfg)
	loader := loading.NewService(cfg)

	datasetService := dataset.NewService(loader, datasetRepo, authenticator, cfg)
	reportService := reporting.NewService()
	sweepService := scheduler.NewDatasetSweepService(datasetRepo, cfg)

	// Snapshots são opcionais; sem banco o painel funciona só em memória
	if cfg.Snapshot.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		if err := postgres.EnsureSchema(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar schema de snapshots")
		}

		snapshotRepo := repository.NewReportSnapshotRepository(pgConn)
		datasetService.WithSnapshots(snapshotRepo)
		reportService.WithSnapshots(snapshotRepo)
		sweepService.WithSnapshots(snapshotRepo)
	}

	if err := sweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de datasets")
	} else {
		logrus.Info("Agendador de limpeza de datasets iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		datasetService,
		reportService,
		render.NewPNGRenderer(),
		authenticator,
		sweepService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn abre o banco dos snapshots; sem ele o serviço não sobe com SNAPSHOT_ENABLED=true
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
