package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metas-dashboard/infrastructure/repository"
	"github.com/vfg2006/metas-dashboard/internal/config"
)

// DatasetSweepService remove periodicamente os datasets cujo prazo expirou
type DatasetSweepService struct {
	scheduler     *gocron.Scheduler
	config        config.Dataset
	datasetRepo   repository.DatasetRepository
	snapshotRepo  repository.ReportSnapshotRepository
	now           func() time.Time
	sweepRunning  bool
	sweepMutex    sync.Mutex
	lastSweepAt   time.Time
	lastRemoved   int
	totalRemovals int
}

func NewDatasetSweepService(
	datasetRepo repository.DatasetRepository,
	appConfig *config.Config,
) *DatasetSweepService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.Dataset.SweepCron,
		"ttl":           appConfig.Dataset.TTL.String(),
		"sweep_enabled": appConfig.Dataset.SweepEnabled,
	}).Info("Configuração da limpeza de datasets carregada")

	return &DatasetSweepService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      appConfig.Dataset,
		datasetRepo: datasetRepo,
		now:         time.Now,
	}
}

// WithSnapshots faz a limpeza apagar também os snapshots dos datasets expirados
func (s *DatasetSweepService) WithSnapshots(repo repository.ReportSnapshotRepository) *DatasetSweepService {
	s.snapshotRepo = repo
	return s
}

// Start agenda a limpeza e para o agendador quando o contexto for cancelado
func (s *DatasetSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Limpeza de datasets desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.SweepCron).Info("Iniciando agendador de limpeza de datasets")

	_, err := s.scheduler.Cron(s.config.SweepCron).Do(func() {
		s.Sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de datasets: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de datasets")
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep executa uma passada de limpeza e devolve quantos datasets foram removidos
func (s *DatasetSweepService) Sweep(ctx context.Context) int {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Limpeza de datasets já em andamento, ignorando")
		return 0
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	cutoff := s.now().Add(-s.config.TTL)

	removed, err := s.datasetRepo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover datasets expirados")
		return 0
	}

	if s.snapshotRepo != nil {
		for _, id := range removed {
			if _, err := s.snapshotRepo.DeleteByDataset(ctx, id); err != nil {
				logrus.WithError(err).WithField("dataset_id", id).Warn("Erro ao remover snapshots do dataset expirado")
			}
		}
	}

	s.sweepMutex.Lock()
	s.lastSweepAt = s.now()
	s.lastRemoved = len(removed)
	s.totalRemovals += len(removed)
	s.sweepMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed":   len(removed),
		"cutoff":    cutoff.Format(time.RFC3339),
		"remaining": s.datasetRepo.Count(ctx),
	}).Info("Limpeza de datasets concluída")

	return len(removed)
}

// GetStatus retorna o estado atual da limpeza
func (s *DatasetSweepService) GetStatus() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	return map[string]any{
		"sweep_running":  s.sweepRunning,
		"sweep_cron":     s.config.SweepCron,
		"sweep_enabled":  s.config.SweepEnabled,
		"ttl":            s.config.TTL.String(),
		"last_sweep_at":  s.lastSweepAt,
		"last_removed":   s.lastRemoved,
		"total_removals": s.totalRemovals,
	}
}
