package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/metas-dashboard/infrastructure/repository"
	"github.com/vfg2006/metas-dashboard/internal/config"
	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/metas-dashboard/internal/usecases/loading"
	"github.com/vfg2006/metas-dashboard/pkg/log"
	"github.com/vfg2006/metas-dashboard/pkg/utils"
)

// DatasetService gerencia o ciclo de vida das planilhas enviadas
type DatasetService interface {
	// Create interpreta as planilhas, guarda o dataset e emite o token de acesso
	Create(ctx context.Context, sales, targets loading.Source) (*domain.DatasetSummary, error)

	Get(ctx context.Context, id string) (*domain.Dataset, error)

	// Delete remove o dataset e os snapshots gravados para ele
	Delete(ctx context.Context, id string) error

	Snapshots(ctx context.Context, id string) ([]*domain.ReportSnapshot, error)
}

type Service struct {
	loader        loading.Loader
	datasetRepo   repository.DatasetRepository
	snapshotRepo  repository.ReportSnapshotRepository
	authenticator authenticating.Authenticator
	ttl           time.Duration
	newID         func() (string, error)
	now           func() time.Time
}

func NewService(
	loader loading.Loader,
	datasetRepo repository.DatasetRepository,
	authenticator authenticating.Authenticator,
	cfg *config.Config,
) *Service {
	return &Service{
		loader:        loader,
		datasetRepo:   datasetRepo,
		authenticator: authenticator,
		ttl:           cfg.Dataset.TTL,
		newID:         utils.GenerateID,
		now:           time.Now,
	}
}

// WithSnapshots habilita a consulta e a limpeza dos snapshots
func (s *Service) WithSnapshots(repo repository.ReportSnapshotRepository) *Service {
	s.snapshotRepo = repo
	return s
}

func (s *Service) Create(ctx context.Context, sales, targets loading.Source) (*domain.DatasetSummary, error) {
	ds, err := s.loader.Load(ctx, sales, targets)
	if err != nil {
		return nil, err
	}
	if len(ds.Sales) == 0 {
		return nil, ErrEmptySales
	}

	ds.ID, err = s.newID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do dataset: %w", err)
	}
	ds.CreatedAt = s.now()

	if err := s.datasetRepo.Save(ctx, ds); err != nil {
		return nil, fmt.Errorf("erro ao guardar dataset: %w", err)
	}

	expiresAt := ds.ExpiresAt(s.ttl)
	token, err := s.authenticator.IssueToken(ds.ID, expiresAt)
	if err != nil {
		_ = s.datasetRepo.Delete(ctx, ds.ID)
		return nil, fmt.Errorf("erro ao emitir token do dataset: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset_id":   ds.ID,
		"sales_rows":   len(ds.Sales),
		"dropped_rows": ds.DroppedRows,
	}).Info("Dataset criado")

	return &domain.DatasetSummary{
		ID:          ds.ID,
		Token:       token,
		ExpiresAt:   expiresAt,
		Months:      ds.AvailableMonths(),
		Salespeople: ds.Salespeople(),
		SalesRows:   len(ds.Sales),
		DroppedRows: ds.DroppedRows,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Dataset, error) {
	ds, err := s.datasetRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// O sweeper roda em intervalos; um dataset vencido não deve ser servido até lá
	if !s.now().Before(ds.ExpiresAt(s.ttl)) {
		if err := s.datasetRepo.Delete(ctx, id); err == nil {
			s.purgeSnapshots(ctx, id)
		}
		return nil, repository.ErrDatasetNotFound
	}

	return ds, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.datasetRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.purgeSnapshots(ctx, id)

	log.ForContext(ctx).WithField("dataset_id", id).Info("Dataset removido")
	return nil
}

// purgeSnapshots apaga os snapshots de um dataset já removido; falhas só são registradas
func (s *Service) purgeSnapshots(ctx context.Context, id string) {
	if s.snapshotRepo == nil {
		return
	}

	removed, err := s.snapshotRepo.DeleteByDataset(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("dataset_id", id).Warn("Erro ao remover snapshots do dataset")
		return
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset_id":       id,
		"report_snapshots": removed,
	}).Debug("Snapshots removidos")
}

func (s *Service) Snapshots(ctx context.Context, id string) ([]*domain.ReportSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, ErrSnapshotsDisabled
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.snapshotRepo.ListByDataset(ctx, id)
}
