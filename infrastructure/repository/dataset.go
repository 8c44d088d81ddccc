package repository

//go:generate mockgen -source=dataset.go -destination=mocks/dataset.go -package=mocks

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/metas-dashboard/internal/domain"
)

var ErrDatasetNotFound = errors.New("dataset não encontrado")

// DatasetRepository guarda as planilhas interpretadas durante a sessão de análise
type DatasetRepository interface {
	Save(ctx context.Context, ds *domain.Dataset) error
	Get(ctx context.Context, id string) (*domain.Dataset, error)
	Delete(ctx context.Context, id string) error
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error)
	Count(ctx context.Context) int
}

type memoryDatasetRepository struct {
	mu       sync.RWMutex
	datasets map[string]*domain.Dataset
}

// NewMemoryDatasetRepository cria o repositório em memória. Nada sobrevive a um restart.
func NewMemoryDatasetRepository() DatasetRepository {
	return &memoryDatasetRepository{
		datasets: make(map[string]*domain.Dataset),
	}
}

func (r *memoryDatasetRepository) Save(_ context.Context, ds *domain.Dataset) error {
	if ds == nil || ds.ID == "" {
		return errors.New("dataset sem identificador")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.datasets[ds.ID] = ds
	return nil
}

func (r *memoryDatasetRepository) Get(_ context.Context, id string) (*domain.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ds, ok := r.datasets[id]
	if !ok {
		return nil, ErrDatasetNotFound
	}
	return ds, nil
}

func (r *memoryDatasetRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.datasets[id]; !ok {
		return ErrDatasetNotFound
	}
	delete(r.datasets, id)
	return nil
}

// DeleteCreatedBefore remove os datasets criados antes do corte e devolve os ids removidos
func (r *memoryDatasetRepository) DeleteCreatedBefore(_ context.Context, cutoff time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := make([]string, 0)
	for id, ds := range r.datasets {
		if ds.CreatedAt.Before(cutoff) {
			delete(r.datasets, id)
			removed = append(removed, id)
		}
	}
	sort.Strings(removed)

	return removed, nil
}

func (r *memoryDatasetRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.datasets)
}
