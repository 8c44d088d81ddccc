package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/metas-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/metas-dashboard/internal/config"
	"go.uber.org/mock/gomock"
)

func TestDatasetSweepService_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Data de referência: 16 de janeiro, 12h
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-2 * time.Hour)

	mockDatasetRepo := mocks.NewMockDatasetRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockReportSnapshotRepository(ctrl)

	tests := []struct {
		name         string
		withSnapshot bool
		setup        func()
		want         int
		validate     func(t *testing.T, s *DatasetSweepService)
	}{
		{
			name: "remove os datasets anteriores ao corte",
			setup: func() {
				mockDatasetRepo.EXPECT().
					DeleteCreatedBefore(gomock.Any(), cutoff).
					Return([]string{"a", "b"}, nil)
				mockDatasetRepo.EXPECT().Count(gomock.Any()).Return(3)
			},
			want: 2,
			validate: func(t *testing.T, s *DatasetSweepService) {
				status := s.GetStatus()
				assert.Equal(t, 2, status["last_removed"])
				assert.Equal(t, 2, status["total_removals"])
				assert.Equal(t, now, status["last_sweep_at"])
				assert.Equal(t, false, status["sweep_running"])
			},
		},
		{
			name:         "apaga também os snapshots dos removidos",
			withSnapshot: true,
			setup: func() {
				mockDatasetRepo.EXPECT().
					DeleteCreatedBefore(gomock.Any(), cutoff).
					Return([]string{"a", "b"}, nil)
				mockSnapshotRepo.EXPECT().DeleteByDataset(gomock.Any(), "a").Return(int64(3), nil)
				mockSnapshotRepo.EXPECT().DeleteByDataset(gomock.Any(), "b").Return(int64(0), errors.New("falha"))
				mockDatasetRepo.EXPECT().Count(gomock.Any()).Return(0)
			},
			want: 2,
		},
		{
			name: "erro no repositório não conta remoções",
			setup: func() {
				mockDatasetRepo.EXPECT().
					DeleteCreatedBefore(gomock.Any(), cutoff).
					Return(nil, errors.New("falha"))
			},
			want: 0,
			validate: func(t *testing.T, s *DatasetSweepService) {
				assert.Equal(t, 0, s.GetStatus()["total_removals"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDatasetSweepService(mockDatasetRepo, &config.Config{
				Dataset: config.Dataset{TTL: 2 * time.Hour, SweepCron: "*/10 * * * *", SweepEnabled: true},
			})
			s.now = func() time.Time { return now }
			if tt.withSnapshot {
				s.WithSnapshots(mockSnapshotRepo)
			}

			tt.setup()

			got := s.Sweep(context.Background())
			assert.Equal(t, tt.want, got)

			if tt.validate != nil {
				tt.validate(t, s)
			}
		})
	}
}

func TestDatasetSweepService_SweepAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDatasetRepo := mocks.NewMockDatasetRepository(ctrl)
	s := NewDatasetSweepService(mockDatasetRepo, &config.Config{Dataset: config.Dataset{TTL: time.Hour}})
	s.sweepRunning = true

	// Nenhuma chamada ao repositório é esperada
	assert.Equal(t, 0, s.Sweep(context.Background()))
}

func TestDatasetSweepService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewDatasetSweepService(mocks.NewMockDatasetRepository(ctrl), &config.Config{
		Dataset: config.Dataset{SweepEnabled: false},
	})

	assert.NoError(t, s.Start(context.Background()))
	assert.Equal(t, false, s.GetStatus()["sweep_enabled"])
}

func TestDatasetSweepService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewDatasetSweepService(mocks.NewMockDatasetRepository(ctrl), &config.Config{
		Dataset: config.Dataset{SweepEnabled: true, SweepCron: "isto não é cron", TTL: time.Hour},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, s.Start(ctx))
}
