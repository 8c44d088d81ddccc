package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/internal/usecases/dataset"
)

type stubDatasets struct {
	dataset.DatasetService
	ds *domain.Dataset
}

func (s *stubDatasets) Get(context.Context, string) (*domain.Dataset, error) {
	return s.ds, nil
}

type recordingReporter struct {
	opts []domain.ReportOptions
}

func (r *recordingReporter) Overview(_ context.Context, ds *domain.Dataset, opts domain.ReportOptions) (*domain.Report, error) {
	r.opts = append(r.opts, opts)
	return &domain.Report{
		DatasetID: ds.ID,
		Charts:    []domain.Chart{{ID: domain.ChartDistribution, Type: domain.ChartPie}},
	}, nil
}

func (r *recordingReporter) Salesperson(ctx context.Context, ds *domain.Dataset, _ string, opts domain.ReportOptions) (*domain.Report, error) {
	return r.Overview(ctx, ds, opts)
}

type stubRenderer struct{}

func (stubRenderer) Render(w io.Writer, _ domain.Chart) error {
	_, err := w.Write([]byte("png"))
	return err
}

func TestGetChartImage_DoesNotRecordSnapshots(t *testing.T) {
	reporter := &recordingReporter{}
	handler := GetChartImage(&stubDatasets{ds: &domain.Dataset{ID: "ds-1"}}, reporter, stubRenderer{})

	tests := []struct {
		name   string
		target string
	}{
		{name: "visão geral", target: "/v1/datasets/ds-1/charts/distribution.png"},
		{name: "vendedor", target: "/v1/datasets/ds-1/charts/distribution.png?scope=salesperson&name=Ana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params{
				{Key: "id", Value: "ds-1"},
				{Key: "chart", Value: "distribution.png"},
			}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
			require.NotEmpty(t, reporter.opts)
			assert.True(t, reporter.opts[len(reporter.opts)-1].SkipSnapshots)
		})
	}
}
