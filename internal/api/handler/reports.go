package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/metas-dashboard/infrastructure/render"
	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/internal/usecases/dataset"
	"github.com/vfg2006/metas-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/metas-dashboard/pkg/apiErrors"
	"github.com/vfg2006/metas-dashboard/pkg/log"
)

// GetOverview recalcula a visão geral para o filtro de meses da query
func GetOverview(datasets dataset.DatasetService, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		opts, err := parseReportOptions(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		ds, err := datasets.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		report, err := reporter.Overview(r.Context(), ds, opts)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// GetSalespersonReport monta a visão individual do vendedor informado na rota
func GetSalespersonReport(datasets dataset.DatasetService, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		opts, err := parseReportOptions(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		ds, err := datasets.Get(r.Context(), params.ByName("id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		report, err := reporter.Salesperson(r.Context(), ds, params.ByName("name"), opts)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// GetChartImage desenha um gráfico do relatório em PNG. A rota recebe o
// identificador com a extensão, como "bar-initial.png".
func GetChartImage(datasets dataset.DatasetService, reporter reporting.Reporter, renderer render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		chartID := strings.TrimSuffix(params.ByName("chart"), ".png")

		opts, err := parseReportOptions(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		ds, err := datasets.Get(r.Context(), params.ByName("id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		// Os snapshots já foram gravados pela rota do relatório
		opts.SkipSnapshots = true

		report, err := buildScopedReport(r.Context(), reporter, ds, r.URL.Query().Get("scope"), r.URL.Query().Get("name"), opts)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		chart, ok := report.Chart(chartID)
		if !ok {
			writeServiceError(w, r, fmt.Errorf("%w: %q", reporting.ErrUnknownChart, chartID))
			return
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, chart); err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"dataset_id":   ds.ID,
			"report_chart": chartID,
		}).Debug("Gráfico desenhado")

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar imagem")
		}
	}
}

func buildScopedReport(
	ctx context.Context,
	reporter reporting.Reporter,
	ds *domain.Dataset,
	scope, name string,
	opts domain.ReportOptions,
) (*domain.Report, error) {
	switch domain.ReportScope(scope) {
	case "", domain.ScopeOverview:
		return reporter.Overview(ctx, ds, opts)
	case domain.ScopeSalesperson:
		return reporter.Salesperson(ctx, ds, name, opts)
	default:
		return nil, fmt.Errorf("%w: escopo %q", reporting.ErrUnknownChart, scope)
	}
}
