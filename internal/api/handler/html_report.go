package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/internal/usecases/dataset"
	"github.com/vfg2006/metas-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/metas-dashboard/pkg/apiErrors"
	"github.com/vfg2006/metas-dashboard/pkg/middleware"
	"github.com/vfg2006/metas-dashboard/web"
)

// GetHTMLReport devolve o relatório completo em HTML, com os gráficos
// apontando para as rotas PNG. ?salesperson= inclui a visão individual.
func GetHTMLReport(datasets dataset.DatasetService, reporter reporting.Reporter) http.HandlerFunc {
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

		overview, err := reporter.Overview(r.Context(), ds, opts)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		page := web.ReportPage{
			Overview:       overview,
			OverviewCharts: chartImages(r, id, overview, url.Values{}),
			Salespeople:    ds.Salespeople(),
			GeneratedAt:    overview.GeneratedAt,
		}

		if name := r.URL.Query().Get("salesperson"); name != "" {
			report, err := reporter.Salesperson(r.Context(), ds, name, opts)
			switch {
			case errors.Is(err, reporting.ErrNoSalespersonTargets):
				page.SalespersonWarning = fmt.Sprintf("⚠️ %s", capitalize(err.Error()))
			case err != nil:
				writeServiceError(w, r, err)
				return
			default:
				page.Salesperson = report
				page.SalespersonCharts = chartImages(r, id, report, url.Values{
					"scope": {string(domain.ScopeSalesperson)},
					"name":  {name},
				})
			}
		}

		var buf bytes.Buffer
		if err := web.RenderReport(&buf, page); err != nil {
			writeServiceError(w, r, fmt.Errorf("erro ao montar relatório HTML: %w", err))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}

// chartImages monta as URLs PNG repetindo o filtro e o token da requisição
func chartImages(r *http.Request, datasetID string, report *domain.Report, extra url.Values) []web.ChartImage {
	base := url.Values{}
	for _, key := range []string{"months", "percent", "labels"} {
		if values, ok := r.URL.Query()[key]; ok {
			base[key] = values
		}
	}
	if token := middleware.TokenFromRequest(r); token != "" {
		base.Set("token", token)
	}
	for k, v := range extra {
		base[k] = v
	}

	images := make([]web.ChartImage, 0, len(report.Charts))
	for _, c := range report.Charts {
		images = append(images, web.ChartImage{
			ID:    c.ID,
			Title: c.Title,
			URL:   fmt.Sprintf("/v1/datasets/%s/charts/%s.png?%s", url.PathEscape(datasetID), c.ID, base.Encode()),
			Empty: c.Placeholder,
		})
	}
	return images
}
