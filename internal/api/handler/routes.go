package handler

import (
	"net/http"

	"github.com/vfg2006/metas-dashboard/infrastructure/render"
	"github.com/vfg2006/metas-dashboard/internal/api/handler/router"
	"github.com/vfg2006/metas-dashboard/internal/usecases/dataset"
	"github.com/vfg2006/metas-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/metas-dashboard/pkg/middleware"
)

func Healthcheck(sweeper StatusProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(sweeper),
		},
	}
}

func Datasets(service dataset.DatasetService, maxUploadMB int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets",
			Method:  http.MethodPost,
			Handler: UploadDataset(service, maxUploadMB),
		},
		{
			Path:        "/v1/datasets/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DatasetOwner()},
		},
		{
			Path:        "/v1/datasets/:id/salespeople",
			Method:      http.MethodGet,
			Handler:     ListSalespeople(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DatasetOwner()},
		},
		{
			Path:        "/v1/datasets/:id/snapshots",
			Method:      http.MethodGet,
			Handler:     ListSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DatasetOwner()},
		},
	}
}

func Reports(datasets dataset.DatasetService, reporter reporting.Reporter, renderer render.Renderer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets/:id/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(datasets, reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.DatasetOwner()},
		},
		{
			Path:        "/v1/datasets/:id/salespeople/:name",
			Method:      http.MethodGet,
			Handler:     GetSalespersonReport(datasets, reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.DatasetOwner()},
		},
		{
			Path:        "/v1/datasets/:id/charts/:chart",
			Method:      http.MethodGet,
			Handler:     GetChartImage(datasets, reporter, renderer),
			Middlewares: []func(http.Handler) http.Handler{middleware.DatasetOwner()},
		},
		{
			Path:        "/v1/datasets/:id/report",
			Method:      http.MethodGet,
			Handler:     GetHTMLReport(datasets, reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.DatasetOwner()},
		},
	}
}
