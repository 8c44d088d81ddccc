package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/metas-dashboard/infrastructure/render"
	"github.com/vfg2006/metas-dashboard/infrastructure/repository"
	"github.com/vfg2006/metas-dashboard/internal/usecases/dataset"
	"github.com/vfg2006/metas-dashboard/internal/usecases/loading"
	"github.com/vfg2006/metas-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/metas-dashboard/pkg/apiErrors"
	"github.com/vfg2006/metas-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o código da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	switch {
	case errors.Is(err, repository.ErrDatasetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Dataset não encontrado ou expirado. Envie as planilhas novamente.", nil)

	case errors.Is(err, reporting.ErrNoMonthsSelected):
		apiErrors.WriteError(w, apiErrors.ErrNoMonthsSelected, "Selecione pelo menos um mês", nil)

	case errors.Is(err, reporting.ErrNoSalespersonTargets):
		apiErrors.WriteError(w, apiErrors.ErrNoSalespersonTargets, fmt.Sprintf("⚠️ %s", capitalize(err.Error())), nil)

	case errors.Is(err, reporting.ErrEmptySalesperson):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o vendedor", nil)

	case errors.Is(err, reporting.ErrUnknownChart):
		writeAPIError(w, apiErrors.FromError(err, apiErrors.ErrUnknownChart))

	case errors.Is(err, render.ErrEmptyChart):
		writeAPIError(w, apiErrors.FromError(err, apiErrors.ErrChartNotRenderable))

	case errors.Is(err, dataset.ErrSnapshotsDisabled):
		writeAPIError(w, apiErrors.FromError(err, apiErrors.ErrSnapshotsDisabled))

	case errors.Is(err, dataset.ErrEmptySales),
		errors.Is(err, loading.ErrOpenWorkbook),
		errors.Is(err, loading.ErrMissingSheet),
		errors.Is(err, loading.ErrEmptySheet),
		errors.Is(err, loading.ErrMissingColumn),
		errors.Is(err, loading.ErrInvalidValue):
		logger.Warn("Planilha rejeitada")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, fmt.Sprintf("Erro ao carregar dados: %s", err), nil)

	default:
		logger.Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func writeAPIError(w http.ResponseWriter, apiErr apiErrors.APIError) {
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
