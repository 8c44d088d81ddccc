package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/metas-dashboard/internal/usecases/dataset"
	"github.com/vfg2006/metas-dashboard/internal/usecases/loading"
	"github.com/vfg2006/metas-dashboard/pkg/apiErrors"
	"github.com/vfg2006/metas-dashboard/pkg/log"
)

const (
	salesField   = "vendas"
	targetsField = "metas"
)

var workbookExtensions = map[string]bool{".xlsx": true, ".xlsm": true}

// UploadDataset recebe as planilhas de vendas e metas e devolve o token do dataset
func UploadDataset(service dataset.DatasetService, maxUploadMB int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := maxUploadMB << 20
		r.Body = http.MaxBytesReader(w, r.Body, limit)

		if err := r.ParseMultipartForm(limit); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, fmt.Sprintf("As planilhas devem somar no máximo %d MB", maxUploadMB), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envie as planilhas como multipart/form-data", nil)
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		sales, salesHeader, err := r.FormFile(salesField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "📊 Planilha de Vendas é obrigatória", map[string]string{"field": salesField})
			return
		}
		defer sales.Close()

		targets, targetsHeader, err := r.FormFile(targetsField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "🎯 Planilha de Metas é obrigatória", map[string]string{"field": targetsField})
			return
		}
		defer targets.Close()

		for _, h := range []*multipart.FileHeader{salesHeader, targetsHeader} {
			if !workbookExtensions[strings.ToLower(filepath.Ext(h.Filename))] {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, fmt.Sprintf("Arquivo %q não é uma planilha Excel (.xlsx)", h.Filename), nil)
				return
			}
		}

		summary, err := service.Create(r.Context(),
			loading.Source{Name: salesHeader.Filename, Reader: sales},
			loading.Source{Name: targetsHeader.Filename, Reader: targets},
		)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, summary)
	}
}

// DeleteDataset descarta o dataset antes do prazo de expiração
func DeleteDataset(service dataset.DatasetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListSalespeople devolve os vendedores distintos da planilha de vendas
func ListSalespeople(service dataset.DatasetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		ds, err := service.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"dataset_id":  ds.ID,
			"salespeople": ds.Salespeople(),
			"months":      ds.AvailableMonths(),
		})
	}
}

// ListSnapshots devolve os snapshots gravados para o dataset
func ListSnapshots(service dataset.DatasetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		snapshots, err := service.Snapshots(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"dataset_id":       id,
			"report_snapshots": len(snapshots),
		}).Debug("Snapshots listados")

		writeJSON(w, r, http.StatusOK, snapshots)
	}
}
