package handler

import (
	"net/http"
	"time"
)

// StatusProvider expõe o estado de um agendador para o healthcheck
type StatusProvider interface {
	GetStatus() map[string]any
}

func HealthcheckHandler(sweeper StatusProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}
		if sweeper != nil {
			body["dataset_sweep"] = sweeper.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, body)
	})
}
