package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metas-dashboard/infrastructure/render"
	"github.com/vfg2006/metas-dashboard/internal/api/handler"
	"github.com/vfg2006/metas-dashboard/internal/api/handler/router"
	"github.com/vfg2006/metas-dashboard/internal/config"
	"github.com/vfg2006/metas-dashboard/internal/scheduler"
	"github.com/vfg2006/metas-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/metas-dashboard/internal/usecases/dataset"
	"github.com/vfg2006/metas-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/metas-dashboard/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	datasetService dataset.DatasetService,
	reporter reporting.Reporter,
	renderer render.Renderer,
	authenticator authenticating.Authenticator,
	sweepService *scheduler.DatasetSweepService,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, datasetService, reporter, renderer, authenticator, sweepService),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares global
func NewHandler(
	config *config.Config,
	datasetService dataset.DatasetService,
	reporter reporting.Reporter,
	renderer render.Renderer,
	authenticator authenticating.Authenticator,
	sweepService *scheduler.DatasetSweepService,
) http.Handler {
	var sweeper handler.StatusProvider
	if sweepService != nil {
		sweeper = sweepService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(sweeper)...),
		router.WithRoutes(handler.Datasets(datasetService, config.Server.MaxUploadMB)...),
		router.WithRoutes(handler.Reports(datasetService, reporter, renderer)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
