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
	"github.com/vfg2006/jewelai-api/internal/api/handler"
	"github.com/vfg2006/jewelai-api/internal/api/handler/router"
	"github.com/vfg2006/jewelai-api/internal/config"
	"github.com/vfg2006/jewelai-api/internal/ledger"
	"github.com/vfg2006/jewelai-api/internal/scheduler"
	"github.com/vfg2006/jewelai-api/internal/usecases/authenticating"
	"github.com/vfg2006/jewelai-api/internal/usecases/customizing"
	"github.com/vfg2006/jewelai-api/internal/usecases/insighting"
	"github.com/vfg2006/jewelai-api/internal/usecases/reporting"
	"github.com/vfg2006/jewelai-api/internal/usecases/researching"
	"github.com/vfg2006/jewelai-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso montados em cmd/api
type Services struct {
	Loader           ledger.Loader
	Insighter        insighting.InventoryInsighter
	Customizer       customizing.Customizer
	Researcher       researching.Researcher
	Reporter         reporting.Reporter
	Authenticator    authenticating.Authenticator
	SnapshotSyncJobs *scheduler.CategorySnapshotSyncService
}

func New(config *config.Config, services Services) (*Server, error) {
	handler := NewHandler(config, services)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{
		CategorySnapshotSyncService: services.SnapshotSyncJobs,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Loader)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Inventory(services.Insighter, config.Ledger.DefaultDays)...),
		router.WithRoutes(handler.Reports(services.Reporter)...),
		router.WithRoutes(handler.DashboardLayout(services.Customizer)...),
		router.WithRoutes(handler.Keywords(services.Researcher)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
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

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
