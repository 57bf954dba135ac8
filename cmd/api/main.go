package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/jewelai-api/infrastructure/database/postgres"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/salesledger"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/snapshot"
	"github.com/vfg2006/jewelai-api/infrastructure/repository"
	"github.com/vfg2006/jewelai-api/internal/api"
	"github.com/vfg2006/jewelai-api/internal/config"
	"github.com/vfg2006/jewelai-api/internal/ledger"
	"github.com/vfg2006/jewelai-api/internal/scheduler"
	"github.com/vfg2006/jewelai-api/internal/usecases/authenticating"
	"github.com/vfg2006/jewelai-api/internal/usecases/customizing"
	"github.com/vfg2006/jewelai-api/internal/usecases/insighting"
	"github.com/vfg2006/jewelai-api/internal/usecases/reporting"
	"github.com/vfg2006/jewelai-api/internal/usecases/researching"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	layoutRepo := repository.NewLayoutRepository(pgConn)
	snapshotRepo := repository.NewCategorySnapshotRepository(pgConn)

	// Livro de vendas: carregado uma vez por processo e compartilhado
	ledgerCache := ledger.NewCache(salesledger.New(cfg), ledger.NewParser(cfg.Ledger.DelimiterRune()))

	staticSnapshot := snapshot.New(cfg.Snapshot.StaticPath)
	insightService := insighting.NewService(cfg, ledgerCache, snapshotRepo, staticSnapshot)

	customizer := customizing.NewService(layoutRepo)
	if _, err := customizer.Load(ctx); err != nil {
		// O layout é carregado de novo na primeira requisição
		logrus.WithError(err).Warn("Erro ao carregar layout do painel na inicialização")
	}

	narrative := gemini.New(cfg.Gemini, geminiclient.NewClient(cfg.Gemini))
	if !narrative.IsConfigured() {
		logrus.Warn("GEMINI_API_KEY não definida, análises de palavras-chave indisponíveis")
	}

	snapshotSyncService := scheduler.NewCategorySnapshotSyncService(ledgerCache, insightService, snapshotRepo, cfg)
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de categorias")
	} else {
		logrus.Info("Agendador de snapshots de categorias iniciado com sucesso")
	}

	// Aquece o cache sem bloquear a subida do servidor
	go func() {
		if _, err := ledgerCache.Load(ctx); err != nil {
			logrus.WithError(err).Warn("Livro de vendas indisponível na inicialização")
		}
	}()

	server, err := api.New(cfg, api.Services{
		Loader:           ledgerCache,
		Insighter:        insightService,
		Customizer:       customizer,
		Researcher:       researching.NewService(narrative),
		Reporter:         reporting.NewService(insightService),
		Authenticator:    authenticating.NewService(cfg),
		SnapshotSyncJobs: snapshotSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
