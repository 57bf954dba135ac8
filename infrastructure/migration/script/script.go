package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/jewelai-api/infrastructure/database/postgres"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/snapshot"
	"github.com/vfg2006/jewelai-api/infrastructure/repository"
	"github.com/vfg2006/jewelai-api/internal/config"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"github.com/vfg2006/jewelai-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var schema = []string{
	`CREATE TABLE IF NOT EXISTS dashboard_layouts (
		id         TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS category_snapshots (
		id          TEXT PRIMARY KEY,
		window_end  DATE NOT NULL,
		window_days INTEGER NOT NULL,
		categories  JSONB NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT category_snapshots_window_unique UNIQUE (window_end, window_days)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_category_snapshots_created_at ON category_snapshots (created_at DESC)`,
}

func createTables(tx *sql.Tx) error {
	for i, statement := range schema {
		if _, err := tx.Exec(statement); err != nil {
			return err
		}
		logrus.Infof("Statement %d/%d aplicado", i+1, len(schema))
	}
	return nil
}

// seedDefaultLayout grava o layout padrão apenas quando ainda não existe nenhum
func seedDefaultLayout(tx *sql.Tx) error {
	payload, err := json.Marshal(domain.DefaultDashboardLayout())
	if err != nil {
		return err
	}

	result, err := tx.Exec(
		`INSERT INTO dashboard_layouts (id, payload) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		repository.DefaultLayoutID, payload,
	)
	if err != nil {
		return err
	}

	if rows, _ := result.RowsAffected(); rows > 0 {
		logrus.Info("Layout padrão do painel criado")
	} else {
		logrus.Info("Layout do painel já existente, mantido")
	}
	return nil
}

// seedStaticSnapshot copia o agregado estático para o banco, de forma que o modo
// estimativa tenha um snapshot antes da primeira execução do agendador
func seedStaticSnapshot(ctx context.Context, tx *sql.Tx, cfg *config.Config) error {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM category_snapshots`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logrus.WithField("snapshots", count).Info("Snapshots já existentes, semente ignorada")
		return nil
	}

	categories, err := snapshot.New(cfg.Snapshot.StaticPath).LoadCategories(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Snapshot estático indisponível, semente ignorada")
		return nil
	}

	categoriesJSON, err := json.Marshal(categories)
	if err != nil {
		return err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO category_snapshots (id, window_end, window_days, categories) VALUES ($1, $2, $3, $4)`,
		id, time.Now().Format(utils.DateLayout), cfg.Ledger.BaseWindowDays, categoriesJSON,
	)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"id":         id,
		"categories": len(categories),
	}).Info("Snapshot inicial de categorias criado")
	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		steps := []struct {
			name string
			run  func() error
		}{
			{"criar tabelas", func() error { return createTables(tx) }},
			{"criar layout padrão", func() error { return seedDefaultLayout(tx) }},
			{"criar snapshot inicial", func() error { return seedStaticSnapshot(ctx, tx, cfg) }},
		}

		for _, step := range steps {
			if err := step.run(); err != nil {
				return fmt.Errorf("erro ao %s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		logrus.Fatalf("ERRO na migração, transação desfeita: %v", err)
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
