package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/jewelai-api/infrastructure/repository"
	"github.com/vfg2006/jewelai-api/internal/config"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"github.com/vfg2006/jewelai-api/internal/ledger"
	"github.com/vfg2006/jewelai-api/internal/usecases/insighting"
	"github.com/vfg2006/jewelai-api/pkg/utils"
)

// ErrLedgerNotReady indica que o agregado veio do modo estimativa e não deve virar snapshot
var ErrLedgerNotReady = errors.New("livro de vendas indisponível, snapshot não gerado")

// CategorySnapshotSyncConfig representa a configuração do agendador de snapshots
type CategorySnapshotSyncConfig struct {
	CronSchedule  string
	RetentionDays int
	WindowDays    int
	SyncEnabled   bool
}

// CategorySnapshotSyncService recarrega o livro de vendas e grava o agregado
// de categorias da janela base, usado depois no modo estimativa
type CategorySnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              CategorySnapshotSyncConfig
	loader              ledger.Loader
	insighter           insighting.InventoryInsighter
	snapshotRepo        repository.CategorySnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastSyncError       string
}

func NewCategorySnapshotSyncService(
	loader ledger.Loader,
	insighter insighting.InventoryInsighter,
	snapshotRepo repository.CategorySnapshotRepository,
	appConfig *config.Config,
) *CategorySnapshotSyncService {
	syncConfig := CategorySnapshotSyncConfig{
		CronSchedule:  appConfig.SnapshotSync.CronSchedule,
		RetentionDays: appConfig.SnapshotSync.RetentionDays,
		WindowDays:    appConfig.Ledger.BaseWindowDays,
		SyncEnabled:   appConfig.SnapshotSync.Enabled,
	}
	if syncConfig.WindowDays <= 0 {
		syncConfig.WindowDays = insighting.EstimateBaseWindowDays
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"window_days":    syncConfig.WindowDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de categorias carregada")

	return &CategorySnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		loader:       loader,
		insighter:    insighter,
		snapshotRepo: snapshotRepo,
	}
}

// Start inicia o agendador
func (s *CategorySnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de categorias desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de categorias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de categorias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de categorias")
		s.scheduler.Stop()
	}()

	return nil
}

// run garante uma única execução por vez e registra o resultado
func (s *CategorySnapshotSyncService) run(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots de categorias já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	snapshot, err := s.syncCategorySnapshot(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncError = ""
		s.lastSnapshotID = snapshot.ID
		s.lastSyncCompletedAt = time.Now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao sincronizar snapshot de categorias")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"window_end": snapshot.WindowEnd,
		"categories": len(snapshot.Categories),
	}).Info("Sincronização de snapshot de categorias concluída")
}

// syncCategorySnapshot recarrega o livro, agrega a janela base terminando na
// última data e persiste. Snapshots antigos são removidos depois da gravação.
func (s *CategorySnapshotSyncService) syncCategorySnapshot(ctx context.Context) (*domain.CategorySnapshot, error) {
	s.loader.Reset()

	response, err := s.insighter.GetCategoryInsights(ctx, &domain.InsightFilters{Days: s.config.WindowDays})
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular categorias: %w", err)
	}

	if response.Source != domain.SourceLedger {
		return nil, ErrLedgerNotReady
	}

	windowEnd := ""
	if response.Filters != nil {
		windowEnd = response.Filters.EndDate
	}
	if windowEnd == "" {
		return nil, fmt.Errorf("livro de vendas sem registros")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do snapshot: %w", err)
	}

	snapshot := &domain.CategorySnapshot{
		ID:         id,
		WindowEnd:  windowEnd,
		WindowDays: s.config.WindowDays,
		Categories: response.Categories,
	}

	if err := s.snapshotRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("erro ao salvar snapshot de categorias: %w", err)
	}

	if s.config.RetentionDays > 0 {
		removed, err := s.snapshotRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
		if err != nil {
			// O snapshot novo já está salvo; a limpeza fica para a próxima execução
			logrus.WithError(err).Warn("Erro ao remover snapshots antigos")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("Snapshots antigos removidos")
		}
	}

	return snapshot, nil
}

// TriggerManualSync inicia manualmente uma sincronização de snapshot
func (s *CategorySnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots de categorias já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshot de categorias")
	go s.run(context.Background())
}

// GetStatus retorna o status atual da sincronização
func (s *CategorySnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"window_days":            s.config.WindowDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_sync_error":        s.lastSyncError,
	}
}
