package customizing

import (
	"context"
	"reflect"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/jewelai-api/infrastructure/repository"
	"github.com/vfg2006/jewelai-api/internal/domain"
	errorcodes "github.com/vfg2006/jewelai-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Customizer é o estado de personalização do painel
type Customizer interface {
	// Load relê o layout persistido, aplicando migrações e reconciliação
	Load(ctx context.Context) (domain.DashboardLayout, error)
	// Layout retorna o layout atual, carregando-o na primeira chamada
	Layout(ctx context.Context) (domain.DashboardLayout, error)
	ToggleVisibility(ctx context.Context, id string) (domain.DashboardLayout, error)
	Reorder(ctx context.Context, activeID, overID string) (domain.DashboardLayout, error)
	SetColor(ctx context.Context, target domain.ChartTarget, color string) (domain.DashboardLayout, error)
	ResetToDefault(ctx context.Context) (domain.DashboardLayout, error)
}

// Service guarda uma única cópia do layout por processo. Toda mutação é
// gravada primeiro; o estado em memória só muda depois da gravação.
type Service struct {
	layoutRepo repository.LayoutRepository

	mu     sync.Mutex
	layout domain.DashboardLayout
	loaded bool
}

func NewService(layoutRepo repository.LayoutRepository) Customizer {
	return &Service{
		layoutRepo: layoutRepo,
		layout:     domain.DefaultDashboardLayout(),
	}
}

func (s *Service) Load(ctx context.Context) (domain.DashboardLayout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return s.layout.Clone(), err
	}
	return s.layout.Clone(), nil
}

func (s *Service) Layout(ctx context.Context) (domain.DashboardLayout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return s.layout.Clone(), err
	}
	return s.layout.Clone(), nil
}

// ToggleVisibility inverte a visibilidade do card. Um card que passa a ser
// visível e não está na ordem é adicionado ao final; ocultar nunca remove da ordem.
func (s *Service) ToggleVisibility(ctx context.Context, id string) (domain.DashboardLayout, error) {
	if _, known := domain.LookupCard(id); !known {
		return domain.DashboardLayout{}, NewCustomizeError(ErrUnknownCard, errorcodes.ErrInvalidRequest, id)
	}

	return s.mutate(ctx, func(layout *domain.DashboardLayout) {
		for i, entry := range layout.CardVisibility {
			if entry.ID != id {
				continue
			}
			layout.CardVisibility[i].Visible = !entry.Visible
			if layout.CardVisibility[i].Visible && !contains(layout.CardOrder, id) {
				layout.CardOrder = append(layout.CardOrder, id)
			}
			return
		}
	})
}

// Reorder move activeID para a posição de overID. Ids iguais, desconhecidos,
// fora da ordem ou de partições diferentes (KPI x demais) não alteram nada.
func (s *Service) Reorder(ctx context.Context, activeID, overID string) (domain.DashboardLayout, error) {
	return s.mutate(ctx, func(layout *domain.DashboardLayout) {
		if activeID == overID {
			return
		}

		active, ok := domain.LookupCard(activeID)
		if !ok {
			return
		}
		over, ok := domain.LookupCard(overID)
		if !ok || active.Kind.Partition() != over.Kind.Partition() {
			return
		}

		from := indexOf(layout.CardOrder, activeID)
		to := indexOf(layout.CardOrder, overID)
		if from < 0 || to < 0 {
			return
		}

		layout.CardOrder = arrayMove(layout.CardOrder, from, to)
	})
}

func (s *Service) SetColor(ctx context.Context, target domain.ChartTarget, color string) (domain.DashboardLayout, error) {
	if !target.IsKnown() {
		return domain.DashboardLayout{}, NewCustomizeError(ErrUnknownChartTarget, errorcodes.ErrInvalidRequest, string(target))
	}

	color = strings.TrimSpace(color)
	if !isValidColor(color) {
		return domain.DashboardLayout{}, NewCustomizeError(ErrInvalidColor, errorcodes.ErrInvalidFormat, color)
	}

	return s.mutate(ctx, func(layout *domain.DashboardLayout) {
		layout.ChartColors[target] = color
	})
}

// ResetToDefault sempre regrava o blob inteiro, mesmo quando o estado em
// memória já é o padrão (blob corrompido, de versão futura ou legado)
func (s *Service) ResetToDefault(ctx context.Context) (domain.DashboardLayout, error) {
	return s.apply(ctx, true, func(layout *domain.DashboardLayout) {
		*layout = domain.DefaultDashboardLayout()
	})
}

// mutate aplica a alteração sobre uma cópia, grava e só então troca o estado.
// Alterações que não mudam nada não são gravadas.
func (s *Service) mutate(ctx context.Context, change func(*domain.DashboardLayout)) (domain.DashboardLayout, error) {
	return s.apply(ctx, false, change)
}

func (s *Service) apply(ctx context.Context, force bool, change func(*domain.DashboardLayout)) (domain.DashboardLayout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return s.layout.Clone(), err
	}

	next := s.layout.Clone()
	change(&next)

	if !force && reflect.DeepEqual(next, s.layout) {
		return next, nil
	}

	if err := s.persist(ctx, next); err != nil {
		logrus.WithError(err).Error("layout: erro ao salvar layout, estado em memória mantido")
		return s.layout.Clone(), NewCustomizeError(ErrPersistFailure, errorcodes.ErrDatabaseOperation, err.Error())
	}

	s.layout = next
	return next.Clone(), nil
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) error {
	payload, err := s.layoutRepo.GetLayout(ctx)
	if err != nil {
		return NewCustomizeError(ErrLayoutUnavailable, errorcodes.ErrDatabaseOperation, err.Error())
	}

	s.layout = s.decode(payload)
	s.loaded = true
	return nil
}

// decode nunca falha: blob ausente, corrompido ou de versão futura vira o layout padrão
func (s *Service) decode(payload []byte) domain.DashboardLayout {
	if len(payload) == 0 {
		return domain.DefaultDashboardLayout()
	}

	var stored domain.DashboardLayout
	if err := json.Unmarshal(payload, &stored); err != nil {
		logrus.WithError(err).Warn("layout: blob persistido inválido, usando layout padrão")
		return domain.DefaultDashboardLayout()
	}

	migrated, err := Migrate(stored)
	if err != nil {
		logrus.WithError(err).Warn("layout: não foi possível migrar o blob persistido, usando layout padrão")
		return domain.DefaultDashboardLayout()
	}

	return Reconcile(migrated)
}

func (s *Service) persist(ctx context.Context, layout domain.DashboardLayout) error {
	payload, err := json.Marshal(layout)
	if err != nil {
		return err
	}
	return s.layoutRepo.SaveLayout(ctx, payload)
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

func contains(ids []string, id string) bool {
	return indexOf(ids, id) >= 0
}

// arrayMove remove o item em from e o insere em to
func arrayMove(ids []string, from, to int) []string {
	moved := make([]string, 0, len(ids))
	moved = append(moved, ids[:from]...)
	moved = append(moved, ids[from+1:]...)

	item := ids[from]
	moved = append(moved[:to], append([]string{item}, moved[to:]...)...)
	return moved
}
