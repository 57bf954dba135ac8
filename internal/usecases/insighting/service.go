package insighting

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/jewelai-api/infrastructure/integrator/snapshot"
	"github.com/vfg2006/jewelai-api/infrastructure/repository"
	"github.com/vfg2006/jewelai-api/internal/config"
	"github.com/vfg2006/jewelai-api/internal/domain"
	"github.com/vfg2006/jewelai-api/internal/ledger"
	errorcodes "github.com/vfg2006/jewelai-api/pkg/apiErrors"
)

type Service struct {
	cfg          *config.Config
	ledger       ledger.Loader
	snapshotRepo repository.CategorySnapshotRepository
	static       snapshot.StaticSnapshot
}

// NewService cria o serviço de insights. snapshotRepo e static podem ser nil;
// nesse caso o respectivo degrau do modo estimativa é ignorado.
func NewService(
	cfg *config.Config,
	loader ledger.Loader,
	snapshotRepo repository.CategorySnapshotRepository,
	static snapshot.StaticSnapshot,
) InventoryInsighter {
	return &Service{
		cfg:          cfg,
		ledger:       loader,
		snapshotRepo: snapshotRepo,
		static:       static,
	}
}

func (s *Service) GetKPISummary(ctx context.Context, filters *domain.InsightFilters) (*domain.KPISummary, error) {
	records, _, err := s.GetSalesRecords(ctx, filters)
	if err != nil {
		return nil, err
	}

	summary := CalculateKPIs(records)
	return &summary, nil
}

func (s *Service) GetMarketTrends(ctx context.Context, filters *domain.InsightFilters) ([]domain.MarketTrend, error) {
	records, _, err := s.GetSalesRecords(ctx, filters)
	if err != nil {
		return nil, err
	}

	return CalculateMarketTrends(records), nil
}

func (s *Service) GetInventoryItems(ctx context.Context, filters *domain.InsightFilters, itemFilters domain.ItemFilters) (*domain.InventoryItemsResponse, error) {
	if itemFilters.RiskMin < 0 || itemFilters.RiskMax > 100 || itemFilters.RiskMin > itemFilters.RiskMax {
		return nil, NewInsightError(ErrInvalidRiskRange, errorcodes.ErrInvalidRequest, "use 0 <= risk_min <= risk_max <= 100")
	}

	records, resolved, err := s.GetSalesRecords(ctx, filters)
	if err != nil {
		return nil, err
	}

	items := FilterItems(CalculateItems(records), itemFilters)
	total := len(items)
	if total > domain.MaxListedItems {
		items = items[:domain.MaxListedItems]
	}

	return &domain.InventoryItemsResponse{
		Total:   total,
		Items:   items,
		Filters: resolved,
	}, nil
}

func (s *Service) GetCategoryInsights(ctx context.Context, filters *domain.InsightFilters) (*domain.CategoryInsightsResponse, error) {
	records, resolved, err := s.GetSalesRecords(ctx, filters)
	if err == nil {
		return &domain.CategoryInsightsResponse{
			Categories: CalculateCategories(records),
			Source:     domain.SourceLedger,
			Filters:    resolved,
		}, nil
	}

	if !errors.Is(err, ErrDataSourceUnavailable) {
		return nil, err
	}

	days := s.fallbackDays(filters)
	logrus.WithError(err).WithField("days", days).Warn("insights: livro de vendas indisponível, usando modo estimativa")

	return s.GetEstimatedCategories(ctx, days)
}

// GetEstimatedCategories percorre os agregados base em ordem: snapshot
// persistido e depois o arquivo estático
func (s *Service) GetEstimatedCategories(ctx context.Context, days int) (*domain.CategoryInsightsResponse, error) {
	if days <= 0 {
		return nil, NewInsightError(ErrInvalidWindow, errorcodes.ErrInvalidRequest, "days deve ser maior que zero")
	}

	filters := &domain.InsightFilters{Days: days}

	if s.snapshotRepo != nil {
		latest, err := s.snapshotRepo.GetLatestSnapshot(ctx)
		switch {
		case err != nil:
			logrus.WithError(err).Warn("insights: erro ao buscar snapshot de categorias")
		case latest != nil && len(latest.Categories) > 0:
			scaled, err := RescaleWindow(latest.Categories, latest.WindowDays, days)
			if err == nil {
				return &domain.CategoryInsightsResponse{
					Categories: scaled,
					Source:     domain.SourceSnapshot,
					Estimated:  true,
					Filters:    filters,
				}, nil
			}
			logrus.WithError(err).WithField("window_days", latest.WindowDays).Warn("insights: snapshot com janela inválida")
		}
	}

	if s.static != nil {
		base, err := s.static.LoadCategories(ctx)
		if err == nil && len(base) > 0 {
			scaled, err := RescaleWindow(base, s.baseWindowDays(), days)
			if err != nil {
				return nil, NewInsightError(err, errorcodes.ErrInvalidRequest, "")
			}
			return &domain.CategoryInsightsResponse{
				Categories: scaled,
				Source:     domain.SourceStatic,
				Estimated:  true,
				Filters:    filters,
			}, nil
		}
		if err != nil {
			logrus.WithError(err).Warn("insights: erro ao ler snapshot estático")
		}
	}

	return nil, NewInsightError(ErrNoSnapshot, errorcodes.ErrCommunication, "nenhuma fonte de dados de categorias disponível")
}

// GetSalesRecords carrega o livro de vendas e aplica a janela pedida.
// Intervalo explícito tem prioridade sobre days; sem filtros retorna tudo.
func (s *Service) GetSalesRecords(ctx context.Context, filters *domain.InsightFilters) ([]domain.SalesRecord, *domain.InsightFilters, error) {
	if err := validateFilters(filters); err != nil {
		return nil, nil, err
	}

	records, err := s.ledger.Load(ctx)
	if err != nil {
		return nil, nil, NewInsightError(ErrDataSourceUnavailable, errorcodes.ErrCommunication, err.Error())
	}

	switch {
	case filters.HasExplicitRange():
		resolved := &domain.InsightFilters{StartDate: filters.StartDate, EndDate: filters.EndDate}
		return FilterByDateRange(records, filters.StartDate, filters.EndDate), resolved, nil

	case filters != nil && filters.Days > 0:
		start, end := ResolveRange(records, filters.Days)
		resolved := &domain.InsightFilters{StartDate: start, EndDate: end, Days: filters.Days}
		return FilterByDateRange(records, start, end), resolved, nil

	default:
		return records, nil, nil
	}
}

func validateFilters(filters *domain.InsightFilters) error {
	if filters == nil {
		return nil
	}
	if filters.Days < 0 {
		return NewInsightError(ErrInvalidWindow, errorcodes.ErrInvalidRequest, "days não pode ser negativo")
	}
	if filters.StartDate != "" && filters.EndDate != "" && filters.StartDate > filters.EndDate {
		return NewInsightError(ErrInvalidDateRange, errorcodes.ErrInvalidRequest, "a data de início não pode ser posterior à data de fim")
	}
	return nil
}

// fallbackDays converte os filtros em uma janela de dias para o modo estimativa
func (s *Service) fallbackDays(filters *domain.InsightFilters) int {
	if filters != nil {
		if filters.Days > 0 {
			return filters.Days
		}
		if filters.StartDate != "" && filters.EndDate != "" {
			return max(1, spanDays(filters.StartDate, filters.EndDate))
		}
	}
	return s.baseWindowDays()
}

func (s *Service) baseWindowDays() int {
	if s.cfg != nil && s.cfg.Ledger.BaseWindowDays > 0 {
		return s.cfg.Ledger.BaseWindowDays
	}
	return EstimateBaseWindowDays
}
