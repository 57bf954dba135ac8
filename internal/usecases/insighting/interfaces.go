package insighting

import (
	"context"

	"github.com/vfg2006/jewelai-api/internal/domain"
)

// InventoryInsighter expõe as visões de estoque do painel
type InventoryInsighter interface {
	// GetKPISummary calcula os KPIs da loja para a janela informada
	GetKPISummary(ctx context.Context, filters *domain.InsightFilters) (*domain.KPISummary, error)

	// GetCategoryInsights agrega por categoria a partir do livro de vendas, caindo
	// para o modo estimativa quando o livro não está disponível
	GetCategoryInsights(ctx context.Context, filters *domain.InsightFilters) (*domain.CategoryInsightsResponse, error)

	// GetMarketTrends resume as vendas por categoria para a visão de mercado
	GetMarketTrends(ctx context.Context, filters *domain.InsightFilters) ([]domain.MarketTrend, error)

	// GetInventoryItems lista as peças da janela, filtradas por categoria e faixa
	// de risco, limitadas a domain.MaxListedItems
	GetInventoryItems(ctx context.Context, filters *domain.InsightFilters, itemFilters domain.ItemFilters) (*domain.InventoryItemsResponse, error)

	// GetEstimatedCategories reescala o agregado base para uma janela de `days` dias
	GetEstimatedCategories(ctx context.Context, days int) (*domain.CategoryInsightsResponse, error)

	// GetSalesRecords devolve os registros do livro de vendas dentro da janela
	GetSalesRecords(ctx context.Context, filters *domain.InsightFilters) ([]domain.SalesRecord, *domain.InsightFilters, error)
}
