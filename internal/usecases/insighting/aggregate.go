package insighting

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/jewelai-api/internal/domain"
)

const dateLayout = "2006-01-02"

// FilterByDateRange mantém os registros cuja data está em [start, end].
// A comparação é lexicográfica sobre YYYY-MM-DD. Limite vazio não restringe.
// O slice de entrada não é alterado.
func FilterByDateRange(records []domain.SalesRecord, start, end string) []domain.SalesRecord {
	filtered := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if start != "" && record.TransactionDate < start {
			continue
		}
		if end != "" && record.TransactionDate > end {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// LatestDate retorna a maior data do livro de vendas, ou "" quando vazio
func LatestDate(records []domain.SalesRecord) string {
	latest := ""
	for _, record := range records {
		if record.TransactionDate > latest {
			latest = record.TransactionDate
		}
	}
	return latest
}

// ResolveRange ancora a janela de `days` dias na última data do livro de vendas:
// end = última data, start = end - days
func ResolveRange(records []domain.SalesRecord, days int) (start, end string) {
	end = LatestDate(records)
	if end == "" || days <= 0 {
		return "", end
	}

	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return "", end
	}

	return endDate.AddDate(0, 0, -days).Format(dateLayout), end
}

// spanDays retorna ceil(last - first) em dias
func spanDays(first, last string) int {
	firstDate, err := time.Parse(dateLayout, first)
	if err != nil {
		return 0
	}
	lastDate, err := time.Parse(dateLayout, last)
	if err != nil {
		return 0
	}
	return int(math.Ceil(lastDate.Sub(firstDate).Hours() / 24))
}

type itemAggregate struct {
	itemID    string
	category  domain.Category
	value     decimal.Decimal
	firstDate string
	lastDate  string
}

func (a *itemAggregate) add(record domain.SalesRecord) {
	a.value = a.value.Add(decimal.NewFromFloat(record.Value))
	if a.firstDate == "" || record.TransactionDate < a.firstDate {
		a.firstDate = record.TransactionDate
	}
	if record.TransactionDate > a.lastDate {
		a.lastDate = record.TransactionDate
	}
}

// daysActive = max(1, ceil(última data - primeira data))
func (a *itemAggregate) daysActive() int {
	return max(1, spanDays(a.firstDate, a.lastDate))
}

// groupByItem agrupa por label_no na ordem de primeira aparição. A categoria
// da peça é a do primeiro registro.
func groupByItem(records []domain.SalesRecord) []*itemAggregate {
	index := make(map[string]*itemAggregate)
	ordered := make([]*itemAggregate, 0)

	for _, record := range records {
		item, ok := index[record.ItemID]
		if !ok {
			item = &itemAggregate{
				itemID:   record.ItemID,
				category: record.Category,
				value:    decimal.Zero,
			}
			index[record.ItemID] = item
			ordered = append(ordered, item)
		}
		item.add(record)
	}

	return ordered
}

// CalculateKPIs agrega os registros por peça e conta as peças por faixa de risco
func CalculateKPIs(records []domain.SalesRecord) domain.KPISummary {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(decimal.NewFromFloat(record.Value))
	}

	items := groupByItem(records)
	summary := domain.KPISummary{
		TotalStockValue: total.InexactFloat64(),
		TotalItems:      len(items),
	}

	for _, item := range items {
		risk := domain.RiskScore(item.daysActive())

		if risk > domain.AgeingRiskThreshold {
			summary.AgeingStock++
		}
		if risk > domain.DeadstockRiskThreshold {
			summary.PredictedDeadstock++
		}
		if risk < domain.FastMovingRiskThreshold {
			summary.FastMovingItems++
		}
	}

	return summary
}

// CalculateItems devolve uma linha por peça, com a mesma pontuação de risco
// usada nos KPIs
func CalculateItems(records []domain.SalesRecord) []domain.InventoryItem {
	groups := groupByItem(records)
	items := make([]domain.InventoryItem, 0, len(groups))

	for _, agg := range groups {
		days := agg.daysActive()
		risk := domain.RiskScore(days)

		items = append(items, domain.InventoryItem{
			ItemID:           agg.itemID,
			Category:         agg.category,
			StockValue:       agg.value.InexactFloat64(),
			DaysToSell:       days,
			RiskScore:        risk,
			TurnoverCategory: domain.TurnoverForRisk(risk),
		})
	}

	return items
}

// FilterItems aplica categoria e faixa de risco [RiskMin, RiskMax]
func FilterItems(items []domain.InventoryItem, filters domain.ItemFilters) []domain.InventoryItem {
	filtered := make([]domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if filters.Category != "" && item.Category != filters.Category {
			continue
		}
		risk := float64(item.RiskScore)
		if risk < filters.RiskMin || risk > filters.RiskMax {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

type categoryAggregate struct {
	category  domain.Category
	value     decimal.Decimal
	items     map[string]struct{}
	firstDate string
	lastDate  string
	records   int
}

// groupByCategory agrupa na ordem de primeira aparição de cada categoria
func groupByCategory(records []domain.SalesRecord) []*categoryAggregate {
	index := make(map[domain.Category]*categoryAggregate)
	ordered := make([]*categoryAggregate, 0)

	for _, record := range records {
		agg, ok := index[record.Category]
		if !ok {
			agg = &categoryAggregate{
				category: record.Category,
				value:    decimal.Zero,
				items:    make(map[string]struct{}),
			}
			index[record.Category] = agg
			ordered = append(ordered, agg)
		}

		agg.value = agg.value.Add(decimal.NewFromFloat(record.Value))
		agg.items[record.ItemID] = struct{}{}
		agg.records++
		if agg.firstDate == "" || record.TransactionDate < agg.firstDate {
			agg.firstDate = record.TransactionDate
		}
		if record.TransactionDate > agg.lastDate {
			agg.lastDate = record.TransactionDate
		}
	}

	return ordered
}

// CalculateCategories agrega por categoria. avgDaysToSell divide o intervalo
// de datas da categoria inteira pela quantidade de peças distintas.
func CalculateCategories(records []domain.SalesRecord) []domain.CategoryInsight {
	groups := groupByCategory(records)
	insights := make([]domain.CategoryInsight, 0, len(groups))

	for _, agg := range groups {
		itemCount := len(agg.items)
		span := float64(spanDays(agg.firstDate, agg.lastDate))
		avgDaysToSell := max(1, int(math.Ceil(span/float64(itemCount))))
		risk := domain.RiskScore(avgDaysToSell)

		insights = append(insights, domain.CategoryInsight{
			Category:      agg.category,
			StockValue:    agg.value.InexactFloat64(),
			AvgDaysToSell: avgDaysToSell,
			RiskScore:     risk,
			ItemCount:     itemCount,
			Trend:         domain.TrendForRisk(risk),
		})
	}

	return insights
}

// CalculateMarketTrends resume as vendas por categoria.
// turnover_days = intervalo de datas / quantidade de registros
func CalculateMarketTrends(records []domain.SalesRecord) []domain.MarketTrend {
	groups := groupByCategory(records)
	trends := make([]domain.MarketTrend, 0, len(groups))

	for _, agg := range groups {
		avg := agg.value.Div(decimal.NewFromInt(int64(agg.records)))
		turnover := float64(spanDays(agg.firstDate, agg.lastDate)) / float64(agg.records)

		trends = append(trends, domain.MarketTrend{
			Category:     agg.category,
			TotalSales:   agg.value.InexactFloat64(),
			AvgSales:     avg.Round(2).InexactFloat64(),
			Risk:         math.Min(turnover*domain.RiskPerDay, domain.MaxRiskScore),
			TurnoverDays: turnover,
		})
	}

	return trends
}
