package domain

// CardKind é o tipo fechado de card do painel
type CardKind int

const (
	CardKindKPI CardKind = iota + 1
	CardKindChart
	CardKindAnalyticsModule
	CardKindComposite
)

func (k CardKind) String() string {
	switch k {
	case CardKindKPI:
		return "kpi"
	case CardKindChart:
		return "chart"
	case CardKindAnalyticsModule:
		return "analytics_module"
	case CardKindComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// CardPartition separa os cards que podem ser reordenados entre si
type CardPartition int

const (
	PartitionKPI CardPartition = iota + 1
	PartitionContent
)

func (k CardKind) Partition() CardPartition {
	if k == CardKindKPI {
		return PartitionKPI
	}
	return PartitionContent
}

// CardDefinition descreve um card conhecido pelo esquema atual do painel
type CardDefinition struct {
	ID             string
	Kind           CardKind
	Label          string
	DefaultVisible bool
	// DefaultOrdered indica se o card entra na ordem padrão
	DefaultOrdered bool
}

// Identificadores dos cards
const (
	CardKPITotalStockValue    = "kpi-total-stock-value"
	CardKPIAgeingStock        = "kpi-ageing-stock"
	CardKPIPredictedDeadstock = "kpi-predicted-deadstock"
	CardKPIFastMovingItems    = "kpi-fast-moving-items"

	CardStockDistribution = "stock-distribution"
	CardCategoryTrends    = "category-trends"
	CardMarketTrends      = "market-trends"

	CardAIRecommendations = "ai-recommendations"
	CardQuickActions      = "quick-actions"

	// Os dois cards de modelo só existem no catálogo para manter layouts salvos
	// reconciliáveis; nenhuma rota da API os alimenta.
	CardModelPerformance     = "analytics-model-performance"
	CardPredictionComparison = "analytics-prediction-comparison"
	CardKeywordInsights      = "analytics-keyword-insights"
)

// LegacyKPIGroupCard é o card único que agrupava os KPIs nas versões antigas do layout
const LegacyKPIGroupCard = "kpi-group"

// CardCatalog é o esquema atual de cards, na ordem padrão
var CardCatalog = []CardDefinition{
	{ID: CardKPITotalStockValue, Kind: CardKindKPI, Label: "Total Stock Value", DefaultVisible: true, DefaultOrdered: true},
	{ID: CardKPIAgeingStock, Kind: CardKindKPI, Label: "Ageing Stock", DefaultVisible: true, DefaultOrdered: true},
	{ID: CardKPIPredictedDeadstock, Kind: CardKindKPI, Label: "Predicted Deadstock", DefaultVisible: true, DefaultOrdered: true},
	{ID: CardKPIFastMovingItems, Kind: CardKindKPI, Label: "Fast Moving Items", DefaultVisible: true, DefaultOrdered: true},
	{ID: CardStockDistribution, Kind: CardKindChart, Label: "Stock Distribution by Category", DefaultVisible: true, DefaultOrdered: true},
	{ID: CardCategoryTrends, Kind: CardKindChart, Label: "Category Trends", DefaultVisible: true, DefaultOrdered: true},
	{ID: CardMarketTrends, Kind: CardKindChart, Label: "Market Trends", DefaultVisible: true, DefaultOrdered: true},
	{ID: CardQuickActions, Kind: CardKindComposite, Label: "Quick Actions", DefaultVisible: true, DefaultOrdered: true},
	{ID: CardAIRecommendations, Kind: CardKindComposite, Label: "AI Recommendations", DefaultVisible: true, DefaultOrdered: true},
	{ID: CardModelPerformance, Kind: CardKindAnalyticsModule, Label: "Model Performance"},
	{ID: CardPredictionComparison, Kind: CardKindAnalyticsModule, Label: "Actual vs Predicted"},
	{ID: CardKeywordInsights, Kind: CardKindAnalyticsModule, Label: "Keyword Insights"},
}

// LegacyKPIGroupExpansion são os cards que substituem o grupo legado, na ordem
var LegacyKPIGroupExpansion = []string{
	CardKPITotalStockValue,
	CardKPIAgeingStock,
	CardKPIPredictedDeadstock,
	CardKPIFastMovingItems,
}

// LookupCard busca a definição de um card pelo identificador
func LookupCard(id string) (CardDefinition, bool) {
	for _, card := range CardCatalog {
		if card.ID == id {
			return card, true
		}
	}
	return CardDefinition{}, false
}

// ChartTarget nomeia uma série de gráfico cuja cor pode ser personalizada
type ChartTarget string

const (
	ChartStockDistribution  ChartTarget = "stockDistribution"
	ChartCategoryTrends     ChartTarget = "categoryTrends"
	ChartMarketTrends       ChartTarget = "marketTrends"
	ChartPredictionActual   ChartTarget = "predictionActual"
	ChartPredictionForecast ChartTarget = "predictionForecast"
)

// DefaultChartColors é o mapa de cores padrão
var DefaultChartColors = map[ChartTarget]string{
	ChartStockDistribution:  "#d4af37",
	ChartCategoryTrends:     "#b8860b",
	ChartMarketTrends:       "#8b5cf6",
	ChartPredictionActual:   "#10b981",
	ChartPredictionForecast: "#f59e0b",
}

func (t ChartTarget) IsKnown() bool {
	_, ok := DefaultChartColors[t]
	return ok
}

// CardVisibility é a entrada persistida de visibilidade de um card
type CardVisibility struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}

// DashboardLayoutVersion é a versão atual do blob persistido
const DashboardLayoutVersion = 3

// DashboardLayout é o estado de personalização do painel.
// Existe uma única cópia por processo.
type DashboardLayout struct {
	Version        int                    `json:"version"`
	CardOrder      []string               `json:"cardOrder"`
	CardVisibility []CardVisibility       `json:"cardVisibility"`
	ChartColors    map[ChartTarget]string `json:"chartColors"`
}

// DefaultDashboardLayout monta o layout padrão a partir do catálogo
func DefaultDashboardLayout() DashboardLayout {
	layout := DashboardLayout{
		Version:        DashboardLayoutVersion,
		CardOrder:      make([]string, 0, len(CardCatalog)),
		CardVisibility: make([]CardVisibility, 0, len(CardCatalog)),
		ChartColors:    make(map[ChartTarget]string, len(DefaultChartColors)),
	}

	for _, card := range CardCatalog {
		if card.DefaultOrdered {
			layout.CardOrder = append(layout.CardOrder, card.ID)
		}
		layout.CardVisibility = append(layout.CardVisibility, CardVisibility{
			ID:      card.ID,
			Label:   card.Label,
			Visible: card.DefaultVisible,
		})
	}

	for target, color := range DefaultChartColors {
		layout.ChartColors[target] = color
	}

	return layout
}

// Clone devolve uma cópia profunda, para que o estado em memória nunca seja
// compartilhado com quem chama
func (l DashboardLayout) Clone() DashboardLayout {
	clone := DashboardLayout{
		Version:        l.Version,
		CardOrder:      append([]string(nil), l.CardOrder...),
		CardVisibility: append([]CardVisibility(nil), l.CardVisibility...),
		ChartColors:    make(map[ChartTarget]string, len(l.ChartColors)),
	}
	for target, color := range l.ChartColors {
		clone.ChartColors[target] = color
	}
	return clone
}

// IsVisible informa se o card está marcado como visível
func (l DashboardLayout) IsVisible(id string) bool {
	for _, entry := range l.CardVisibility {
		if entry.ID == id {
			return entry.Visible
		}
	}
	return false
}

// VisibleCards retorna os cards a serem renderizados, na ordem do layout
func (l DashboardLayout) VisibleCards() []CardDefinition {
	cards := make([]CardDefinition, 0, len(l.CardOrder))
	for _, id := range l.CardOrder {
		card, ok := LookupCard(id)
		if !ok || !l.IsVisible(id) {
			continue
		}
		cards = append(cards, card)
	}
	return cards
}
