package domain

// Faixas de giro de uma peça, derivadas da pontuação de risco
const (
	TurnoverFast   = "fast"
	TurnoverMedium = "medium"
	TurnoverSlow   = "slow"
)

// MaxListedItems limita a quantidade de peças devolvidas na listagem
const MaxListedItems = 100

func TurnoverForRisk(riskScore int) string {
	switch TrendForRisk(riskScore) {
	case TrendRising:
		return TurnoverFast
	case TrendFalling:
		return TurnoverSlow
	default:
		return TurnoverMedium
	}
}

// InventoryItem é a visão de uma peça (label_no) agregada sobre seus registros
type InventoryItem struct {
	ItemID           string   `json:"label_no" yaml:"label_no"`
	Category         Category `json:"category" yaml:"category"`
	StockValue       float64  `json:"stockValue" yaml:"stockValue"`
	DaysToSell       int      `json:"daysToSell" yaml:"daysToSell"`
	RiskScore        int      `json:"riskScore" yaml:"riskScore"`
	TurnoverCategory string   `json:"turnoverCategory" yaml:"turnoverCategory"`
}

// ItemFilters restringe a listagem de peças. Category vazia não filtra.
type ItemFilters struct {
	Category Category
	RiskMin  float64
	RiskMax  float64
}

// DefaultItemFilters aceita qualquer pontuação de risco
func DefaultItemFilters() ItemFilters {
	return ItemFilters{RiskMin: 0, RiskMax: 100}
}

type InventoryItemsResponse struct {
	// Total conta todas as peças que passaram nos filtros, antes do limite
	Total   int             `json:"total" yaml:"total"`
	Items   []InventoryItem `json:"items" yaml:"items"`
	Filters *InsightFilters `json:"filters,omitempty" yaml:"filters,omitempty"`
}
