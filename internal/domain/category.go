package domain

// Trend é a classificação de movimento de uma categoria
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

// Limites da pontuação de risco. São política do negócio, não estatística calculada.
const (
	MaxRiskScore            = 50
	RiskPerDay              = 5
	FastMovingRiskThreshold = 30 // abaixo: giro rápido / tendência de alta
	AgeingRiskThreshold     = 45 // acima: estoque envelhecido / tendência de queda
	DeadstockRiskThreshold  = 48 // acima: previsão de encalhe
)

// RiskScore aplica a pontuação linear limitada a MaxRiskScore
func RiskScore(days int) int {
	return min(days*RiskPerDay, MaxRiskScore)
}

// TrendForRisk classifica a pontuação em exatamente uma tendência
func TrendForRisk(riskScore int) Trend {
	switch {
	case riskScore < FastMovingRiskThreshold:
		return TrendRising
	case riskScore > AgeingRiskThreshold:
		return TrendFalling
	default:
		return TrendStable
	}
}

// CategoryInsight é a linha de uma categoria na visão de estoque
type CategoryInsight struct {
	Category      Category `json:"category" yaml:"category"`
	StockValue    float64  `json:"stockValue" yaml:"stockValue"`
	AvgDaysToSell int      `json:"avgDaysToSell" yaml:"avgDaysToSell"`
	RiskScore     int      `json:"riskScore" yaml:"riskScore"`
	ItemCount     int      `json:"itemCount" yaml:"itemCount"`
	Trend         Trend    `json:"trend" yaml:"trend"`
}

// Origem dos dados de uma resposta de categorias
const (
	SourceLedger   = "ledger"
	SourceSnapshot = "snapshot"
	SourceStatic   = "static"
)

type CategoryInsightsResponse struct {
	Categories []CategoryInsight `json:"categories"`
	Source     string            `json:"source"`
	Estimated  bool              `json:"estimated"`
	Filters    *InsightFilters   `json:"filters,omitempty"`
}
