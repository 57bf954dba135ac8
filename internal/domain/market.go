package domain

// MarketTrend resume as vendas de uma categoria para a visão de mercado
type MarketTrend struct {
	Category     Category `json:"category" yaml:"category"`
	TotalSales   float64  `json:"total_sales" yaml:"total_sales"`
	AvgSales     float64  `json:"avg_sales" yaml:"avg_sales"`
	Risk         float64  `json:"risk" yaml:"risk"`
	TurnoverDays float64  `json:"turnover_days" yaml:"turnover_days"`
}
