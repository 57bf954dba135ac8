package domain

type TrendingCategory struct {
	Name   string `json:"name" validate:"required"`
	Trend  string `json:"trend" validate:"required,oneof=up down"`
	Change string `json:"change" validate:"required"`
}

type CategoryTrendPoint struct {
	Month   string   `json:"month" validate:"required"`
	Gold    *float64 `json:"gold" validate:"required,gte=0,lte=100"`
	Silver  *float64 `json:"silver" validate:"required,gte=0,lte=100"`
	Diamond *float64 `json:"diamond" validate:"required,gte=0,lte=100"`
}

type SearchInterestPoint struct {
	Week     string   `json:"week" validate:"required"`
	Interest *float64 `json:"interest" validate:"required,gte=0,lte=100"`
}

type SeasonalInsight struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Emoji       string `json:"emoji"`
}

// MarketOverview é a visão geral do mercado gerada pelo serviço de narrativa
type MarketOverview struct {
	TrendingCategories []TrendingCategory    `json:"trendingCategories" validate:"required,min=1,dive"`
	CategoryTrends     []CategoryTrendPoint  `json:"categoryTrends" validate:"required,min=1,dive"`
	SearchInterest     []SearchInterestPoint `json:"searchInterest" validate:"required,min=1,dive"`
	SeasonalInsights   []SeasonalInsight     `json:"seasonalInsights" validate:"dive"`
	LastUpdated        string                `json:"lastUpdated"`
}
