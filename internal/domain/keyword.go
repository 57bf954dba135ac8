package domain

import "time"

// InterestDataPoint e os demais campos numéricos do esquema são ponteiros:
// um campo ausente no JSON precisa falhar na validação em vez de virar zero
type InterestDataPoint struct {
	Month    string `json:"month" validate:"required"`
	Searches *int   `json:"searches" validate:"required,gte=0,lte=100"`
}

type RelatedSearch struct {
	Query    string `json:"query" validate:"required"`
	Category string `json:"category" validate:"required"`
	Demand   string `json:"demand" validate:"required,oneof='Low' 'Medium' 'High' 'Very High'"`
}

type AIRecommendation struct {
	Confidence      *int     `json:"confidence" validate:"required,gte=0,lte=100"`
	Summary         string   `json:"summary" validate:"required"`
	Insights        []string `json:"insights" validate:"required,min=1,dive,required"`
	PotentialImpact string   `json:"potentialImpact" validate:"required,oneof=Low Medium High"`
}

type CategoryDemand struct {
	Category   string   `json:"category" validate:"required"`
	Level      string   `json:"level" validate:"required,oneof='Low' 'Medium' 'High' 'Very High'"`
	Percentage *float64 `json:"percentage" validate:"required,gte=0,lte=100"`
}

// KeywordAnalysis é a resposta do serviço de narrativa para uma palavra-chave
type KeywordAnalysis struct {
	Keyword          string              `json:"keyword" validate:"required"`
	IsTrending       *bool               `json:"isTrending" validate:"required"`
	TrendDirection   string              `json:"trendDirection,omitempty" validate:"omitempty,oneof=up down stable"`
	InterestOverTime []InterestDataPoint `json:"interestOverTime" validate:"required,dive"`
	RelatedSearches  []RelatedSearch     `json:"relatedSearches" validate:"required,dive"`
	AIRecommendation *AIRecommendation   `json:"aiRecommendation" validate:"required"`
	CategoryDemand   []CategoryDemand    `json:"categoryDemand" validate:"required,dive"`
}

// KeywordAnalysisRequest é o corpo da requisição de análise
type KeywordAnalysisRequest struct {
	Keyword string `json:"keyword" validate:"required,min=2,max=80"`
}

// KeywordAnalysisResult associa a análise ao número de sequência da requisição
type KeywordAnalysisResult struct {
	Sequence   uint64           `json:"sequence"`
	AnalyzedAt time.Time        `json:"analyzed_at"`
	Analysis   *KeywordAnalysis `json:"analysis"`
}
