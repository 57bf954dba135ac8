package domain

// KPISummary são os totais da loja exibidos nos cards de KPI
type KPISummary struct {
	TotalStockValue    float64 `json:"totalStockValue" yaml:"totalStockValue"`
	AgeingStock        int     `json:"ageingStock" yaml:"ageingStock"`
	PredictedDeadstock int     `json:"predictedDeadstock" yaml:"predictedDeadstock"`
	FastMovingItems    int     `json:"fastMovingItems" yaml:"fastMovingItems"`
	TotalItems         int     `json:"totalItems" yaml:"totalItems"`
}

// DeadstockPercentage retorna a fração de peças com previsão de encalhe, em %
func (k KPISummary) DeadstockPercentage() float64 {
	if k.TotalItems == 0 {
		return 0
	}
	return float64(k.PredictedDeadstock) / float64(k.TotalItems) * 100
}

// FastMovingPercentage retorna a fração de peças de giro rápido, em %
func (k KPISummary) FastMovingPercentage() float64 {
	if k.TotalItems == 0 {
		return 0
	}
	return float64(k.FastMovingItems) / float64(k.TotalItems) * 100
}
