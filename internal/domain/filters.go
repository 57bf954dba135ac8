package domain

// InsightFilters define a janela de datas de uma consulta.
// Datas no formato YYYY-MM-DD. Quando vazias e Days > 0, a janela termina na
// última data do livro de vendas.
type InsightFilters struct {
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Days      int    `json:"days,omitempty" validate:"gte=0,lte=3650"`
}

func (f *InsightFilters) HasExplicitRange() bool {
	return f != nil && (f.StartDate != "" || f.EndDate != "")
}
