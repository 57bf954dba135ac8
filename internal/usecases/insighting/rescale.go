package insighting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/jewelai-api/internal/domain"
)

// EstimateBaseWindowDays é a janela, em dias, dos agregados usados no modo estimativa
const EstimateBaseWindowDays = 30

// RescaleCategories estima a visão de `days` dias a partir de um agregado de 30 dias.
// É uma aproximação linear, não uma nova agregação.
func RescaleCategories(base []domain.CategoryInsight, days int) ([]domain.CategoryInsight, error) {
	return RescaleWindow(base, EstimateBaseWindowDays, days)
}

// RescaleWindow aplica o fator days/baseDays: stockValue e itemCount são
// multiplicados, avgDaysToSell é dividido, cada um arredondado para o inteiro
// mais próximo. riskScore e trend são mantidos como no agregado base.
func RescaleWindow(base []domain.CategoryInsight, baseDays, days int) ([]domain.CategoryInsight, error) {
	if days <= 0 || baseDays <= 0 {
		return nil, ErrInvalidWindow
	}

	num := decimal.NewFromInt(int64(days))
	den := decimal.NewFromInt(int64(baseDays))

	scaled := make([]domain.CategoryInsight, 0, len(base))
	for _, insight := range base {
		stockValue := decimal.NewFromFloat(insight.StockValue).Mul(num).Div(den).Round(0)
		itemCount := decimal.NewFromInt(int64(insight.ItemCount)).Mul(num).Div(den).Round(0)
		avgDays := decimal.NewFromInt(int64(insight.AvgDaysToSell)).Mul(den).Div(num).Round(0)

		insight.StockValue = stockValue.InexactFloat64()
		insight.ItemCount = int(itemCount.IntPart())
		insight.AvgDaysToSell = int(avgDays.IntPart())
		scaled = append(scaled, insight)
	}

	return scaled, nil
}
