package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/jewelai-api/internal/domain"
)

func TestRescaleCategories(t *testing.T) {
	base := []domain.CategoryInsight{
		{Category: domain.CategoryRing, StockValue: 3000, AvgDaysToSell: 10, RiskScore: 50, ItemCount: 9, Trend: domain.TrendFalling},
		{Category: domain.CategoryChain, StockValue: 1001, AvgDaysToSell: 3, RiskScore: 15, ItemCount: 1, Trend: domain.TrendRising},
	}

	tests := []struct {
		name string
		days int
		want []domain.CategoryInsight
	}{
		{
			name: "Mesma janela mantém valores",
			days: 30,
			want: base,
		},
		{
			name: "Janela de 7 dias",
			days: 7,
			want: []domain.CategoryInsight{
				// 3000*7/30 = 700; 9*7/30 = 2.1 -> 2; 10/(7/30) = 42.86 -> 43
				{Category: domain.CategoryRing, StockValue: 700, AvgDaysToSell: 43, RiskScore: 50, ItemCount: 2, Trend: domain.TrendFalling},
				// 1001*7/30 = 233.57 -> 234; 1*7/30 = 0.23 -> 0; 3/(7/30) = 12.86 -> 13
				{Category: domain.CategoryChain, StockValue: 234, AvgDaysToSell: 13, RiskScore: 15, ItemCount: 0, Trend: domain.TrendRising},
			},
		},
		{
			name: "Janela de 90 dias",
			days: 90,
			want: []domain.CategoryInsight{
				{Category: domain.CategoryRing, StockValue: 9000, AvgDaysToSell: 3, RiskScore: 50, ItemCount: 27, Trend: domain.TrendFalling},
				{Category: domain.CategoryChain, StockValue: 3003, AvgDaysToSell: 1, RiskScore: 15, ItemCount: 3, Trend: domain.TrendRising},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaled, err := RescaleCategories(base, tt.days)

			require.NoError(t, err)
			assert.Equal(t, tt.want, scaled)
		})
	}
}

func TestRescaleCategories_NaoAlteraEntrada(t *testing.T) {
	base := []domain.CategoryInsight{{Category: domain.CategoryRing, StockValue: 3000, AvgDaysToSell: 10, ItemCount: 9}}

	_, err := RescaleCategories(base, 7)

	require.NoError(t, err)
	assert.Equal(t, 3000.0, base[0].StockValue)
	assert.Equal(t, 9, base[0].ItemCount)
}

func TestRescaleCategories_JanelaInvalida(t *testing.T) {
	_, err := RescaleCategories(nil, 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = RescaleWindow(nil, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
