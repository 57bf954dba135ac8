package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIndianCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{name: "Valor pequeno sem casas", value: 45230.6, decimals: 1, want: "₹45231"},
		{name: "Exatamente um Lakh", value: 100000, decimals: 1, want: "₹1.0L"},
		{name: "Lakhs", value: 2550000, decimals: 1, want: "₹25.5L"},
		{name: "Crores", value: 123400000, decimals: 2, want: "₹12.34CR"},
		{name: "Zero", value: 0, decimals: 1, want: "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIndianCurrency(tt.value, tt.decimals))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.345001))
	assert.Equal(t, 40.0, RoundWithTwoDecimalPlace(40.004))
}
