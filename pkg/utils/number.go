package utils

import (
	"math"
	"strconv"
)

const (
	oneLakh  = 100_000
	oneCrore = 10_000_000
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatIndianCurrency formata em rúpias usando Lakh (L) e Crore (CR).
// Abaixo de um Lakh o valor é mostrado inteiro.
func FormatIndianCurrency(value float64, decimals int) string {
	return "₹" + FormatIndianAmount(value, decimals)
}

// FormatIndianAmount é FormatIndianCurrency sem o símbolo, para eixos de gráfico
func FormatIndianAmount(value float64, decimals int) string {
	switch {
	case value >= oneCrore:
		return strconv.FormatFloat(value/oneCrore, 'f', decimals, 64) + "CR"
	case value >= oneLakh:
		return strconv.FormatFloat(value/oneLakh, 'f', decimals, 64) + "L"
	default:
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
}
