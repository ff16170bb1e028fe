package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithDecimalPlaces arredonda para o número de casas decimais
// informado. O gráfico mensal usa 4 casas para BTC e 2 para USD.
func RoundWithDecimalPlaces(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	factor := math.Pow(10, float64(places))
	return math.Round(f*factor) / factor
}
