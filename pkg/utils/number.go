package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FloatPtr devolve um ponteiro para o valor informado
func FloatPtr(f float64) *float64 {
	return &f
}
