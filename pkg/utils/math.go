package utils

import "math"

// RoundDecimal rounds value half away from zero to the given number of
// decimal places, e.g. RoundDecimal(33.3333, 2) == 33.33.
func RoundDecimal(value float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}
