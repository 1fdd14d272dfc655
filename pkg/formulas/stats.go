package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// CoefficientOfVariation calculates stdev/mean, a scale-free volatility measure.
// Returns 0 when the mean is zero to avoid division by zero.
func CoefficientOfVariation(data []float64) float64 {
	mean := Mean(data)
	if mean == 0 {
		return 0
	}
	return math.Abs(StdDev(data) / mean)
}

// GrowthRates converts a chronological value series to year-over-year growth rates
// Rates[i] = (Value[i] - Value[i-1]) / Value[i-1]
func GrowthRates(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}

	rates := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] != 0 {
			rates[i-1] = (values[i] - values[i-1]) / values[i-1]
		}
	}

	return rates
}

// Sum adds up a slice of float64 values
func Sum(data []float64) float64 {
	total := 0.0
	for _, v := range data {
		total += v
	}
	return total
}

// Clamp restricts a value to a given range.
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}
