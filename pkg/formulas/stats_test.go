package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestStdDev(t *testing.T) {
	// Sample standard deviation of 1..4 is sqrt(5/3)
	assert.InDelta(t, 1.2909944, StdDev([]float64{1, 2, 3, 4}), 1e-6)
	assert.Equal(t, 0.0, StdDev(nil))
}

func TestCoefficientOfVariation(t *testing.T) {
	// mean 20, sample stdev 10
	assert.InDelta(t, 0.5, CoefficientOfVariation([]float64{10, 20, 30}), 1e-9)
}

func TestCoefficientOfVariation_ZeroMean(t *testing.T) {
	assert.Equal(t, 0.0, CoefficientOfVariation([]float64{-5, 5}))
}

func TestGrowthRates(t *testing.T) {
	rates := GrowthRates([]float64{100, 110, 121})
	assert.Len(t, rates, 2)
	assert.InDelta(t, 0.1, rates[0], 1e-9)
	assert.InDelta(t, 0.1, rates[1], 1e-9)
}

func TestGrowthRates_TooShort(t *testing.T) {
	assert.Empty(t, GrowthRates([]float64{100}))
	assert.Empty(t, GrowthRates(nil))
}

func TestGrowthRates_ZeroBase(t *testing.T) {
	// A zero base year contributes a zero rate instead of Inf
	rates := GrowthRates([]float64{0, 100, 110})
	assert.Equal(t, 0.0, rates[0])
	assert.InDelta(t, 0.1, rates[1], 1e-9)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 6.0, Sum([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, Sum(nil))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.5, 0, 1))
	assert.Equal(t, 1.0, Clamp(1.5, 0, 1))
	assert.Equal(t, 0.7, Clamp(0.7, 0, 1))
}
