package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioAssumptionsValidate(t *testing.T) {
	a := ScenarioAssumptions{
		Name:                   ScenarioCustom,
		RevenueGrowthRate:      0.05,
		MarginAdjustmentFactor: 1.0,
		TerminalGrowthRate:     0.025,
		ConfidenceLevel:        0.5,
		ProjectionYears:        5,
	}
	assert.NoError(t, a.Validate())
}

func TestScenarioAssumptionsValidate_MissingFields(t *testing.T) {
	err := ScenarioAssumptions{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario_name")
	assert.Contains(t, err.Error(), "margin_adjustment_factor")
}

func TestScenarioAssumptionsValidate_BadConfidence(t *testing.T) {
	a := ScenarioAssumptions{
		Name:                   ScenarioCustom,
		MarginAdjustmentFactor: 1.0,
		ConfidenceLevel:        1.5,
	}
	err := a.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confidence_level")
}

func TestScenarioAssumptionsWithDefaults(t *testing.T) {
	a := ScenarioAssumptions{Name: ScenarioCustom, MarginAdjustmentFactor: 1.0}
	assert.Equal(t, DefaultProjectionYears, a.WithDefaults().ProjectionYears)

	a.ProjectionYears = 7
	assert.Equal(t, 7, a.WithDefaults().ProjectionYears)
}

func TestSensitivityGrid_CellValid(t *testing.T) {
	grid := SensitivityGrid{
		ValueMatrix: [][]float64{{1.5, math.NaN()}},
	}
	assert.True(t, grid.CellValid(0, 0))
	assert.False(t, grid.CellValid(0, 1))
}

func TestSensitivityGrid_MarshalJSON_NaNBecomesNull(t *testing.T) {
	grid := SensitivityGrid{
		WACCAxis:      []float64{0.09, 0.10},
		GrowthAxis:    []float64{0.02, 0.03},
		ValueMatrix:   [][]float64{{120.5, math.NaN()}, {math.NaN(), 95.0}},
		BaseCaseValue: 120.5,
	}

	data, err := json.Marshal(grid)
	require.NoError(t, err)

	var decoded struct {
		ValueMatrix [][]*float64 `json:"value_matrix"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.NotNil(t, decoded.ValueMatrix[0][0])
	assert.Equal(t, 120.5, *decoded.ValueMatrix[0][0])
	assert.Nil(t, decoded.ValueMatrix[0][1])
	assert.Nil(t, decoded.ValueMatrix[1][0])
}

func TestDomainError_Message(t *testing.T) {
	err := DomainError{Reason: "discount rate must exceed terminal growth rate"}
	assert.Equal(t, "discount rate must exceed terminal growth rate", err.Error())

	err.Scenario = ScenarioBestCase
	assert.Contains(t, err.Error(), `scenario "best_case"`)
}
