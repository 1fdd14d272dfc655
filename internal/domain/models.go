package domain

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
)

// Canonical scenario names. These are the fixed keys of the report's
// scenario map; Custom is only used for ad-hoc requests.
const (
	ScenarioWorstCase = "worst_case"
	ScenarioBaseCase  = "base_case"
	ScenarioBestCase  = "best_case"
	ScenarioCustom    = "custom"
)

// DefaultProjectionYears is the projection horizon applied when a scenario
// does not specify one.
const DefaultProjectionYears = 5

// ScenarioAssumptions is one named set of valuation assumptions.
type ScenarioAssumptions struct {
	Name                   string  `json:"scenario_name"`
	RevenueGrowthRate      float64 `json:"revenue_growth_rate"`
	MarginAdjustmentFactor float64 `json:"margin_adjustment_factor"`
	DiscountRate           float64 `json:"discount_rate"`
	TerminalGrowthRate     float64 `json:"terminal_growth_rate"`
	ConfidenceLevel        float64 `json:"confidence_level"`
	ProjectionYears        int     `json:"projection_horizon_years"`
}

// Validate checks that required assumption fields are present and sane.
// The Gordon growth constraint (discount rate > terminal growth rate) is a
// calculation-time domain check, not a validation check, because the
// discount rate may still be recomputed from the capital structure.
func (a ScenarioAssumptions) Validate() error {
	var errs ValidationErrors

	if a.Name == "" {
		errs = append(errs, ValidationError{Field: "scenario_name", Message: "scenario name is required"})
	}

	if a.MarginAdjustmentFactor <= 0 {
		errs = append(errs, ValidationError{Field: "margin_adjustment_factor", Message: "must be greater than 0"})
	}

	if a.ProjectionYears < 0 {
		errs = append(errs, ValidationError{Field: "projection_horizon_years", Message: "cannot be negative"})
	}

	if a.ConfidenceLevel < 0.0 || a.ConfidenceLevel > 1.0 {
		errs = append(errs, ValidationError{Field: "confidence_level", Message: "must be between 0.0 and 1.0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WithDefaults returns a copy with unset optional fields filled in.
func (a ScenarioAssumptions) WithDefaults() ScenarioAssumptions {
	if a.ProjectionYears == 0 {
		a.ProjectionYears = DefaultProjectionYears
	}
	return a
}

// ScenarioResult is the self-contained outcome of running one scenario.
// It is immutable once produced.
type ScenarioResult struct {
	ScenarioName           string    `json:"scenario_name"`
	IntrinsicValuePerShare float64   `json:"intrinsic_value_per_share"`
	EnterpriseValue        float64   `json:"total_enterprise_value"`
	TerminalValue          float64   `json:"terminal_value"`
	ProjectedCashFlows     []float64 `json:"projected_cash_flows"`
	// PresentValues has one entry per projection year plus a final entry
	// holding the discounted terminal value.
	PresentValues      []float64           `json:"present_values"`
	DiscountRate       float64             `json:"discount_rate"`
	TerminalGrowthRate float64             `json:"terminal_growth_rate"`
	UpsideDownsidePct  float64             `json:"upside_downside_percentage"`
	Assumptions        ScenarioAssumptions `json:"assumptions"`
}

// SensitivityGrid holds intrinsic values per share recomputed across a
// WACC x terminal-growth grid centered on the base case. Cells whose rate
// pair violates the Gordon growth constraint are NaN in memory and null in
// JSON; the grid is exploratory, so a bad cell never aborts it.
type SensitivityGrid struct {
	WACCAxis      []float64   `json:"wacc_axis"`
	GrowthAxis    []float64   `json:"growth_axis"`
	ValueMatrix   [][]float64 `json:"value_matrix"`
	BaseCaseValue float64     `json:"base_case_value"`
}

// CellValid reports whether the cell at (i, j) satisfied the Gordon growth
// constraint and holds a usable value.
func (g SensitivityGrid) CellValid(i, j int) bool {
	return !math.IsNaN(g.ValueMatrix[i][j])
}

// MarshalJSON renders infeasible (NaN) cells as null, since NaN is not
// representable in JSON.
func (g SensitivityGrid) MarshalJSON() ([]byte, error) {
	matrix := make([][]*float64, len(g.ValueMatrix))
	for i, row := range g.ValueMatrix {
		matrix[i] = make([]*float64, len(row))
		for j := range row {
			if !math.IsNaN(row[j]) {
				v := row[j]
				matrix[i][j] = &v
			}
		}
	}

	return json.Marshal(struct {
		WACCAxis      []float64    `json:"wacc_axis"`
		GrowthAxis    []float64    `json:"growth_axis"`
		ValueMatrix   [][]*float64 `json:"value_matrix"`
		BaseCaseValue float64      `json:"base_case_value"`
	}{
		WACCAxis:      g.WACCAxis,
		GrowthAxis:    g.GrowthAxis,
		ValueMatrix:   matrix,
		BaseCaseValue: g.BaseCaseValue,
	})
}

// AnalysisReport is the top-level output of a comprehensive DCF run.
// Downstream layers (reporting, portfolio, persistence) consume it as an
// immutable value object.
type AnalysisReport struct {
	AnalysisID     uuid.UUID                 `json:"analysis_id"`
	Ticker         string                    `json:"ticker"`
	CurrentPrice   float64                   `json:"current_market_price"`
	Scenarios      map[string]ScenarioResult `json:"scenarios"`
	Sensitivity    SensitivityGrid           `json:"sensitivity_grid"`
	QualityScore   float64                   `json:"quality_score"`
	FreshnessScore float64                   `json:"data_freshness_score"`
	Warnings       []string                  `json:"warnings,omitempty"`
	GeneratedAt    time.Time                 `json:"timestamp"`
}
