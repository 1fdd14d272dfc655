// Package scenarios holds the canonical scenario table and the runner that
// turns one set of assumptions into a self-contained valuation result.
package scenarios

import (
	"github.com/investapp/dcf-engine/internal/config"
	"github.com/investapp/dcf-engine/internal/domain"
)

// Canonical assumption constants. These are configuration data rather than
// behavior: one enumerated table instead of literals scattered through the
// calculation path.
const (
	WorstCaseRevenueGrowth = 0.00
	BaseCaseRevenueGrowth  = 0.05
	BestCaseRevenueGrowth  = 0.10

	WorstCaseMarginFactor = 0.85
	BaseCaseMarginFactor  = 1.00
	BestCaseMarginFactor  = 1.10

	WorstCaseTerminalGrowth = 0.015
	BaseCaseTerminalGrowth  = 0.025
	BestCaseTerminalGrowth  = 0.030

	WorstCaseConfidence = 0.25
	BaseCaseConfidence  = 0.50
	BestCaseConfidence  = 0.25
)

// Table produces the three canonical scenario assumption sets. The WACC
// offsets shift the base discount rate per scenario (worst case dearer,
// best case cheaper) instead of recomputing it from capital structure.
type Table struct {
	ProjectionYears     int
	WorstCaseWACCOffset float64
	BestCaseWACCOffset  float64
}

// NewTable builds the scenario table from configuration.
func NewTable(cfg *config.Config) Table {
	return Table{
		ProjectionYears:     cfg.ProjectionYears,
		WorstCaseWACCOffset: cfg.WorstCaseWACCOffset,
		BestCaseWACCOffset:  cfg.BestCaseWACCOffset,
	}
}

// DefaultTable builds the scenario table with default tuning.
func DefaultTable() Table {
	return Table{
		ProjectionYears:     config.DefaultProjectionYears,
		WorstCaseWACCOffset: config.DefaultWorstCaseWACCOffset,
		BestCaseWACCOffset:  config.DefaultBestCaseWACCOffset,
	}
}

// Canonical returns the worst/base/best assumption sets with discount rates
// resolved against the given base WACC, in that fixed order.
func (t Table) Canonical(baseWACC float64) []domain.ScenarioAssumptions {
	return []domain.ScenarioAssumptions{
		{
			Name:                   domain.ScenarioWorstCase,
			RevenueGrowthRate:      WorstCaseRevenueGrowth,
			MarginAdjustmentFactor: WorstCaseMarginFactor,
			DiscountRate:           baseWACC + t.WorstCaseWACCOffset,
			TerminalGrowthRate:     WorstCaseTerminalGrowth,
			ConfidenceLevel:        WorstCaseConfidence,
			ProjectionYears:        t.ProjectionYears,
		},
		{
			Name:                   domain.ScenarioBaseCase,
			RevenueGrowthRate:      BaseCaseRevenueGrowth,
			MarginAdjustmentFactor: BaseCaseMarginFactor,
			DiscountRate:           baseWACC,
			TerminalGrowthRate:     BaseCaseTerminalGrowth,
			ConfidenceLevel:        BaseCaseConfidence,
			ProjectionYears:        t.ProjectionYears,
		},
		{
			Name:                   domain.ScenarioBestCase,
			RevenueGrowthRate:      BestCaseRevenueGrowth,
			MarginAdjustmentFactor: BestCaseMarginFactor,
			DiscountRate:           baseWACC + t.BestCaseWACCOffset,
			TerminalGrowthRate:     BestCaseTerminalGrowth,
			ConfidenceLevel:        BestCaseConfidence,
			ProjectionYears:        t.ProjectionYears,
		},
	}
}
