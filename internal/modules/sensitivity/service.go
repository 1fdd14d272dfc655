// Package sensitivity recomputes intrinsic value per share across a
// WACC x terminal-growth grid centered on the base case.
//
// The grid deliberately reuses the base case's already-projected cash flows
// for every cell: only the discounting and terminal value assumptions vary.
// It therefore measures discounting sensitivity, not revenue-assumption
// sensitivity. Do not "fix" this by reprojecting per cell; that would change
// what the grid means.
package sensitivity

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/investapp/dcf-engine/internal/domain"
	"github.com/investapp/dcf-engine/internal/modules/valuation"
	"github.com/investapp/dcf-engine/pkg/formulas"
)

const (
	// GridSize is the number of points per axis (center plus 4 steps each way).
	GridSize = 9

	WACCStep   = 0.005  // 50bp per WACC step
	GrowthStep = 0.0025 // 25bp per terminal growth step
)

// Generator builds sensitivity grids.
type Generator struct {
	log zerolog.Logger
}

// NewGenerator creates a new sensitivity grid generator.
func NewGenerator(log zerolog.Logger) *Generator {
	return &Generator{
		log: log.With().Str("component", "sensitivity").Logger(),
	}
}

// Generate builds the grid around the base case result. Cells whose rate
// pair violates the Gordon growth constraint are marked NaN instead of
// aborting the grid; a bad rate pair only blanks its own cell.
func (g *Generator) Generate(b domain.FinancialInputBundle, base domain.ScenarioResult) domain.SensitivityGrid {
	half := GridSize / 2

	waccAxis := make([]float64, GridSize)
	growthAxis := make([]float64, GridSize)
	for i := 0; i < GridSize; i++ {
		waccAxis[i] = base.DiscountRate + float64(i-half)*WACCStep
		growthAxis[i] = base.TerminalGrowthRate + float64(i-half)*GrowthStep
	}

	invalid := 0
	matrix := make([][]float64, GridSize)
	for i, wacc := range waccAxis {
		matrix[i] = make([]float64, GridSize)
		for j, growth := range growthAxis {
			value := cellValue(b, base.ProjectedCashFlows, wacc, growth)
			if math.IsNaN(value) {
				invalid++
			}
			matrix[i][j] = value
		}
	}

	if invalid > 0 {
		g.log.Warn().
			Str("ticker", b.Ticker).
			Int("invalid_cells", invalid).
			Msg("Sensitivity grid contains infeasible rate pairs")
	}

	return domain.SensitivityGrid{
		WACCAxis:      waccAxis,
		GrowthAxis:    growthAxis,
		ValueMatrix:   matrix,
		BaseCaseValue: matrix[half][half],
	}
}

// cellValue recomputes intrinsic value per share for one rate pair, reusing
// the base case's projected cash flows.
func cellValue(b domain.FinancialInputBundle, flows []float64, wacc, growth float64) float64 {
	terminalValue, err := valuation.TerminalValue(flows[len(flows)-1], wacc, growth)
	if err != nil {
		return math.NaN()
	}

	presentValues := valuation.DiscountCashFlows(flows, terminalValue, wacc)
	equityValue := formulas.Sum(presentValues) - b.TotalDebt + b.CashAndEquivalents
	return equityValue / b.SharesOutstanding
}
