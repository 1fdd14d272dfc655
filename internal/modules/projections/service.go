// Package projections extrapolates the revenue path and free cash flows for
// one scenario. Near-term growth blends the historical record with the
// scenario assumption, then decays geometrically toward the terminal rate as
// the horizon lengthens.
package projections

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/investapp/dcf-engine/internal/domain"
	"github.com/investapp/dcf-engine/pkg/formulas"
)

const (
	// Blend weights: historical growth anchors the projection but the
	// scenario assumption dominates.
	HistoricalGrowthWeight = 0.3
	ScenarioGrowthWeight   = 0.7

	// GrowthDecayFactor controls how quickly year growth relaxes from the
	// blended near-term rate toward the terminal rate (decay = 0.8^year).
	GrowthDecayFactor = 0.8

	// MarginLookbackYears is how many trailing years feed the FCF margin.
	MarginLookbackYears = 3
)

// Projector projects revenue and free cash flow paths.
type Projector struct {
	log zerolog.Logger
}

// NewProjector creates a new projector.
func NewProjector(log zerolog.Logger) *Projector {
	return &Projector{
		log: log.With().Str("component", "projections").Logger(),
	}
}

// Revenue extrapolates the revenue path for the scenario's horizon.
// year_growth = blended * 0.8^y + terminal * (1 - 0.8^y), compounding from
// the most recent historical revenue.
func (p *Projector) Revenue(b domain.FinancialInputBundle, a domain.ScenarioAssumptions) []float64 {
	historical := formulas.GrowthRates(b.RevenueHistory)
	blended := HistoricalGrowthWeight*formulas.Mean(historical) + ScenarioGrowthWeight*a.RevenueGrowthRate

	revenues := make([]float64, a.ProjectionYears)
	last := b.RevenueHistory[len(b.RevenueHistory)-1]
	for y := 0; y < a.ProjectionYears; y++ {
		decay := math.Pow(GrowthDecayFactor, float64(y))
		growth := blended*decay + a.TerminalGrowthRate*(1.0-decay)
		last *= 1.0 + growth
		revenues[y] = last
	}

	p.log.Debug().
		Str("ticker", b.Ticker).
		Str("scenario", a.Name).
		Float64("blended_growth", blended).
		Int("years", a.ProjectionYears).
		Msg("Projected revenue path")

	return revenues
}

// HistoricalFreeCashFlows derives FCF = OCF - capex - working capital change
// for the trailing margin-lookback window.
func (p *Projector) HistoricalFreeCashFlows(b domain.FinancialInputBundle) []float64 {
	start := b.Years() - MarginLookbackYears
	if start < 0 {
		start = 0
	}
	flows := make([]float64, 0, MarginLookbackYears)
	for i := start; i < b.Years(); i++ {
		flows = append(flows, b.OperatingCashFlowHistory[i]-b.CapexHistory[i]-b.WorkingCapitalChanges[i])
	}
	return flows
}

// FCFMargin averages FCF/revenue over the trailing lookback window.
func (p *Projector) FCFMargin(b domain.FinancialInputBundle) (float64, error) {
	flows := p.HistoricalFreeCashFlows(b)
	start := b.Years() - len(flows)

	margins := make([]float64, 0, len(flows))
	for i, fcf := range flows {
		revenue := b.RevenueHistory[start+i]
		if revenue == 0 {
			return 0, domain.ValidationError{
				Field:   "revenue_history",
				Message: fmt.Sprintf("revenue for year %d is zero, FCF margin undefined", start+i),
			}
		}
		margins = append(margins, fcf/revenue)
	}

	return formulas.Mean(margins), nil
}

// FreeCashFlow converts projected revenues into free cash flows using the
// historically derived margin scaled by the scenario's adjustment factor.
func (p *Projector) FreeCashFlow(b domain.FinancialInputBundle, a domain.ScenarioAssumptions, revenues []float64) ([]float64, error) {
	margin, err := p.FCFMargin(b)
	if err != nil {
		return nil, err
	}

	adjusted := margin * a.MarginAdjustmentFactor
	flows := make([]float64, len(revenues))
	for i, revenue := range revenues {
		flows[i] = revenue * adjusted
	}

	p.log.Debug().
		Str("ticker", b.Ticker).
		Str("scenario", a.Name).
		Float64("fcf_margin", margin).
		Float64("adjusted_margin", adjusted).
		Msg("Projected free cash flows")

	return flows, nil
}
