// Package costofcapital derives the discount rate for a valuation request
// from capital structure and market risk inputs (CAPM for equity, a flat
// spread over the risk-free rate for debt).
package costofcapital

import (
	"github.com/rs/zerolog"

	"github.com/investapp/dcf-engine/internal/domain"
)

// DebtSpread is the flat premium over the risk-free rate used as pre-tax
// cost of debt. A simplifying assumption; real credit spreads would need
// rating or bond-market data the engine does not receive.
const DebtSpread = 0.02

// Breakdown holds the calculated rates and weights.
type Breakdown struct {
	CostOfEquity float64 `json:"cost_of_equity"`
	CostOfDebt   float64 `json:"cost_of_debt"` // pre-tax
	EquityWeight float64 `json:"equity_weight"`
	DebtWeight   float64 `json:"debt_weight"`
	WACC         float64 `json:"wacc"`
}

// Calculator computes the weighted average cost of capital.
type Calculator struct {
	log zerolog.Logger
}

// NewCalculator creates a new cost of capital calculator.
func NewCalculator(log zerolog.Logger) *Calculator {
	return &Calculator{
		log: log.With().Str("component", "costofcapital").Logger(),
	}
}

// Calculate derives the base WACC for the bundle. This runs once per
// request; scenarios shift the resulting rate by their configured offsets
// rather than recomputing from capital structure.
func (c *Calculator) Calculate(b domain.FinancialInputBundle) Breakdown {
	// Cost of equity via CAPM: Ke = Rf + beta * ERP
	costOfEquity := b.RiskFreeRate + b.Beta*b.MarketRiskPremium
	costOfDebt := b.RiskFreeRate + DebtSpread

	totalCapital := b.MarketCap + b.TotalDebt
	if totalCapital == 0 {
		// No capital structure to weight; fall back to the cost of equity.
		c.log.Warn().
			Str("ticker", b.Ticker).
			Msg("Zero total capital, using cost of equity as WACC")
		return Breakdown{
			CostOfEquity: costOfEquity,
			CostOfDebt:   costOfDebt,
			EquityWeight: 1.0,
			DebtWeight:   0.0,
			WACC:         costOfEquity,
		}
	}

	equityWeight := b.MarketCap / totalCapital
	debtWeight := 1.0 - equityWeight
	wacc := equityWeight*costOfEquity + debtWeight*costOfDebt*(1.0-b.TaxRate)

	breakdown := Breakdown{
		CostOfEquity: costOfEquity,
		CostOfDebt:   costOfDebt,
		EquityWeight: equityWeight,
		DebtWeight:   debtWeight,
		WACC:         wacc,
	}

	c.log.Debug().
		Str("ticker", b.Ticker).
		Float64("cost_of_equity", costOfEquity).
		Float64("cost_of_debt", costOfDebt).
		Float64("equity_weight", equityWeight).
		Float64("wacc", wacc).
		Msg("Calculated cost of capital")

	return breakdown
}
