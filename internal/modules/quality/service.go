// Package quality scores the reliability of a financial input bundle before
// any valuation work starts. The score is a stacked-deduction heuristic, not
// a statistical test: each detected problem subtracts a fixed penalty and the
// result is clamped to [0, 1].
package quality

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/investapp/dcf-engine/internal/domain"
	"github.com/investapp/dcf-engine/pkg/formulas"
)

// Deduction weights and thresholds.
const (
	NonPositiveRevenuePenalty  = 0.2
	NonPositiveCashFlowPenalty = 0.2
	HighVolatilityPenalty      = 0.1
	MissingMarketDataPenalty   = 0.3

	// RevenueVolatilityThreshold is the coefficient of variation above which
	// revenue history is considered too erratic to extrapolate cleanly.
	RevenueVolatilityThreshold = 0.3
)

// Freshness tiers, keyed by bundle age. Mirrors the tiering the upstream
// data module applies to its own feeds.
const (
	freshnessHour      = 1.0
	freshnessSixHours  = 0.9
	freshnessDay       = 0.7
	freshnessThreeDays = 0.5
	freshnessStale     = 0.3
)

// Assessor scores input bundle reliability.
type Assessor struct {
	log zerolog.Logger
}

// NewAssessor creates a new quality assessor.
func NewAssessor(log zerolog.Logger) *Assessor {
	return &Assessor{
		log: log.With().Str("component", "quality").Logger(),
	}
}

// Assess scores the bundle in [0, 1] and reports the issues it found.
// Deductions are independent and can stack below zero before clamping.
func (a *Assessor) Assess(bundle domain.FinancialInputBundle) (float64, []string) {
	score := 1.0
	var issues []string

	if hasNonPositive(bundle.RevenueHistory) {
		score -= NonPositiveRevenuePenalty
		issues = append(issues, "revenue history contains non-positive values")
	}

	if hasNonPositive(bundle.OperatingCashFlowHistory) {
		score -= NonPositiveCashFlowPenalty
		issues = append(issues, "operating cash flow history contains non-positive values")
	}

	cov := formulas.CoefficientOfVariation(bundle.RevenueHistory)
	if cov > RevenueVolatilityThreshold {
		score -= HighVolatilityPenalty
		issues = append(issues, fmt.Sprintf("revenue history is highly volatile (coefficient of variation %.2f)", cov))
	}

	if bundle.MarketCap <= 0 || bundle.SharesOutstanding <= 0 {
		score -= MissingMarketDataPenalty
		issues = append(issues, "market capitalization or shares outstanding missing")
	}

	clamped := formulas.Clamp(score, 0.0, 1.0)

	a.log.Debug().
		Str("ticker", bundle.Ticker).
		Float64("score", clamped).
		Float64("revenue_cov", cov).
		Int("issues", len(issues)).
		Msg("Assessed input quality")

	return clamped, issues
}

// Freshness maps the bundle's age at calculation time to a [0, 1] tier.
// A zero AsOf timestamp means the upstream data module supplied no
// provenance, which scores as completely stale.
func (a *Assessor) Freshness(asOf, now time.Time) float64 {
	if asOf.IsZero() {
		return 0.0
	}

	age := now.Sub(asOf)
	switch {
	case age <= time.Hour:
		return freshnessHour
	case age <= 6*time.Hour:
		return freshnessSixHours
	case age <= 24*time.Hour:
		return freshnessDay
	case age <= 72*time.Hour:
		return freshnessThreeDays
	default:
		return freshnessStale
	}
}

func hasNonPositive(values []float64) bool {
	for _, v := range values {
		if v <= 0 {
			return true
		}
	}
	return false
}
