package scenarios

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/investapp/dcf-engine/internal/domain"
	"github.com/investapp/dcf-engine/internal/modules/projections"
	"github.com/investapp/dcf-engine/internal/modules/valuation"
	"github.com/investapp/dcf-engine/pkg/formulas"
)

// Runner executes one scenario end to end: revenue path, free cash flows,
// terminal value, discounting, and the equity bridge. Run is a pure function
// of (bundle, assumptions), so scenarios are safe to evaluate in parallel.
type Runner struct {
	projector *projections.Projector
	log       zerolog.Logger
}

// NewRunner creates a new scenario runner.
func NewRunner(log zerolog.Logger) *Runner {
	return &Runner{
		projector: projections.NewProjector(log),
		log:       log.With().Str("component", "scenarios").Logger(),
	}
}

// Run produces the ScenarioResult for one set of assumptions.
func (r *Runner) Run(b domain.FinancialInputBundle, a domain.ScenarioAssumptions) (domain.ScenarioResult, error) {
	revenues := r.projector.Revenue(b, a)

	flows, err := r.projector.FreeCashFlow(b, a, revenues)
	if err != nil {
		return domain.ScenarioResult{}, err
	}

	terminalValue, err := valuation.TerminalValue(flows[len(flows)-1], a.DiscountRate, a.TerminalGrowthRate)
	if err != nil {
		return domain.ScenarioResult{}, tagScenario(err, a.Name)
	}

	presentValues := valuation.DiscountCashFlows(flows, terminalValue, a.DiscountRate)

	// Equity bridge: enterprise value less net debt, per share.
	enterpriseValue := formulas.Sum(presentValues)
	equityValue := enterpriseValue - b.TotalDebt + b.CashAndEquivalents
	perShare := equityValue / b.SharesOutstanding
	upside := (perShare - b.CurrentPrice) / b.CurrentPrice * 100.0

	result := domain.ScenarioResult{
		ScenarioName:           a.Name,
		IntrinsicValuePerShare: perShare,
		EnterpriseValue:        enterpriseValue,
		TerminalValue:          terminalValue,
		ProjectedCashFlows:     flows,
		PresentValues:          presentValues,
		DiscountRate:           a.DiscountRate,
		TerminalGrowthRate:     a.TerminalGrowthRate,
		UpsideDownsidePct:      upside,
		Assumptions:            a,
	}

	r.log.Debug().
		Str("ticker", b.Ticker).
		Str("scenario", a.Name).
		Float64("intrinsic_value", perShare).
		Float64("upside_pct", upside).
		Msg("Scenario evaluated")

	return result, nil
}

// tagScenario attaches the scenario name to a domain error so the caller can
// identify which scenario's assumptions were infeasible.
func tagScenario(err error, scenario string) error {
	var domainErr domain.DomainError
	if errors.As(err, &domainErr) && domainErr.Scenario == "" {
		domainErr.Scenario = scenario
		return domainErr
	}
	return err
}
