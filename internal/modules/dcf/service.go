// Package dcf orchestrates a full discounted cash flow analysis: quality
// assessment, base cost of capital, the three canonical scenarios, and the
// sensitivity grid, assembled into one immutable report.
package dcf

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/investapp/dcf-engine/internal/config"
	"github.com/investapp/dcf-engine/internal/domain"
	"github.com/investapp/dcf-engine/internal/modules/costofcapital"
	"github.com/investapp/dcf-engine/internal/modules/quality"
	"github.com/investapp/dcf-engine/internal/modules/scenarios"
	"github.com/investapp/dcf-engine/internal/modules/sensitivity"
)

// Engine runs comprehensive and ad-hoc DCF valuations. The engine is
// stateless per request; the same instance is safe for concurrent use.
type Engine struct {
	assessor      *quality.Assessor
	costOfCapital *costofcapital.Calculator
	runner        *scenarios.Runner
	sensitivity   *sensitivity.Generator
	table         scenarios.Table

	qualityWarnThreshold float64
	now                  func() time.Time
	log                  zerolog.Logger
}

// New wires an engine from configuration.
func New(cfg *config.Config, log zerolog.Logger) *Engine {
	return &Engine{
		assessor:             quality.NewAssessor(log),
		costOfCapital:        costofcapital.NewCalculator(log),
		runner:               scenarios.NewRunner(log),
		sensitivity:          sensitivity.NewGenerator(log),
		table:                scenarios.NewTable(cfg),
		qualityWarnThreshold: cfg.QualityWarnThreshold,
		now:                  time.Now,
		log:                  log.With().Str("component", "dcf").Logger(),
	}
}

// WithClock overrides the engine clock. Used by tests to pin report
// timestamps and freshness scoring; the numeric core never reads the clock.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// CalculateComprehensiveDCF validates the bundle, evaluates the three
// canonical scenarios concurrently, builds the sensitivity grid from the
// base case, and assembles the report. Any scenario failure aborts the
// whole request; partial reports are never returned.
func (e *Engine) CalculateComprehensiveDCF(b domain.FinancialInputBundle) (*domain.AnalysisReport, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	started := e.now()
	qualityScore, issues := e.assessor.Assess(b)
	breakdown := e.costOfCapital.Calculate(b)

	assumptions := e.table.Canonical(breakdown.WACC)

	// The canonical scenarios are independent pure computations; evaluate
	// them concurrently and join before touching the sensitivity grid.
	results := make([]domain.ScenarioResult, len(assumptions))
	errs := make([]error, len(assumptions))

	var wg sync.WaitGroup
	for i := range assumptions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = e.runner.Run(b, assumptions[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	scenarioResults := make(map[string]domain.ScenarioResult, len(results))
	var base domain.ScenarioResult
	for _, result := range results {
		scenarioResults[result.ScenarioName] = result
		if result.ScenarioName == domain.ScenarioBaseCase {
			base = result
		}
	}

	grid := e.sensitivity.Generate(b, base)

	warnings := issues
	if qualityScore < e.qualityWarnThreshold {
		warnings = append(warnings, fmt.Sprintf(
			"quality score %.2f is below the acceptable threshold %.2f; treat this valuation with caution",
			qualityScore, e.qualityWarnThreshold))
	}

	report := &domain.AnalysisReport{
		AnalysisID:     uuid.New(),
		Ticker:         b.Ticker,
		CurrentPrice:   b.CurrentPrice,
		Scenarios:      scenarioResults,
		Sensitivity:    grid,
		QualityScore:   qualityScore,
		FreshnessScore: e.assessor.Freshness(b.AsOf, started),
		Warnings:       warnings,
		GeneratedAt:    started,
	}

	e.log.Info().
		Str("ticker", b.Ticker).
		Str("analysis_id", report.AnalysisID.String()).
		Float64("base_wacc", breakdown.WACC).
		Float64("base_intrinsic_value", base.IntrinsicValuePerShare).
		Float64("quality_score", qualityScore).
		Msg("Comprehensive DCF analysis completed")

	return report, nil
}

// CalculateScenarioDCF runs a single ad-hoc scenario. A zero discount rate
// means "recompute from capital structure": the base WACC is used directly.
func (e *Engine) CalculateScenarioDCF(b domain.FinancialInputBundle, a domain.ScenarioAssumptions) (domain.ScenarioResult, error) {
	if err := b.Validate(); err != nil {
		return domain.ScenarioResult{}, err
	}
	if a.Name == "" {
		a.Name = domain.ScenarioCustom
	}
	if err := a.Validate(); err != nil {
		return domain.ScenarioResult{}, err
	}

	a = a.WithDefaults()
	if a.DiscountRate == 0 {
		a.DiscountRate = e.costOfCapital.Calculate(b).WACC
	}

	return e.runner.Run(b, a)
}
