package domain

import (
	"fmt"
	"time"
)

// MinHistoryYears is the minimum number of fiscal years each historical
// sequence must cover for a projection to be meaningful.
const MinHistoryYears = 3

// FinancialInputBundle holds the validated historical financials for one
// valuation request. All four historical sequences are chronological and
// fiscally aligned: index i of every sequence refers to the same year.
// The bundle is treated as immutable once constructed.
type FinancialInputBundle struct {
	Ticker            string  `json:"ticker"`
	CurrentPrice      float64 `json:"current_price"`
	SharesOutstanding float64 `json:"shares_outstanding"`
	MarketCap         float64 `json:"market_cap"`

	RevenueHistory           []float64 `json:"revenue_history"`
	OperatingCashFlowHistory []float64 `json:"operating_cash_flow_history"`
	CapexHistory             []float64 `json:"capex_history"`
	WorkingCapitalChanges    []float64 `json:"working_capital_change_history"`

	TotalDebt          float64 `json:"total_debt"`
	CashAndEquivalents float64 `json:"cash_and_equivalents"`

	Beta              float64 `json:"beta"`
	RiskFreeRate      float64 `json:"risk_free_rate"`
	MarketRiskPremium float64 `json:"market_risk_premium"`
	TaxRate           float64 `json:"effective_tax_rate"`

	// AsOf is when the upstream data module assembled the bundle.
	// It only feeds the freshness score, never the numeric core.
	AsOf time.Time `json:"as_of,omitempty"`
}

// Years returns the number of fiscal years covered by the histories.
func (b FinancialInputBundle) Years() int {
	return len(b.RevenueHistory)
}

// Validate checks the structural and domain constraints the upstream data
// module is contractually required to satisfy. A mismatch in history lengths
// is a hard failure, never a silent truncation.
func (b FinancialInputBundle) Validate() error {
	var errs ValidationErrors

	if b.Ticker == "" {
		errs = append(errs, ValidationError{Field: "ticker", Message: "ticker is required"})
	}

	if b.CurrentPrice <= 0 {
		errs = append(errs, ValidationError{Field: "current_price", Message: "must be greater than 0"})
	}

	if b.SharesOutstanding <= 0 {
		errs = append(errs, ValidationError{Field: "shares_outstanding", Message: "must be greater than 0"})
	}

	if b.MarketCap < 0 {
		errs = append(errs, ValidationError{Field: "market_cap", Message: "cannot be negative"})
	}

	if len(b.RevenueHistory) < MinHistoryYears {
		errs = append(errs, ValidationError{
			Field:   "revenue_history",
			Message: fmt.Sprintf("at least %d years of history required, got %d", MinHistoryYears, len(b.RevenueHistory)),
		})
	}

	years := len(b.RevenueHistory)
	histories := []struct {
		field  string
		values []float64
	}{
		{"operating_cash_flow_history", b.OperatingCashFlowHistory},
		{"capex_history", b.CapexHistory},
		{"working_capital_change_history", b.WorkingCapitalChanges},
	}
	for _, h := range histories {
		if len(h.values) != years {
			errs = append(errs, ValidationError{
				Field:   h.field,
				Message: fmt.Sprintf("length %d does not match revenue_history length %d", len(h.values), years),
			})
		}
	}

	if b.TotalDebt < 0 {
		errs = append(errs, ValidationError{Field: "total_debt", Message: "cannot be negative"})
	}

	if b.CashAndEquivalents < 0 {
		errs = append(errs, ValidationError{Field: "cash_and_equivalents", Message: "cannot be negative"})
	}

	rates := []struct {
		field string
		value float64
	}{
		{"risk_free_rate", b.RiskFreeRate},
		{"market_risk_premium", b.MarketRiskPremium},
		{"effective_tax_rate", b.TaxRate},
	}
	for _, r := range rates {
		if r.value < 0.0 || r.value > 1.0 {
			errs = append(errs, ValidationError{Field: r.field, Message: "must be between 0.0 and 1.0"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
