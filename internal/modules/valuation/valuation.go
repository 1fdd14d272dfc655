// Package valuation implements the Gordon growth terminal value and present
// value discounting. Both are pure formulas shared by the scenario runner
// and the sensitivity grid.
package valuation

import (
	"fmt"
	"math"

	"github.com/investapp/dcf-engine/internal/domain"
)

// TerminalValue capitalizes the final projected cash flow via the Gordon
// growth model: TV = FCF * (1 + g) / (r - g). The r > g precondition is
// checked before dividing; violating it is a domain error, never a
// divide-by-zero or a sign-flipped value.
func TerminalValue(finalFCF, discountRate, terminalGrowth float64) (float64, error) {
	if discountRate <= terminalGrowth {
		return 0, domain.DomainError{
			Reason: fmt.Sprintf("discount rate %.4f must exceed terminal growth rate %.4f for the Gordon growth model",
				discountRate, terminalGrowth),
		}
	}

	terminalFCF := finalFCF * (1.0 + terminalGrowth)
	return terminalFCF / (discountRate - terminalGrowth), nil
}

// DiscountCashFlows discounts each projected cash flow at its 1-indexed year
// and the terminal value at the full horizon. The result has one entry per
// projection year plus a final entry for the discounted terminal value.
func DiscountCashFlows(flows []float64, terminalValue, discountRate float64) []float64 {
	presentValues := make([]float64, 0, len(flows)+1)
	for i, flow := range flows {
		presentValues = append(presentValues, flow/math.Pow(1.0+discountRate, float64(i+1)))
	}
	presentValues = append(presentValues, terminalValue/math.Pow(1.0+discountRate, float64(len(flows))))
	return presentValues
}
