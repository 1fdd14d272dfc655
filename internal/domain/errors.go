// Package domain contains the value objects shared by the valuation engine:
// the financial input bundle, scenario assumptions and results, the
// sensitivity grid, the analysis report, and the error taxonomy.
// The domain layer is pure and has no infrastructure dependencies.
package domain

import (
	"fmt"
	"strings"
)

// ValidationError represents a malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// DomainError represents a violation of a financial-model precondition at
// calculation time, as opposed to a malformed input. The only such
// precondition in this engine is the Gordon growth constraint
// (discount rate must exceed terminal growth rate).
type DomainError struct {
	Scenario string // scenario that triggered the violation, if known
	Reason   string
}

func (e DomainError) Error() string {
	if e.Scenario == "" {
		return e.Reason
	}
	return fmt.Sprintf("scenario %q: %s", e.Scenario, e.Reason)
}
