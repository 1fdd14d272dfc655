package valuation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investapp/dcf-engine/internal/domain"
)

func TestTerminalValue(t *testing.T) {
	// 1000 * 1.025 / (0.10 - 0.025)
	tv, err := TerminalValue(1000, 0.10, 0.025)
	require.NoError(t, err)
	assert.InDelta(t, 13666.67, tv, 0.01)
}

func TestTerminalValue_PositiveWhenFCFPositive(t *testing.T) {
	tv, err := TerminalValue(500, 0.08, 0.02)
	require.NoError(t, err)
	assert.Greater(t, tv, 0.0)
}

func TestTerminalValue_GrowthExceedsDiscount(t *testing.T) {
	_, err := TerminalValue(1000, 0.08, 0.10)
	require.Error(t, err)

	var domainErr domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Contains(t, domainErr.Reason, "must exceed")
}

func TestTerminalValue_GrowthEqualsDiscount(t *testing.T) {
	// Equality would divide by zero; it must fail the same way.
	_, err := TerminalValue(1000, 0.10, 0.10)
	require.Error(t, err)

	var domainErr domain.DomainError
	assert.True(t, errors.As(err, &domainErr))
}

func TestDiscountCashFlows(t *testing.T) {
	pvs := DiscountCashFlows([]float64{100, 200}, 1000, 0.10)

	require.Len(t, pvs, 3)
	assert.InDelta(t, 90.909091, pvs[0], 1e-6)
	assert.InDelta(t, 165.289256, pvs[1], 1e-6)
	// Terminal value discounted over the full 2-year horizon
	assert.InDelta(t, 826.446281, pvs[2], 1e-6)
}
