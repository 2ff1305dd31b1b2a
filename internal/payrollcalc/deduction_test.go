package payrollcalc_test

import (
	"testing"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payrollcalc"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAggregateDeductions_StatutoryAlwaysFull(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	lines, total, warnings := payrollcalc.AggregateDeductions(
		decimal.NewFromInt(800),
		decimal.NewFromInt(30),
		decimal.NewFromInt(32),
		nil,
		rates,
	)

	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, line.Statutory)
	}
	assert.Equal(t, "62.00", total.StringFixed(2))
	assert.Empty(t, warnings)
}

func TestAggregateDeductions_VoluntaryUnderCap(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	voluntary := []payrollcalc.DeductionLine{
		{Name: payrollcalc.DeductionLoanRepayment, Amount: decimal.NewFromInt(50)},
		{Name: payrollcalc.DeductionCourtOrdered, Amount: decimal.NewFromInt(25)},
	}

	lines, total, warnings := payrollcalc.AggregateDeductions(
		decimal.NewFromInt(800), decimal.NewFromInt(30), decimal.NewFromInt(32), voluntary, rates,
	)

	assert.Len(t, lines, 4)
	assert.Equal(t, "137.00", total.StringFixed(2))
	assert.Empty(t, warnings)
}

func TestAggregateDeductions_CapBinds(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	// cap = 30% of 800 = 240; requested 400
	voluntary := []payrollcalc.DeductionLine{
		{Name: payrollcalc.DeductionLoanRepayment, Amount: decimal.NewFromInt(300)},
		{Name: payrollcalc.DeductionAdvanceRepayment, Amount: decimal.NewFromInt(100)},
	}

	lines, total, warnings := payrollcalc.AggregateDeductions(
		decimal.NewFromInt(800), decimal.NewFromInt(30), decimal.NewFromInt(32), voluntary, rates,
	)

	voluntaryTotal := decimal.Zero
	for _, line := range lines {
		if !line.Statutory {
			voluntaryTotal = voluntaryTotal.Add(line.Amount)
		}
	}
	assert.Equal(t, "240.00", voluntaryTotal.StringFixed(2))
	assert.Equal(t, "302.00", total.StringFixed(2))

	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "30%")

	// proportional split: 300/400 and 100/400 of the cap
	assert.Equal(t, "180.00", lines[2].Amount.StringFixed(2))
	assert.Equal(t, "60.00", lines[3].Amount.StringFixed(2))
}

func TestAggregateDeductions_TinyCapNeverGoesNegative(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	// cap = 30% of 0.05 = 0.02; the rounded shares of the first lines
	// already fill it, so later lines must clamp to zero, never below
	voluntary := []payrollcalc.DeductionLine{
		{Name: payrollcalc.DeductionLoanRepayment, Amount: decimal.NewFromFloat(1.00)},
		{Name: payrollcalc.DeductionAdvanceRepayment, Amount: decimal.NewFromFloat(1.00)},
		{Name: payrollcalc.DeductionCourtOrdered, Amount: decimal.NewFromFloat(1.00)},
		{Name: payrollcalc.DeductionOther, Amount: decimal.NewFromFloat(0.01)},
	}

	lines, total, warnings := payrollcalc.AggregateDeductions(
		decimal.NewFromFloat(0.05), decimal.Zero, decimal.Zero, voluntary, rates,
	)

	voluntaryTotal := decimal.Zero
	for _, line := range lines {
		assert.True(t, line.Amount.Sign() > 0, "deduction line %s = %s", line.Name, line.Amount)
		voluntaryTotal = voluntaryTotal.Add(line.Amount)
	}

	assert.Equal(t, "0.02", voluntaryTotal.StringFixed(2))
	assert.Equal(t, "0.02", total.StringFixed(2))
	assert.Len(t, warnings, 1)
}

func TestAggregateDeductions_ZeroLinesDropped(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	voluntary := []payrollcalc.DeductionLine{
		{Name: payrollcalc.DeductionLoanRepayment, Amount: decimal.Zero},
		{Name: payrollcalc.DeductionOther, Amount: decimal.NewFromInt(10)},
	}

	lines, total, warnings := payrollcalc.AggregateDeductions(
		decimal.NewFromInt(500), decimal.Zero, decimal.NewFromInt(20), voluntary, rates,
	)

	assert.Len(t, lines, 2) // employee INSS + the one non-zero voluntary line
	assert.Equal(t, "30.00", total.StringFixed(2))
	assert.Empty(t, warnings)
}
