package payrollcalc_test

import (
	"testing"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payrollcalc"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWithholdingTax_Resident(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	t.Run("above threshold", func(t *testing.T) {
		tax := payrollcalc.WithholdingTax(decimal.NewFromInt(800), true, false, 1, rates)
		// 10% of the 300 above the 500 threshold
		assert.Equal(t, "30.00", tax.StringFixed(2))
	})

	t.Run("exactly at threshold is zero, not a rounding artifact", func(t *testing.T) {
		tax := payrollcalc.WithholdingTax(decimal.NewFromInt(500), true, false, 1, rates)
		assert.True(t, tax.IsZero())
	})

	t.Run("minimum wage earner pays nothing", func(t *testing.T) {
		tax := payrollcalc.WithholdingTax(decimal.NewFromInt(115), true, false, 1, rates)
		assert.True(t, tax.IsZero())
	})
}

func TestWithholdingTax_NonResident(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	t.Run("flat rate from the first dollar", func(t *testing.T) {
		tax := payrollcalc.WithholdingTax(decimal.NewFromInt(600), false, false, 1, rates)
		assert.Equal(t, "60.00", tax.StringFixed(2))
	})

	t.Run("no threshold even below it", func(t *testing.T) {
		tax := payrollcalc.WithholdingTax(decimal.NewFromInt(200), false, false, 1, rates)
		assert.Equal(t, "20.00", tax.StringFixed(2))
	})
}

func TestWithholdingTax_ProRatedThreshold(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	// weekly pay: 4 periods/month, period threshold 125, period salary 200
	assert.Equal(t, "125.00", payrollcalc.PeriodThreshold(4, rates).StringFixed(2))

	tax := payrollcalc.WithholdingTax(decimal.NewFromInt(200), true, false, 4, rates)
	assert.Equal(t, "7.50", tax.StringFixed(2))
}

func TestWithholdingTax_Exempt(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	tax := payrollcalc.WithholdingTax(decimal.NewFromInt(2000), true, true, 1, rates)
	assert.True(t, tax.IsZero())
}
