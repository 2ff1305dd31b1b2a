package payrollcalc_test

import (
	"testing"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payrollcalc"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStandardMonthlyHours(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	// 44 hours/week x 52 weeks / 12 months
	assert.Equal(t, "190.67", rates.StandardMonthlyHours().StringFixed(2))
}

func TestSickDayAllowance(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	assert.Equal(t, 12, rates.SickDayAllowance())
}

func TestSelectOptionalInsuranceBand(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	cases := []struct {
		name   string
		income int64
		want   string
	}{
		{"zero income maps to zero", 0, "0.00"},
		{"exact band is kept", 120, "120.00"},
		{"rounds up to next band", 121, "150.00"},
		{"gap above 6000 jumps to top band", 6001, "12000.00"},
		{"above top band is capped", 25000, "12000.00"},
		{"small income maps to first band", 1, "30.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			band := rates.SelectOptionalInsuranceBand(decimal.NewFromInt(tc.income))
			assert.Equal(t, tc.want, band.StringFixed(2))
		})
	}
}

func TestSelectOptionalInsuranceBand_NegativeIncome(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	band := rates.SelectOptionalInsuranceBand(decimal.NewFromInt(-50))
	assert.True(t, band.IsZero())
}
