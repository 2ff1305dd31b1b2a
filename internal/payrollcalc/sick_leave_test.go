package payrollcalc_test

import (
	"testing"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payrollcalc"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSickPay(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	// monthly salary 800 -> hourly 4.20 -> daily 33.60
	daily := payrollcalc.DailyRate(decimal.NewFromInt(800), rates)
	assert.Equal(t, "33.60", daily.StringFixed(2))

	t.Run("all days inside the full-pay tier", func(t *testing.T) {
		// 2 used + 4 new = 6, all at 100%
		pay := payrollcalc.SickPay(daily, 4, 2, rates)
		assert.Equal(t, "134.40", pay.StringFixed(2))
	})

	t.Run("all days inside the half-pay tier", func(t *testing.T) {
		// 6 used, next 3 days at 50%
		pay := payrollcalc.SickPay(daily, 3, 6, rates)
		assert.Equal(t, "50.40", pay.StringFixed(2))
	})

	t.Run("period straddles the tier boundary", func(t *testing.T) {
		// 4 used, 4 new: 2 at 100% + 2 at 50%
		pay := payrollcalc.SickPay(daily, 4, 4, rates)
		assert.Equal(t, "100.80", pay.StringFixed(2))
	})

	t.Run("days beyond the allowance are unpaid", func(t *testing.T) {
		// 10 used, 5 new: 2 at 50%, 3 unpaid
		pay := payrollcalc.SickPay(daily, 5, 10, rates)
		assert.Equal(t, "33.60", pay.StringFixed(2))
	})

	t.Run("fully exhausted allowance pays nothing", func(t *testing.T) {
		pay := payrollcalc.SickPay(daily, 3, 12, rates)
		assert.True(t, pay.IsZero())
	})

	t.Run("zero days pays nothing", func(t *testing.T) {
		pay := payrollcalc.SickPay(daily, 0, 2, rates)
		assert.True(t, pay.IsZero())
	})
}
