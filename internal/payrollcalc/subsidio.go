package payrollcalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputeSubsidioAnual pro-rates the annual 13th-month bonus by months
// worked in the year. asOf is explicit so callers can compute entitlements
// for past cut-off dates; an employee hired after asOf is not yet entitled.
func ComputeSubsidioAnual(monthlySalary decimal.Decimal, monthsWorked int, hireDate, asOf time.Time) decimal.Decimal {
	if hireDate.After(asOf) {
		return decimal.Zero
	}
	if monthsWorked <= 0 {
		return decimal.Zero
	}
	if monthsWorked > 12 {
		monthsWorked = 12
	}
	return div2(monthlySalary.Mul(decimal.NewFromInt(int64(monthsWorked))), 12)
}
