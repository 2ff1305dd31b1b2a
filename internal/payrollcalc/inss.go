package payrollcalc

import "github.com/shopspring/decimal"

// InsuranceBase sums the earning lines whose type is marked base-eligible
// in the rate table. Overtime pay and bonus, among others, never enter the
// mandatory contribution base.
func InsuranceBase(earnings []EarningLine, rates RateTable) decimal.Decimal {
	base := decimal.Zero
	for _, line := range earnings {
		if rates.insuranceBaseEligible(line.Type) {
			base = base.Add(line.Amount)
		}
	}
	return base
}

// InsuranceContributions computes the employee and employer INSS shares
// from the contribution base.
func InsuranceContributions(base decimal.Decimal, rates RateTable) (employee, employer decimal.Decimal) {
	if base.Sign() <= 0 {
		return decimal.Zero, decimal.Zero
	}
	employee = round2(base.Mul(rates.INSSEmployeeRate))
	employer = round2(base.Mul(rates.INSSEmployerRate))
	return employee, employer
}
