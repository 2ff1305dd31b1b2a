package payrollcalc

import "github.com/shopspring/decimal"

// PeriodThreshold pro-rates the monthly WIT threshold to one pay period.
func PeriodThreshold(periodsPerMonth int, rates RateTable) decimal.Decimal {
	if periodsPerMonth < 1 {
		periodsPerMonth = 1
	}
	return div2(rates.WITMonthlyThreshold, int64(periodsPerMonth))
}

// WithholdingTax computes the wage income tax for one period. Residents are
// taxed above the pro-rated threshold; non-residents are taxed flat from
// the first dollar. Income at or below the threshold yields exactly zero,
// never a rounding artifact.
func WithholdingTax(taxableIncome decimal.Decimal, resident, taxExempt bool, periodsPerMonth int, rates RateTable) decimal.Decimal {
	if taxExempt || taxableIncome.Sign() <= 0 {
		return decimal.Zero
	}

	if !resident {
		return round2(taxableIncome.Mul(rates.WITRate))
	}

	excess := taxableIncome.Sub(PeriodThreshold(periodsPerMonth, rates))
	if excess.Sign() <= 0 {
		return decimal.Zero
	}
	return round2(excess.Mul(rates.WITRate))
}
