package payrollcalc

import "github.com/shopspring/decimal"

// round2 applies the single rounding rule used everywhere in the engine:
// half-up to two decimal places, after every multiply or divide that
// produces a currency amount. Amounts here are never negative, so
// decimal.Round (half away from zero) behaves as half-up.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func div2(a decimal.Decimal, b int64) decimal.Decimal {
	return round2(a.Div(decimal.NewFromInt(b)))
}
