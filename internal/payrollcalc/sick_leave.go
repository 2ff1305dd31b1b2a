package payrollcalc

import "github.com/shopspring/decimal"

// SickPay computes pay for the sick days consumed this period against the
// tiered annual allowance. daysUsedYTD is the cumulative count before this
// period; when a period's days straddle a tier boundary the pay is split
// across the tiers. Days beyond the allowance are unpaid.
func SickPay(dailyRate decimal.Decimal, daysThisPeriod, daysUsedYTD int, rates RateTable) decimal.Decimal {
	if daysThisPeriod <= 0 || dailyRate.Sign() <= 0 {
		return decimal.Zero
	}

	pay := decimal.Zero
	remaining := daysThisPeriod
	tierStart := 0

	for _, tier := range rates.SickTiers {
		tierEnd := tierStart + tier.Days

		// days of this period that land inside [tierStart, tierEnd)
		from := daysUsedYTD
		if from < tierStart {
			from = tierStart
		}
		to := daysUsedYTD + daysThisPeriod
		if to > tierEnd {
			to = tierEnd
		}
		if to > from {
			days := to - from
			pay = pay.Add(round2(dailyRate.Mul(tier.PayFraction).Mul(decimal.NewFromInt(int64(days)))))
			remaining -= days
		}

		tierStart = tierEnd
		if remaining <= 0 {
			break
		}
	}

	return pay
}

// unpaidSickDays reports how many of this period's sick days fall beyond
// the annual allowance.
func unpaidSickDays(daysThisPeriod, daysUsedYTD int, rates RateTable) int {
	if daysThisPeriod <= 0 {
		return 0
	}
	over := daysUsedYTD + daysThisPeriod - rates.SickDayAllowance()
	if over <= 0 {
		return 0
	}
	if over > daysThisPeriod {
		return daysThisPeriod
	}
	return over
}
