package payrollcalc

import "github.com/shopspring/decimal"

// HourlyRate derives the employee's hourly rate from the monthly salary and
// the standard monthly working hours.
func HourlyRate(monthlySalary decimal.Decimal, rates RateTable) decimal.Decimal {
	hours := rates.StandardMonthlyHours()
	if hours.Sign() <= 0 {
		return decimal.Zero
	}
	return round2(monthlySalary.Div(hours))
}

// DailyRate is the hourly rate scaled to one standard work day.
func DailyRate(monthlySalary decimal.Decimal, rates RateTable) decimal.Decimal {
	return round2(HourlyRate(monthlySalary, rates).Mul(rates.HoursPerWorkDay))
}

func premiumPay(hourlyRate, multiplier, hours decimal.Decimal) decimal.Decimal {
	if hours.Sign() <= 0 {
		return decimal.Zero
	}
	return round2(hourlyRate.Mul(multiplier).Mul(hours))
}

// OvertimePay computes the overtime earning for the period. No cap is
// applied here; the legal ceiling is the validator's concern.
func OvertimePay(hourlyRate, hours decimal.Decimal, rates RateTable) decimal.Decimal {
	return premiumPay(hourlyRate, rates.OvertimeMultiplier, hours)
}

func NightShiftPay(hourlyRate, hours decimal.Decimal, rates RateTable) decimal.Decimal {
	return premiumPay(hourlyRate, rates.NightShiftMultiplier, hours)
}

func HolidayPay(hourlyRate, hours decimal.Decimal, rates RateTable) decimal.Decimal {
	return premiumPay(hourlyRate, rates.HolidayMultiplier, hours)
}

func RestDayPay(hourlyRate, hours decimal.Decimal, rates RateTable) decimal.Decimal {
	return premiumPay(hourlyRate, rates.RestDayMultiplier, hours)
}
