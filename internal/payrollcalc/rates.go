package payrollcalc

import "github.com/shopspring/decimal"

// SickTier is one band of the annual paid sick-leave allowance.
type SickTier struct {
	Days        int
	PayFraction decimal.Decimal
}

// RateTable holds the jurisdiction constants the engine computes against.
// Calculation logic never hardcodes a rate; when the law changes this table
// is the only thing that moves.
type RateTable struct {
	MinimumWage decimal.Decimal

	// Wage income tax. Residents pay Rate on income above the monthly
	// threshold (pro-rated per period); non-residents pay Rate flat.
	WITMonthlyThreshold decimal.Decimal
	WITRate             decimal.Decimal

	INSSEmployeeRate decimal.Decimal
	INSSEmployerRate decimal.Decimal

	OvertimeMultiplier   decimal.Decimal
	NightShiftMultiplier decimal.Decimal
	HolidayMultiplier    decimal.Decimal
	RestDayMultiplier    decimal.Decimal

	SickTiers []SickTier

	StandardWeeklyHours    decimal.Decimal
	HoursPerWorkDay        decimal.Decimal
	OvertimeWeeklyCapHours decimal.Decimal

	VoluntaryDeductionCapFraction decimal.Decimal

	// OptionalBands is the contribution-base table for voluntary
	// (non-payroll) INSS enrollees, ascending.
	OptionalBands []decimal.Decimal

	// INSSBaseEligible marks which earning types build the mandatory
	// contribution base. Types absent from the map are excluded.
	INSSBaseEligible map[EarningType]bool
}

// DefaultRates returns the current Timor-Leste regime.
func DefaultRates() RateTable {
	return RateTable{
		MinimumWage: decimal.NewFromInt(115),

		WITMonthlyThreshold: decimal.NewFromInt(500),
		WITRate:             decimal.NewFromFloat(0.10),

		INSSEmployeeRate: decimal.NewFromFloat(0.04),
		INSSEmployerRate: decimal.NewFromFloat(0.06),

		OvertimeMultiplier:   decimal.NewFromFloat(1.5),
		NightShiftMultiplier: decimal.NewFromFloat(1.25),
		HolidayMultiplier:    decimal.NewFromFloat(2.0),
		RestDayMultiplier:    decimal.NewFromFloat(2.0),

		SickTiers: []SickTier{
			{Days: 6, PayFraction: decimal.NewFromInt(1)},
			{Days: 6, PayFraction: decimal.NewFromFloat(0.5)},
		},

		StandardWeeklyHours:    decimal.NewFromInt(44),
		HoursPerWorkDay:        decimal.NewFromInt(8),
		OvertimeWeeklyCapHours: decimal.NewFromInt(16),

		VoluntaryDeductionCapFraction: decimal.NewFromFloat(0.30),

		OptionalBands: []decimal.Decimal{
			decimal.NewFromInt(30),
			decimal.NewFromInt(60),
			decimal.NewFromInt(90),
			decimal.NewFromInt(120),
			decimal.NewFromInt(150),
			decimal.NewFromInt(180),
			decimal.NewFromInt(240),
			decimal.NewFromInt(300),
			decimal.NewFromInt(360),
			decimal.NewFromInt(420),
			decimal.NewFromInt(480),
			decimal.NewFromInt(600),
			decimal.NewFromInt(900),
			decimal.NewFromInt(1200),
			decimal.NewFromInt(1800),
			decimal.NewFromInt(2400),
			decimal.NewFromInt(3600),
			decimal.NewFromInt(6000),
			decimal.NewFromInt(12000),
		},

		INSSBaseEligible: map[EarningType]bool{
			EarningBase:          true,
			EarningNightShift:    true,
			EarningHoliday:       true,
			EarningRestDay:       true,
			EarningSick:          true,
			EarningCommission:    true,
			EarningOther:         true,
			EarningSubsidioAnual: true,
			// overtime, bonus, per-diem and allowances stay out of the base
		},
	}
}

// StandardMonthlyHours derives the divisor for the hourly rate from the
// standard work week: weekly hours x 52 weeks / 12 months.
func (r RateTable) StandardMonthlyHours() decimal.Decimal {
	return div2(r.StandardWeeklyHours.Mul(decimal.NewFromInt(52)), 12)
}

// SickDayAllowance is the total number of annually paid sick days.
func (r RateTable) SickDayAllowance() int {
	total := 0
	for _, tier := range r.SickTiers {
		total += tier.Days
	}
	return total
}

// MonthlyOvertimeCap is the advisory legal overtime ceiling for one month,
// derived from the weekly cap over an average 52/12-week month.
func (r RateTable) MonthlyOvertimeCap() decimal.Decimal {
	return round2(r.OvertimeWeeklyCapHours.Mul(decimal.NewFromInt(52)).Div(decimal.NewFromInt(12)))
}

// SelectOptionalInsuranceBand maps a monthly income figure to the smallest
// listed band that covers it. Income above the top band is capped at the
// top band; zero or negative income maps to zero.
func (r RateTable) SelectOptionalInsuranceBand(income decimal.Decimal) decimal.Decimal {
	if income.Sign() <= 0 || len(r.OptionalBands) == 0 {
		return decimal.Zero
	}
	for _, band := range r.OptionalBands {
		if band.GreaterThanOrEqual(income) {
			return band
		}
	}
	return r.OptionalBands[len(r.OptionalBands)-1]
}

func (r RateTable) insuranceBaseEligible(t EarningType) bool {
	return r.INSSBaseEligible[t]
}
