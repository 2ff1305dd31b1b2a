package payrollcalc

import "github.com/shopspring/decimal"

// ComputePayroll runs the full payroll computation for one employee and one
// pay period. It is a total function: it never fails, holds no state, and
// reports every policy concern through the result's warning list. Callers
// are expected to run Validate first; degenerate inputs (negative amounts)
// are computed at face value.
func ComputePayroll(in PayrollInput, rates RateTable) PayrollResult {
	periods := in.periodsPerMonth()
	hourlyRate := HourlyRate(in.MonthlySalary, rates)
	dailyRate := round2(hourlyRate.Mul(rates.HoursPerWorkDay))

	var warnings []string

	// Base pay for the period, reduced by absence and late arrival at the
	// plain hourly rate.
	basePay := div2(in.MonthlySalary, int64(periods))
	if in.AbsenceHours.Sign() > 0 {
		basePay = basePay.Sub(round2(hourlyRate.Mul(in.AbsenceHours)))
	}
	if in.LateArrivalMinutes.Sign() > 0 {
		basePay = basePay.Sub(round2(hourlyRate.Mul(in.LateArrivalMinutes).Div(decimal.NewFromInt(60))))
	}
	if basePay.Sign() < 0 {
		basePay = decimal.Zero
	}

	earnings := []EarningLine{{Type: EarningBase, Amount: basePay}}

	appendEarning := func(t EarningType, amount decimal.Decimal) {
		if amount.Sign() > 0 {
			earnings = append(earnings, EarningLine{Type: t, Amount: amount})
		}
	}

	appendEarning(EarningOvertime, OvertimePay(hourlyRate, in.OvertimeHours, rates))
	appendEarning(EarningNightShift, NightShiftPay(hourlyRate, in.NightShiftHours, rates))
	appendEarning(EarningHoliday, HolidayPay(hourlyRate, in.HolidayHours, rates))
	appendEarning(EarningRestDay, RestDayPay(hourlyRate, in.RestDayHours, rates))

	appendEarning(EarningSick, SickPay(dailyRate, in.SickDays, in.SickDaysYTD, rates))
	if unpaid := unpaidSickDays(in.SickDays, in.SickDaysYTD, rates); unpaid > 0 {
		warnings = append(warnings, sickAllowanceWarning(in.SickDays+in.SickDaysYTD, rates))
	}

	appendEarning(EarningBonus, in.Bonus)
	appendEarning(EarningCommission, in.Commission)
	appendEarning(EarningPerDiem, in.PerDiem)
	appendEarning(EarningFoodAllowance, in.FoodAllowance)
	appendEarning(EarningTransportAllowance, in.TransportAllowance)
	appendEarning(EarningOther, in.OtherEarnings)
	appendEarning(EarningSubsidioAnual, in.SubsidioAnual)

	grossPay := decimal.Zero
	for _, line := range earnings {
		grossPay = grossPay.Add(line.Amount)
	}

	if in.MonthlySalary.Sign() >= 0 && in.MonthlySalary.LessThan(rates.MinimumWage) {
		warnings = append(warnings, belowMinimumWageWarning(in.MonthlySalary, rates))
	}

	taxableIncome := grossPay
	withholdingTax := WithholdingTax(taxableIncome, in.Resident, in.TaxExempt, periods, rates)

	insuranceBase := InsuranceBase(earnings, rates)
	employeeINSS, employerINSS := InsuranceContributions(insuranceBase, rates)

	voluntary := []DeductionLine{
		{Name: DeductionLoanRepayment, Amount: in.LoanRepayment},
		{Name: DeductionAdvanceRepayment, Amount: in.AdvanceRepayment},
		{Name: DeductionCourtOrdered, Amount: in.CourtOrdered},
		{Name: DeductionOther, Amount: in.OtherDeductions},
	}
	deductions, totalDeductions, capWarnings := AggregateDeductions(grossPay, withholdingTax, employeeINSS, voluntary, rates)
	warnings = append(warnings, capWarnings...)

	netPay := grossPay.Sub(totalDeductions)
	employerCost := grossPay.Add(employerINSS)

	return PayrollResult{
		GrossPay:       grossPay,
		TaxableIncome:  taxableIncome,
		WithholdingTax: withholdingTax,

		InsuranceBase: insuranceBase,
		EmployeeINSS:  employeeINSS,
		EmployerINSS:  employerINSS,

		Earnings:   earnings,
		Deductions: deductions,

		TotalDeductions:   totalDeductions,
		NetPay:            netPay,
		TotalEmployerCost: employerCost,

		UpdatedYTD: YTDSnapshot{
			GrossPay:     in.PriorYTD.GrossPay.Add(grossPay),
			TaxWithheld:  in.PriorYTD.TaxWithheld.Add(withholdingTax),
			EmployeeINSS: in.PriorYTD.EmployeeINSS.Add(employeeINSS),
			SickDaysUsed: in.SickDaysYTD + in.SickDays,
		},
		Warnings: warnings,
	}
}
