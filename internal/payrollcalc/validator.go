package payrollcalc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Validate checks a payroll input before computation and returns an ordered
// list of human-readable messages. An empty list means the input is
// acceptable. Messages about illegal values (negative amounts) should block
// the run; the remaining messages are advisory and the orchestrator will
// still produce a result for them. Validate never mutates the input.
func Validate(in PayrollInput, rates RateTable) []string {
	var msgs []string

	if in.MonthlySalary.Sign() < 0 {
		msgs = append(msgs, "monthly salary cannot be negative")
	}

	hourFields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"regular hours", in.RegularHours},
		{"overtime hours", in.OvertimeHours},
		{"night shift hours", in.NightShiftHours},
		{"holiday hours", in.HolidayHours},
		{"rest day hours", in.RestDayHours},
		{"absence hours", in.AbsenceHours},
		{"late arrival minutes", in.LateArrivalMinutes},
	}
	for _, f := range hourFields {
		if f.value.Sign() < 0 {
			msgs = append(msgs, fmt.Sprintf("%s cannot be negative", f.name))
		}
	}

	if in.SickDays < 0 {
		msgs = append(msgs, "sick days cannot be negative")
	}
	if in.SickDaysYTD < 0 {
		msgs = append(msgs, "year-to-date sick days cannot be negative")
	}

	volFields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"loan repayment", in.LoanRepayment},
		{"advance repayment", in.AdvanceRepayment},
		{"court-ordered deduction", in.CourtOrdered},
		{"other deductions", in.OtherDeductions},
	}
	for _, f := range volFields {
		if f.value.Sign() < 0 {
			msgs = append(msgs, fmt.Sprintf("%s cannot be negative", f.name))
		}
	}

	if in.PeriodsPerMonth < 0 {
		msgs = append(msgs, "periods per month cannot be negative")
	}

	if in.MonthlySalary.Sign() >= 0 && in.MonthlySalary.LessThan(rates.MinimumWage) {
		msgs = append(msgs, belowMinimumWageWarning(in.MonthlySalary, rates))
	}

	if in.OvertimeHours.Sign() > 0 {
		capHours := div2(rates.MonthlyOvertimeCap(), int64(in.periodsPerMonth()))
		if in.OvertimeHours.GreaterThan(capHours) {
			msgs = append(msgs, fmt.Sprintf(
				"overtime hours %s exceed the legal cap of %s for this period",
				in.OvertimeHours.StringFixed(2), capHours.StringFixed(2),
			))
		}
	}

	if in.SickDays > 0 || in.SickDaysYTD > 0 {
		if in.SickDays+in.SickDaysYTD > rates.SickDayAllowance() {
			msgs = append(msgs, sickAllowanceWarning(in.SickDays+in.SickDaysYTD, rates))
		}
	}

	return msgs
}

func belowMinimumWageWarning(salary decimal.Decimal, rates RateTable) string {
	return fmt.Sprintf(
		"monthly salary %s is below the minimum wage of %s",
		salary.StringFixed(2), rates.MinimumWage.StringFixed(2),
	)
}

func sickAllowanceWarning(totalDays int, rates RateTable) string {
	return fmt.Sprintf(
		"sick days used this year (%d) exceed the paid annual allowance of %d days",
		totalDays, rates.SickDayAllowance(),
	)
}
