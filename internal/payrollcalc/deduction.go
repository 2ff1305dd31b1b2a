package payrollcalc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	DeductionWIT              = "withholding_tax"
	DeductionEmployeeINSS     = "employee_inss"
	DeductionLoanRepayment    = "loan_repayment"
	DeductionAdvanceRepayment = "advance_repayment"
	DeductionCourtOrdered     = "court_ordered"
	DeductionOther            = "other"
)

// AggregateDeductions combines the statutory lines (always in full) with
// the voluntary lines, capping the voluntary total at the configured
// fraction of gross pay. When the cap binds every voluntary line is scaled
// proportionally, the last line absorbing the rounding remainder so the
// voluntary total equals the cap exactly, and a warning is emitted.
func AggregateDeductions(
	grossPay, withholdingTax, employeeINSS decimal.Decimal,
	voluntary []DeductionLine,
	rates RateTable,
) ([]DeductionLine, decimal.Decimal, []string) {
	lines := make([]DeductionLine, 0, len(voluntary)+2)
	var warnings []string

	if withholdingTax.Sign() > 0 {
		lines = append(lines, DeductionLine{Name: DeductionWIT, Amount: withholdingTax, Statutory: true})
	}
	if employeeINSS.Sign() > 0 {
		lines = append(lines, DeductionLine{Name: DeductionEmployeeINSS, Amount: employeeINSS, Statutory: true})
	}

	kept := make([]DeductionLine, 0, len(voluntary))
	voluntaryTotal := decimal.Zero
	for _, line := range voluntary {
		if line.Amount.Sign() <= 0 {
			continue
		}
		line.Statutory = false
		kept = append(kept, line)
		voluntaryTotal = voluntaryTotal.Add(line.Amount)
	}

	cap := round2(grossPay.Mul(rates.VoluntaryDeductionCapFraction))
	if cap.Sign() < 0 {
		cap = decimal.Zero
	}

	if voluntaryTotal.GreaterThan(cap) {
		scaled := decimal.Zero
		for i := range kept {
			var amount decimal.Decimal
			if i == len(kept)-1 {
				amount = cap.Sub(scaled)
			} else {
				amount = round2(kept[i].Amount.Mul(cap).Div(voluntaryTotal))
				// rounding up a small share must not eat into the cap
				// left for the remaining lines
				if remaining := cap.Sub(scaled); amount.GreaterThan(remaining) {
					amount = remaining
				}
			}
			kept[i].Amount = amount
			scaled = scaled.Add(amount)
		}

		nonZero := kept[:0]
		for _, line := range kept {
			if line.Amount.Sign() > 0 {
				nonZero = append(nonZero, line)
			}
		}
		kept = nonZero

		warnings = append(warnings, fmt.Sprintf(
			"voluntary deductions %s exceed the cap of %s%% of gross pay; reduced to %s",
			voluntaryTotal.StringFixed(2),
			rates.VoluntaryDeductionCapFraction.Mul(decimal.NewFromInt(100)).String(),
			cap.StringFixed(2),
		))
		voluntaryTotal = cap
	}

	lines = append(lines, kept...)

	total := withholdingTax.Add(employeeINSS).Add(voluntaryTotal)
	return lines, total, warnings
}
