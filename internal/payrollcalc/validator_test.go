package payrollcalc_test

import (
	"testing"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payrollcalc"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validInput() payrollcalc.PayrollInput {
	return payrollcalc.PayrollInput{
		EmployeeID:    "emp-1",
		MonthlySalary: decimal.NewFromInt(800),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
	}
}

func TestValidate_AcceptableInput(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	msgs := payrollcalc.Validate(validInput(), rates)

	assert.Empty(t, msgs)
}

func TestValidate_NegativeValues(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	in := validInput()
	in.MonthlySalary = decimal.NewFromInt(-100)
	in.OvertimeHours = decimal.NewFromInt(-2)
	in.LoanRepayment = decimal.NewFromInt(-10)
	in.SickDays = -1

	msgs := payrollcalc.Validate(in, rates)

	assert.Contains(t, msgs, "monthly salary cannot be negative")
	assert.Contains(t, msgs, "overtime hours cannot be negative")
	assert.Contains(t, msgs, "loan repayment cannot be negative")
	assert.Contains(t, msgs, "sick days cannot be negative")
}

func TestValidate_BelowMinimumWage(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	in := validInput()
	in.MonthlySalary = decimal.NewFromInt(100)

	msgs := payrollcalc.Validate(in, rates)

	assert.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "below the minimum wage")
}

func TestValidate_MinimumWageIsNotFlagged(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	in := validInput()
	in.MonthlySalary = decimal.NewFromInt(115)

	msgs := payrollcalc.Validate(in, rates)

	assert.Empty(t, msgs)
}

func TestValidate_OvertimeOverLegalCap(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	in := validInput()
	in.OvertimeHours = decimal.NewFromInt(80)

	msgs := payrollcalc.Validate(in, rates)

	assert.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "exceed the legal cap")
}

func TestValidate_SickDaysOverAllowance(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	in := validInput()
	in.SickDays = 5
	in.SickDaysYTD = 10

	msgs := payrollcalc.Validate(in, rates)

	assert.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "exceed the paid annual allowance")
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	in := validInput()
	in.OvertimeHours = decimal.NewFromInt(80)
	before := in

	_ = payrollcalc.Validate(in, rates)

	assert.Equal(t, before, in)
}
