package payrollcalc_test

import (
	"testing"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payrollcalc"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func findEarning(t *testing.T, result payrollcalc.PayrollResult, typ payrollcalc.EarningType) payrollcalc.EarningLine {
	t.Helper()
	for _, line := range result.Earnings {
		if line.Type == typ {
			return line
		}
	}
	t.Fatalf("earning line %s not found", typ)
	return payrollcalc.EarningLine{}
}

func assertInvariants(t *testing.T, result payrollcalc.PayrollResult) {
	t.Helper()

	assert.True(t, result.NetPay.LessThanOrEqual(result.GrossPay))
	assert.True(t, result.NetPay.Equal(result.GrossPay.Sub(result.TotalDeductions)))
	assert.True(t, result.TotalEmployerCost.Equal(result.GrossPay.Add(result.EmployerINSS)))

	sum := decimal.Zero
	for _, line := range result.Earnings {
		sum = sum.Add(line.Amount)
	}
	assert.True(t, sum.Equal(result.GrossPay))

	dsum := decimal.Zero
	for _, line := range result.Deductions {
		dsum = dsum.Add(line.Amount)
	}
	assert.True(t, dsum.Equal(result.TotalDeductions))
}

func TestComputePayroll_ResidentMonthly(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	in := payrollcalc.PayrollInput{
		EmployeeID:    "emp-1",
		MonthlySalary: decimal.NewFromInt(800),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
	}

	result := payrollcalc.ComputePayroll(in, rates)

	assert.Equal(t, "800.00", result.GrossPay.StringFixed(2))
	assert.Equal(t, "800.00", result.TaxableIncome.StringFixed(2))
	assert.Equal(t, "30.00", result.WithholdingTax.StringFixed(2))
	assert.Equal(t, "32.00", result.EmployeeINSS.StringFixed(2))
	assert.Equal(t, "48.00", result.EmployerINSS.StringFixed(2))
	assert.Equal(t, "738.00", result.NetPay.StringFixed(2))
	assert.Equal(t, "848.00", result.TotalEmployerCost.StringFixed(2))
	assert.Empty(t, result.Warnings)
	assertInvariants(t, result)
}

func TestComputePayroll_AtThreshold(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	result := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(500),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
	}, rates)

	assert.True(t, result.WithholdingTax.IsZero())
	assertInvariants(t, result)
}

func TestComputePayroll_MinimumWage(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	result := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(115),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
	}, rates)

	assert.True(t, result.WithholdingTax.IsZero())
	assert.Equal(t, "4.60", result.EmployeeINSS.StringFixed(2))
	assert.Empty(t, result.Warnings)
	assertInvariants(t, result)
}

func TestComputePayroll_NonResidentFlatRate(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	result := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(600),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      false,
	}, rates)

	assert.Equal(t, "60.00", result.WithholdingTax.StringFixed(2))
	assertInvariants(t, result)
}

func TestComputePayroll_WeeklyPeriod(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	result := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(800),
		Frequency:     payrollcalc.FrequencyWeekly,
		Resident:      true,
	}, rates)

	// period salary 200, period threshold 125
	assert.Equal(t, "200.00", result.GrossPay.StringFixed(2))
	assert.Equal(t, "7.50", result.WithholdingTax.StringFixed(2))
	assertInvariants(t, result)
}

func TestComputePayroll_ManagerWithOvertime(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	result := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(1500),
		Frequency:     payrollcalc.FrequencyMonthly,
		OvertimeHours: decimal.NewFromInt(20),
		Resident:      true,
	}, rates)

	overtime := findEarning(t, result, payrollcalc.EarningOvertime)
	assert.Equal(t, "236.10", overtime.Amount.StringFixed(2))
	assert.Equal(t, "1736.10", result.GrossPay.StringFixed(2))

	// overtime stays out of the INSS base
	assert.Equal(t, "1500.00", result.InsuranceBase.StringFixed(2))
	assert.Equal(t, "60.00", result.EmployeeINSS.StringFixed(2))
	assertInvariants(t, result)
}

func TestComputePayroll_SickLeaveTiers(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	in := payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(800),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
		SickDays:      4,
		SickDaysYTD:   2,
	}

	result := payrollcalc.ComputePayroll(in, rates)

	sick := findEarning(t, result, payrollcalc.EarningSick)
	assert.Equal(t, "134.40", sick.Amount.StringFixed(2))
	assert.Equal(t, 6, result.UpdatedYTD.SickDaysUsed)
	assert.Empty(t, result.Warnings)
	assertInvariants(t, result)
}

func TestComputePayroll_SickLeaveHalfPayTier(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	// full-pay tier already exhausted: 3 new days land entirely at 50%
	result := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(800),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
		SickDays:      3,
		SickDaysYTD:   6,
	}, rates)

	// daily 33.60 x 3 x 0.5
	sick := findEarning(t, result, payrollcalc.EarningSick)
	assert.Equal(t, "50.40", sick.Amount.StringFixed(2))
	assert.Equal(t, 9, result.UpdatedYTD.SickDaysUsed)
	assert.Empty(t, result.Warnings)
	assertInvariants(t, result)
}

func TestComputePayroll_SickDaysBeyondAllowance(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	result := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(800),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
		SickDays:      5,
		SickDaysYTD:   10,
	}, rates)

	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "paid annual allowance")
	assertInvariants(t, result)
}

func TestComputePayroll_SubsidioAnualLine(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	result := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(800),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
		SubsidioAnual: decimal.NewFromInt(400),
	}, rates)

	subsidio := findEarning(t, result, payrollcalc.EarningSubsidioAnual)
	assert.Equal(t, "400.00", subsidio.Amount.StringFixed(2))
	assert.Equal(t, "1200.00", result.GrossPay.StringFixed(2))
	assertInvariants(t, result)
}

func TestComputePayroll_VoluntaryDeductionCap(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	result := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(800),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
		LoanRepayment: decimal.NewFromInt(500),
		CourtOrdered:  decimal.NewFromInt(200),
	}, rates)

	voluntary := decimal.Zero
	for _, line := range result.Deductions {
		if !line.Statutory {
			voluntary = voluntary.Add(line.Amount)
		}
	}

	// reduced to exactly 30% of gross
	assert.Equal(t, "240.00", voluntary.StringFixed(2))
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "cap")
	assertInvariants(t, result)
}

func TestComputePayroll_AbsenceReducesBasePay(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	result := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(800),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
		AbsenceHours:  decimal.NewFromInt(8),
	}, rates)

	// hourly 4.20 x 8 = 33.60 off the base line
	base := findEarning(t, result, payrollcalc.EarningBase)
	assert.Equal(t, "766.40", base.Amount.StringFixed(2))
	assertInvariants(t, result)
}

func TestComputePayroll_YTDAccumulation(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	first := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(800),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
	}, rates)

	second := payrollcalc.ComputePayroll(payrollcalc.PayrollInput{
		MonthlySalary: decimal.NewFromInt(800),
		Frequency:     payrollcalc.FrequencyMonthly,
		Resident:      true,
		PriorYTD:      first.UpdatedYTD,
	}, rates)

	assert.True(t, second.UpdatedYTD.GrossPay.Equal(first.GrossPay.Add(second.GrossPay)))
	assert.True(t, second.UpdatedYTD.TaxWithheld.Equal(first.WithholdingTax.Add(second.WithholdingTax)))
	assert.True(t, second.UpdatedYTD.EmployeeINSS.Equal(first.EmployeeINSS.Add(second.EmployeeINSS)))
}

func TestComputePayroll_BatchTotalsEqualSumOfResults(t *testing.T) {
	rates := payrollcalc.DefaultRates()

	inputs := []payrollcalc.PayrollInput{
		{MonthlySalary: decimal.NewFromInt(800), Frequency: payrollcalc.FrequencyMonthly, Resident: true},
		{MonthlySalary: decimal.NewFromInt(1500), Frequency: payrollcalc.FrequencyMonthly, OvertimeHours: decimal.NewFromInt(20), Resident: true},
		{MonthlySalary: decimal.NewFromInt(600), Frequency: payrollcalc.FrequencyMonthly, Resident: false},
	}

	totalGross := decimal.Zero
	totalNet := decimal.Zero
	for _, in := range inputs {
		result := payrollcalc.ComputePayroll(in, rates)
		assertInvariants(t, result)
		totalGross = totalGross.Add(result.GrossPay)
		totalNet = totalNet.Add(result.NetPay)
	}

	// 800 + 1736.10 + 600
	assert.Equal(t, "3136.10", totalGross.StringFixed(2))
	assert.True(t, totalNet.LessThan(totalGross))
}
