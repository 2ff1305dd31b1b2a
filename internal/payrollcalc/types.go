package payrollcalc

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayFrequency string

const (
	FrequencyMonthly  PayFrequency = "MONTHLY"
	FrequencyBiweekly PayFrequency = "BIWEEKLY"
	FrequencyWeekly   PayFrequency = "WEEKLY"
)

// PeriodsPerMonth returns how many pay periods of this frequency compose
// one month. Monthly-denominated figures (salary, tax threshold) are
// divided by this count.
func (f PayFrequency) PeriodsPerMonth() int {
	switch f {
	case FrequencyWeekly:
		return 4
	case FrequencyBiweekly:
		return 2
	default:
		return 1
	}
}

type EarningType string

const (
	EarningBase               EarningType = "BASE"
	EarningOvertime           EarningType = "OVERTIME"
	EarningNightShift         EarningType = "NIGHT_SHIFT"
	EarningHoliday            EarningType = "HOLIDAY"
	EarningRestDay            EarningType = "REST_DAY"
	EarningSick               EarningType = "SICK_LEAVE"
	EarningBonus              EarningType = "BONUS"
	EarningCommission         EarningType = "COMMISSION"
	EarningPerDiem            EarningType = "PER_DIEM"
	EarningFoodAllowance      EarningType = "FOOD_ALLOWANCE"
	EarningTransportAllowance EarningType = "TRANSPORT_ALLOWANCE"
	EarningOther              EarningType = "OTHER"
	EarningSubsidioAnual      EarningType = "SUBSIDIO_ANUAL"
)

type EarningLine struct {
	Type   EarningType     `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

type DeductionLine struct {
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Statutory bool            `json:"statutory"`
}

// YTDSnapshot is the only state that crosses pay periods. The engine never
// stores it; the caller feeds the prior snapshot in and persists the
// updated one returned on the result.
type YTDSnapshot struct {
	GrossPay     decimal.Decimal `json:"gross_pay"`
	TaxWithheld  decimal.Decimal `json:"tax_withheld"`
	EmployeeINSS decimal.Decimal `json:"employee_inss"`
	SickDaysUsed int             `json:"sick_days_used"`
}

// PayrollInput is one employee's data for one pay period.
type PayrollInput struct {
	EmployeeID      string
	MonthlySalary   decimal.Decimal
	Frequency       PayFrequency
	PeriodsPerMonth int // 0 means derive from Frequency

	RegularHours       decimal.Decimal
	OvertimeHours      decimal.Decimal
	NightShiftHours    decimal.Decimal
	HolidayHours       decimal.Decimal
	RestDayHours       decimal.Decimal
	AbsenceHours       decimal.Decimal
	LateArrivalMinutes decimal.Decimal

	SickDays    int // consumed this period
	SickDaysYTD int // consumed earlier this year, before this period

	Bonus              decimal.Decimal
	Commission         decimal.Decimal
	PerDiem            decimal.Decimal
	FoodAllowance      decimal.Decimal
	TransportAllowance decimal.Decimal
	OtherEarnings      decimal.Decimal
	SubsidioAnual      decimal.Decimal

	Resident  bool
	TaxExempt bool

	LoanRepayment    decimal.Decimal
	AdvanceRepayment decimal.Decimal
	CourtOrdered     decimal.Decimal
	OtherDeductions  decimal.Decimal

	PriorYTD     YTDSnapshot
	MonthsWorked int
	HireDate     time.Time
}

func (in PayrollInput) periodsPerMonth() int {
	if in.PeriodsPerMonth > 0 {
		return in.PeriodsPerMonth
	}
	return in.Frequency.PeriodsPerMonth()
}

// PayrollResult is a pure function of one PayrollInput plus the rate table.
type PayrollResult struct {
	GrossPay       decimal.Decimal `json:"gross_pay"`
	TaxableIncome  decimal.Decimal `json:"taxable_income"`
	WithholdingTax decimal.Decimal `json:"withholding_tax"`

	InsuranceBase decimal.Decimal `json:"insurance_base"`
	EmployeeINSS  decimal.Decimal `json:"employee_inss"`
	EmployerINSS  decimal.Decimal `json:"employer_inss"`

	Earnings   []EarningLine   `json:"earnings"`
	Deductions []DeductionLine `json:"deductions"`

	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	NetPay            decimal.Decimal `json:"net_pay"`
	TotalEmployerCost decimal.Decimal `json:"total_employer_cost"`

	UpdatedYTD YTDSnapshot `json:"updated_ytd"`
	Warnings   []string    `json:"warnings"`
}
