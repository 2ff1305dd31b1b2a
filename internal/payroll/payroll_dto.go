package payroll

// CreatePayrollRunRequest carries the per-period attendance and extras for
// one employee. Master data (salary, frequency, residency, YTD) comes from
// the employee record.
type CreatePayrollRunRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`

	RegularHours       float64 `json:"regular_hours" binding:"gte=0"`
	OvertimeHours      float64 `json:"overtime_hours" binding:"gte=0"`
	NightShiftHours    float64 `json:"night_shift_hours" binding:"gte=0"`
	HolidayHours       float64 `json:"holiday_hours" binding:"gte=0"`
	RestDayHours       float64 `json:"rest_day_hours" binding:"gte=0"`
	AbsenceHours       float64 `json:"absence_hours" binding:"gte=0"`
	LateArrivalMinutes float64 `json:"late_arrival_minutes" binding:"gte=0"`

	SickDays int `json:"sick_days" binding:"gte=0"`

	Bonus              float64 `json:"bonus" binding:"gte=0"`
	Commission         float64 `json:"commission" binding:"gte=0"`
	PerDiem            float64 `json:"per_diem" binding:"gte=0"`
	FoodAllowance      float64 `json:"food_allowance" binding:"gte=0"`
	TransportAllowance float64 `json:"transport_allowance" binding:"gte=0"`
	OtherEarnings      float64 `json:"other_earnings" binding:"gte=0"`

	// pays the 13th-month subsidio in this period, pro-rated by months worked
	IncludeSubsidioAnual bool `json:"include_subsidio_anual"`

	LoanRepayment    float64 `json:"loan_repayment" binding:"gte=0"`
	AdvanceRepayment float64 `json:"advance_repayment" binding:"gte=0"`
	CourtOrdered     float64 `json:"court_ordered" binding:"gte=0"`
	OtherDeductions  float64 `json:"other_deductions" binding:"gte=0"`
}

type PayrollRunLineResponse struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	Statutory bool   `json:"statutory"`
}

type PayrollRunResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Frequency   string `json:"frequency"`
	Status      string `json:"status"`

	GrossPay       string `json:"gross_pay"`
	TaxableIncome  string `json:"taxable_income"`
	WithholdingTax string `json:"withholding_tax"`
	InsuranceBase  string `json:"insurance_base"`
	EmployeeINSS   string `json:"employee_inss"`
	EmployerINSS   string `json:"employer_inss"`

	TotalDeductions   string `json:"total_deductions"`
	NetPay            string `json:"net_pay"`
	TotalEmployerCost string `json:"total_employer_cost"`

	Lines    []PayrollRunLineResponse `json:"lines"`
	Warnings []string                 `json:"warnings"`

	ProcessedBy string `json:"processed_by,omitempty"`
	CreatedAt   string `json:"created_at"`
}
