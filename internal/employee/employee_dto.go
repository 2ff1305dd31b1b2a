package employee

type CreateEmployeeRequest struct {
	FullName      string  `json:"full_name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	MonthlySalary float64 `json:"monthly_salary" binding:"required,gte=0"`
	PayFrequency  string  `json:"pay_frequency" binding:"omitempty,oneof=MONTHLY BIWEEKLY WEEKLY"`
	HireDate      string  `json:"hire_date" binding:"required"`
	Resident      *bool   `json:"resident"`
	TaxExempt     bool    `json:"tax_exempt"`
}

type UpdateEmployeeRequest struct {
	FullName      string  `json:"full_name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	MonthlySalary float64 `json:"monthly_salary" binding:"required,gte=0"`
	PayFrequency  string  `json:"pay_frequency" binding:"required,oneof=MONTHLY BIWEEKLY WEEKLY"`
	HireDate      string  `json:"hire_date" binding:"required"`
	Resident      *bool   `json:"resident"`
	TaxExempt     bool    `json:"tax_exempt"`
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	MonthlySalary string `json:"monthly_salary"`
	PayFrequency  string `json:"pay_frequency"`
	HireDate      string `json:"hire_date"`
	Resident      bool   `json:"resident"`
	TaxExempt     bool   `json:"tax_exempt"`

	MonthsWorkedThisYear int    `json:"months_worked_this_year"`
	SickDaysUsedYTD      int    `json:"sick_days_used_ytd"`
	YTDGrossPay          string `json:"ytd_gross_pay"`
	YTDTaxWithheld       string `json:"ytd_tax_withheld"`
	YTDEmployeeINSS      string `json:"ytd_employee_inss"`
}
