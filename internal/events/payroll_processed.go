package events

import "time"

const PayrollProcessedTopic = "hr.payroll.run.processed.v1"

// PayrollProcessedEvent announces a computed payroll run. The archive
// consumer stores it for the mandated retention period.
type PayrollProcessedEvent struct {
	EventType    string    `json:"event_type"`
	PayrollRunID string    `json:"payroll_run_id"`
	CompanyID    string    `json:"company_id"`
	EmployeeID   string    `json:"employee_id"`
	PeriodStart  string    `json:"period_start"`
	PeriodEnd    string    `json:"period_end"`
	GrossPay     string    `json:"gross_pay"`
	NetPay       string    `json:"net_pay"`
	WarningCount int       `json:"warning_count"`
	ProcessedBy  string    `json:"processed_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
