package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "DRAFT"
	StatusApproved  = "APPROVED"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

const (
	LineKindEarning   = "EARNING"
	LineKindDeduction = "DEDUCTION"
)

// PayrollRun stores one computed pay period for one employee, with the
// itemized lines and the warnings the engine produced.
type PayrollRun struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index"`

	PeriodStart time.Time `gorm:"type:date;not null"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`
	Frequency   string    `gorm:"type:varchar(10);not null"`
	Status      string    `gorm:"type:varchar(12);not null;default:'DRAFT'"`

	GrossPay       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TaxableIncome  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	WithholdingTax decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	InsuranceBase  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EmployeeINSS   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EmployerINSS   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	TotalDeductions   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetPay            decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalEmployerCost decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	// sick days consumed by this run, kept so cancelling can rewind the
	// employee's year-to-date counter
	SickDays int `gorm:"not null;default:0"`

	// engine warnings, JSON-encoded string array
	Warnings string `gorm:"type:text"`

	Lines []PayrollRunLine `gorm:"foreignKey:PayrollRunID;constraint:OnDelete:CASCADE"`

	ProcessedBy string `gorm:"type:varchar(64)"`

	ApprovedAt *time.Time
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PayrollRunLine is one earning or deduction line of a run, in the order
// the engine emitted it.
type PayrollRunLine struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PayrollRunID uuid.UUID `gorm:"type:uuid;index;not null"`

	Kind      string          `gorm:"type:varchar(10);not null"`
	Name      string          `gorm:"type:varchar(40);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Statutory bool            `gorm:"not null;default:false"`
	Position  int             `gorm:"not null"`
}
