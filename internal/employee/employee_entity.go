package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee carries the master data the payroll engine consumes, plus the
// year-to-date snapshot the payroll-run service advances each period.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	FullName  string
	Email     string `gorm:"uniqueIndex"`

	MonthlySalary decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	PayFrequency  string          `gorm:"type:varchar(10);not null;default:'MONTHLY'"`
	HireDate      time.Time       `gorm:"type:date"`
	Resident      bool            `gorm:"not null;default:true"`
	TaxExempt     bool            `gorm:"not null;default:false"`

	MonthsWorkedThisYear int `gorm:"not null;default:0"`
	SickDaysUsedYTD      int `gorm:"not null;default:0"`

	YTDGrossPay     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	YTDTaxWithheld  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	YTDEmployeeINSS decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
