package archive

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArchivedPayrollRun is the flattened retention copy of a processed run.
// PayrollRunID is unique so duplicate event deliveries collapse into one row.
type ArchivedPayrollRun struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PayrollRunID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CompanyID    uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;index"`

	PeriodStart time.Time `gorm:"type:date;not null"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`

	GrossPay decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NetPay   decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	WarningCount int    `gorm:"not null;default:0"`
	ProcessedBy  string `gorm:"type:varchar(64)"`

	ProcessedAt time.Time `gorm:"not null"`
	ArchivedAt  time.Time `gorm:"not null"`
}
