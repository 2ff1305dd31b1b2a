package archive

import (
	"context"
	"time"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/events"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const periodDateLayout = "2006-01-02"

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("archive.service"),
	}
}

// Store persists one processed-payroll event. Safe to call more than once
// per event.
func (s *Service) Store(ctx context.Context, event events.PayrollProcessedEvent) error {
	runID, err := uuid.Parse(event.PayrollRunID)
	if err != nil {
		return err
	}
	companyID, err := uuid.Parse(event.CompanyID)
	if err != nil {
		return err
	}
	employeeID, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		return err
	}

	periodStart, err := time.Parse(periodDateLayout, event.PeriodStart)
	if err != nil {
		return err
	}
	periodEnd, err := time.Parse(periodDateLayout, event.PeriodEnd)
	if err != nil {
		return err
	}

	grossPay, err := decimal.NewFromString(event.GrossPay)
	if err != nil {
		return err
	}
	netPay, err := decimal.NewFromString(event.NetPay)
	if err != nil {
		return err
	}

	row := &ArchivedPayrollRun{
		ID:           uuid.New(),
		PayrollRunID: runID,
		CompanyID:    companyID,
		EmployeeID:   employeeID,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		GrossPay:     grossPay,
		NetPay:       netPay,
		WarningCount: event.WarningCount,
		ProcessedBy:  event.ProcessedBy,
		ProcessedAt:  event.OccurredAt,
		ArchivedAt:   time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, row); err != nil {
		return err
	}

	s.logger.Info("payroll run archived",
		zap.String("payroll_run_id", event.PayrollRunID),
		zap.String("company_id", event.CompanyID),
	)
	return nil
}
