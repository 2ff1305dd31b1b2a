package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/employee"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/events"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/messaging/kafka"
	payrollerrors "github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payroll/errors"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payrollcalc"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const periodDateLayout = "2006-01-02"

type Service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	rates     payrollcalc.RateTable
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	outbox kafka.OutboxRepository,
	rates payrollcalc.RateTable,
	logger *zap.Logger,
) *Service {
	return &Service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outbox,
		rates:     rates,
		logger:    logger.Named("payroll.service"),
	}
}

// Create computes and persists one payroll run. The engine input is built
// from the request's per-period figures plus the employee's master data and
// prior year-to-date snapshot; the snapshot is advanced in the same
// transaction that stages the processed event.
func (s *Service) Create(ctx context.Context, companyID, processedBy string, req CreatePayrollRunRequest) (*PayrollRunResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, payrollerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}

	periodStart, periodEnd, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	overlaps, err := s.repo.HasOverlappingPeriod(ctx, companyID, req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, payrollerrors.ErrPeriodOverlap
	}

	emp, err := s.employees.FindByIDAndCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	input := s.buildInput(emp, req, periodEnd)

	messages := payrollcalc.Validate(input, s.rates)
	if hard := blockingMessages(messages); len(hard) > 0 {
		return nil, payrollerrors.RejectedInput(hard)
	}

	result := payrollcalc.ComputePayroll(input, s.rates)

	run, err := s.buildRun(companyID, emp, periodStart, periodEnd, processedBy, req.SickDays, result)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, run); err != nil {
		return nil, err
	}

	if err := s.employees.WithTx(tx).UpdateYTD(ctx, companyID, req.EmployeeID, result.UpdatedYTD); err != nil {
		return nil, err
	}

	if err := s.stageProcessedEvent(ctx, tx, run, result); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("payroll run created",
		zap.String("payroll_run_id", run.ID.String()),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("gross_pay", result.GrossPay.StringFixed(2)),
		zap.String("net_pay", result.NetPay.StringFixed(2)),
		zap.Int("warnings", len(result.Warnings)),
	)

	return mapToResponse(run), nil
}

func (s *Service) buildInput(emp *employee.Employee, req CreatePayrollRunRequest, periodEnd time.Time) payrollcalc.PayrollInput {
	dec := decimal.NewFromFloat

	input := payrollcalc.PayrollInput{
		EmployeeID:    emp.ID.String(),
		MonthlySalary: emp.MonthlySalary,
		Frequency:     payrollcalc.PayFrequency(emp.PayFrequency),

		RegularHours:       dec(req.RegularHours),
		OvertimeHours:      dec(req.OvertimeHours),
		NightShiftHours:    dec(req.NightShiftHours),
		HolidayHours:       dec(req.HolidayHours),
		RestDayHours:       dec(req.RestDayHours),
		AbsenceHours:       dec(req.AbsenceHours),
		LateArrivalMinutes: dec(req.LateArrivalMinutes),

		SickDays:    req.SickDays,
		SickDaysYTD: emp.SickDaysUsedYTD,

		Bonus:              dec(req.Bonus),
		Commission:         dec(req.Commission),
		PerDiem:            dec(req.PerDiem),
		FoodAllowance:      dec(req.FoodAllowance),
		TransportAllowance: dec(req.TransportAllowance),
		OtherEarnings:      dec(req.OtherEarnings),

		Resident:  emp.Resident,
		TaxExempt: emp.TaxExempt,

		LoanRepayment:    dec(req.LoanRepayment),
		AdvanceRepayment: dec(req.AdvanceRepayment),
		CourtOrdered:     dec(req.CourtOrdered),
		OtherDeductions:  dec(req.OtherDeductions),

		PriorYTD: payrollcalc.YTDSnapshot{
			GrossPay:     emp.YTDGrossPay,
			TaxWithheld:  emp.YTDTaxWithheld,
			EmployeeINSS: emp.YTDEmployeeINSS,
			SickDaysUsed: emp.SickDaysUsedYTD,
		},
		MonthsWorked: emp.MonthsWorkedThisYear,
		HireDate:     emp.HireDate,
	}

	if req.IncludeSubsidioAnual {
		input.SubsidioAnual = payrollcalc.ComputeSubsidioAnual(
			emp.MonthlySalary, emp.MonthsWorkedThisYear, emp.HireDate, periodEnd,
		)
	}

	return input
}

func (s *Service) buildRun(
	companyID string,
	emp *employee.Employee,
	periodStart, periodEnd time.Time,
	processedBy string,
	sickDays int,
	result payrollcalc.PayrollResult,
) (*PayrollRun, error) {
	warnings, err := json.Marshal(result.Warnings)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	lines := make([]PayrollRunLine, 0, len(result.Earnings)+len(result.Deductions))
	position := 0
	for _, e := range result.Earnings {
		lines = append(lines, PayrollRunLine{
			ID:           uuid.New(),
			PayrollRunID: runID,
			Kind:         LineKindEarning,
			Name:         string(e.Type),
			Amount:       e.Amount,
			Position:     position,
		})
		position++
	}
	for _, d := range result.Deductions {
		lines = append(lines, PayrollRunLine{
			ID:           uuid.New(),
			PayrollRunID: runID,
			Kind:         LineKindDeduction,
			Name:         d.Name,
			Amount:       d.Amount,
			Statutory:    d.Statutory,
			Position:     position,
		})
		position++
	}

	return &PayrollRun{
		ID:         runID,
		CompanyID:  uuid.MustParse(companyID),
		EmployeeID: emp.ID,

		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Frequency:   emp.PayFrequency,
		Status:      StatusDraft,

		GrossPay:       result.GrossPay,
		TaxableIncome:  result.TaxableIncome,
		WithholdingTax: result.WithholdingTax,
		InsuranceBase:  result.InsuranceBase,
		EmployeeINSS:   result.EmployeeINSS,
		EmployerINSS:   result.EmployerINSS,

		TotalDeductions:   result.TotalDeductions,
		NetPay:            result.NetPay,
		TotalEmployerCost: result.TotalEmployerCost,

		SickDays: sickDays,

		Warnings: string(warnings),
		Lines:    lines,

		ProcessedBy: processedBy,
	}, nil
}

func (s *Service) stageProcessedEvent(ctx context.Context, tx *sql.Tx, run *PayrollRun, result payrollcalc.PayrollResult) error {
	event := events.PayrollProcessedEvent{
		EventType:    "payroll.processed",
		PayrollRunID: run.ID.String(),
		CompanyID:    run.CompanyID.String(),
		EmployeeID:   run.EmployeeID.String(),
		PeriodStart:  run.PeriodStart.Format(periodDateLayout),
		PeriodEnd:    run.PeriodEnd.Format(periodDateLayout),
		GrossPay:     result.GrossPay.StringFixed(2),
		NetPay:       result.NetPay.StringFixed(2),
		WarningCount: len(result.Warnings),
		ProcessedBy:  run.ProcessedBy,
		OccurredAt:   time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_run",
		AggregateID:   run.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollProcessedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *Service) GetAll(ctx context.Context, companyID string, page, limit int) ([]PayrollRunResponse, int64, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, 0, payrollerrors.ErrInvalidCompanyID
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	runs, total, err := s.repo.FindAllByCompany(ctx, companyID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PayrollRunResponse, 0, len(runs))
	for i := range runs {
		responses = append(responses, *mapToResponse(&runs[i]))
	}
	return responses, total, nil
}

func (s *Service) GetByID(ctx context.Context, companyID, id string) (*PayrollRunResponse, error) {
	run, err := s.findOne(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(run), nil
}

func (s *Service) Approve(ctx context.Context, companyID, id string) (*PayrollRunResponse, error) {
	return s.transition(ctx, companyID, id, StatusDraft, StatusApproved, "approved_at")
}

func (s *Service) MarkAsPaid(ctx context.Context, companyID, id string) (*PayrollRunResponse, error) {
	return s.transition(ctx, companyID, id, StatusApproved, StatusPaid, "paid_at")
}

// Cancel voids a run that has not been paid out. The employee's YTD
// snapshot was advanced when the run was created, so cancelling rewinds it
// in the same transaction; the period is then free to be re-run without
// double-counting.
func (s *Service) Cancel(ctx context.Context, companyID, id string) (*PayrollRunResponse, error) {
	run, err := s.findOne(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if run.Status != StatusDraft && run.Status != StatusApproved {
		return nil, payrollerrors.ErrInvalidTransition
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).UpdateStatus(ctx, companyID, id, StatusCancelled, "", time.Time{}); err != nil {
		return nil, err
	}
	if err := s.rewindYTD(ctx, tx, run); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("payroll run cancelled",
		zap.String("payroll_run_id", run.ID.String()),
		zap.String("company_id", companyID),
	)

	run.Status = StatusCancelled
	return mapToResponse(run), nil
}

func (s *Service) Delete(ctx context.Context, companyID, id string) error {
	run, err := s.findOne(ctx, companyID, id)
	if err != nil {
		return err
	}
	if run.Status != StatusDraft {
		return payrollerrors.ErrNotDraft
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		return err
	}
	if err := s.rewindYTD(ctx, tx, run); err != nil {
		return err
	}

	return tx.Commit()
}

// rewindYTD subtracts a run's contribution from the employee's year-to-date
// snapshot.
func (s *Service) rewindYTD(ctx context.Context, tx *sql.Tx, run *PayrollRun) error {
	qtx := s.employees.WithTx(tx)

	emp, err := qtx.FindByIDAndCompany(ctx, run.CompanyID.String(), run.EmployeeID.String())
	if err != nil {
		return err
	}

	sickDays := emp.SickDaysUsedYTD - run.SickDays
	if sickDays < 0 {
		sickDays = 0
	}

	return qtx.UpdateYTD(ctx, run.CompanyID.String(), run.EmployeeID.String(), payrollcalc.YTDSnapshot{
		GrossPay:     emp.YTDGrossPay.Sub(run.GrossPay),
		TaxWithheld:  emp.YTDTaxWithheld.Sub(run.WithholdingTax),
		EmployeeINSS: emp.YTDEmployeeINSS.Sub(run.EmployeeINSS),
		SickDaysUsed: sickDays,
	})
}

func (s *Service) transition(ctx context.Context, companyID, id, from, to, stampField string) (*PayrollRunResponse, error) {
	run, err := s.findOne(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if run.Status != from {
		return nil, payrollerrors.ErrInvalidTransition
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, companyID, id, to, stampField, now); err != nil {
		return nil, err
	}

	run.Status = to
	switch stampField {
	case "approved_at":
		run.ApprovedAt = &now
	case "paid_at":
		run.PaidAt = &now
	}
	return mapToResponse(run), nil
}

func (s *Service) findOne(ctx context.Context, companyID, id string) (*PayrollRun, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, payrollerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidRunID
	}

	run, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrRunNotFound
		}
		return nil, err
	}
	return run, nil
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	periodStart, err := time.Parse(periodDateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidPeriod
	}
	periodEnd, err := time.Parse(periodDateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidPeriod
	}
	if periodEnd.Before(periodStart) {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidPeriod
	}
	return periodStart, periodEnd, nil
}

// blockingMessages filters the validator output down to the messages that
// must stop a run. The rest are advisory and travel on the stored result.
func blockingMessages(messages []string) []string {
	var hard []string
	for _, m := range messages {
		if strings.Contains(m, "cannot be negative") {
			hard = append(hard, m)
		}
	}
	return hard
}

func mapToResponse(run *PayrollRun) *PayrollRunResponse {
	lines := make([]PayrollRunLineResponse, 0, len(run.Lines))
	for _, l := range run.Lines {
		lines = append(lines, PayrollRunLineResponse{
			Kind:      l.Kind,
			Name:      l.Name,
			Amount:    l.Amount.StringFixed(2),
			Statutory: l.Statutory,
		})
	}

	var warnings []string
	if run.Warnings != "" {
		_ = json.Unmarshal([]byte(run.Warnings), &warnings)
	}
	if warnings == nil {
		warnings = []string{}
	}

	return &PayrollRunResponse{
		ID:          run.ID.String(),
		CompanyID:   run.CompanyID.String(),
		EmployeeID:  run.EmployeeID.String(),
		PeriodStart: run.PeriodStart.Format(periodDateLayout),
		PeriodEnd:   run.PeriodEnd.Format(periodDateLayout),
		Frequency:   run.Frequency,
		Status:      run.Status,

		GrossPay:       run.GrossPay.StringFixed(2),
		TaxableIncome:  run.TaxableIncome.StringFixed(2),
		WithholdingTax: run.WithholdingTax.StringFixed(2),
		InsuranceBase:  run.InsuranceBase.StringFixed(2),
		EmployeeINSS:   run.EmployeeINSS.StringFixed(2),
		EmployerINSS:   run.EmployerINSS.StringFixed(2),

		TotalDeductions:   run.TotalDeductions.StringFixed(2),
		NetPay:            run.NetPay.StringFixed(2),
		TotalEmployerCost: run.TotalEmployerCost.StringFixed(2),

		Lines:    lines,
		Warnings: warnings,

		ProcessedBy: run.ProcessedBy,
		CreatedAt:   run.CreatedAt.Format(time.RFC3339),
	}
}
