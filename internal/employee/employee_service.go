package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	employeeerrors "github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/employee/errors"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/events"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/messaging/kafka"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payrollcalc"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const hireDateLayout = "2006-01-02"

type Service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		logger: logger.Named("employee.service"),
	}
}

func (s *Service) Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidCompanyID
	}

	hireDate, err := time.Parse(hireDateLayout, req.HireDate)
	if err != nil {
		return nil, employeeerrors.ErrInvalidHireDate
	}

	frequency := strings.ToUpper(req.PayFrequency)
	if frequency == "" {
		frequency = string(payrollcalc.FrequencyMonthly)
	}

	resident := true
	if req.Resident != nil {
		resident = *req.Resident
	}

	emp := &Employee{
		ID:            uuid.New(),
		CompanyID:     cid,
		FullName:      req.FullName,
		Email:         strings.ToLower(req.Email),
		MonthlySalary: decimal.NewFromFloat(req.MonthlySalary).Round(2),
		PayFrequency:  frequency,
		HireDate:      hireDate,
		Resident:      resident,
		TaxExempt:     req.TaxExempt,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, emp); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, employeeerrors.ErrEmailTaken
		}
		return nil, err
	}

	if err := s.stageCreatedEvent(ctx, tx, emp); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("employee created",
		zap.String("employee_id", emp.ID.String()),
		zap.String("company_id", companyID),
	)

	return mapToResponse(emp), nil
}

func (s *Service) stageCreatedEvent(ctx context.Context, tx *sql.Tx, emp *Employee) error {
	event := events.EmployeeCreatedEvent{
		EventType:  "employee.created",
		EmployeeID: emp.ID.String(),
		CompanyID:  emp.CompanyID.String(),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   emp.ID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *Service) GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, employeeerrors.ErrInvalidCompanyID
	}

	emps, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]EmployeeResponse, 0, len(emps))
	for i := range emps {
		responses = append(responses, *mapToResponse(&emps[i]))
	}
	return responses, nil
}

func (s *Service) GetByID(ctx context.Context, companyID, id string) (*EmployeeResponse, error) {
	emp, err := s.findOne(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(emp), nil
}

func (s *Service) Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	emp, err := s.findOne(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	hireDate, err := time.Parse(hireDateLayout, req.HireDate)
	if err != nil {
		return nil, employeeerrors.ErrInvalidHireDate
	}

	resident := emp.Resident
	if req.Resident != nil {
		resident = *req.Resident
	}

	emp.FullName = req.FullName
	emp.Email = strings.ToLower(req.Email)
	emp.MonthlySalary = decimal.NewFromFloat(req.MonthlySalary).Round(2)
	emp.PayFrequency = strings.ToUpper(req.PayFrequency)
	emp.HireDate = hireDate
	emp.Resident = resident
	emp.TaxExempt = req.TaxExempt

	if err := s.repo.Update(ctx, emp); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, employeeerrors.ErrEmailTaken
		}
		return nil, err
	}

	return mapToResponse(emp), nil
}

func (s *Service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.findOne(ctx, companyID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, companyID, id)
}

func (s *Service) findOne(ctx context.Context, companyID, id string) (*Employee, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, employeeerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return emp, nil
}

func mapToResponse(emp *Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:            emp.ID.String(),
		CompanyID:     emp.CompanyID.String(),
		FullName:      emp.FullName,
		Email:         emp.Email,
		MonthlySalary: emp.MonthlySalary.StringFixed(2),
		PayFrequency:  emp.PayFrequency,
		HireDate:      emp.HireDate.Format(hireDateLayout),
		Resident:      emp.Resident,
		TaxExempt:     emp.TaxExempt,

		MonthsWorkedThisYear: emp.MonthsWorkedThisYear,
		SickDaysUsedYTD:      emp.SickDaysUsedYTD,
		YTDGrossPay:          emp.YTDGrossPay.StringFixed(2),
		YTDTaxWithheld:       emp.YTDTaxWithheld.StringFixed(2),
		YTDEmployeeINSS:      emp.YTDEmployeeINSS.StringFixed(2),
	}
}
