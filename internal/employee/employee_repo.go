package employee

import (
	"context"
	"database/sql"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/payrollcalc"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error)
	Update(ctx context.Context, emp *Employee) error
	UpdateYTD(ctx context.Context, companyID, id string, snapshot payrollcalc.YTDSnapshot) error
	Delete(ctx context.Context, companyID string, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository whose gorm session runs on the given
// transaction, so the YTD snapshot advances with the payroll run or not at
// all.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Initialized: true})
	session.Statement.ConnPool = tx
	return &repository{
		db: session,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&emp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

// UpdateYTD advances the year-to-date snapshot after a payroll run. Only
// the payroll-run service calls this.
func (r *repository) UpdateYTD(ctx context.Context, companyID, id string, snapshot payrollcalc.YTDSnapshot) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Updates(map[string]any{
			"ytd_gross_pay":      snapshot.GrossPay,
			"ytd_tax_withheld":   snapshot.TaxWithheld,
			"ytd_employee_inss":  snapshot.EmployeeINSS,
			"sick_days_used_ytd": snapshot.SickDaysUsed,
		}).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Employee{}, "id = ?", id).Error
}
