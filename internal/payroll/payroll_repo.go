package payroll

import (
	"context"
	"database/sql"
	"time"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, run *PayrollRun) error
	FindAllByCompany(ctx context.Context, companyID string, page, limit int) ([]PayrollRun, int64, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollRun, error)
	UpdateStatus(ctx context.Context, companyID, id, status string, stampField string, stamp time.Time) error
	Delete(ctx context.Context, companyID string, id string) error
	HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository whose gorm session runs on the given
// transaction, so run inserts commit or roll back with the caller's other
// writes.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Initialized: true})
	session.Statement.ConnPool = tx
	return &repository{
		db: session,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, page, limit int) ([]PayrollRun, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).
		Model(&PayrollRun{}).
		Scopes(tenant.Scope(companyID))

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var runs []PayrollRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("period_start DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&runs).Error
	return runs, total, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) UpdateStatus(ctx context.Context, companyID, id, status string, stampField string, stamp time.Time) error {
	updates := map[string]any{"status": status}
	if stampField != "" {
		updates[stampField] = stamp
	}
	return r.db.WithContext(ctx).
		Model(&PayrollRun{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&PayrollRun{}, "id = ?", id).Error
}

// HasOverlappingPeriod reports whether a non-cancelled run for the employee
// already covers any day of [start, end].
func (r *repository) HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollRun{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", StatusCancelled).
		Where("period_start <= ? AND period_end >= ?", end, start).
		Count(&count).Error
	return count > 0, err
}
