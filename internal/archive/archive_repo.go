package archive

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=archive_repo.go -destination=mock/archive_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, row *ArchivedPayrollRun) error
	FindByRunID(ctx context.Context, payrollRunID string) (*ArchivedPayrollRun, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert ignores conflicts on payroll_run_id so redelivered events are
// no-ops.
func (r *repository) Upsert(ctx context.Context, row *ArchivedPayrollRun) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payroll_run_id"}},
			DoNothing: true,
		}).
		Create(row).Error
}

func (r *repository) FindByRunID(ctx context.Context, payrollRunID string) (*ArchivedPayrollRun, error) {
	var row ArchivedPayrollRun
	err := r.db.WithContext(ctx).
		First(&row, "payroll_run_id = ?", payrollRunID).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
