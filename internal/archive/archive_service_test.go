package archive_test

import (
	"context"
	"testing"
	"time"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/archive"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeArchiveRepo struct {
	UpsertFn      func(ctx context.Context, row *archive.ArchivedPayrollRun) error
	FindByRunIDFn func(ctx context.Context, payrollRunID string) (*archive.ArchivedPayrollRun, error)
}

func (f *fakeArchiveRepo) Upsert(ctx context.Context, row *archive.ArchivedPayrollRun) error {
	return f.UpsertFn(ctx, row)
}
func (f *fakeArchiveRepo) FindByRunID(ctx context.Context, payrollRunID string) (*archive.ArchivedPayrollRun, error) {
	return f.FindByRunIDFn(ctx, payrollRunID)
}

func validEvent() events.PayrollProcessedEvent {
	return events.PayrollProcessedEvent{
		EventType:    "payroll.processed",
		PayrollRunID: uuid.NewString(),
		CompanyID:    uuid.NewString(),
		EmployeeID:   uuid.NewString(),
		PeriodStart:  "2026-07-01",
		PeriodEnd:    "2026-07-31",
		GrossPay:     "800.00",
		NetPay:       "738.00",
		WarningCount: 1,
		ProcessedBy:  "user-1",
		OccurredAt:   time.Now().UTC(),
	}
}

func TestStoreArchivesEvent(t *testing.T) {
	var stored *archive.ArchivedPayrollRun
	repo := &fakeArchiveRepo{
		UpsertFn: func(ctx context.Context, row *archive.ArchivedPayrollRun) error {
			stored = row
			return nil
		},
	}

	svc := archive.NewService(repo, zap.NewNop())
	event := validEvent()

	err := svc.Store(context.Background(), event)
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, event.PayrollRunID, stored.PayrollRunID.String())
	assert.Equal(t, "800.00", stored.GrossPay.StringFixed(2))
	assert.Equal(t, "738.00", stored.NetPay.StringFixed(2))
	assert.Equal(t, 1, stored.WarningCount)
}

func TestStoreRejectsMalformedRunID(t *testing.T) {
	repo := &fakeArchiveRepo{
		UpsertFn: func(ctx context.Context, row *archive.ArchivedPayrollRun) error {
			t.Fatal("upsert should not be reached")
			return nil
		},
	}

	svc := archive.NewService(repo, zap.NewNop())
	event := validEvent()
	event.PayrollRunID = "not-a-uuid"

	assert.Error(t, svc.Store(context.Background(), event))
}

func TestStoreRejectsMalformedAmount(t *testing.T) {
	repo := &fakeArchiveRepo{
		UpsertFn: func(ctx context.Context, row *archive.ArchivedPayrollRun) error {
			t.Fatal("upsert should not be reached")
			return nil
		},
	}

	svc := archive.NewService(repo, zap.NewNop())
	event := validEvent()
	event.GrossPay = "eight hundred"

	assert.Error(t, svc.Store(context.Background(), event))
}
