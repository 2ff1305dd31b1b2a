package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/archive"
	"github.com/OniT-Enterprises/OniT-HR-Payrollerz-sub013/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunPayrollArchiveConsumer reads processed-payroll events and hands them
// to the archive service until the context is cancelled. Messages that fail
// to decode are committed and skipped; storage failures leave the message
// uncommitted so it is redelivered.
func RunPayrollArchiveConsumer(
	ctx context.Context,
	reader *kafkago.Reader,
	svc *archive.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.archive")
	log.Info("payroll archive consumer started", zap.String("topic", events.PayrollProcessedTopic))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info("payroll archive consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		var event events.PayrollProcessedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll event failed, skipping",
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := svc.Store(ctx, event); err != nil {
			log.Error("archive payroll run failed",
				zap.String("payroll_run_id", event.PayrollRunID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
		}
	}
}
