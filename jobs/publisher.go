package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Enqueuer is the part of *asynq.Client the publisher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ScanWindow collapses bursts of changes to one module into a single scan.
const ScanWindow = time.Minute

// ChangePublisher turns committed changes into alert scans of the changed
// module. The payload carries no timestamp so asynq.Unique can collapse
// repeats inside ScanWindow.
type ChangePublisher struct {
	enqueuer Enqueuer
}

// NewChangePublisher builds a ChangePublisher.
func NewChangePublisher(enqueuer Enqueuer) *ChangePublisher {
	return &ChangePublisher{enqueuer: enqueuer}
}

var _ shared.ChangePublisher = (*ChangePublisher)(nil)

// PublishChange implements shared.ChangePublisher.
func (p *ChangePublisher) PublishChange(ctx context.Context, evt shared.ChangeEvent) error {
	task, err := NewAlertScanTask(AlertScanPayload{
		Modules: []string{evt.Module},
		Trigger: "change",
	})
	if err != nil {
		return err
	}
	_, err = p.enqueuer.EnqueueContext(ctx, task, asynq.Queue(QueueDefault), asynq.Unique(ScanWindow))
	if errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	return err
}
