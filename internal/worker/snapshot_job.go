package worker

import (
	"context"

	"github.com/osse101/SlotBot_Go/internal/logger"
)

// Saver writes the current economy state to durable storage.
type Saver interface {
	Save(ctx context.Context) error
}

// SnapshotJob saves the economy when processed.
type SnapshotJob struct {
	saver Saver
}

// NewSnapshotJob wraps saver as a pool job
func NewSnapshotJob(saver Saver) *SnapshotJob {
	return &SnapshotJob{saver: saver}
}

// Process implements Job
func (j *SnapshotJob) Process(ctx context.Context) error {
	logger.FromContext(ctx).Debug(LogMsgSnapshotTick)
	return j.saver.Save(ctx)
}
