package eventlog

import (
	"context"
	"time"

	"github.com/osse101/TavernCrawl_Go/internal/logger"
)

// PruneJob trims the journal down to a fixed number of entries
type PruneJob struct {
	service Service
	keep    int
}

// NewPruneJob creates a new prune job
func NewPruneJob(service Service, keep int) *PruneJob {
	return &PruneJob{
		service: service,
		keep:    keep,
	}
}

// Process executes the prune job
func (j *PruneJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgPruneJobStarting, LogFieldKeep, j.keep)

	start := time.Now()
	count, err := j.service.Prune(ctx, j.keep)
	duration := time.Since(start)

	if err != nil {
		log.Error(LogMsgPruneJobFailed, LogFieldError, err, LogFieldDuration, duration)
		return err
	}

	log.Debug(LogMsgPruneJobCompleted, LogFieldDeletedCount, count, LogFieldDuration, duration)
	return nil
}
