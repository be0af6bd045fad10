package worker

import (
	"context"
	"time"

	"github.com/osse101/DeluxeGrabber_Go/internal/logger"
)

// DayJob advances the simulated clock and runs the day-boundary passes
type DayJob struct {
	advance func(ctx context.Context) error
}

// NewDayJob wraps the day-boundary entry point
func NewDayJob(advance func(ctx context.Context) error) *DayJob {
	return &DayJob{advance: advance}
}

// Process runs one day boundary
func (j *DayJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	start := time.Now()
	log.Debug(LogMsgDayStarting)

	if err := j.advance(ctx); err != nil {
		log.Error(LogMsgDayFailed, "error", err)
		return err
	}

	log.Info(LogMsgDayCompleted, "duration", time.Since(start))
	return nil
}
