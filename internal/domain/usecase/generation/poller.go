package generation

import (
	"context"
	"time"

	"github.com/sketchmotion/credit-engine/internal/domain/entity"
	coreport "github.com/sketchmotion/credit-engine/internal/domain/port/core"
)

// PollOutcome is the result of a bounded polling run. TimedOut means the
// attempt budget ran out while the job was still live; the job record is
// untouched and stays pollable.
type PollOutcome struct {
	Job      *entity.GenerationJob
	TimedOut bool
}

// Poller repeatedly checks a job's status until it turns terminal or the
// attempt budget is spent. It is caller-driven: each run is a plain loop
// of idempotent status checks, with no background scheduler behind it.
type Poller struct {
	coordinator  *Coordinator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	maxAttempts  int
	interval     time.Duration
}

// NewPoller creates a poller with a fixed attempt budget and interval
func NewPoller(
	coordinator *Coordinator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	maxAttempts int,
	interval time.Duration,
) *Poller {
	if maxAttempts <= 0 {
		maxAttempts = 30
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Poller{
		coordinator:  coordinator,
		timeProvider: timeProvider,
		logger:       logger,
		maxAttempts:  maxAttempts,
		interval:     interval,
	}
}

// WaitForTerminal polls until the job reaches completed or failed, the
// context is canceled, or the attempt budget runs out
func (p *Poller) WaitForTerminal(ctx context.Context, userID uint64, jobID string) (*PollOutcome, error) {
	var job *entity.GenerationJob

	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := p.timeProvider.SleepContext(ctx, coreport.Duration(p.interval)); err != nil {
				return nil, err
			}
		}

		var err error
		job, err = p.coordinator.GetStatus(ctx, userID, jobID)
		if err != nil {
			return nil, err
		}
		if job.IsTerminal() {
			return &PollOutcome{Job: job}, nil
		}
	}

	p.logger.Info("Polling budget exhausted, job still live", map[string]any{
		"job_id":       jobID,
		"user_id":      userID,
		"max_attempts": p.maxAttempts,
	})
	return &PollOutcome{Job: job, TimedOut: true}, nil
}
