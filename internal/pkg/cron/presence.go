package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/domain/dashboard"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/metrics"
)

const PresenceJobName = "refresh_presence_gauges"

type SummaryReader interface {
	Summary(ctx context.Context) (dashboard.SummaryResponse, error)
}

// PresenceJobs publishes today's dashboard summary as gauges.
type PresenceJobs struct {
	summary  SummaryReader
	recorder metrics.PresenceRecorder
}

func NewPresenceJobs(summary SummaryReader, recorder metrics.PresenceRecorder) *PresenceJobs {
	return &PresenceJobs{
		summary:  summary,
		recorder: recorder,
	}
}

func (j *PresenceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(PresenceJobName, interval, j.RefreshPresence)
}

func (j *PresenceJobs) RefreshPresence(ctx context.Context) error {
	s, err := j.summary.Summary(ctx)
	if err != nil {
		return fmt.Errorf("read attendance summary: %w", err)
	}

	j.recorder.SetPresence(s.TotalEmployees, s.CheckedInToday, s.CheckedOutToday, s.StillPresent)
	return nil
}
