package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_RepeatsOnInterval(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("tick", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_StopsWithParentContext(t *testing.T) {
	s := NewScheduler()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	s.AddJob("wait", time.Hour, func(jobCtx context.Context) error {
		go func() {
			<-jobCtx.Done()
			close(stopped)
		}()
		return nil
	})

	s.Start(ctx)
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("job context was not cancelled")
	}
	s.Stop()
}

type fakeSummary struct {
	resp dashboard.SummaryResponse
	err  error
}

func (f fakeSummary) Summary(context.Context) (dashboard.SummaryResponse, error) {
	return f.resp, f.err
}

type presenceSpy struct {
	calls                                         int
	employees, checkedIn, checkedOut, stillPresent int64
}

func (p *presenceSpy) SetPresence(employees, checkedIn, checkedOut, stillPresent int64) {
	p.calls++
	p.employees, p.checkedIn, p.checkedOut, p.stillPresent = employees, checkedIn, checkedOut, stillPresent
}

func TestPresenceJobs_RefreshPresence(t *testing.T) {
	spy := &presenceSpy{}
	jobs := NewPresenceJobs(fakeSummary{resp: dashboard.SummaryResponse{
		TotalEmployees: 12, CheckedInToday: 9, CheckedOutToday: 4, StillPresent: 5,
	}}, spy)

	require.NoError(t, jobs.RefreshPresence(context.Background()))

	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, int64(12), spy.employees)
	assert.Equal(t, int64(9), spy.checkedIn)
	assert.Equal(t, int64(4), spy.checkedOut)
	assert.Equal(t, int64(5), spy.stillPresent)
}

func TestPresenceJobs_SummaryError(t *testing.T) {
	spy := &presenceSpy{}
	jobs := NewPresenceJobs(fakeSummary{err: errors.New("db down")}, spy)

	err := jobs.RefreshPresence(context.Background())

	assert.ErrorContains(t, err, "db down")
	assert.Zero(t, spy.calls)
}

func TestPresenceJobs_RegisterJobs(t *testing.T) {
	s := NewScheduler()
	NewPresenceJobs(fakeSummary{}, &presenceSpy{}).RegisterJobs(s, time.Minute)

	require.Len(t, s.jobs, 1)
	assert.Equal(t, PresenceJobName, s.jobs[0].Name)
	assert.Equal(t, time.Minute, s.jobs[0].Interval)
}
