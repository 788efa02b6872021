package dashboard

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/domain/attendance"
	"github.com/raminfosys/attendance-backend-go/internal/domain/dashboard"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/export"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/metrics"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	metrics  metrics.Recorder
	location *time.Location
	now      func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, recorder metrics.Recorder, loc *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		metrics:             recorder,
		location:            loc,
		now:                 time.Now,
	}
}

// ListAttendance implements dashboard.DashboardService.
func (s *DashboardServiceImpl) ListAttendance(ctx context.Context, filter dashboard.AttendanceFilter) ([]dashboard.AttendanceRecord, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end := filter.Range()
	records, err := s.DashboardRepository.ListAttendance(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// Summary returns today's counts using parallel goroutines, one query each
func (s *DashboardServiceImpl) Summary(ctx context.Context) (dashboard.SummaryResponse, error) {
	today := attendance.Day(s.now(), s.location)

	var total, checkedIn, checkedOut int64

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		total, err = s.CountEmployees(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		checkedIn, err = s.CountCheckedIn(gCtx, today)
		return err
	})

	g.Go(func() error {
		var err error
		checkedOut, err = s.CountCheckedOut(gCtx, today)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to get summary: %w", err)
	}

	return dashboard.SummaryResponse{
		TotalEmployees:  total,
		CheckedInToday:  checkedIn,
		CheckedOutToday: checkedOut,
		StillPresent:    max(0, checkedIn-checkedOut),
		Date:            today.Format(validator.DateLayout),
	}, nil
}

// ExportAttendance writes the filtered records as an xlsx workbook to w.
func (s *DashboardServiceImpl) ExportAttendance(ctx context.Context, filter dashboard.AttendanceFilter, w io.Writer) error {
	records, err := s.ListAttendance(ctx, filter)
	if err != nil {
		return err
	}

	if err := export.WriteAttendance(w, records, s.location); err != nil {
		return fmt.Errorf("failed to write attendance export: %w", err)
	}

	s.metrics.RecordExport(len(records))
	return nil
}
