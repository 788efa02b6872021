package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/raminfosys/attendance-backend-go/internal/domain/attendance"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/metrics"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	metrics  metrics.Recorder
	location *time.Location
	now      func() time.Time
}

// NewAttendanceService computes "today" in loc on every call.
func NewAttendanceService(repo attendance.AttendanceRepository, recorder metrics.Recorder, loc *time.Location) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		metrics:              recorder,
		location:             loc,
		now:                  time.Now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string, req attendance.LocationRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	now := a.now()
	// The unique (user_id, check_in_date) constraint decides; no read beforehand.
	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		ID:          id.String(),
		UserID:      userID,
		CheckInDate: attendance.Day(now, a.location),
		CheckInTime: now,
		CheckInLat:  *req.Latitude,
		CheckInLong: *req.Longitude,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.Attendance{}, err
		}
		return attendance.Attendance{}, fmt.Errorf("failed to check in: %w", err)
	}

	a.metrics.RecordCheckIn()
	return created, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string, req attendance.LocationRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	now := a.now()
	updated, err := a.AttendanceRepository.CheckOut(ctx, userID, attendance.Day(now, a.location), now, *req.Latitude, *req.Longitude)
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenCheckIn) {
			return attendance.Attendance{}, err
		}
		return attendance.Attendance{}, fmt.Errorf("failed to check out: %w", err)
	}

	a.metrics.RecordCheckOut()
	return updated, nil
}

// GetStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetStatus(ctx context.Context, userID string) (attendance.StatusResponse, error) {
	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, attendance.Day(a.now(), a.location))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.NewStatusResponse(nil), nil
		}
		return attendance.StatusResponse{}, fmt.Errorf("failed to get attendance status: %w", err)
	}

	return attendance.NewStatusResponse(&record), nil
}
