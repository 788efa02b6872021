package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create fails with ErrAlreadyCheckedIn when the user already has a row for the day.
	Create(ctx context.Context, a Attendance) (Attendance, error)
	// CheckOut stamps the open row for (userID, day). ErrNoOpenCheckIn when none matches.
	CheckOut(ctx context.Context, userID string, day time.Time, at time.Time, lat, long float64) (Attendance, error)
	GetByUserAndDate(ctx context.Context, userID string, day time.Time) (Attendance, error)
}
