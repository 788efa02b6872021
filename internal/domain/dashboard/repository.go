package dashboard

import (
	"context"
	"time"
)

// DashboardRepository reads across users and attendance. Only role=employee is counted.
type DashboardRepository interface {
	ListAttendance(ctx context.Context, start, end *time.Time) ([]AttendanceRecord, error)
	CountEmployees(ctx context.Context) (int64, error)
	CountCheckedIn(ctx context.Context, day time.Time) (int64, error)
	CountCheckedOut(ctx context.Context, day time.Time) (int64, error)
}
