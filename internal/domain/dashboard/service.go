package dashboard

import (
	"context"
	"io"
)

type DashboardService interface {
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceRecord, error)
	Summary(ctx context.Context) (SummaryResponse, error)
	ExportAttendance(ctx context.Context, filter AttendanceFilter, w io.Writer) error
}
