package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, userID string, req LocationRequest) (Attendance, error)
	CheckOut(ctx context.Context, userID string, req LocationRequest) (Attendance, error)
	GetStatus(ctx context.Context, userID string) (StatusResponse, error)
}
