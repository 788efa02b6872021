package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/domain/dashboard"
	"github.com/raminfosys/attendance-backend-go/internal/domain/user"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// ListAttendance returns employee rows, newest check-in first. Nil bounds are open.
func (r *dashboardRepositoryImpl) ListAttendance(ctx context.Context, start, end *time.Time) ([]dashboard.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			a.id, a.user_id, u.name, u.email,
			a.check_in_time, a.check_in_lat, a.check_in_long,
			a.check_out_time, a.check_out_lat, a.check_out_long
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE u.role = $1
			AND ($2::date IS NULL OR a.check_in_date >= $2::date)
			AND ($3::date IS NULL OR a.check_in_date <= $3::date)
		ORDER BY a.check_in_time DESC
	`

	rows, err := q.Query(ctx, query, user.RoleEmployee, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]dashboard.AttendanceRecord, 0)
	for rows.Next() {
		var rec dashboard.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Name, &rec.Email,
			&rec.CheckInTime, &rec.CheckInLat, &rec.CheckInLong,
			&rec.CheckOutTime, &rec.CheckOutLat, &rec.CheckOutLong,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// CountEmployees returns the number of accounts with the employee role
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, user.RoleEmployee).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountCheckedIn returns distinct employees with a row for day
func (r *dashboardRepositoryImpl) CountCheckedIn(ctx context.Context, day time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT a.user_id)
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE u.role = $1 AND a.check_in_date = $2
	`

	var count int64
	if err := q.QueryRow(ctx, query, user.RoleEmployee, day).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return count, nil
}

// CountCheckedOut returns employee rows for day that carry a check-out
func (r *dashboardRepositoryImpl) CountCheckedOut(ctx context.Context, day time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE u.role = $1 AND a.check_in_date = $2 AND a.check_out_time IS NOT NULL
	`

	var count int64
	if err := q.QueryRow(ctx, query, user.RoleEmployee, day).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count check-outs: %w", err)
	}
	return count, nil
}
