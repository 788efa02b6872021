package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/raminfosys/attendance-backend-go/internal/domain/attendance"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/database"
)

const attendanceUserDayKey = "attendance_user_day_key"

const attendanceColumns = `id, user_id, check_in_date, check_in_time, check_in_lat, check_in_long,
	check_out_time, check_out_lat, check_out_long, created_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.CheckInDate,
		&a.CheckInTime,
		&a.CheckInLat,
		&a.CheckInLong,
		&a.CheckOutTime,
		&a.CheckOutLat,
		&a.CheckOutLong,
		&a.CreatedAt,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, user_id, check_in_date, check_in_time, check_in_lat, check_in_long)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		a.ID,
		a.UserID,
		a.CheckInDate,
		a.CheckInTime,
		a.CheckInLat,
		a.CheckInLong,
	))
	if err != nil {
		if isUniqueViolation(err, attendanceUserDayKey) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("create attendance for user %s: %w", a.UserID, err)
	}

	return created, nil
}

// CheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CheckOut(ctx context.Context, userID string, day time.Time, at time.Time, lat, long float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET check_out_time = $1, check_out_lat = $2, check_out_long = $3
		WHERE user_id = $4 AND check_in_date = $5 AND check_out_time IS NULL
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query, at, lat, long, userID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
		}
		return attendance.Attendance{}, fmt.Errorf("check out user %s: %w", userID, err)
	}

	return updated, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, day time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE user_id = $1 AND check_in_date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, userID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("get attendance for user %s: %w", userID, err)
	}

	return a, nil
}
