package dashboard

import (
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/pkg/validator"
)

// AttendanceFilter selects records by check-in date, both bounds inclusive (YYYY-MM-DD).
type AttendanceFilter struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`

	start *time.Time
	end   *time.Time
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	f.start, f.end = nil, nil
	if f.StartDate != "" {
		if d, ok := validator.IsValidDate(f.StartDate); ok {
			f.start = &d
		} else {
			errs.Add("startDate", "startDate must be in YYYY-MM-DD format")
		}
	}
	if f.EndDate != "" {
		if d, ok := validator.IsValidDate(f.EndDate); ok {
			f.end = &d
		} else {
			errs.Add("endDate", "endDate must be in YYYY-MM-DD format")
		}
	}
	if f.start != nil && f.end != nil && f.start.After(*f.end) {
		errs.Add("startDate", "startDate must not be after endDate")
	}

	return errs.Err()
}

// Range returns the parsed bounds. Call Validate first.
func (f *AttendanceFilter) Range() (start, end *time.Time) {
	return f.start, f.end
}

// AttendanceRecord is one employee attendance row joined with its owner.
type AttendanceRecord struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckInLat   float64    `json:"check_in_lat"`
	CheckInLong  float64    `json:"check_in_long"`
	CheckOutTime *time.Time `json:"check_out_time"`
	CheckOutLat  *float64   `json:"check_out_lat"`
	CheckOutLong *float64   `json:"check_out_long"`
}

// ========== SUMMARY ==========

type SummaryResponse struct {
	TotalEmployees  int64  `json:"totalEmployees"`
	CheckedInToday  int64  `json:"checkedInToday"`
	CheckedOutToday int64  `json:"checkedOutToday"`
	StillPresent    int64  `json:"stillPresent"`
	Date            string `json:"date"` // Format: "YYYY-MM-DD"
}
