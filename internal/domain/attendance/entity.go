package attendance

import "time"

// Attendance is one user's record for one calendar day.
type Attendance struct {
	ID           string
	UserID       string
	CheckInDate  time.Time // midnight UTC carrying the local calendar day
	CheckInTime  time.Time
	CheckInLat   float64
	CheckInLong  float64
	CheckOutTime *time.Time
	CheckOutLat  *float64
	CheckOutLong *float64
	CreatedAt    time.Time
}

func (a *Attendance) IsCheckedOut() bool {
	return a.CheckOutTime != nil
}

// Day returns the calendar date of t in loc as midnight UTC, the form stored in
// check_in_date.
func Day(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
