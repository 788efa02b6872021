package attendance

import (
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/pkg/validator"
)

// LocationRequest carries the coordinates submitted with a check-in or check-out.
// Values are stored as given.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *LocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude == nil || r.Longitude == nil {
		errs.Add("location", "latitude and longitude are required")
	}

	return errs.Err()
}

type StatusResponse struct {
	CheckedIn         bool       `json:"checkedIn"`
	CheckedOut        bool       `json:"checkedOut"`
	CheckInTime       *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime      *time.Time `json:"checkOutTime,omitempty"`
	CheckInLatitude   *float64   `json:"checkInLatitude,omitempty"`
	CheckInLongitude  *float64   `json:"checkInLongitude,omitempty"`
	CheckOutLatitude  *float64   `json:"checkOutLatitude,omitempty"`
	CheckOutLongitude *float64   `json:"checkOutLongitude,omitempty"`
}

func NewStatusResponse(a *Attendance) StatusResponse {
	if a == nil {
		return StatusResponse{}
	}
	checkInTime := a.CheckInTime
	lat, long := a.CheckInLat, a.CheckInLong
	return StatusResponse{
		CheckedIn:         true,
		CheckedOut:        a.IsCheckedOut(),
		CheckInTime:       &checkInTime,
		CheckOutTime:      a.CheckOutTime,
		CheckInLatitude:   &lat,
		CheckInLongitude:  &long,
		CheckOutLatitude:  a.CheckOutLat,
		CheckOutLongitude: a.CheckOutLong,
	}
}
