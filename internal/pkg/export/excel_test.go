package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ptr[T any](v T) *T { return &v }

func TestWriteAttendance(t *testing.T) {
	checkIn := time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 4, 17, 45, 30, 0, time.UTC)

	records := []dashboard.AttendanceRecord{
		{
			Name: "Asha Rao", Email: "asha@raminfosys.com",
			CheckInTime: checkIn, CheckInLat: 12.9716, CheckInLong: 77.5946,
			CheckOutTime: &checkOut, CheckOutLat: ptr(12.9721), CheckOutLong: ptr(77.5933),
		},
		{
			Name: "Vikram Shah", Email: "vikram@raminfosys.com",
			CheckInTime: checkIn, CheckInLat: 19.076, CheckInLong: 72.8777,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAttendance(&buf, records, time.UTC))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Employee Name", "Email", "Check-in Time", "Check-out Time",
		"Check-in Lat", "Check-in Long", "Check-out Lat", "Check-out Long",
	}, rows[0])
	assert.Equal(t, []string{
		"Asha Rao", "asha@raminfosys.com", "2024-03-04 09:15:00", "2024-03-04 17:45:30",
		"12.9716", "77.5946", "12.9721", "77.5933",
	}, rows[1])
	assert.Equal(t, []string{
		"Vikram Shah", "vikram@raminfosys.com", "2024-03-04 09:15:00", NotCheckedOut,
		"19.076", "72.8777", Missing, Missing,
	}, rows[2])

	styleID, err := f.GetCellStyle(SheetName, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	width, err := f.GetColWidth(SheetName, "B")
	require.NoError(t, err)
	assert.Equal(t, 30.0, width)
}

func TestWriteAttendance_EmptyHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAttendance(&buf, nil, time.UTC))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Employee Name", rows[0][0])
}

func TestWriteAttendance_UsesLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	records := []dashboard.AttendanceRecord{{
		Name: "Asha Rao", Email: "asha@raminfosys.com",
		CheckInTime: time.Date(2024, 3, 4, 3, 45, 0, 0, time.UTC),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteAttendance(&buf, records, loc))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(SheetName, "C2")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04 09:15:00", value)
}
