// Package export renders attendance reports as spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/domain/dashboard"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Attendance"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FileName    = "attendance_report.xlsx"

	NotCheckedOut = "Not checked out"
	Missing       = "-"

	timeLayout  = "2006-01-02 15:04:05"
	headerColor = "4472C4"
)

type column struct {
	title string
	width float64
}

var columns = []column{
	{"Employee Name", 25},
	{"Email", 30},
	{"Check-in Time", 20},
	{"Check-out Time", 20},
	{"Check-in Lat", 15},
	{"Check-in Long", 15},
	{"Check-out Lat", 15},
	{"Check-out Long", 15},
}

// WriteAttendance writes records as an xlsx workbook to w. Times are shown in loc.
func WriteAttendance(w io.Writer, records []dashboard.AttendanceRecord, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	for i, col := range columns {
		if err := sw.SetColWidth(i+1, i+1, col.width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: col.title}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row(rec, loc)); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}

	return f.Write(w)
}

func row(rec dashboard.AttendanceRecord, loc *time.Location) []interface{} {
	checkOut := NotCheckedOut
	if rec.CheckOutTime != nil {
		checkOut = rec.CheckOutTime.In(loc).Format(timeLayout)
	}
	return []interface{}{
		rec.Name,
		rec.Email,
		rec.CheckInTime.In(loc).Format(timeLayout),
		checkOut,
		rec.CheckInLat,
		rec.CheckInLong,
		coordinate(rec.CheckOutLat),
		coordinate(rec.CheckOutLong),
	}
}

func coordinate(v *float64) interface{} {
	if v == nil {
		return Missing
	}
	return *v
}
