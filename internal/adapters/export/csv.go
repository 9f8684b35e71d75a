package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"campusevents/internal/domain"
)

// Header row of the attendance export. Column order and text are part of
// the compatibility contract for existing consumers of exported files.
var attendanceHeader = []string{"Student ID", "Student Name", "Attendance Status"}

// WriteAttendanceCSV serializes the attendance sheet to w with the fixed
// three-column header.
func WriteAttendanceCSV(w io.Writer, entries []*domain.AttendanceEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(attendanceHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.StudentID, e.Name, string(e.Status)}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
