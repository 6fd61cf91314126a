// Package report renders a merged attendance report into a workbook.
package report

import "github.com/orayew2002/attendance-report/domain"

// Row positions (0-based) of the rendered sheet.
const (
	DepartmentRow = 1
	SessionRow    = 2
	TitleRow      = 3
	SubjectRow    = 4
	MetricRow     = 5
	FirstDataRow  = 6
)

// Index column labels.
const (
	EnrollmentHeader = "Enrollment No."
	NameHeader       = "Name"
)

const keyColumns = 2

// Options carries the sheet name and heading text.
type Options struct {
	Sheet      string
	Department string
	Session    string
	Title      string
}

// DefaultOptions returns the headings used by the department's reports.
func DefaultOptions() Options {
	return Options{
		Sheet:      "Summary",
		Department: "DEPARTMENT OF COMPUTER ENGINEERING",
		Session:    "SESSION : JULY-DEC 2024; Semester 'A'",
		Title:      "BTech. IYEAR ATTENDANCE SHEET",
	}
}

// ColumnCount returns the number of sheet columns used by r.
func ColumnCount(r *domain.MergedReport) int {
	return keyColumns + len(r.Columns) + len(domain.TotalMetrics)
}

// Key columns are wide; metric columns are narrow since their headers are
// rotated.
var (
	enrollmentWidth = 20.0
	nameWidth       = 30.0
	metricWidth     = 8.0
	metricRowHeight = 110.0
)
