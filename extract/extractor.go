package extract

import (
	"fmt"
	"strings"

	"github.com/orayew2002/attendance-report/domain"
)

const (
	minRows = 2
	minCols = 4

	subjectRow = 0
	headerRow  = 1
)

// column identifies a header the extractor understands.
type column int

const (
	colEnrollment column = iota
	colName
	colTotalTheory
	colAttended
	colLab
	colLabAttended
)

// labels lists accepted header text per column, compared after trimming.
var labels = map[column][]string{
	colEnrollment:  {"Enrollment No.", "EnrollmentNo"},
	colName:        {"Name"},
	colTotalTheory: {"Total Theory", "TotalTheory"},
	colAttended:    {"Attended"},
	colLab:         {"Lab"},
	colLabAttended: {"Lab Attended", "LabAttended"},
}

// Extract turns one raw per-subject sheet into a SubjectTable.
// A file that cannot contribute returns a *SkipError.
func Extract(source string, sheet domain.RawSheet) (*domain.SubjectTable, error) {
	if sheet.RowCount() < minRows || sheet.ColCount() < minCols {
		detail := fmt.Sprintf("%dx%d", sheet.RowCount(), sheet.ColCount())
		return nil, NewSkipError(source, SkipTooSmall, detail)
	}

	cols := mapHeader(sheet.Rows[headerRow])

	if missing := missingColumns(cols, colEnrollment, colName); len(missing) > 0 {
		return nil, NewSkipError(source, SkipMissingIdentityColumns, strings.Join(missing, ", "))
	}
	if missing := missingColumns(cols, colTotalTheory, colAttended); len(missing) > 0 {
		return nil, NewSkipError(source, SkipMissingTheoryColumns, strings.Join(missing, ", "))
	}

	_, hasLab := cols[colLab]
	_, hasLabAttended := cols[colLabAttended]
	hasLab = hasLab && hasLabAttended

	subject := sheet.Cell(subjectRow, 0)
	table := domain.NewSubjectTable(subject, source, hasLab)

	for r := headerRow + 1; r < sheet.RowCount(); r++ {
		row := sheet.Rows[r]

		enrollment := strings.TrimSpace(cellAt(row, cols[colEnrollment]))
		if enrollment == "" {
			continue
		}

		rec := domain.SubjectRecord{
			Key: domain.StudentKey{
				EnrollmentNo: enrollment,
				Name:         strings.TrimSpace(cellAt(row, cols[colName])),
			},
		}

		p := rowParser{table: table, row: r, cells: row}
		rec.TotalTheory = p.number(cols[colTotalTheory], domain.MetricTotalTheory)
		rec.Attended = p.number(cols[colAttended], domain.MetricAttended)
		if hasLab {
			rec.Lab = p.number(cols[colLab], domain.MetricLab)
			rec.LabAttended = p.number(cols[colLabAttended], domain.MetricLabAttended)
		}

		table.Put(rec)
	}

	return table, nil
}

// mapHeader returns the 0-based position of every recognised header.
// When a label repeats, the first occurrence is used.
func mapHeader(header []string) map[column]int {
	cols := make(map[column]int)
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		for c, accepted := range labels {
			if _, seen := cols[c]; seen {
				continue
			}
			for _, label := range accepted {
				if name == label {
					cols[c] = i
				}
			}
		}
	}
	return cols
}

func missingColumns(cols map[column]int, want ...column) []string {
	var missing []string
	for _, c := range want {
		if _, ok := cols[c]; !ok {
			missing = append(missing, labels[c][0])
		}
	}
	return missing
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// rowParser coerces numeric cells of one data row and records warnings on
// the table for cells that are not numbers.
type rowParser struct {
	table *domain.SubjectTable
	row   int
	cells []string
}

func (p rowParser) number(col int, metric domain.Metric) domain.Value {
	raw := cellAt(p.cells, col)
	v, ok := domain.ParseValue(raw)
	if !ok {
		p.table.Warnings = append(p.table.Warnings, domain.CoercionWarning{
			Source: p.table.Source,
			Row:    p.row + 1,
			Column: string(metric),
			Raw:    raw,
		})
	}
	return v
}
