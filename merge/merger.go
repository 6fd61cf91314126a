// Package merge joins per-subject tables into one student-keyed report.
package merge

import (
	"errors"
	"slices"

	"github.com/orayew2002/attendance-report/domain"
)

// TotalPercentagePlaces is the rounding precision of the overall percentage.
const TotalPercentagePlaces = 0

// ErrNoValidInput is returned when no table survived extraction.
var ErrNoValidInput = errors.New("no valid input: no file produced a usable table")

// Merge outer-joins tables on (EnrollmentNo, Name) and computes totals.
//
// Tables are folded in order. When two tables write the same
// (subject, metric) cell for the same student, the later one wins.
// Rows are sorted by EnrollmentNo, then Name.
func Merge(tables []*domain.DerivedSubjectTable) (*domain.MergedReport, error) {
	if len(tables) == 0 {
		return nil, ErrNoValidInput
	}

	var columns []domain.Column
	seenCols := make(map[domain.Column]struct{})
	rows := make(map[domain.StudentKey]map[domain.Column]domain.Value)

	for _, t := range tables {
		metrics := t.Metrics()
		for _, m := range metrics {
			col := domain.Column{Subject: t.Subject, Metric: m}
			if _, ok := seenCols[col]; !ok {
				seenCols[col] = struct{}{}
				columns = append(columns, col)
			}
		}

		for _, rec := range t.Records {
			cells, ok := rows[rec.Key]
			if !ok {
				cells = make(map[domain.Column]domain.Value)
				rows[rec.Key] = cells
			}
			for _, m := range metrics {
				cells[domain.Column{Subject: t.Subject, Metric: m}] = rec.Value(m, t.HasLab)
			}
		}
	}

	report := &domain.MergedReport{
		Columns: groupBySubject(columns),
		Rows:    make([]domain.ReportRow, 0, len(rows)),
	}

	for key, cells := range rows {
		report.Rows = append(report.Rows, totals(domain.ReportRow{Key: key, Cells: cells}, report.Columns))
	}

	slices.SortFunc(report.Rows, func(a, b domain.ReportRow) int {
		return a.Key.Compare(b.Key)
	})

	return report, nil
}

// groupBySubject keeps subjects in first-seen order and places each
// subject's metrics next to each other in the fixed metric order.
func groupBySubject(columns []domain.Column) []domain.Column {
	var subjects []string
	bySubject := make(map[string]map[domain.Metric]bool)
	for _, col := range columns {
		if _, ok := bySubject[col.Subject]; !ok {
			subjects = append(subjects, col.Subject)
			bySubject[col.Subject] = make(map[domain.Metric]bool)
		}
		bySubject[col.Subject][col.Metric] = true
	}

	order := append(slices.Clone(domain.TheoryMetrics), domain.LabMetrics...)

	grouped := make([]domain.Column, 0, len(columns))
	for _, s := range subjects {
		for _, m := range order {
			if bySubject[s][m] {
				grouped = append(grouped, domain.Column{Subject: s, Metric: m})
			}
		}
	}
	return grouped
}

// totals fills the report-wide columns. Sums count an unset cell as zero;
// the overall percentage is zero when there are no classes.
// Cells are summed in column order so the result does not depend on map order.
func totals(row domain.ReportRow, columns []domain.Column) domain.ReportRow {
	var classes, attended float64
	for _, col := range columns {
		v := row.Cells[col]
		switch col.Metric {
		case domain.MetricTotalTheory, domain.MetricLab:
			classes += v.Or(0)
		case domain.MetricAttended, domain.MetricLabAttended:
			attended += v.Or(0)
		}
	}

	row.TotalClasses = classes
	row.TotalAttended = attended
	row.TotalPercentage = domain.Percentage(domain.Num(attended), domain.Num(classes), TotalPercentagePlaces)
	return row
}
