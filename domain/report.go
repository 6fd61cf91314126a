package domain

// Column addresses one (subject, metric) cell group in the merged report.
type Column struct {
	Subject string
	Metric  Metric
}

// ReportRow is one student's line in the merged report.
type ReportRow struct {
	Key             StudentKey
	Cells           map[Column]Value
	TotalClasses    float64
	TotalAttended   float64
	TotalPercentage float64
}

// Cell returns the value at col, unset when the student has no data there.
func (r ReportRow) Cell(col Column) Value {
	return r.Cells[col]
}

// MergedReport is the wide, student-keyed attendance summary.
type MergedReport struct {
	Columns []Column
	Rows    []ReportRow
}

// SubjectGroup is a run of adjacent columns that share a subject.
type SubjectGroup struct {
	Subject string
	Metrics []Metric
}

// Groups returns the report columns grouped by subject, in column order.
func (r *MergedReport) Groups() []SubjectGroup {
	var groups []SubjectGroup
	for _, col := range r.Columns {
		n := len(groups)
		if n > 0 && groups[n-1].Subject == col.Subject {
			groups[n-1].Metrics = append(groups[n-1].Metrics, col.Metric)
			continue
		}
		groups = append(groups, SubjectGroup{Subject: col.Subject, Metrics: []Metric{col.Metric}})
	}
	return groups
}

// Row returns the row for key.
func (r *MergedReport) Row(key StudentKey) (ReportRow, bool) {
	for _, row := range r.Rows {
		if row.Key == key {
			return row, true
		}
	}
	return ReportRow{}, false
}
