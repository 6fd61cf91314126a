package domain

// Metric names a per-subject or report-wide column.
// The string form is the label written to the report.
type Metric string

const (
	MetricTotalTheory      Metric = "Total Theory"
	MetricAttended         Metric = "Attended"
	MetricTheoryPercentage Metric = "Theory Percentage"
	MetricLab              Metric = "Lab"
	MetricLabAttended      Metric = "Lab Attended"
	MetricLabPercentage    Metric = "Lab Percentage"

	MetricTotalClasses    Metric = "Total Classes"
	MetricTotalAttended   Metric = "Total Attended"
	MetricTotalPercentage Metric = "Total Percentage"
)

// TheoryMetrics and LabMetrics list the per-subject columns in report order.
var (
	TheoryMetrics = []Metric{MetricTotalTheory, MetricAttended, MetricTheoryPercentage}
	LabMetrics    = []Metric{MetricLab, MetricLabAttended, MetricLabPercentage}
	TotalMetrics  = []Metric{MetricTotalClasses, MetricTotalAttended, MetricTotalPercentage}
)

// RawSheet is a worksheet grid exactly as read, without header interpretation.
type RawSheet struct {
	Name string
	Rows [][]string
}

// RowCount returns the number of rows in the grid.
func (s RawSheet) RowCount() int {
	return len(s.Rows)
}

// ColCount returns the width of the widest row.
func (s RawSheet) ColCount() int {
	n := 0
	for _, row := range s.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Cell returns the value at 0-based row/col, or "" outside the grid.
func (s RawSheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	if col < 0 || col >= len(s.Rows[row]) {
		return ""
	}
	return s.Rows[row][col]
}

// StudentKey identifies a student across subject tables.
type StudentKey struct {
	EnrollmentNo string
	Name         string
}

// Compare orders keys by EnrollmentNo, then Name.
func (k StudentKey) Compare(o StudentKey) int {
	switch {
	case k.EnrollmentNo < o.EnrollmentNo:
		return -1
	case k.EnrollmentNo > o.EnrollmentNo:
		return 1
	case k.Name < o.Name:
		return -1
	case k.Name > o.Name:
		return 1
	}
	return 0
}

// SubjectRecord holds one student's counts for one subject.
// Lab and LabAttended stay unset when the subject has no lab columns.
type SubjectRecord struct {
	Key         StudentKey
	TotalTheory Value
	Attended    Value
	Lab         Value
	LabAttended Value
}

// CoercionWarning reports a numeric cell that could not be parsed and was
// treated as unset.
type CoercionWarning struct {
	Source string
	Row    int // 1-based sheet row
	Column string
	Raw    string
}

// SubjectTable is one subject's attendance normalized to a common shape.
type SubjectTable struct {
	Subject  string
	Source   string
	HasLab   bool
	Warnings []CoercionWarning

	records []SubjectRecord
	index   map[StudentKey]int
}

// NewSubjectTable creates an empty table for subject read from source.
func NewSubjectTable(subject, source string, hasLab bool) *SubjectTable {
	return &SubjectTable{
		Subject: subject,
		Source:  source,
		HasLab:  hasLab,
		index:   make(map[StudentKey]int),
	}
}

// Put stores rec. A record with an existing key replaces the earlier one in
// place, so the last row for a key wins and row order follows first sight.
func (t *SubjectTable) Put(rec SubjectRecord) {
	if t.index == nil {
		t.index = make(map[StudentKey]int)
	}
	if i, ok := t.index[rec.Key]; ok {
		t.records[i] = rec
		return
	}
	t.index[rec.Key] = len(t.records)
	t.records = append(t.records, rec)
}

// Lookup returns the record for key.
func (t *SubjectTable) Lookup(key StudentKey) (SubjectRecord, bool) {
	i, ok := t.index[key]
	if !ok {
		return SubjectRecord{}, false
	}
	return t.records[i], true
}

// Records returns the records in table order.
func (t *SubjectTable) Records() []SubjectRecord {
	return t.records
}

// Len returns the number of distinct students.
func (t *SubjectTable) Len() int {
	return len(t.records)
}

// DerivedRecord is a SubjectRecord with its computed percentages.
type DerivedRecord struct {
	SubjectRecord
	TheoryPercentage float64
	LabPercentage    float64
}

// Value returns the cell for metric m. Percentages are always set; lab
// metrics are unset when hasLab is false.
func (r DerivedRecord) Value(m Metric, hasLab bool) Value {
	switch m {
	case MetricTotalTheory:
		return r.TotalTheory
	case MetricAttended:
		return r.Attended
	case MetricTheoryPercentage:
		return Num(r.TheoryPercentage)
	}

	if !hasLab {
		return Unset()
	}

	switch m {
	case MetricLab:
		return r.Lab
	case MetricLabAttended:
		return r.LabAttended
	case MetricLabPercentage:
		return Num(r.LabPercentage)
	}

	return Unset()
}

// DerivedSubjectTable is a SubjectTable with percentage columns computed.
type DerivedSubjectTable struct {
	Subject string
	Source  string
	HasLab  bool
	Records []DerivedRecord
}

// Metrics returns the columns this table contributes, in report order.
func (t *DerivedSubjectTable) Metrics() []Metric {
	if !t.HasLab {
		return TheoryMetrics
	}
	metrics := make([]Metric, 0, len(TheoryMetrics)+len(LabMetrics))
	metrics = append(metrics, TheoryMetrics...)
	return append(metrics, LabMetrics...)
}
