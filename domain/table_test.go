package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawSheetDimensions(t *testing.T) {
	s := RawSheet{Rows: [][]string{{"Maths"}, {"a", "b", "c", "d"}, {"x"}}}

	assert.Equal(t, 3, s.RowCount())
	assert.Equal(t, 4, s.ColCount())
	assert.Equal(t, "d", s.Cell(1, 3))
	assert.Equal(t, "", s.Cell(2, 3))
	assert.Equal(t, "", s.Cell(9, 0))
}

func TestSubjectTablePutLastWins(t *testing.T) {
	table := NewSubjectTable("Maths", "maths.xlsx", false)
	a := StudentKey{EnrollmentNo: "E1", Name: "Ann"}
	b := StudentKey{EnrollmentNo: "E2", Name: "Bob"}

	table.Put(SubjectRecord{Key: a, TotalTheory: Num(50), Attended: Num(10)})
	table.Put(SubjectRecord{Key: b, TotalTheory: Num(50), Attended: Num(20)})
	table.Put(SubjectRecord{Key: a, TotalTheory: Num(50), Attended: Num(45)})

	require.Equal(t, 2, table.Len())
	assert.Equal(t, a, table.Records()[0].Key, "replaced record keeps its first position")

	rec, ok := table.Lookup(a)
	require.True(t, ok)
	assert.Equal(t, Num(45), rec.Attended)
}

func TestDerivedRecordValueWithoutLab(t *testing.T) {
	rec := DerivedRecord{
		SubjectRecord:    SubjectRecord{TotalTheory: Num(50), Attended: Num(40), Lab: Num(10)},
		TheoryPercentage: 80,
	}

	assert.Equal(t, Num(80), rec.Value(MetricTheoryPercentage, false))
	assert.False(t, rec.Value(MetricLab, false).IsSet())
	assert.False(t, rec.Value(MetricLabPercentage, false).IsSet())
	assert.Equal(t, Num(10), rec.Value(MetricLab, true))
}

func TestMergedReportGroups(t *testing.T) {
	r := &MergedReport{Columns: []Column{
		{Subject: "Maths", Metric: MetricTotalTheory},
		{Subject: "Maths", Metric: MetricAttended},
		{Subject: "Physics", Metric: MetricLab},
	}}

	groups := r.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "Maths", groups[0].Subject)
	assert.Equal(t, []Metric{MetricTotalTheory, MetricAttended}, groups[0].Metrics)
	assert.Equal(t, []Metric{MetricLab}, groups[1].Metrics)
}

func TestGenerateSheetLayout(t *testing.T) {
	roster := GenerateRoster(3)
	sheet := GenerateSheet(SampleSubject{Name: "2 Physics", HasLab: true}, roster)

	require.Equal(t, 5, sheet.RowCount())
	assert.Equal(t, "2 Physics", sheet.Cell(0, 0))
	assert.Equal(t, "Lab Attended", sheet.Cell(1, 6))
	assert.Equal(t, roster[2].EnrollmentNo, sheet.Cell(4, 1))
	assert.Len(t, SampleSubjects(100), len(sampleSubjects))
}
