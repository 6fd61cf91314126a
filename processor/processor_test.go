package processor

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orayew2002/attendance-report/domain"
	"github.com/orayew2002/attendance-report/report"
	"github.com/orayew2002/attendance-report/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func rendered(t *testing.T) []byte {
	t.Helper()
	col := domain.Column{Subject: "Maths", Metric: domain.MetricTheoryPercentage}
	r := &domain.MergedReport{
		Columns: []domain.Column{col},
		Rows: []domain.ReportRow{{
			Key:   domain.StudentKey{EnrollmentNo: "E001", Name: "Ann"},
			Cells: map[domain.Column]domain.Value{col: domain.Num(80)},
		}},
	}
	data, err := report.WriteToBytes(r, report.DefaultOptions())
	require.NoError(t, err)
	return data
}

func defaults() *template.Registry {
	r := template.New()
	template.RegisterDefaults(r, report.MetricRow)
	return r
}

func assertStyled(t *testing.T, f *excelize.File) {
	t.Helper()
	sheet := report.DefaultOptions().Sheet

	v, err := f.GetCellValue(sheet, "C6")
	require.NoError(t, err)
	require.Equal(t, "Theory Percentage", v)

	id, err := f.GetCellStyle(sheet, "C6")
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)

	require.NotNil(t, style.Alignment)
	assert.Equal(t, template.HeaderRotation, style.Alignment.TextRotation)
	require.NotEmpty(t, style.Fill.Color)
	assert.Contains(t, strings.ToUpper(style.Fill.Color[0]), template.TheoryFillColor)

	id, err = f.GetCellStyle(sheet, "D6")
	require.NoError(t, err)
	style, err = f.GetStyle(id)
	require.NoError(t, err)
	require.NotEmpty(t, style.Fill.Color)
	assert.Contains(t, strings.ToUpper(style.Fill.Color[0]), template.TotalFillColor)
}

func TestProcessBytes(t *testing.T) {
	out, err := New(defaults()).ProcessBytes(rendered(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assertStyled(t, f)
}

func TestProcessFileInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AttendanceReport.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rendered(t)))
	require.NoError(t, err)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	require.NoError(t, New(defaults()).ProcessFile(path, path))

	f, err = excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assertStyled(t, f)
}

func TestProcessBytesRejectsGarbage(t *testing.T) {
	_, err := New(defaults()).ProcessBytes([]byte("not a workbook"))
	assert.Error(t, err)
}
