package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/orayew2002/attendance-report/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestDiscoveryFind(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_physics.xlsx", "a_maths.xlsx", "~$a_maths.xlsx", "notes.txt", "AttendanceReport.xlsx"} {
		touch(t, filepath.Join(dir, name))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.xlsx"), 0755))

	d := NewDiscovery(dir, "*.xlsx", filepath.Join(dir, "AttendanceReport.xlsx"))
	files, err := d.Find()
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a_maths.xlsx"),
		filepath.Join(dir, "b_physics.xlsx"),
	}, files)
}

func TestDiscoveryMissingDirectory(t *testing.T) {
	_, err := NewDiscovery(filepath.Join(t.TempDir(), "missing"), "*.xlsx").Find()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDiscoveryBadPattern(t *testing.T) {
	_, err := NewDiscovery(t.TempDir(), "[").Find()
	assert.Error(t, err)
}

func TestWriteAndReadSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maths.xlsx")
	in := domain.RawSheet{Name: "Sheet1", Rows: [][]string{
		{"1 Engineering Mathematics"},
		{"Enrollment No.", "Name", "Total Theory", "Attended"},
		{"E001", "Ann", "50", "40"},
		{"E002", "Bob", "50", "absent"},
	}}
	require.NoError(t, WriteSheet(path, in))

	out, err := NewReader().ReadSheet(path)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", out.Name)
	assert.Equal(t, 4, out.RowCount())
	assert.Equal(t, 4, out.ColCount())
	assert.Equal(t, "1 Engineering Mathematics", out.Cell(0, 0))
	assert.Equal(t, "50", out.Cell(2, 2))
	assert.Equal(t, "absent", out.Cell(3, 3))
}

func TestReadSheetUsesFirstWorksheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Attendance"))
	_, err := f.NewSheet("Notes")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Attendance", "A1", "Maths"))
	require.NoError(t, f.SetCellValue("Notes", "A1", "ignore me"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	out, err := NewReader().ReadSheet(path)
	require.NoError(t, err)
	assert.Equal(t, "Attendance", out.Name)
	assert.Equal(t, "Maths", out.Cell(0, 0))
}

func TestReadSheetErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewReader().ReadSheet(filepath.Join(dir, "data.csv"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	broken := filepath.Join(dir, "broken.xlsx")
	touch(t, broken)
	_, err = NewReader().ReadSheet(broken)
	assert.Error(t, err)
}

func TestTrimTrailingEmpty(t *testing.T) {
	rows := [][]string{{"a"}, {"b", ""}, {" ", ""}, nil}
	assert.Equal(t, [][]string{{"a"}, {"b", ""}}, trimTrailingEmpty(rows))
}
