package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orayew2002/attendance-report/config"
	"github.com/orayew2002/attendance-report/domain"
	"github.com/orayew2002/attendance-report/merge"
	"github.com/orayew2002/attendance-report/report"
	"github.com/orayew2002/attendance-report/source"
	"github.com/orayew2002/attendance-report/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.Input.Dir = dir
	cfg.Output.File = filepath.Join(dir, cfg.Output.File)
	return cfg
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildFromSamples(t *testing.T) {
	dir := t.TempDir()
	paths, err := writeSamples(dir, 3, 10)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	cfg := testConfig(dir)
	var out bytes.Buffer
	require.NoError(t, build(cfg, quiet(), &out, 5))

	assert.Contains(t, out.String(), "3 used, 0 skipped, 10 students")
	assert.Contains(t, out.String(), "... 5 more rows")

	f, err := excelize.OpenFile(cfg.Output.File)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(cfg.Output.Sheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, report.EnrollmentHeader, v)

	v, err = f.GetCellValue(cfg.Output.Sheet, "A7")
	require.NoError(t, err)
	assert.Equal(t, "0801CS240001", v)

	// metric headers are rotated by the restyle pass
	id, err := f.GetCellStyle(cfg.Output.Sheet, "C6")
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	require.NotNil(t, style.Alignment)
	assert.Equal(t, template.HeaderRotation, style.Alignment.TextRotation)

	// a rerun ignores the report it wrote before
	out.Reset()
	require.NoError(t, build(cfg, quiet(), &out, 0))
	assert.Contains(t, out.String(), "3 used, 0 skipped")
}

func TestBuildWithoutUsableInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, source.WriteSheet(filepath.Join(dir, "a.xlsx"), domain.RawSheet{
		Rows: [][]string{{"only a title"}},
	}))

	cfg := testConfig(dir)
	var out bytes.Buffer
	err := build(cfg, quiet(), &out, 0)
	assert.ErrorIs(t, err, merge.ErrNoValidInput)
	assert.Contains(t, out.String(), "skipped: too_small")

	_, statErr := os.Stat(cfg.Output.File)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildFlagsApply(t *testing.T) {
	cfg := config.Default()
	f := &buildFlags{input: "in", output: "out.xlsx"}
	f.apply(cfg)

	assert.Equal(t, "in", cfg.Input.Dir)
	assert.Equal(t, "*.xlsx", cfg.Input.Pattern)
	assert.Equal(t, "out.xlsx", cfg.Output.File)
}

func TestStyleCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")
	r := &domain.MergedReport{
		Columns: []domain.Column{{Subject: "1 Maths", Metric: domain.MetricTheoryPercentage}},
		Rows: []domain.ReportRow{{
			Key:   domain.StudentKey{EnrollmentNo: "E001", Name: "Ann"},
			Cells: map[domain.Column]domain.Value{},
		}},
	}
	require.NoError(t, report.WriteToFile(r, report.DefaultOptions(), path))

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"style", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "done:")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	id, err := f.GetCellStyle("Summary", "C6")
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	require.Len(t, style.Fill.Color, 1)
	assert.Equal(t, template.TheoryFillColor, strings.TrimPrefix(strings.ToUpper(style.Fill.Color[0]), "#"))
}
