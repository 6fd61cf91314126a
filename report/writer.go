package report

import (
	"fmt"

	"github.com/orayew2002/attendance-report/domain"
	"github.com/orayew2002/attendance-report/excel"
	excelize "github.com/xuri/excelize/v2"
)

// WriteToFile renders r and saves it to path.
func WriteToFile(r *domain.MergedReport, opts Options, path string) error {
	f, err := build(r, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// WriteToBytes renders r and returns the workbook as bytes.
func WriteToBytes(r *domain.MergedReport, opts Options) ([]byte, error) {
	f, err := build(r, opts)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}

	return buf.Bytes(), nil
}

func build(r *domain.MergedReport, opts Options) (*excelize.File, error) {
	if opts.Sheet == "" {
		opts.Sheet = DefaultOptions().Sheet
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", opts.Sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create styles: %w", err)
	}

	steps := []struct {
		name string
		fn   func(*excelize.File, *styles, string, *domain.MergedReport, Options) error
	}{
		{"write headings", writeHeadings},
		{"write headers", writeHeaders},
		{"write rows", writeRows},
		{"fit columns", fitColumns},
	}

	for _, step := range steps {
		if err := step.fn(f, st, opts.Sheet, r, opts); err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return f, nil
}

type styles struct {
	department int
	heading    int
	header     int
	body       int
	percent    int
	whole      int
}

func newStyles(f *excelize.File) (*styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	body := excelize.Font{Family: "Arial", Size: 10}

	st := &styles{}
	for _, d := range []struct {
		dst   *int
		style *excelize.Style
	}{
		{&st.department, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}, Alignment: center}},
		{&st.heading, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}, Alignment: center}},
		{&st.header, &excelize.Style{Font: &excelize.Font{Family: "Arial", Size: 10, Bold: true}, Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}, Border: border}},
		{&st.body, &excelize.Style{Font: &body, Alignment: center, Border: border}},
		{&st.percent, &excelize.Style{Font: &body, Alignment: center, Border: border, NumFmt: 2}},
		{&st.whole, &excelize.Style{Font: &body, Alignment: center, Border: border, NumFmt: 1}},
	} {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return nil, err
		}
		*d.dst = id
	}

	return st, nil
}

func writeHeadings(f *excelize.File, st *styles, sheet string, r *domain.MergedReport, opts Options) error {
	last := ColumnCount(r) - 1

	headings := []struct {
		row   int
		text  string
		style int
	}{
		{DepartmentRow, opts.Department, st.department},
		{SessionRow, opts.Session, st.heading},
		{TitleRow, opts.Title, st.heading},
	}

	for _, h := range headings {
		topLeft, bottomRight := excel.Span(h.row, 0, h.row, last)
		if err := f.SetCellStr(sheet, topLeft, h.text); err != nil {
			return err
		}
		if err := f.MergeCell(sheet, topLeft, bottomRight); err != nil {
			return fmt.Errorf("merge row %d: %w", h.row+1, err)
		}
		if err := f.SetCellStyle(sheet, topLeft, bottomRight, h.style); err != nil {
			return err
		}
	}

	if err := f.SetRowHeight(sheet, DepartmentRow+1, 22); err != nil {
		return err
	}
	for _, row := range []int{SessionRow, TitleRow} {
		if err := f.SetRowHeight(sheet, row+1, 20); err != nil {
			return err
		}
	}

	return nil
}

func writeHeaders(f *excelize.File, st *styles, sheet string, r *domain.MergedReport, _ Options) error {
	for col, label := range []string{EnrollmentHeader, NameHeader} {
		top, bottom := excel.Span(SubjectRow, col, MetricRow, col)
		if err := f.SetCellStr(sheet, top, label); err != nil {
			return err
		}
		if err := f.MergeCell(sheet, top, bottom); err != nil {
			return fmt.Errorf("merge %s: %w", label, err)
		}
	}

	col := keyColumns
	for _, g := range r.Groups() {
		left, right := excel.Span(SubjectRow, col, SubjectRow, col+len(g.Metrics)-1)
		if err := f.SetCellStr(sheet, left, g.Subject); err != nil {
			return err
		}
		if len(g.Metrics) > 1 {
			if err := f.MergeCell(sheet, left, right); err != nil {
				return fmt.Errorf("merge subject %q: %w", g.Subject, err)
			}
		}
		for i, m := range g.Metrics {
			if err := f.SetCellStr(sheet, excel.CellName(MetricRow, col+i), string(m)); err != nil {
				return err
			}
		}
		col += len(g.Metrics)
	}

	for i, m := range domain.TotalMetrics {
		if err := f.SetCellStr(sheet, excel.CellName(MetricRow, col+i), string(m)); err != nil {
			return err
		}
	}

	topLeft, bottomRight := excel.Span(SubjectRow, 0, MetricRow, ColumnCount(r)-1)
	if err := f.SetCellStyle(sheet, topLeft, bottomRight, st.header); err != nil {
		return err
	}

	return f.SetRowHeight(sheet, MetricRow+1, metricRowHeight)
}

func writeRows(f *excelize.File, st *styles, sheet string, r *domain.MergedReport, _ Options) error {
	for i, row := range r.Rows {
		sheetRow := FirstDataRow + i

		if err := f.SetCellStr(sheet, excel.CellName(sheetRow, 0), row.Key.EnrollmentNo); err != nil {
			return fmt.Errorf("student %s: %w", row.Key.EnrollmentNo, err)
		}
		if err := f.SetCellStr(sheet, excel.CellName(sheetRow, 1), row.Key.Name); err != nil {
			return fmt.Errorf("student %s: %w", row.Key.EnrollmentNo, err)
		}

		for c, column := range r.Columns {
			v, ok := row.Cell(column).Get()
			if !ok {
				continue
			}
			cell := excel.CellName(sheetRow, keyColumns+c)
			if err := f.SetCellFloat(sheet, cell, v, -1, 64); err != nil {
				return fmt.Errorf("student %s, %s/%s: %w", row.Key.EnrollmentNo, column.Subject, column.Metric, err)
			}
		}

		totals := []float64{row.TotalClasses, row.TotalAttended, row.TotalPercentage}
		for t, v := range totals {
			cell := excel.CellName(sheetRow, keyColumns+len(r.Columns)+t)
			if err := f.SetCellFloat(sheet, cell, v, -1, 64); err != nil {
				return fmt.Errorf("student %s, totals: %w", row.Key.EnrollmentNo, err)
			}
		}
	}

	if len(r.Rows) == 0 {
		return nil
	}

	return styleBody(f, st, sheet, r)
}

func styleBody(f *excelize.File, st *styles, sheet string, r *domain.MergedReport) error {
	lastRow := FirstDataRow + len(r.Rows) - 1
	lastCol := ColumnCount(r) - 1

	topLeft, bottomRight := excel.Span(FirstDataRow, 0, lastRow, lastCol)
	if err := f.SetCellStyle(sheet, topLeft, bottomRight, st.body); err != nil {
		return err
	}

	for c, column := range r.Columns {
		if column.Metric != domain.MetricTheoryPercentage && column.Metric != domain.MetricLabPercentage {
			continue
		}
		top, bottom := excel.Span(FirstDataRow, keyColumns+c, lastRow, keyColumns+c)
		if err := f.SetCellStyle(sheet, top, bottom, st.percent); err != nil {
			return err
		}
	}

	top, bottom := excel.Span(FirstDataRow, lastCol, lastRow, lastCol)
	return f.SetCellStyle(sheet, top, bottom, st.whole)
}

func fitColumns(f *excelize.File, _ *styles, sheet string, r *domain.MergedReport, _ Options) error {
	widths := []float64{enrollmentWidth, nameWidth}
	for col, w := range widths {
		colName := excel.IndexToColumn(col)
		if err := f.SetColWidth(sheet, colName, colName, w); err != nil {
			return err
		}
	}

	first := excel.IndexToColumn(keyColumns)
	last := excel.IndexToColumn(ColumnCount(r) - 1)
	return f.SetColWidth(sheet, first, last, metricWidth)
}
