package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/orayew2002/attendance-report/domain"
	"github.com/orayew2002/attendance-report/excel"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for files that are neither xlsx nor xls.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrNoSheets is returned for workbooks without a readable worksheet.
var ErrNoSheets = errors.New("workbook has no worksheets")

// xlsCharset is used to decode legacy BIFF string records.
const xlsCharset = "utf-8"

// Reader reads the first worksheet of a workbook.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadSheet returns the first worksheet of path as a raw grid.
func (r *Reader) ReadSheet(path string) (domain.RawSheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	case ".xls":
		return readXLS(path)
	default:
		return domain.RawSheet{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func readXLSX(path string) (domain.RawSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.RawSheet{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.RawSheet{}, fmt.Errorf("%s: %w", path, ErrNoSheets)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return domain.RawSheet{}, fmt.Errorf("sheet %q: %w", sheets[0], err)
	}

	return domain.RawSheet{Name: sheets[0], Rows: rows}, nil
}

func readXLS(path string) (domain.RawSheet, error) {
	wb, err := xls.Open(path, xlsCharset)
	if err != nil {
		return domain.RawSheet{}, fmt.Errorf("open %s: %w", path, err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return domain.RawSheet{}, fmt.Errorf("%s: %w", path, ErrNoSheets)
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cols := make([]string, row.LastCol())
		for j := range cols {
			cols[j] = row.Col(j)
		}
		rows = append(rows, cols)
	}

	return domain.RawSheet{Name: sheet.Name, Rows: trimTrailingEmpty(rows)}, nil
}

// trimTrailingEmpty drops blank rows at the end of the grid so the row count
// matches what excelize reports for the same data.
func trimTrailingEmpty(rows [][]string) [][]string {
	for len(rows) > 0 && blank(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteSheet saves sheet as a single-worksheet xlsx file at path.
func WriteSheet(path string, sheet domain.RawSheet) error {
	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	if name != "Sheet1" {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	for r, row := range sheet.Rows {
		for c, val := range row {
			if val == "" {
				continue
			}
			cell := excel.CellName(r, c)
			if err := setTyped(f, name, cell, val); err != nil {
				return fmt.Errorf("cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

// setTyped writes numbers as numeric cells so the file looks like one an
// instructor typed in by hand.
func setTyped(f *excelize.File, sheet, cell, val string) error {
	if v, ok := domain.ParseValue(val); ok {
		if n, set := v.Get(); set {
			return f.SetCellFloat(sheet, cell, n, -1, 64)
		}
	}
	return f.SetCellStr(sheet, cell, val)
}
