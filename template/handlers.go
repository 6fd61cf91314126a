package template

import (
	"fmt"
	"strings"

	"github.com/orayew2002/attendance-report/domain"
	"github.com/orayew2002/attendance-report/excel"
	"github.com/xuri/excelize/v2"
)

// HeaderRotation is the text angle applied to metric header cells.
const HeaderRotation = 90

// Fill pairs a header label with a solid background color (RGB hex).
type Fill struct {
	Label string
	Color string
}

// Fill colors for the metric sub-headers.
const (
	TheoryFillColor = "FFFF99"
	LabFillColor    = "99CCFF"
	TotalFillColor  = "A9A9A9"
)

// DefaultFills color-codes percentage and total headers.
var DefaultFills = []Fill{
	{Label: string(domain.MetricTheoryPercentage), Color: TheoryFillColor},
	{Label: string(domain.MetricLabPercentage), Color: LabFillColor},
	{Label: string(domain.MetricTotalClasses), Color: TotalFillColor},
	{Label: string(domain.MetricTotalAttended), Color: TotalFillColor},
	{Label: string(domain.MetricTotalPercentage), Color: TotalFillColor},
}

// RegisterDefaults registers header rotation for metricRow (0-based) and
// the default fills.
func RegisterDefaults(r *Registry, metricRow int) {
	RegisterRotateHandler(r, metricRow)
	for _, fill := range DefaultFills {
		RegisterFillHandler(r, fill)
	}
}

// styler lazily binds a StyleManager to the file being processed, so one
// registry can be reused across files.
type styler struct {
	sm *StyleManager
}

func (s *styler) manager(f *excelize.File) *StyleManager {
	if s.sm == nil || s.sm.file != f {
		s.sm = NewStyleManager(f)
	}
	return s.sm
}

// ---------- rotation ----------

// RegisterRotateHandler rotates every non-empty cell of row (0-based) by
// HeaderRotation degrees, centered both ways.
func RegisterRotateHandler(r *Registry, row int) {
	s := &styler{}
	r.RegisterMatch(func(cellRow, _ int, value string) bool {
		return cellRow == row && strings.TrimSpace(value) != ""
	}, func(f *excelize.File, sheet string, row, col int, _ string) error {
		cell := excel.CellName(row, col)
		if err := s.manager(f).Restyle(sheet, cell, "rotate", rotate); err != nil {
			return fmt.Errorf("rotate %s: %w", cell, err)
		}
		return nil
	})
}

func rotate(style *excelize.Style) {
	if style.Alignment == nil {
		style.Alignment = &excelize.Alignment{}
	}
	style.Alignment.TextRotation = HeaderRotation
	style.Alignment.Horizontal = "center"
	style.Alignment.Vertical = "center"
}

// ---------- fills ----------

// RegisterFillHandler fills every cell whose trimmed value equals fill.Label.
func RegisterFillHandler(r *Registry, fill Fill) {
	s := &styler{}
	key := "fill:" + fill.Color
	r.Register(fill.Label, func(f *excelize.File, sheet string, row, col int, _ string) error {
		cell := excel.CellName(row, col)
		err := s.manager(f).Restyle(sheet, cell, key, func(style *excelize.Style) {
			style.Fill = solidFill(fill.Color)
		})
		if err != nil {
			return fmt.Errorf("fill %s: %w", cell, err)
		}
		return nil
	})
}
