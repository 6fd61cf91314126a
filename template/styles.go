package template

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// StyleManager caches Excel styles so each style is created only once per file.
type StyleManager struct {
	file  *excelize.File
	cache map[string]int
}

// NewStyleManager creates a style manager bound to the given file.
func NewStyleManager(f *excelize.File) *StyleManager {
	return &StyleManager{file: f, cache: make(map[string]int)}
}

// Derive returns a style equal to base with change applied (cached per
// base and key). The base style's font, border and alignment are kept.
func (sm *StyleManager) Derive(base int, key string, change func(*excelize.Style)) (int, error) {
	cacheKey := fmt.Sprintf("%d|%s", base, key)
	if id, ok := sm.cache[cacheKey]; ok {
		return id, nil
	}

	style := &excelize.Style{}
	if base != 0 {
		existing, err := sm.file.GetStyle(base)
		if err != nil {
			return 0, fmt.Errorf("read style %d: %w", base, err)
		}
		style = existing
	}

	change(style)

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	sm.cache[cacheKey] = id
	return id, nil
}

// Restyle applies change to the style of a single cell.
func (sm *StyleManager) Restyle(sheet, cell, key string, change func(*excelize.Style)) error {
	base, err := sm.file.GetCellStyle(sheet, cell)
	if err != nil {
		return fmt.Errorf("get style %s: %w", cell, err)
	}

	id, err := sm.Derive(base, key, change)
	if err != nil {
		return fmt.Errorf("derive style %s: %w", cell, err)
	}

	return sm.file.SetCellStyle(sheet, cell, cell, id)
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}
