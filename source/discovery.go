// Package source finds per-subject attendance workbooks and reads them as
// raw grids.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discovery globs an input directory for workbooks.
type Discovery struct {
	dir     string
	pattern string
	exclude map[string]struct{}
}

// NewDiscovery creates a Discovery over dir/pattern. Paths listed in exclude
// (typically the report being written) are never returned.
func NewDiscovery(dir, pattern string, exclude ...string) *Discovery {
	d := &Discovery{dir: dir, pattern: pattern, exclude: make(map[string]struct{})}
	for _, p := range exclude {
		if abs, err := filepath.Abs(p); err == nil {
			d.exclude[abs] = struct{}{}
		}
	}
	return d
}

// Find returns matching files sorted by path.
// Directories and Office lock files ("~$report.xlsx") are skipped.
func (d *Discovery) Find() ([]string, error) {
	if _, err := os.Stat(d.dir); err != nil {
		return nil, fmt.Errorf("input directory %s: %w", d.dir, err)
	}

	matches, err := filepath.Glob(filepath.Join(d.dir, d.pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", d.pattern, err)
	}

	var files []string
	for _, path := range matches {
		if strings.HasPrefix(filepath.Base(path), "~$") {
			continue
		}

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		if abs, err := filepath.Abs(path); err == nil {
			if _, skip := d.exclude[abs]; skip {
				continue
			}
		}

		files = append(files, path)
	}

	slices.Sort(files)
	return files, nil
}
