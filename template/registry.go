package template

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// HandlerFunc processes a matched cell of a rendered report.
// It receives the file, sheet name, 0-based row/col indices, and the raw cell value.
type HandlerFunc func(f *excelize.File, sheet string, row, col int, value string) error

// MatchFunc decides whether a handler applies to a cell.
type MatchFunc func(row, col int, value string) bool

// Registry holds matcher → handler mappings.
type Registry struct {
	handlers []entry
}

type entry struct {
	match   MatchFunc
	handler HandlerFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a handler for cells whose trimmed value equals label
// (e.g. "Theory Percentage").
func (r *Registry) Register(label string, handler HandlerFunc) {
	r.RegisterMatch(func(_, _ int, value string) bool {
		return strings.TrimSpace(value) == label
	}, handler)
}

// RegisterMatch adds a handler selected by an arbitrary matcher.
func (r *Registry) RegisterMatch(match MatchFunc, handler HandlerFunc) {
	r.handlers = append(r.handlers, entry{match: match, handler: handler})
}

// Process runs every handler whose matcher accepts the cell, in registration
// order, so style changes from several handlers stack on one cell.
// Returns the number of handlers executed.
func (r *Registry) Process(f *excelize.File, sheet string, row, col int, value string) (int, error) {
	n := 0
	for _, e := range r.handlers {
		if !e.match(row, col, value) {
			continue
		}
		if err := e.handler(f, sheet, row, col, value); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}
