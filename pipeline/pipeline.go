// Package pipeline runs discovery, extraction, aggregation and merging for
// one report.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/orayew2002/attendance-report/aggregate"
	"github.com/orayew2002/attendance-report/domain"
	"github.com/orayew2002/attendance-report/extract"
	"github.com/orayew2002/attendance-report/merge"
)

// Source lists input files in processing order.
type Source interface {
	Find() ([]string, error)
}

// SheetReader loads the raw grid of one input file.
type SheetReader interface {
	ReadSheet(path string) (domain.RawSheet, error)
}

// FileResult records what happened to one input file.
type FileResult struct {
	Path     string
	Subject  string
	Students int
	HasLab   bool
	Warnings []domain.CoercionWarning
	Skip     *extract.SkipError
}

// Skipped reports whether the file contributed nothing.
func (f FileResult) Skipped() bool {
	return f.Skip != nil
}

// Result is the outcome of a run. Report is nil when no file was usable.
type Result struct {
	RunID  string
	Files  []FileResult
	Report *domain.MergedReport
}

// Used returns the number of files that reached the merge.
func (r *Result) Used() int {
	n := 0
	for _, f := range r.Files {
		if !f.Skipped() {
			n++
		}
	}
	return n
}

// Pipeline turns a set of per-subject workbooks into a merged report.
type Pipeline struct {
	source Source
	reader SheetReader
	logger *slog.Logger
}

// New creates a Pipeline. A nil logger uses slog.Default().
func New(source Source, reader SheetReader, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{source: source, reader: reader, logger: logger}
}

// Run processes every file from the source in order. Problems with a single
// file are logged and recorded on the result; they never stop the run.
// When no file is usable the result is returned with merge.ErrNoValidInput.
func (p *Pipeline) Run() (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	log := p.logger.With(slog.String("run_id", res.RunID))

	files, err := p.source.Find()
	if err != nil {
		return nil, fmt.Errorf("discover input files: %w", err)
	}
	log.Info("input files discovered", slog.Int("count", len(files)))

	var tables []*domain.DerivedSubjectTable
	for _, path := range files {
		fr, derived := p.processFile(log, path)
		res.Files = append(res.Files, fr)
		if derived != nil {
			tables = append(tables, derived)
		}
	}

	report, err := merge.Merge(tables)
	if err != nil {
		if errors.Is(err, merge.ErrNoValidInput) {
			log.Error("no valid files to merge", slog.Int("files", len(files)))
		}
		return res, err
	}
	res.Report = report

	log.Info("report merged",
		slog.Int("files_used", res.Used()),
		slog.Int("files_skipped", len(res.Files)-res.Used()),
		slog.Int("students", len(report.Rows)),
		slog.Int("columns", len(report.Columns)))

	return res, nil
}

func (p *Pipeline) processFile(log *slog.Logger, path string) (FileResult, *domain.DerivedSubjectTable) {
	fr := FileResult{Path: path}
	log = log.With(slog.String("file", path))

	raw, err := p.reader.ReadSheet(path)
	if err != nil {
		fr.Skip = extract.Unreadable(path, err)
		log.Warn("skipping unreadable file", slog.String("reason", string(fr.Skip.Reason)), slog.Any("error", err))
		return fr, nil
	}
	log.Debug("sheet read", slog.String("sheet", raw.Name), slog.Int("rows", raw.RowCount()), slog.Int("cols", raw.ColCount()))

	table, err := extract.Extract(path, raw)
	if err != nil {
		var skip *extract.SkipError
		if !errors.As(err, &skip) {
			skip = &extract.SkipError{Source: path, Reason: extract.SkipUnreadable, Err: err}
		}
		fr.Skip = skip
		log.Warn("skipping file", slog.String("reason", string(skip.Reason)), slog.String("detail", skip.Detail))
		return fr, nil
	}

	for _, w := range table.Warnings {
		log.Warn("non-numeric cell treated as unset",
			slog.Int("row", w.Row),
			slog.String("column", w.Column),
			slog.String("value", w.Raw))
	}

	derived := aggregate.Derive(table)

	fr.Subject = table.Subject
	fr.Students = table.Len()
	fr.HasLab = table.HasLab
	fr.Warnings = table.Warnings

	log.Info("subject extracted",
		slog.String("subject", table.Subject),
		slog.Int("students", table.Len()),
		slog.Bool("lab", table.HasLab))

	return fr, derived
}
