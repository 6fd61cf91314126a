// Package console prints run summaries and report previews to a terminal.
package console

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/orayew2002/attendance-report/domain"
	"github.com/orayew2002/attendance-report/pipeline"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	ok      = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
)

// PrintSummary writes one line per input file followed by a totals line.
func PrintSummary(w io.Writer, res *pipeline.Result) {
	heading.Fprintf(w, "\nInput files (run %s)\n", res.RunID)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Subject", "Students", "Lab", "Warnings", "Status"})
	table.SetAutoWrapText(false)

	for _, f := range res.Files {
		status := "used"
		if f.Skipped() {
			status = "skipped: " + string(f.Skip.Reason)
			if f.Skip.Detail != "" {
				status += " (" + f.Skip.Detail + ")"
			}
		}
		table.Append([]string{
			filepath.Base(f.Path),
			f.Subject,
			strconv.Itoa(f.Students),
			yesNo(f.HasLab),
			strconv.Itoa(len(f.Warnings)),
			status,
		})
	}
	table.Render()

	skipped := len(res.Files) - res.Used()
	line := fmt.Sprintf("%d used, %d skipped", res.Used(), skipped)
	if res.Report != nil {
		line += fmt.Sprintf(", %d students", len(res.Report.Rows))
	}
	if skipped > 0 || res.Report == nil {
		warn.Fprintln(w, line)
		return
	}
	ok.Fprintln(w, line)
}

// PrintReport writes the first limit rows of r with their totals.
// A limit of zero or less prints every row.
func PrintReport(w io.Writer, r *domain.MergedReport, limit int) {
	heading.Fprintln(w, "\nReport preview")

	table := tablewriter.NewWriter(w)
	header := []string{"Enrollment No.", "Name"}
	for _, g := range r.Groups() {
		header = append(header, g.Subject)
	}
	for _, m := range domain.TotalMetrics {
		header = append(header, string(m))
	}
	table.SetHeader(header)
	table.SetAutoWrapText(false)

	rows := r.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	for _, row := range rows {
		line := []string{row.Key.EnrollmentNo, row.Key.Name}
		for _, g := range r.Groups() {
			line = append(line, subjectCell(row, g))
		}
		line = append(line,
			formatNumber(row.TotalClasses),
			formatNumber(row.TotalAttended),
			formatNumber(row.TotalPercentage)+"%")
		table.Append(line)
	}
	table.Render()

	if len(rows) < len(r.Rows) {
		fmt.Fprintf(w, "... %d more rows\n", len(r.Rows)-len(rows))
	}
}

// subjectCell condenses a subject group to "T% / L%" for the preview.
func subjectCell(row domain.ReportRow, g domain.SubjectGroup) string {
	theory := row.Cell(domain.Column{Subject: g.Subject, Metric: domain.MetricTheoryPercentage})
	if !theory.IsSet() {
		return "-"
	}

	cell := theory.String() + "%"
	lab := row.Cell(domain.Column{Subject: g.Subject, Metric: domain.MetricLabPercentage})
	if lab.IsSet() {
		cell += " / " + lab.String() + "%"
	}
	return cell
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
