package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/orayew2002/attendance-report/config"
	"github.com/orayew2002/attendance-report/console"
	"github.com/orayew2002/attendance-report/domain"
	"github.com/orayew2002/attendance-report/logging"
	"github.com/orayew2002/attendance-report/merge"
	"github.com/orayew2002/attendance-report/pipeline"
	"github.com/orayew2002/attendance-report/processor"
	"github.com/orayew2002/attendance-report/report"
	"github.com/orayew2002/attendance-report/source"
	"github.com/orayew2002/attendance-report/template"
	"github.com/spf13/cobra"
)

type buildFlags struct {
	input   string
	pattern string
	output  string
	preview int
}

func newBuildCommand(g *globals) *cobra.Command {
	f := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the merged attendance report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(g.configPath)
			if err != nil {
				return err
			}
			f.apply(cfg)
			if g.logLevel != "" {
				cfg.Logging.Level = g.logLevel
			}

			logger, closer, err := logging.New(cfg.Logging)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer closer.Close()

			return build(cfg, logger, cmd.OutOrStdout(), f.preview)
		},
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Directory with per-subject workbooks")
	cmd.Flags().StringVar(&f.pattern, "pattern", "", "Glob for input files inside the input directory")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Report file to write")
	cmd.Flags().IntVar(&f.preview, "preview", 0, "Print the first N report rows")

	return cmd
}

// apply overrides cfg with the flags that were set.
func (f *buildFlags) apply(cfg *config.Config) {
	if f.input != "" {
		cfg.Input.Dir = f.input
	}
	if f.pattern != "" {
		cfg.Input.Pattern = f.pattern
	}
	if f.output != "" {
		cfg.Output.File = f.output
	}
}

// build runs the pipeline, renders and restyles the report and writes it to
// cfg.Output.File. Nothing is written when no input file is usable.
func build(cfg *config.Config, logger *slog.Logger, out io.Writer, preview int) error {
	discovery := source.NewDiscovery(cfg.Input.Dir, cfg.Input.Pattern, cfg.Output.File)
	res, err := pipeline.New(discovery, source.NewReader(), logger).Run()
	if res != nil {
		console.PrintSummary(out, res)
	}
	if err != nil {
		if errors.Is(err, merge.ErrNoValidInput) {
			return fmt.Errorf("%w in %s", err, filepath.Join(cfg.Input.Dir, cfg.Input.Pattern))
		}
		return err
	}

	opts := report.Options{
		Sheet:      cfg.Output.Sheet,
		Department: cfg.Report.Department,
		Session:    cfg.Report.Session,
		Title:      cfg.Report.Title,
	}

	data, err := report.WriteToBytes(res.Report, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	data, err = processor.New(restyleRegistry()).ProcessBytes(data)
	if err != nil {
		return fmt.Errorf("restyle: %w", err)
	}

	if err := os.WriteFile(cfg.Output.File, data, 0644); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	logger.Info("report written",
		slog.String("run_id", res.RunID),
		slog.String("path", cfg.Output.File),
		slog.Int("students", len(res.Report.Rows)))

	if preview > 0 {
		console.PrintReport(out, res.Report, preview)
	}
	fmt.Fprintln(out, "done:", cfg.Output.File)

	return nil
}

func restyleRegistry() *template.Registry {
	registry := template.New()
	template.RegisterDefaults(registry, report.MetricRow)
	return registry
}

func newStyleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "style FILE",
		Short: "Apply header rotation and fills to an existing report in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := processor.New(restyleRegistry()).ProcessFile(args[0], args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "done:", args[0])
			return nil
		},
	}
}

func newSampleCommand() *cobra.Command {
	var (
		dir      string
		subjects int
		students int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write fake per-subject input workbooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := writeSamples(dir, subjects, students)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), "wrote:", p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write into")
	cmd.Flags().IntVar(&subjects, "subjects", 3, "Number of subjects")
	cmd.Flags().IntVar(&students, "students", 25, "Number of students per subject")

	return cmd
}

// writeSamples generates one workbook per subject sharing a single roster.
func writeSamples(dir string, subjects, students int) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	roster := domain.GenerateRoster(students)

	var paths []string
	for i, subject := range domain.SampleSubjects(subjects) {
		path := filepath.Join(dir, fmt.Sprintf("subject_%02d.xlsx", i+1))
		if err := source.WriteSheet(path, domain.GenerateSheet(subject, roster)); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}
