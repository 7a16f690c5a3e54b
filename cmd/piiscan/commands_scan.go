package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/piiscan/internal/allowlist"
	"github.com/suryansh-23/piiscan/internal/cache"
	"github.com/suryansh-23/piiscan/internal/config"
	"github.com/suryansh-23/piiscan/internal/metrics"
	"github.com/suryansh-23/piiscan/internal/records"
	"github.com/suryansh-23/piiscan/internal/scan"
	"github.com/suryansh-23/piiscan/internal/types"
	"github.com/suryansh-23/piiscan/internal/ui"
)

type sourceReport struct {
	Source string      `json:"source"`
	Report scan.Report `json:"report"`
}

func newScanCmd(state *appState) *cobra.Command {
	var (
		format      string
		metricsFile string
		workers     int
		failOnPII   bool
	)
	cmd := &cobra.Command{
		Use:   "scan [file...]",
		Short: "Classify every line of the given files (or stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := state.cfg
			if format != "" {
				cfg.Scan.Format = types.OutputFormat(strings.ToLower(format))
			}
			if workers > 0 {
				cfg.Scan.Workers = workers
			}
			if metricsFile != "" {
				cfg.Metrics.Textfile = metricsFile
			}
			if failOnPII {
				cfg.Scan.FailOnPII = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			scanner, m, err := buildScanner(state, cfg)
			if err != nil {
				return err
			}

			sources := args
			if len(sources) == 0 {
				sources = []string{"-"}
			}
			reports := make([]sourceReport, 0, len(sources))
			for _, source := range sources {
				recs, err := loadSource(cmd.InOrStdin(), source, recordOptions(cfg))
				if err != nil {
					return err
				}
				report, err := scanner.Run(cmd.Context(), recs)
				if err != nil {
					return fmt.Errorf("scan %s: %w", source, err)
				}
				reports = append(reports, sourceReport{Source: displaySource(source), Report: report})
			}

			if err := writeReports(cmd.OutOrStdout(), cfg.Scan.Format, reports); err != nil {
				return err
			}
			if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
				return err
			}
			if cfg.Scan.FailOnPII && anyFlagged(reports) {
				return &exitCodeError{code: 1}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format: text or json")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to this textfile")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent classifiers")
	cmd.Flags().BoolVar(&failOnPII, "fail-on-pii", false, "exit with status 1 when any record contains PII")
	return cmd
}

func buildScanner(state *appState, cfg config.Config) (*scan.Scanner, *metrics.Metrics, error) {
	engine, err := state.detector()
	if err != nil {
		return nil, nil, err
	}
	opts := []scan.Option{
		scan.WithWorkers(cfg.Scan.Workers),
		scan.WithCache(cache.New(cfg.Scan.CacheEntries)),
		scan.WithLogger(state.logger),
	}
	if cfg.Allowlist.Enabled {
		allow, err := allowlist.New(cfg.Allowlist.Records)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, scan.WithAllowlist(allow))
	}
	var m *metrics.Metrics
	if cfg.Metrics.Textfile != "" {
		m = metrics.New()
		opts = append(opts, scan.WithMetrics(m))
	}
	return scan.New(engine, opts...), m, nil
}

func loadSource(stdin io.Reader, source string, opts records.Options) ([]records.Record, error) {
	if source == "-" {
		recs, err := records.Read(stdin, opts)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return recs, nil
	}
	return records.Load(source, opts)
}

func displaySource(source string) string {
	if source == "-" {
		return "stdin"
	}
	return source
}

func writeReports(out io.Writer, format types.OutputFormat, reports []sourceReport) error {
	if format == types.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	}
	renderer := ui.NewRenderer(useColor(out))
	total, flagged, allowed := 0, 0, 0
	for _, sr := range reports {
		for _, res := range sr.Report.FlaggedResults() {
			fmt.Fprintln(out, renderer.RecordLine(sr.Source, res.Line, res.Verdict))
		}
		total += sr.Report.Total
		flagged += sr.Report.Flagged
		allowed += sr.Report.Allowed
	}
	fmt.Fprintln(out, renderer.Summary(total, flagged, allowed))
	return nil
}

func anyFlagged(reports []sourceReport) bool {
	for _, sr := range reports {
		if sr.Report.Flagged > 0 {
			return true
		}
	}
	return false
}
