package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newDoctorCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Print environment diagnostics and the effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.OutOrStdout(), state)
		},
	}
}

func runDoctor(out io.Writer, state *appState) error {
	info := readEnvInfo()
	fmt.Fprintf(out, "term=%s\n", info.term)
	fmt.Fprintf(out, "stdin_tty=%t\n", info.stdinTTY)
	fmt.Fprintf(out, "stdout_tty=%t\n", info.stdoutTTY)
	fmt.Fprintf(out, "size=%dx%d\n", info.cols, info.rows)
	fmt.Fprintf(out, "config_path=%s\n", state.cfgPath)
	fmt.Fprintf(out, "config_found=%t\n", state.cfgFound)
	fmt.Fprintf(out, "categories=%s\n", strings.Join(categoryStrings(state.cfg.Categories), ","))
	fmt.Fprintf(out, "street_suffixes=%d\n", len(state.cfg.StreetSuffixes))
	fmt.Fprintf(out, "records_skip_blank=%t\n", state.cfg.Records.SkipBlank)
	fmt.Fprintf(out, "records_strip_ansi=%t\n", state.cfg.Records.StripANSI)
	fmt.Fprintf(out, "scan_workers=%d\n", state.cfg.Scan.Workers)
	fmt.Fprintf(out, "scan_cache_entries=%d\n", state.cfg.Scan.CacheEntries)
	fmt.Fprintf(out, "scan_format=%s\n", state.cfg.Scan.Format)
	fmt.Fprintf(out, "fail_on_pii=%t\n", state.cfg.Scan.FailOnPII)
	fmt.Fprintf(out, "allowlist_enabled=%t\n", state.cfg.Allowlist.Enabled)
	fmt.Fprintf(out, "allowlist_records=%d\n", len(state.cfg.Allowlist.Records))
	metricsFile := state.cfg.Metrics.Textfile
	if metricsFile == "" {
		metricsFile = "none"
	}
	fmt.Fprintf(out, "metrics_textfile=%s\n", metricsFile)
	if _, err := state.detector(); err != nil {
		fmt.Fprintf(out, "engine=error: %v\n", err)
		return nil
	}
	fmt.Fprintln(out, "engine=ok")
	return nil
}
