package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/piiscan/internal/detect"
	"github.com/suryansh-23/piiscan/internal/pii"
	"github.com/suryansh-23/piiscan/internal/records"
	"github.com/suryansh-23/piiscan/internal/types"
	"github.com/suryansh-23/piiscan/internal/ui"
)

func newCheckCmd(state *appState) *cobra.Command {
	var (
		failOnPII bool
		showSpans bool
	)
	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Classify text given as arguments or stdin lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := state.detector()
			if err != nil {
				return err
			}
			inputs := records.FromStrings(args)
			source := "arg"
			if len(inputs) == 0 {
				inputs, err = records.Read(cmd.InOrStdin(), recordOptions(state.cfg))
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				source = "stdin"
			}
			if len(inputs) == 0 {
				return errors.New("check requires text arguments or stdin input")
			}
			out := cmd.OutOrStdout()
			renderer := ui.NewRenderer(useColor(out))
			flagged := 0
			for _, rec := range inputs {
				v := engine.Classify(rec.Text)
				if v.Any() {
					flagged++
				}
				if len(inputs) == 1 {
					printVerdictDetail(out, engine.Categories(), v)
				} else {
					fmt.Fprintln(out, renderer.RecordLine(source, rec.Line, v))
				}
				if showSpans {
					printSpans(out, rec.Line, engine.Find(rec.Text))
				}
			}
			state.logger.Debugw("check finished", "inputs", len(inputs), "flagged", flagged)
			if flagged > 0 && (failOnPII || state.cfg.Scan.FailOnPII) {
				return &exitCodeError{code: 1}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&failOnPII, "fail-on-pii", false, "exit with status 1 when any input contains PII")
	cmd.Flags().BoolVar(&showSpans, "spans", false, "print byte offsets of each match")
	return cmd
}

func printVerdictDetail(out io.Writer, categories []types.Category, v pii.Verdict) {
	for _, category := range categories {
		fmt.Fprintf(out, "%s=%t\n", category, v.Has(category))
	}
	fmt.Fprintf(out, "any=%t\n", v.Any())
}

func printSpans(out io.Writer, line int, matches []detect.Match) {
	for _, m := range matches {
		fmt.Fprintf(out, "span=%d:%s:%d-%d\n", line, m.Category, m.Start, m.End)
	}
}
