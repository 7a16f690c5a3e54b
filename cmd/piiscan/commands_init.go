package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/suryansh-23/piiscan/internal/config"
	"github.com/suryansh-23/piiscan/internal/detect"
	"github.com/suryansh-23/piiscan/internal/pii"
	"github.com/suryansh-23/piiscan/internal/types"
	"github.com/suryansh-23/piiscan/internal/ui"
)

func newInitCmd(cfgPath *string) *cobra.Command {
	var useDefaults bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Run the first-time setup wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(*cfgPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			cfg := config.DefaultConfig()
			if useDefaults {
				if exists(path) {
					fmt.Fprintf(out, "Config exists, overwriting: %s\n", path)
				}
				return finishInit(out, path, cfg)
			}

			selected := categoryStrings(cfg.Categories)
			suffixes := strings.Join(cfg.StreetSuffixes, ", ")
			workersStr := strconv.Itoa(cfg.Scan.Workers)
			stripANSI := cfg.Records.StripANSI
			failOnPII := cfg.Scan.FailOnPII
			overwrite := false

			envNote := huh.NewNote().
				Title("Environment").
				Description(envSummary()).
				Next(true)

			form := huh.NewForm(
				huh.NewGroup(envNote),
				huh.NewGroup(
					huh.NewConfirm().Title("Config exists. Overwrite?").Value(&overwrite),
				).WithHideFunc(func() bool { return !exists(path) }),
				huh.NewGroup(
					huh.NewMultiSelect[string]().Title("Detect categories").Value(&selected).Options(
						categoryOptions()...,
					).Validate(func(v []string) error {
						if len(v) == 0 {
							return errors.New("select at least one category")
						}
						return nil
					}),
				),
				huh.NewGroup(
					huh.NewInput().Title("Street suffixes (comma-separated)").Value(&suffixes).Validate(func(v string) error {
						_, err := parseSuffixes(v)
						return err
					}),
				).WithHideFunc(func() bool { return !containsString(selected, string(types.CategoryStreetAddress)) }),
				huh.NewGroup(
					huh.NewInput().Title("Scan workers").Value(&workersStr).Validate(func(v string) error {
						value, err := strconv.Atoi(strings.TrimSpace(v))
						if err != nil || value < 1 {
							return errors.New("enter a positive integer")
						}
						return nil
					}),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Strip terminal escape sequences from input?").Value(&stripANSI),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Exit with status 1 when PII is found?").Value(&failOnPII),
				),
			).WithTheme(ui.Theme())

			if err := runAnimatedForm(form); err != nil {
				return err
			}
			if exists(path) && !overwrite {
				return errors.New("init cancelled")
			}

			cfg.Categories = toCategories(selected)
			if containsString(selected, string(types.CategoryStreetAddress)) {
				parsed, err := parseSuffixes(suffixes)
				if err != nil {
					return err
				}
				cfg.StreetSuffixes = parsed
			}
			workers, err := strconv.Atoi(strings.TrimSpace(workersStr))
			if err != nil {
				return fmt.Errorf("invalid workers: %w", err)
			}
			cfg.Scan.Workers = workers
			cfg.Records.StripANSI = stripANSI
			cfg.Scan.FailOnPII = failOnPII
			return finishInit(out, path, cfg)
		},
	}
	cmd.Flags().BoolVar(&useDefaults, "defaults", false, "write the default config without prompting")
	return cmd
}

func finishInit(out io.Writer, path string, cfg config.Config) error {
	if err := runSelfTest(out, cfg); err != nil {
		return err
	}
	if err := config.Write(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote config to %s\n", path)
	return nil
}

// runSelfTest checks that every enabled category detects its synthetic sample.
func runSelfTest(out io.Writer, cfg config.Config) error {
	engine, err := detect.NewEngine(cfg)
	if err != nil {
		return err
	}
	for _, category := range engine.Categories() {
		sample, err := config.SyntheticSample(category, cfg)
		if err != nil {
			return err
		}
		if !engine.Classify(sample).Has(category) {
			return fmt.Errorf("self-test failed: %s sample was not detected", category)
		}
	}
	fmt.Fprintf(out, "Self-test passed for %d categories\n", len(engine.Categories()))
	return nil
}

func categoryOptions() []huh.Option[string] {
	all := types.AllCategories()
	options := make([]huh.Option[string], 0, len(all))
	for _, category := range all {
		options = append(options, huh.NewOption(category.Label(), string(category)))
	}
	return options
}

func categoryStrings(categories []types.Category) []string {
	out := make([]string, len(categories))
	for i, category := range categories {
		out[i] = string(category)
	}
	return out
}

func toCategories(selected []string) []types.Category {
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		set[s] = struct{}{}
	}
	var out []types.Category
	for _, category := range types.AllCategories() {
		if _, ok := set[string(category)]; ok {
			out = append(out, category)
		}
	}
	return out
}

func parseSuffixes(raw string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, entry := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		if err := pii.ValidateSuffix(trimmed); err != nil {
			return nil, err
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil, errors.New("enter at least one street suffix")
	}
	return out, nil
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
