package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/piiscan/internal/config"
	"github.com/suryansh-23/piiscan/internal/debug"
)

func newRootCmd(state *appState) *cobra.Command {
	var (
		cfgPath     string
		debugFlag   bool
		noInitHints bool
	)

	rootCmd := &cobra.Command{
		Use:           "piiscan",
		Short:         "Detect personally identifiable information in text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolvedPath, err := resolveConfigPath(cfgPath)
			if err != nil {
				return err
			}
			cfg, found, err := config.Load(resolvedPath)
			if err != nil {
				return err
			}
			applyOverrides(&cfg, debugFlag)
			state.cfg = cfg
			state.cfgFound = found
			state.cfgPath = resolvedPath
			state.engine = nil
			state.logger = debug.New(cfg.Debug.Enabled)
			state.logger.Debugw("config loaded", "path", resolvedPath, "found", found, "categories", len(cfg.Categories))
			if !found && !noInitHints && cmd.Name() != "init" && cmd.Name() != "version" {
				fmt.Fprintln(cmd.ErrOrStderr(), "piiscan: no config found, using defaults; run `piiscan init` to customize")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable sanitized debug logging")
	rootCmd.PersistentFlags().BoolVar(&noInitHints, "no-init-hints", false, "suppress init guidance")

	rootCmd.AddCommand(newCheckCmd(state))
	rootCmd.AddCommand(newScanCmd(state))
	rootCmd.AddCommand(newCategoriesCmd(state))
	rootCmd.AddCommand(newInitCmd(&cfgPath))
	rootCmd.AddCommand(newResetCmd(&cfgPath))
	rootCmd.AddCommand(newDoctorCmd(state))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func applyOverrides(cfg *config.Config, debugFlag bool) {
	if debugFlag {
		cfg.Debug.Enabled = true
	}
}
