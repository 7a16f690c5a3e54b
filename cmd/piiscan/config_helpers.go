package main

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/suryansh-23/piiscan/internal/config"
	"github.com/suryansh-23/piiscan/internal/records"
)

func resolveConfigPath(override string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		return override, nil
	}
	if env := strings.TrimSpace(os.Getenv("PIISCAN_CONFIG")); env != "" {
		return env, nil
	}
	return config.DefaultPath()
}

func exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func recordOptions(cfg config.Config) records.Options {
	return records.Options{
		SkipBlank: cfg.Records.SkipBlank,
		StripANSI: cfg.Records.StripANSI,
	}
}

// useColor reports whether w is an interactive terminal that accepts styling.
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
