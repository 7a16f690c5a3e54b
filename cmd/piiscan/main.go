package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/suryansh-23/piiscan/internal/config"
	"github.com/suryansh-23/piiscan/internal/debug"
	"github.com/suryansh-23/piiscan/internal/detect"
)

type appState struct {
	cfg      config.Config
	cfgFound bool
	cfgPath  string
	logger   *debug.Logger
	engine   *detect.Engine
}

// detector builds the configured engine on first use.
func (s *appState) detector() (*detect.Engine, error) {
	if s.engine != nil {
		return s.engine, nil
	}
	engine, err := detect.NewEngine(s.cfg)
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return engine, nil
}

type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exited with code %d", e.code)
}

func main() {
	// Best-effort: a local .env may set PIISCAN_CONFIG.
	_ = godotenv.Load()

	state := &appState{}
	rootCmd := newRootCmd(state)
	err := rootCmd.Execute()
	state.logger.Sync()
	if err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
