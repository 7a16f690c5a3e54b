package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

type envInfo struct {
	term      string
	stdinTTY  bool
	stdoutTTY bool
	cols      int
	rows      int
}

func readEnvInfo() envInfo {
	info := envInfo{
		term:      os.Getenv("TERM"),
		stdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		stdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols = 0
		rows = 0
	}
	info.cols = cols
	info.rows = rows
	return info
}

func envSummary() string {
	info := readEnvInfo()
	return fmt.Sprintf("Detected TERM=%s stdin_tty=%t size=%dx%d", info.term, info.stdinTTY, info.cols, info.rows)
}
