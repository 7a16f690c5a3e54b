package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/piiscan/internal/ui"
)

// Populated through -ldflags at release time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type buildInfo struct {
	Version string
	Commit  string
	Built   string
	Go      string
}

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			info := currentBuild()
			if short {
				fmt.Fprintln(out, info.Version)
				return
			}
			if useColor(out) {
				fmt.Fprintln(out, ui.LogoStatic(info.Version))
				fmt.Fprintln(out)
			}
			info.write(out)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version string")
	return cmd
}

func (b buildInfo) write(out io.Writer) {
	fmt.Fprintf(out, "piiscan %s\n", b.Version)
	if known(b.Commit) {
		fmt.Fprintf(out, "commit %s\n", b.Commit)
	}
	if known(b.Built) {
		fmt.Fprintf(out, "built %s\n", b.Built)
	}
	fmt.Fprintf(out, "go %s\n", b.Go)
}

func currentBuild() buildInfo {
	b := buildInfo{
		Version: strings.TrimSpace(version),
		Commit:  strings.TrimSpace(commit),
		Built:   strings.TrimSpace(date),
		Go:      runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if !known(b.Version) || b.Version == "dev" {
			if v := info.Main.Version; v != "" && v != "(devel)" {
				b.Version = v
			}
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if !known(b.Commit) {
					b.Commit = setting.Value
				}
			case "vcs.time":
				if !known(b.Built) {
					b.Built = setting.Value
				}
			}
		}
	}
	if b.Version == "" {
		b.Version = "dev"
	}
	if len(b.Commit) > 12 {
		b.Commit = b.Commit[:12]
	}
	return b
}

func known(v string) bool {
	return v != "" && v != "unknown"
}
