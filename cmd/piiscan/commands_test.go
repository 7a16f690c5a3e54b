package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/suryansh-23/piiscan/internal/config"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&appState{})
	cmd.SetArgs(append([]string{"--config", cfgPath, "--no-init-hints"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckSingleInput(t *testing.T) {
	out, err := runCLI(t, "", "check", "My phone number is 970-555-1212")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "phone=true\n") {
		t.Fatalf("missing phone verdict:\n%s", out)
	}
	if !strings.Contains(out, "ssn=false\n") {
		t.Fatalf("missing ssn verdict:\n%s", out)
	}
	if !strings.HasSuffix(out, "any=true\n") {
		t.Fatalf("missing aggregate:\n%s", out)
	}
}

func TestCheckFailOnPII(t *testing.T) {
	_, err := runCLI(t, "", "check", "--fail-on-pii", "123-45-6789")
	var exitErr *exitCodeError
	if !errors.As(err, &exitErr) || exitErr.code != 1 {
		t.Fatalf("err = %v", err)
	}
	if _, err := runCLI(t, "", "check", "--fail-on-pii", "nothing here"); err != nil {
		t.Fatalf("clean input failed: %v", err)
	}
}

func TestCheckStdinLines(t *testing.T) {
	out, err := runCLI(t, "johnsmith@gmail.com\n\nplain\n", "check", "--spans")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "stdin:1: email\n") {
		t.Fatalf("missing first record:\n%s", out)
	}
	if !strings.Contains(out, "stdin:3: clean\n") {
		t.Fatalf("missing second record:\n%s", out)
	}
	if !strings.Contains(out, "span=1:email:0-19\n") {
		t.Fatalf("missing span:\n%s", out)
	}
}

func TestScanFileText(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	data := "Aggies Do\nnothing\n@johndoe\n192.168.168.256\n"
	if err := os.WriteFile(input, []byte(data), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	metricsPath := filepath.Join(dir, "piiscan.prom")
	out, err := runCLI(t, "", "scan", "--metrics-file", metricsPath, input)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, input+":1: name\n") {
		t.Fatalf("missing name record:\n%s", out)
	}
	if !strings.Contains(out, input+":3: handle\n") {
		t.Fatalf("missing handle record:\n%s", out)
	}
	if !strings.Contains(out, "piiscan: 2 of 4 records flagged") {
		t.Fatalf("missing summary:\n%s", out)
	}
	if _, err := os.Stat(metricsPath); err != nil {
		t.Fatalf("metrics textfile not written: %v", err)
	}
}

func TestScanReportsSourceLinesAcrossBlankLines(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("header\n\n\nnothing\n123-45-6789\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out, err := runCLI(t, "", "scan", input)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, input+":5: ssn\n") {
		t.Fatalf("ssn not reported at line 5:\n%s", out)
	}
	if !strings.Contains(out, "piiscan: 1 of 3 records flagged") {
		t.Fatalf("missing summary:\n%s", out)
	}
}

func TestScanStdinJSON(t *testing.T) {
	out, err := runCLI(t, "1234-5678-1234-5678\nclean\n", "scan", "--format", "json")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var reports []struct {
		Source string `json:"source"`
		Report struct {
			Total   int `json:"total"`
			Flagged int `json:"flagged"`
			Results []struct {
				Index      int      `json:"index"`
				Line       int      `json:"line"`
				Categories []string `json:"categories"`
			} `json:"results"`
		} `json:"report"`
	}
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(reports) != 1 || reports[0].Source != "stdin" {
		t.Fatalf("reports = %+v", reports)
	}
	r := reports[0].Report
	if r.Total != 2 || r.Flagged != 1 {
		t.Fatalf("report = %+v", r)
	}
	if len(r.Results[0].Categories) != 1 || r.Results[0].Categories[0] != "credit_card" {
		t.Fatalf("categories = %v", r.Results[0].Categories)
	}
	if r.Results[1].Line != 2 {
		t.Fatalf("line = %d", r.Results[1].Line)
	}
	if len(r.Results[1].Categories) != 0 {
		t.Fatalf("expected clean second record, got %v", r.Results[1].Categories)
	}
}

func TestScanRejectsBadFormat(t *testing.T) {
	_, err := runCLI(t, "x\n", "scan", "--format", "xml")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("err = %v", err)
	}
}

func TestInitDefaultsWritesConfig(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	cfgPath := filepath.Join(t.TempDir(), "piiscan", "config.yaml")
	var out bytes.Buffer
	cmd := newRootCmd(&appState{})
	cmd.SetArgs([]string{"--config", cfgPath, "init", "--defaults"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out.String(), "Self-test passed for 9 categories") {
		t.Fatalf("missing self-test line:\n%s", out.String())
	}
	if _, found, err := config.Load(cfgPath); err != nil || !found {
		t.Fatalf("load written config: found=%t err=%v", found, err)
	}
}

func TestParseSuffixes(t *testing.T) {
	got, err := parseSuffixes(" Street, Road ,Street,")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if strings.Join(got, ",") != "Street,Road" {
		t.Fatalf("got %v", got)
	}
	if _, err := parseSuffixes("street"); err == nil {
		t.Fatalf("expected lowercase suffix to fail")
	}
	if _, err := parseSuffixes(" , "); err == nil {
		t.Fatalf("expected empty list to fail")
	}
}

func TestVersionShort(t *testing.T) {
	out, err := runCLI(t, "", "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) == "" || strings.Contains(out, "\n\n") {
		t.Fatalf("output = %q", out)
	}
}

func TestCurrentBuildShortensCommit(t *testing.T) {
	prev := commit
	commit = "0123456789abcdef0123"
	defer func() { commit = prev }()
	if got := currentBuild().Commit; got != "0123456789ab" {
		t.Fatalf("commit = %q", got)
	}
}
