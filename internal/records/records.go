// Package records turns line-oriented sources into ordered text records.
package records

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/suryansh-23/piiscan/internal/ansi"
)

const maxLineBytes = 1 << 20

var ErrLineTooLong = errors.New("record exceeds maximum line length")

// Options controls which lines become records.
type Options struct {
	SkipBlank bool
	StripANSI bool
}

// Record is one kept line and its 1-based position in the source.
type Record struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// FromStrings numbers texts consecutively from 1.
func FromStrings(texts []string) []Record {
	out := make([]Record, len(texts))
	for i, text := range texts {
		out[i] = Record{Line: i + 1, Text: text}
	}
	return out
}

// Texts returns the text of every record in order.
func Texts(recs []Record) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Text
	}
	return out
}

// DefaultOptions discards blank lines and keeps escape sequences.
func DefaultOptions() Options {
	return Options{SkipBlank: true}
}

// Load reads every record from the file at path.
func Load(path string, opts Options) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()
	out, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// Read splits r into records, one per line, preserving order. Line
// terminators (\n or \r\n) are not part of the record. Line numbers count
// discarded lines too.
func Read(r io.Reader, opts Options) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var out []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if opts.StripANSI {
			line = ansi.StripString(line)
		}
		if opts.SkipBlank && strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, Record{Line: lineNo, Text: line})
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, ErrLineTooLong
		}
		return nil, err
	}
	return out, nil
}
