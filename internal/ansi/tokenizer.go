// Package ansi removes terminal escape sequences from captured text so that
// colour codes do not split or hide PII tokens.
package ansi

type escState int

const (
	stateText escState = iota
	stateEscStart
	stateCSI
	stateString
)

const esc = 0x1b

// Stripper drops ANSI escape sequences from a byte stream. It keeps state
// across Push calls so a sequence split between chunks is still removed.
type Stripper struct {
	state    escState
	osc      bool
	inString bool
}

// Strip returns data with escape sequences removed.
func Strip(data []byte) []byte {
	var s Stripper
	return s.Push(data)
}

// StripString is Strip for strings.
func StripString(text string) string {
	for i := 0; i < len(text); i++ {
		if text[i] == esc {
			return string(Strip([]byte(text)))
		}
	}
	return text
}

// Push processes a chunk of bytes and returns its printable text.
func (s *Stripper) Push(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		switch s.state {
		case stateText:
			if b == esc {
				s.state = stateEscStart
				continue
			}
			out = append(out, b)
		case stateEscStart:
			switch b {
			case '[':
				s.state = stateCSI
			case ']':
				s.state = stateString
				s.osc = true
			case 'P', 'X', '^', '_':
				s.state = stateString
				s.osc = false
			default:
				s.state = stateText
			}
		case stateCSI:
			if b >= 0x40 && b <= 0x7e {
				s.state = stateText
			}
		case stateString:
			if s.osc && b == 0x07 { // BEL terminator
				s.reset()
				continue
			}
			if s.inString {
				if b == '\\' { // ST sequence ESC \
					s.reset()
					continue
				}
				s.inString = false
				continue
			}
			if b == esc {
				s.inString = true
			}
		}
	}
	return out
}

// Pending reports whether an escape sequence is still open.
func (s *Stripper) Pending() bool {
	return s.state != stateText
}

func (s *Stripper) reset() {
	s.state = stateText
	s.osc = false
	s.inString = false
}
