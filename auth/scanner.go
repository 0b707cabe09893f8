package auth

import "unicode/utf8"

type scanState uint8

const (
	// stateCode is outside any quoted string.
	stateCode scanState = iota
	// stateString is inside a quoted string.
	stateString
	// stateEscape follows a backslash inside a quoted string.
	stateEscape
)

// braceScanner tracks string/escape state and brace depth over raw text.
type braceScanner struct {
	state scanState
	depth int
	start int

	best      string
	bestRunes int
}

// longestObject returns the longest top-level `{...}` span in text, braces
// inside quoted strings ignored. Equal lengths keep the first seen span.
func longestObject(text string) (string, bool) {
	s := braceScanner{start: -1, bestRunes: -1}
	for i := 0; i < len(text); i++ {
		s.step(text, i)
	}

	return s.best, s.bestRunes >= 0
}

// step consumes the byte at i. Delimiters are all ASCII so scanning bytes is
// safe for UTF-8 input.
func (s *braceScanner) step(text string, i int) {
	ch := text[i]

	switch s.state {
	case stateEscape:
		s.state = stateString
	case stateString:
		switch ch {
		case '\\':
			s.state = stateEscape
		case '"':
			s.state = stateCode
		}
	case stateCode:
		switch ch {
		case '"':
			s.state = stateString
		case '{':
			if s.depth == 0 {
				s.start = i
			}
			s.depth++
		case '}':
			if s.depth == 0 {
				return
			}
			s.depth--
			if s.depth == 0 && s.start >= 0 {
				s.record(text[s.start : i+1])
			}
		}
	}
}

// record keeps the candidate if strictly longer, counted in characters.
func (s *braceScanner) record(candidate string) {
	n := utf8.RuneCountInString(candidate)
	if n > s.bestRunes {
		s.best = candidate
		s.bestRunes = n
	}
}
