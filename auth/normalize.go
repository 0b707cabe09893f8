package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxUnwrap bounds how many times a JSON string is decoded again.
const maxUnwrap = 4

// ErrNormalization is returned when no mapping can be recovered from the input.
var ErrNormalization = errors.New("could not normalize authorization JSON")

// Normalize recovers the authorization mapping from mangled text. The longest
// brace-delimited span is tried first, then the whole text.
func Normalize(raw string) (Payload, error) {
	var candidates []string
	if best, ok := longestObject(raw); ok {
		candidates = append(candidates, best)
	}
	candidates = append(candidates, raw)

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}

		v, err := decode(candidate)
		if err != nil {
			continue
		}

		if m, ok := unwrap(v).(map[string]interface{}); ok {
			return Payload(m), nil
		}
	}

	return nil, fmt.Errorf("%w, inspect the authorization file", ErrNormalization)
}

// unwrap decodes string values up to maxUnwrap times, then opens a
// single-entry envelope whose value is a JSON string.
func unwrap(v interface{}) interface{} {
	for i := 0; i < maxUnwrap; i++ {
		s, ok := v.(string)
		if !ok {
			break
		}

		next, err := decode(s)
		if err != nil {
			break
		}
		v = next
	}

	m, ok := v.(map[string]interface{})
	if !ok || len(m) != 1 {
		return v
	}

	for _, inner := range m {
		s, ok := inner.(string)
		if !ok {
			return v
		}

		if next, err := decode(s); err == nil {
			return next
		}
	}

	return v
}

// decode parses exactly one JSON value, keeping numbers as json.Number so
// opaque values pass through unchanged.
func decode(s string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON value")
	}

	return v, nil
}
