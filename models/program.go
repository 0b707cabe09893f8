package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrProgramNotText is returned when a program source is not a JSON string.
var ErrProgramNotText = errors.New("program source is not a string")

// Program is a named on-chain program with its source as returned by the explorer.
type Program struct {
	Name   string
	Source json.RawMessage
}

// Text decodes the source as a string for scanning.
func (p *Program) Text() (string, error) {
	var text string
	if err := json.Unmarshal(p.Source, &text); err != nil {
		return "", fmt.Errorf("%w: %s", ErrProgramNotText, p.Name)
	}

	return text, nil
}

// Imports maps an imported program name to its source.
type Imports map[string]json.RawMessage
