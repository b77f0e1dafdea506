// Package fallback produces a substitute satire locally when the upstream
// generator is unavailable or unusable. Every implementation is total: it
// never fails, never performs I/O and always returns non-empty fields.
package fallback

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Yates-Labs/satirist/internal/language"
	"github.com/Yates-Labs/satirist/internal/request"
)

var ErrUnknownMode = errors.New("unknown fallback mode")

// Result mirrors the successful generation shape.
type Result struct {
	Satire string `json:"satire"`
	Type   string `json:"type"`
}

// Generator is a deterministic, never-failing satire source.
type Generator interface {
	Fallback(word string, length request.Length, style request.Style, tag language.Tag) Result
}

// Mode selects a Generator implementation.
type Mode string

const (
	// ModeTemplated picks among per-language literary templates and
	// classifies the word by topic.
	ModeTemplated Mode = "templated"
	// ModeGeneric returns one of two fixed phrases signaling degraded
	// operation.
	ModeGeneric Mode = "generic"
)

// ParseMode accepts the configuration spelling of a mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeTemplated, "":
		return ModeTemplated, nil
	case ModeGeneric:
		return ModeGeneric, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// New returns the generator for mode.
func New(mode Mode) (Generator, error) {
	switch mode {
	case ModeTemplated, "":
		return NewTemplated(nil), nil
	case ModeGeneric:
		return Generic{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}
