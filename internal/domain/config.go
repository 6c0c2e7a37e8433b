package domain

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Default thresholds and gate values.
const (
	DefaultHardMaxLines = 500
	DefaultSoftMaxLines = 300
	DefaultHardMaxWords = 8000
	DefaultSoftMaxWords = 5000
	DefaultMarker       = "SKILL.md"
)

// DefaultReservedWords are the words a skill name must not contain.
var DefaultReservedWords = []string{"anthropic", "claude"}

// ErrEmptyMarker is returned when a configuration has no filename marker.
var ErrEmptyMarker = errors.New("marker must not be empty")

// Limits holds the size thresholds enforced by the length rule.
type Limits struct {
	HardMaxLines int
	SoftMaxLines int
	HardMaxWords int
	SoftMaxWords int
}

// DefaultLimits returns the standard size thresholds.
func DefaultLimits() Limits {
	return Limits{
		HardMaxLines: DefaultHardMaxLines,
		SoftMaxLines: DefaultSoftMaxLines,
		HardMaxWords: DefaultHardMaxWords,
		SoftMaxWords: DefaultSoftMaxWords,
	}
}

// Validate checks that every limit is positive and no soft limit exceeds its
// hard counterpart.
func (l Limits) Validate() error {
	checks := []struct {
		name string
		val  int
	}{
		{"hard_max_lines", l.HardMaxLines},
		{"soft_max_lines", l.SoftMaxLines},
		{"hard_max_words", l.HardMaxWords},
		{"soft_max_words", l.SoftMaxWords},
	}
	for _, c := range checks {
		if c.val <= 0 {
			return fmt.Errorf("%s must be positive, got %d", c.name, c.val)
		}
	}
	if l.SoftMaxLines > l.HardMaxLines {
		return fmt.Errorf("soft_max_lines (%d) exceeds hard_max_lines (%d)", l.SoftMaxLines, l.HardMaxLines)
	}
	if l.SoftMaxWords > l.HardMaxWords {
		return fmt.Errorf("soft_max_words (%d) exceeds hard_max_words (%d)", l.SoftMaxWords, l.HardMaxWords)
	}
	return nil
}

// Config is the full validator configuration.
type Config struct {
	Limits        Limits
	ReservedWords []string
	Marker        string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Limits:        DefaultLimits(),
		ReservedWords: append([]string(nil), DefaultReservedWords...),
		Marker:        DefaultMarker,
	}
}

// Validate checks the limits and the marker.
func (c Config) Validate() error {
	if err := c.Limits.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Marker) == "" {
		return ErrEmptyMarker
	}
	return nil
}

// Applies reports whether a document at the given path is subject to the
// skill rules, i.e. whether its final path element equals the marker.
func (c Config) Applies(docPath string) bool {
	if c.Marker == "" || docPath == "" {
		return false
	}
	p := strings.ReplaceAll(docPath, "\\", "/")
	return path.Base(p) == c.Marker
}
