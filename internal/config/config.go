// Package config loads validator configuration from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/eykd/skilllint-go/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = ".skilllint.yaml"

// File mirrors the on-disk configuration. Pointer fields distinguish an
// absent key from an explicit zero.
type File struct {
	Limits struct {
		HardMaxLines *int `yaml:"hard_max_lines"`
		SoftMaxLines *int `yaml:"soft_max_lines"`
		HardMaxWords *int `yaml:"hard_max_words"`
		SoftMaxWords *int `yaml:"soft_max_words"`
	} `yaml:"limits"`
	ReservedWords *[]string `yaml:"reserved_words"`
	Marker        *string   `yaml:"marker"`
}

// Parse decodes YAML from r and merges it over the defaults. Unknown keys
// are rejected. The merged configuration is validated.
func Parse(r io.Reader) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return domain.Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if v := f.Limits.HardMaxLines; v != nil {
		cfg.Limits.HardMaxLines = *v
	}
	if v := f.Limits.SoftMaxLines; v != nil {
		cfg.Limits.SoftMaxLines = *v
	}
	if v := f.Limits.HardMaxWords; v != nil {
		cfg.Limits.HardMaxWords = *v
	}
	if v := f.Limits.SoftMaxWords; v != nil {
		cfg.Limits.SoftMaxWords = *v
	}
	if f.ReservedWords != nil {
		cfg.ReservedWords = make([]string, len(*f.ReservedWords))
		copy(cfg.ReservedWords, *f.ReservedWords)
	}
	if f.Marker != nil {
		cfg.Marker = *f.Marker
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads the config file at path. When optional is true a missing file
// yields the defaults instead of an error.
func Load(path string, optional bool) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return domain.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML with every key present.
func Marshal(cfg domain.Config) ([]byte, error) {
	var f File
	f.Limits.HardMaxLines = &cfg.Limits.HardMaxLines
	f.Limits.SoftMaxLines = &cfg.Limits.SoftMaxLines
	f.Limits.HardMaxWords = &cfg.Limits.HardMaxWords
	f.Limits.SoftMaxWords = &cfg.Limits.SoftMaxWords
	words := append([]string(nil), cfg.ReservedWords...)
	f.ReservedWords = &words
	f.Marker = &cfg.Marker

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}
