// Package fs provides filesystem adapters that implement lint service ports.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/eykd/skilllint-go/internal/logger"
)

// DefaultPattern selects the files considered under a directory target.
const DefaultPattern = "**/*.md"

// DefaultExcludes are directory trees never descended into.
var DefaultExcludes = []string{".git/**", "node_modules/**", "**/.git/**", "**/node_modules/**"}

// ErrBadPattern is returned for a glob that doublestar cannot parse.
var ErrBadPattern = doublestar.ErrBadPattern

// OSFinder implements lint.FileFinder by globbing directory targets.
type OSFinder struct {
	Pattern  string
	Excludes []string
}

// NewOSFinder creates an OSFinder with the given pattern, or DefaultPattern
// when pattern is empty, and the default excludes.
func NewOSFinder(pattern string) *OSFinder {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &OSFinder{Pattern: pattern, Excludes: DefaultExcludes}
}

// Find expands targets into a sorted, de-duplicated list of file paths.
// File targets are returned as given; directory targets are globbed with
// Pattern relative to the directory.
func (f *OSFinder) Find(ctx context.Context, targets []string) ([]string, error) {
	if !doublestar.ValidatePattern(f.Pattern) {
		return nil, fmt.Errorf("%w: %s", ErrBadPattern, f.Pattern)
	}

	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("reading target %s: %w", target, err)
		}
		if !info.IsDir() {
			add(target)
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(target), f.Pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("globbing %s: %w", target, err)
		}
		for _, m := range matches {
			if f.excluded(m) {
				logger.G(ctx).WithField("path", m).Debug("excluded")
				continue
			}
			add(filepath.Join(target, filepath.FromSlash(m)))
		}
	}

	sort.Strings(out)
	return out, nil
}

func (f *OSFinder) excluded(rel string) bool {
	for _, pat := range f.Excludes {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}

// OSContentReader implements lint.ContentReader using os.ReadFile.
type OSContentReader struct{}

// ReadFile reads the full content of the file at path.
func (OSContentReader) ReadFile(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DirNamer implements lint.NameResolver: a document's expected name is the
// name of the directory containing it.
type DirNamer struct{}

// ExpectedName returns the base name of the absolute parent directory of
// path, or "" when it cannot be determined.
func (DirNamer) ExpectedName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	dir := filepath.Dir(abs)
	base := filepath.Base(dir)
	if base == string(filepath.Separator) || base == "." {
		return ""
	}
	return base
}

// ErrExists is returned by CreateFile when the file is already present.
var ErrExists = iofs.ErrExist

// OSWriter creates files on disk.
type OSWriter struct{}

// CreateFile writes content to a new file at path. It never overwrites:
// an existing file yields an error wrapping ErrExists.
func (OSWriter) CreateFile(_ context.Context, path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := fh.Write(content); err != nil {
		fh.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// IsExists reports whether err indicates an existing file.
func IsExists(err error) bool {
	return errors.Is(err, ErrExists)
}
