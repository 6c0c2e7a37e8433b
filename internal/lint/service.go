// Package lint provides the application service that discovers documents,
// loads them and runs the skill rules over them.
package lint

import (
	"context"
	"errors"
	"fmt"

	"github.com/eykd/skilllint-go/internal/domain"
	"github.com/eykd/skilllint-go/internal/frontmatter"
	"github.com/eykd/skilllint-go/internal/logger"
	"github.com/eykd/skilllint-go/internal/rules"
)

// FileFinder expands check targets into file paths.
type FileFinder interface {
	Find(ctx context.Context, targets []string) ([]string, error)
}

// ContentReader reads a file's content.
type ContentReader interface {
	ReadFile(ctx context.Context, path string) (string, error)
}

// NameResolver supplies the name a document's name field must equal.
type NameResolver interface {
	ExpectedName(path string) string
}

// CheckResult holds the outcome of a check run.
type CheckResult struct {
	// Documents is the number of files discovered.
	Documents int
	// Checked is the number of files the rules applied to.
	Checked     int
	Diagnostics []domain.Diagnostic
}

// Service validates documents found through its ports.
type Service struct {
	validator *rules.Validator
	finder    FileFinder
	reader    ContentReader
	namer     NameResolver
}

// NewService creates a Service with the given dependencies.
func NewService(validator *rules.Validator, finder FileFinder, reader ContentReader, namer NameResolver) *Service {
	return &Service{
		validator: validator,
		finder:    finder,
		reader:    reader,
		namer:     namer,
	}
}

// Check finds every file under targets and validates it. Diagnostics are
// returned grouped by file in path order, each group in rule order. The
// run stops early when ctx is cancelled.
func (s *Service) Check(ctx context.Context, targets []string) (*CheckResult, error) {
	ctx = logger.WithLogger(ctx, logger.G(ctx).WithField("component", "lint"))
	log := logger.G(ctx)

	paths, err := s.finder.Find(ctx, targets)
	if err != nil {
		return nil, err
	}

	cfg := s.validator.Config()
	result := &CheckResult{Documents: len(paths)}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !cfg.Applies(p) {
			log.WithField("path", p).Debug("skipping: marker does not match")
			continue
		}

		content, err := s.reader.ReadFile(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}

		doc := s.Parse(ctx, p, content)
		diags := s.validator.Validate(doc)
		result.Checked++
		result.Diagnostics = append(result.Diagnostics, diags...)

		log.WithField("path", p).WithField("diagnostics", len(diags)).Debug("validated")
	}

	return result, nil
}

// Parse builds a Document from raw content. Content whose frontmatter is
// never closed is treated as having no frontmatter.
func (s *Service) Parse(ctx context.Context, path, content string) domain.Document {
	fm, body, err := frontmatter.Split(content)
	if errors.Is(err, frontmatter.ErrUnclosed) {
		logger.G(ctx).WithField("path", path).Debug("unclosed frontmatter")
	}
	return domain.Document{
		Path:             path,
		ExpectedName:     s.namer.ExpectedName(path),
		FrontmatterLines: fm,
		BodyLines:        body,
	}
}
