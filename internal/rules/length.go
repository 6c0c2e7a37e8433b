package rules

import (
	"fmt"

	"github.com/eykd/skilllint-go/internal/domain"
)

// LengthRule flags documents whose size exceeds the configured limits.
type LengthRule struct {
	cfg domain.Config
}

// NewLengthRule creates a LengthRule for cfg.
func NewLengthRule(cfg domain.Config) *LengthRule {
	return &LengthRule{cfg: cfg}
}

// ID implements Rule.
func (r *LengthRule) ID() string { return domain.RuleLength }

// Summary implements Rule.
func (r *LengthRule) Summary() string {
	return fmt.Sprintf("%s should stay under %d lines and %d words (hard limits %d and %d)",
		r.cfg.Marker, r.cfg.Limits.SoftMaxLines, r.cfg.Limits.SoftMaxWords,
		r.cfg.Limits.HardMaxLines, r.cfg.Limits.HardMaxWords)
}

// Check compares the total line count and the body word count against the
// limits. The two counts are checked independently, so a document can get
// one diagnostic for each.
func (r *LengthRule) Check(doc domain.Document) []domain.Diagnostic {
	if !r.cfg.Applies(doc.Path) {
		return nil
	}

	var diags []domain.Diagnostic
	lim := r.cfg.Limits
	marker := r.cfg.Marker

	lines := doc.TotalLines()
	linesCtx := fmt.Sprintf("lines: %d", lines)
	switch {
	case lines > lim.HardMaxLines:
		diags = append(diags, errorAt(r.ID(), 1, linesCtx, fmt.Sprintf(
			"%s has %d lines, exceeding the maximum of %d. Move detailed content into reference files and link to them from %s",
			marker, lines, lim.HardMaxLines, marker)))
	case lines > lim.SoftMaxLines:
		diags = append(diags, warningAt(r.ID(), 1, linesCtx, fmt.Sprintf(
			"%s has %d lines, above the recommended %d. Consider moving detailed content into reference files",
			marker, lines, lim.SoftMaxLines)))
	}

	words := doc.WordCount()
	wordsCtx := fmt.Sprintf("words: %d", words)
	switch {
	case words > lim.HardMaxWords:
		diags = append(diags, errorAt(r.ID(), 1, wordsCtx, fmt.Sprintf(
			"%s has %d words, exceeding the maximum of %d. Move detailed content into reference files and link to them from %s",
			marker, words, lim.HardMaxWords, marker)))
	case words > lim.SoftMaxWords:
		diags = append(diags, warningAt(r.ID(), 1, wordsCtx, fmt.Sprintf(
			"%s has %d words, above the recommended %d. Consider moving detailed content into reference files",
			marker, words, lim.SoftMaxWords)))
	}

	return diags
}
