// Package rules implements the skill document lint rules.
//
// Every rule is a pure function of a document and the configuration it was
// built with: it performs no I/O, keeps no state between calls and reports
// every problem as a diagnostic rather than an error.
package rules

import (
	"github.com/eykd/skilllint-go/internal/domain"
)

// Rule checks a single aspect of a document.
type Rule interface {
	// ID is the identifier reported on each diagnostic.
	ID() string
	// Summary is a one-line description of what the rule enforces.
	Summary() string
	// Check returns the diagnostics for doc in evaluation order.
	Check(doc domain.Document) []domain.Diagnostic
}

// Validator runs a fixed sequence of rules over documents.
type Validator struct {
	cfg   domain.Config
	rules []Rule
}

// New creates a Validator running the length rule followed by the
// frontmatter rule.
func New(cfg domain.Config) *Validator {
	return &Validator{
		cfg: cfg,
		rules: []Rule{
			NewLengthRule(cfg),
			NewFrontmatterRule(cfg),
		},
	}
}

// Config returns the configuration the validator was built with.
func (v *Validator) Config() domain.Config {
	return v.cfg
}

// Rules returns the rules in evaluation order.
func (v *Validator) Rules() []Rule {
	return append([]Rule(nil), v.rules...)
}

// Validate runs every rule over doc and stamps the document path on each
// diagnostic. Documents outside the marker gate yield nothing.
func (v *Validator) Validate(doc domain.Document) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for _, r := range v.rules {
		diags = append(diags, r.Check(doc)...)
	}
	for i := range diags {
		diags[i].Path = doc.Path
	}
	return diags
}

func errorAt(rule string, line int, context, detail string) domain.Diagnostic {
	return domain.Diagnostic{Line: line, Severity: domain.SeverityError, Rule: rule, Detail: detail, Context: context}
}

func warningAt(rule string, line int, context, detail string) domain.Diagnostic {
	return domain.Diagnostic{Line: line, Severity: domain.SeverityWarning, Rule: rule, Detail: detail, Context: context}
}
