package domain

// Severity indicates how severe a diagnostic is.
type Severity string

const (
	// SeverityError indicates a diagnostic that must be resolved.
	SeverityError Severity = "error"
	// SeverityWarning indicates a diagnostic that should be reviewed.
	SeverityWarning Severity = "warning"
)

// Rule identifiers reported on each diagnostic.
const (
	RuleLength      = "skill-length"
	RuleFrontmatter = "skill-frontmatter"
)

// Diagnostic represents a single issue reported by a lint rule.
type Diagnostic struct {
	Path     string
	Line     int
	Severity Severity
	Rule     string
	Detail   string
	Context  string
}

// IsError reports whether the diagnostic has error severity.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// CountBySeverity counts errors and warnings in a slice of diagnostics.
func CountBySeverity(diags []Diagnostic) (errCount, warnCount int) {
	for _, d := range diags {
		if d.IsError() {
			errCount++
		} else {
			warnCount++
		}
	}
	return
}
