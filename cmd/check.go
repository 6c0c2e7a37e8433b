package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Severity represents the severity level of a check finding.
type Severity string

const (
	// SeverityError represents an error-level finding.
	SeverityError Severity = "error"
	// SeverityWarning represents a warning-level finding.
	SeverityWarning Severity = "warning"
)

// CheckFinding represents a single finding from the check command.
type CheckFinding struct {
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	Context  string   `json:"context"`
}

// CheckResult holds all findings from a check run.
type CheckResult struct {
	Findings  []CheckFinding
	Documents int
	Checked   int
}

// CheckOptions carries the check command flags that affect discovery.
type CheckOptions struct {
	Glob string
}

// CheckRunner defines the interface for running checks.
type CheckRunner interface {
	Check(ctx context.Context, targets []string, opts CheckOptions) (*CheckResult, error)
}

// FindingsDetectedError is returned when check detects failing findings.
type FindingsDetectedError struct {
	Errors   int
	Warnings int
}

// Error implements the error interface.
func (e *FindingsDetectedError) Error() string {
	return fmt.Sprintf("check found %d errors, %d warnings", e.Errors, e.Warnings)
}

// ExitCode returns the exit code for findings (always 2).
func (e *FindingsDetectedError) ExitCode() int {
	return 2
}

// checkJSONResponse is the JSON output structure for the check command.
type checkJSONResponse struct {
	Findings []CheckFinding `json:"findings"`
	Summary  struct {
		Errors    int `json:"errors"`
		Warnings  int `json:"warnings"`
		Documents int `json:"documents"`
		Checked   int `json:"checked"`
	} `json:"summary"`
}

// countBySeverity counts errors and warnings in a slice of findings.
func countBySeverity(findings []CheckFinding) (errCount, warnCount int) {
	for _, f := range findings {
		if f.Severity == SeverityError {
			errCount++
		} else {
			warnCount++
		}
	}
	return
}

// formatCheckJSON writes the result as JSON to w.
func formatCheckJSON(w io.Writer, result *CheckResult, errCount, warnCount int) {
	findings := result.Findings
	if findings == nil {
		findings = []CheckFinding{}
	}
	out := checkJSONResponse{Findings: findings}
	out.Summary.Errors = errCount
	out.Summary.Warnings = warnCount
	out.Summary.Documents = result.Documents
	out.Summary.Checked = result.Checked
	writeJSON(w, out)
}

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	ruleLabel    = color.New(color.Faint)
)

// formatCheckHuman writes findings as human-readable text to w.
func formatCheckHuman(w io.Writer, result *CheckResult, errCount, warnCount int) {
	for _, f := range result.Findings {
		label := warningLabel
		if f.Severity == SeverityError {
			label = errorLabel
		}
		fmt.Fprintf(w, "%s:%d %s %s %s", f.Path, f.Line,
			label.Sprintf("[%s]", f.Severity), ruleLabel.Sprint(f.Rule), f.Message)
		if f.Context != "" {
			fmt.Fprintf(w, " (%s)", f.Context)
		}
		fmt.Fprintln(w)
	}
	if errCount > 0 || warnCount > 0 {
		fmt.Fprintf(w, "\n%d error(s), %d warning(s) in %d skill file(s)\n", errCount, warnCount, result.Checked)
	}
}

// runCheckAndReport runs the checker and formats findings as JSON or
// human-readable text. It returns a FindingsDetectedError when any error is
// present, or any finding at all in strict mode.
func runCheckAndReport(cmd *cobra.Command, runner CheckRunner, targets []string, opts CheckOptions, jsonOutput, strict bool) error {
	result, err := runner.Check(cmd.Context(), targets, opts)
	if err != nil {
		return &ContextError{Op: "check", Err: err}
	}

	errCount, warnCount := countBySeverity(result.Findings)

	if jsonOutput {
		formatCheckJSON(cmd.OutOrStdout(), result, errCount, warnCount)
	} else {
		formatCheckHuman(cmd.OutOrStdout(), result, errCount, warnCount)
	}

	if errCount > 0 || (strict && warnCount > 0) {
		return &FindingsDetectedError{Errors: errCount, Warnings: warnCount}
	}
	return nil
}

// NewCheckCmd creates the check command with the given runner.
func NewCheckCmd(runner CheckRunner) *cobra.Command {
	var jsonOutput bool
	var strict bool
	var opts CheckOptions

	cmd := &cobra.Command{
		Use:          "check [path...]",
		Short:        "Validate skill files under the given paths",
		Long:         "Validate skill files. Directories are searched with --glob; files are checked directly. Defaults to the current directory.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := args
			if len(targets) == 0 {
				targets = []string{"."}
			}
			return runCheckAndReport(cmd, runner, targets, opts, jsonOutput || GetJSON(), strict)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings as well as errors")
	cmd.Flags().StringVar(&opts.Glob, "glob", "", "Glob selecting files inside directory targets (default **/*.md)")

	return cmd
}
