package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// RuleInfo describes one lint rule.
type RuleInfo struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}

// LimitsInfo mirrors the effective size limits.
type LimitsInfo struct {
	HardMaxLines int `json:"hard_max_lines"`
	SoftMaxLines int `json:"soft_max_lines"`
	HardMaxWords int `json:"hard_max_words"`
	SoftMaxWords int `json:"soft_max_words"`
}

// RulesResult holds the rules and the configuration they run with.
type RulesResult struct {
	Rules         []RuleInfo `json:"rules"`
	Limits        LimitsInfo `json:"limits"`
	ReservedWords []string   `json:"reserved_words"`
	Marker        string     `json:"marker"`
}

// RulesRunner defines the interface for describing the active rules.
type RulesRunner interface {
	Rules(ctx context.Context) (*RulesResult, error)
}

// NewRulesCmd creates the rules command with the given runner.
func NewRulesCmd(runner RulesRunner) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:          "rules",
		Short:        "List the lint rules and the effective configuration",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runner.Rules(cmd.Context())
			if err != nil {
				return &ContextError{Op: "rules", Err: err}
			}

			if jsonOutput || GetJSON() {
				if result.ReservedWords == nil {
					result.ReservedWords = []string{}
				}
				writeJSON(cmd.OutOrStdout(), result)
				return nil
			}

			w := cmd.OutOrStdout()
			for _, r := range result.Rules {
				fmt.Fprintf(w, "%s\n  %s\n", r.ID, r.Summary)
			}
			fmt.Fprintf(w, "\nmarker: %s\n", result.Marker)
			fmt.Fprintf(w, "lines: soft %d, hard %d\n", result.Limits.SoftMaxLines, result.Limits.HardMaxLines)
			fmt.Fprintf(w, "words: soft %d, hard %d\n", result.Limits.SoftMaxWords, result.Limits.HardMaxWords)
			reserved := "(none)"
			if len(result.ReservedWords) > 0 {
				reserved = strings.Join(result.ReservedWords, ", ")
			}
			fmt.Fprintf(w, "reserved words: %s\n", reserved)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
