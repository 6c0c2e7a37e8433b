package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// InitResult holds the outcome of an init operation.
type InitResult struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

// InitRunner defines the interface for writing the default config file.
type InitRunner interface {
	Init(ctx context.Context) (*InitResult, error)
}

// NewInitCmd creates the init command with the given runner.
func NewInitCmd(runner InitRunner) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Write a default .skilllint.yaml in the current directory",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runner.Init(cmd.Context())
			if err != nil {
				return &ContextError{Op: "init", Err: err}
			}

			if jsonOutput || GetJSON() {
				writeJSON(cmd.OutOrStdout(), result)
				return nil
			}
			if result.Created {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", result.Path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", result.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
