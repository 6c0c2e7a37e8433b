// Package cmd contains the CLI commands for the skl application.
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/eykd/skilllint-go/internal/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// verbose holds the global --verbose flag state.
var verbose bool

// jsonFlag holds the global --json flag state.
var jsonFlag bool

// configPath holds the global --config flag value.
var configPath string

// colorMode holds the global --color flag value.
var colorMode string

// logFormat holds the global --log-format flag value.
var logFormat string

// autoNoColor is the color package's own terminal detection, restored
// whenever --color is auto.
var autoNoColor = color.NoColor

// GetJSON returns the current global --json flag state.
func GetJSON() bool {
	return jsonFlag
}

// GetConfigPath returns the --config flag value, empty when unset.
func GetConfigPath() string {
	return configPath
}

// NewRootCmd creates a new root command instance without subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "skl",
		Short:         "Lint agent skill Markdown files",
		Long:          "skl checks SKILL.md files for size discipline and a well-formed name/description frontmatter.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureOutput(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default .skilllint.yaml if present)")
	cmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Colorize output: auto, always or never")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format for stderr: text or json")

	return cmd
}

// configureOutput applies the logging and color flags.
func configureOutput(stderr io.Writer) error {
	logger.SetLogOutput(stderr)
	level := "warn"
	if verbose {
		level = "debug"
	}
	if err := logger.SetLogLevel(level); err != nil {
		return err
	}

	switch logFormat {
	case "text", "json", "":
		logger.SetLogFormat(logFormat)
	default:
		return fmt.Errorf("invalid --log-format value %q: want text or json", logFormat)
	}

	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto", "":
		color.NoColor = autoNoColor
	default:
		return fmt.Errorf("invalid --color value %q: want auto, always or never", colorMode)
	}
	return nil
}

// BuildCommandTree creates the root command with every subcommand wired to
// its production adapter.
func BuildCommandTree() *cobra.Command {
	root := NewRootCmd()
	root.AddCommand(
		NewCheckCmd(newCheckAdapter()),
		NewInitCmd(newInitAdapter()),
		NewRulesCmd(newRulesAdapter()),
	)
	return root
}

// Main runs the skl command tree and returns the process exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return RunCLIContext(ctx, BuildCommandTree(), args, stdout, stderr)
}
