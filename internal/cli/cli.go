// Package cli implements the stackplan command-line interface.
//
// # Commands
//
//   - detect: Report which provider matches a project
//   - plan: Generate a build plan (pretty, TOML, or JSON)
//   - providers: List the registered providers
//   - serve: Expose planning over HTTP
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and retrieved with loggerFromContext.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackplan/pkg/buildinfo"
	"github.com/matzehuels/stackplan/pkg/pipeline"
	"github.com/matzehuels/stackplan/pkg/providers"
	"github.com/matzehuels/stackplan/pkg/providers/all"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "stackplan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Registry *providers.Registry
}

// New creates a new CLI instance with the built-in providers.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Registry: all.Registry(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stackplan detects a project's language and plans its build",
		Long:         `Stackplan inspects a source tree, decides which language ecosystem it belongs to, and emits an ordered build plan (setup, install, build, start) for a reproducible build environment.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.detectCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.providersCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner sharing the CLI's registry and the
// context logger.
func (c *CLI) newRunner(cmd *cobra.Command) *pipeline.Runner {
	return pipeline.NewRunner(c.Registry, loggerFromContext(cmd.Context()))
}

// dirArg returns the project directory argument, defaulting to ".".
func dirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
