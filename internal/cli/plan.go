package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackplan/pkg/errors"
	"github.com/matzehuels/stackplan/pkg/pipeline"
	"github.com/matzehuels/stackplan/pkg/plan"
)

// formatPretty renders the plan as a table instead of a machine format.
const formatPretty = "pretty"

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	format   string   // pretty, toml, or json
	output   string   // output file path (stdout if empty)
	provider string   // skip detection and use this provider
	envFile  string   // dotenv file with build variables
	env      []string // KEY=VALUE or KEY entries
}

// validateFormat rejects formats the plan command cannot write.
func validateFormat(format string) error {
	switch format {
	case formatPretty, plan.FormatTOML, plan.FormatJSON:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (available: %s, %s, %s)",
			format, formatPretty, plan.FormatTOML, plan.FormatJSON)
	}
}

// planCommand creates the plan command.
func (c *CLI) planCommand() *cobra.Command {
	opts := planOpts{format: formatPretty}

	cmd := &cobra.Command{
		Use:   "plan [dir]",
		Short: "Generate a build plan for a project",
		Long: `Plan detects the project's provider and prints the ordered build phases.

Provider settings are read from STACKPLAN_* variables, e.g.:

  stackplan plan --env STACKPLAN_ELIXIR_VERSION=1.13 ./my-app
  stackplan plan --env-file build.env --format toml -o plan.toml ./my-app`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd, dirArg(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: pretty, toml, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the plan to a file")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", "", "use this provider instead of detecting one")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "read variables from a dotenv file")
	cmd.Flags().StringArrayVarP(&opts.env, "env", "e", nil, "set a variable (KEY=VALUE, or KEY to copy from the environment)")

	return cmd
}

func (c *CLI) runPlan(cmd *cobra.Command, dir string, opts planOpts) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	result, err := c.newRunner(cmd).Execute(cmd.Context(), pipeline.Options{
		Source:   dir,
		Provider: opts.provider,
		EnvFile:  opts.envFile,
		Env:      opts.env,
		Lookup:   os.LookupEnv,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Planned %s build", result.Provider))

	if opts.output == "" {
		return writePlan(cmd.OutOrStdout(), result, opts.format)
	}

	if err := writePlanFile(opts.output, result, opts.format); err != nil {
		return err
	}
	printFile(opts.output)
	return nil
}

// writePlanFile writes the plan to path. A failed close is reported, since
// that is where buffered writes surface.
func writePlanFile(path string, result *pipeline.Result, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := writePlan(f, result, format); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}

func writePlan(w io.Writer, result *pipeline.Result, format string) error {
	if format == formatPretty {
		_, err := io.WriteString(w, renderPlan(result))
		return err
	}
	return result.Plan.Encode(w, format)
}
