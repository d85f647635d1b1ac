package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackplan/pkg/pipeline"
)

// detectCommand creates the detect command.
func (c *CLI) detectCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "detect [dir]",
		Short: "Report which provider matches a project",
		Long: `Detect inspects the project directory (default ".") and reports the first
provider whose canonical manifest is present. It exits non-zero when no
provider matches.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.newRunner(cmd).Detect(cmd.Context(), pipeline.Options{Source: dirArg(args)})
			if err != nil {
				return err
			}
			if quiet {
				fmt.Fprintln(cmd.OutOrStdout(), result.Provider)
				return nil
			}
			printSuccess("Detected %s", StyleTitle.Render(result.Provider))
			printKeyValue("Source", result.Source)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the provider name")

	return cmd
}
