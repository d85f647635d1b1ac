package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// providersCommand lists registered providers in detection order.
func (c *CLI) providersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the registered providers in detection order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range c.Registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
