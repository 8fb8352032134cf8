package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <controller> <action>...",
		Short: "Resolve the closures of one or more actions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			controller := args[0]
			closures, err := c.app.Resolve(cmd.Context(), controller, args[1:])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, closure := range closures {
				if _, err := fmt.Fprintf(out, "%s/%s %s %s\n",
					controller, closure.Action, closure.Origin, closure.Revision); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
