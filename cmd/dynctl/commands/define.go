package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newDefineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "define <action> <file>",
		Short: "Store the definition of an action read from a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, path := args[0], args[1]
			code, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to read definition"), "path", path)
			}

			if err := c.app.Define(cmd.Context(), action, string(code)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "defined %s\n", action)
			return err
		},
	}
}
