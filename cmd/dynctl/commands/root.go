// Package commands implements the CLI commands for dynctl.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/dynctl/internal/adapters/config"
	"go.trai.ch/dynctl/internal/app"
	"go.trai.ch/dynctl/internal/build"
	"go.trai.ch/dynctl/internal/core/domain"
)

// CLI represents the command line interface for dynctl.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "dynctl",
		Short:         "Resolve and cache controller closures",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")
	rootCmd.PersistentFlags().String("env", "", "Override the environment (development, test, production)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newDefineCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configure loads the manifest and applies the --env override.
func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if err := c.app.Load(configPath); err != nil {
		return err
	}

	env, err := cmd.Flags().GetString("env")
	if err != nil {
		return err
	}
	if env != "" {
		mode, err := domain.ParseMode(env)
		if err != nil {
			return err
		}
		c.app.SetMode(mode)
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the destination for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
