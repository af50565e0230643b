// Package cmd wires the plume command line: the showcase server, the
// terminal token inspector, and build info.
package cmd

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "plume",
		Short:         "Plume serves a themed catalog of server-rendered UI components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Serving is the primary surface, so bare `plume` starts it
			return runServe(flags, "")
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose request logging")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newTokensCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
