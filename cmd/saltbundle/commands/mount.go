package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mount <mountpoint>",
		Short: "Mount the namespace read-only until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Mount(cmd.Context(), c.opts, args[0])
		},
	}
}
