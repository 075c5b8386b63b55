package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/saltbundle/internal/adapters/daemon"
	"go.trai.ch/saltbundle/internal/app"
	"go.trai.ch/saltbundle/internal/core/ports"
	"go.trai.ch/saltbundle/internal/ui/style"
)

const labelWidth = 10

type daemonFlags struct {
	socket      string
	idleTimeout time.Duration
	watch       bool
}

func (c *CLI) newDaemonCmd() *cobra.Command {
	var flags daemonFlags

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Manage the background daemon",
	}
	cmd.PersistentFlags().StringVar(&flags.socket, "socket", "", "Unix socket of the daemon (default .saltbundle/daemon.sock)")

	cmd.AddCommand(c.newDaemonServeCmd(&flags))
	cmd.AddCommand(c.newDaemonStartCmd(&flags))
	cmd.AddCommand(c.newDaemonStatusCmd(&flags))
	cmd.AddCommand(c.newDaemonStopCmd(&flags))
	cmd.AddCommand(c.newDaemonRefreshCmd(&flags))

	return cmd
}

func addServeFlags(cmd *cobra.Command, flags *daemonFlags) {
	cmd.Flags().DurationVar(&flags.idleTimeout, "idle-timeout", daemon.DefaultIdleTimeout,
		"Stop after this long without a request (0 disables)")
	cmd.Flags().BoolVar(&flags.watch, "watch", true, "Drop the index when the vendor directory changes")
}

func (c *CLI) newDaemonServeCmd(flags *daemonFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the fileserver in the foreground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ServeDaemon(cmd.Context(), c.opts, app.DaemonOptions{
				Socket:      c.socketPath(flags.socket),
				IdleTimeout: flags.idleTimeout,
				Watch:       flags.watch,
			})
		},
	}
	addServeFlags(cmd, flags)
	return cmd
}

func (c *CLI) newDaemonStartCmd(flags *daemonFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a background daemon unless one is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.StartDaemon(cmd.Context(), c.socketPath(flags.socket), c.serveArgs(flags)...)
		},
	}
	addServeFlags(cmd, flags)
	return cmd
}

// serveArgs carries the resolved host options over to "daemon serve".
func (c *CLI) serveArgs(flags *daemonFlags) []string {
	args := []string{
		"--cwd", c.opts.Cwd,
		"--idle-timeout", flags.idleTimeout.String(),
		"--watch=" + strconv.FormatBool(flags.watch),
	}
	if c.opts.ConfigDir != "" {
		args = append(args, "--config-dir", c.opts.ConfigDir)
	}
	if c.opts.HashType != "" {
		args = append(args, "--hash-type", c.opts.HashType)
	}
	if c.rootCmd.PersistentFlags().Changed("master-config") {
		args = append(args, "--master-config", c.flags.masterConfig)
	}
	if c.flags.verbose {
		args = append(args, "--verbose")
	}
	return args
}

func (c *CLI) newDaemonStatusCmd(flags *daemonFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.DaemonStatus(cmd.Context(), c.socketPath(flags.socket))
			if err != nil {
				return err
			}
			return renderStatus(cmd.OutOrStdout(), status)
		},
	}
}

func (c *CLI) newDaemonStopCmd(flags *daemonFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.StopDaemon(cmd.Context(), c.socketPath(flags.socket))
		},
	}
}

func (c *CLI) newDaemonRefreshCmd(flags *daemonFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Drop the daemon's vendor index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.RefreshDaemon(cmd.Context(), c.socketPath(flags.socket))
		},
	}
}

func renderStatus(w io.Writer, status *ports.DaemonStatus) error {
	p := style.NewPalette(w)
	if !status.Running {
		_, err := fmt.Fprintln(w, p.Failure.Render(style.Circle+" daemon not running"))
		return err
	}

	idle := "disabled"
	if status.IdleRemaining > 0 {
		idle = status.IdleRemaining.String()
	}
	project := status.ProjectDir
	if project == "" {
		project = "(not indexed)"
	}

	rows := [][2]string{
		{"pid", strconv.Itoa(status.PID)},
		{"uptime", status.Uptime.String()},
		{"idle stop", idle},
		{"project", project},
		{"formulas", strconv.Itoa(status.Formulas)},
	}

	if _, err := fmt.Fprintln(w, p.Success.Render(style.Check+" daemon running")); err != nil {
		return err
	}
	for _, row := range rows {
		pad := strings.Repeat(" ", labelWidth-len(row[0]))
		if _, err := fmt.Fprintf(w, "  %s%s %s\n", p.Label.Render(row[0]), pad, p.Value.Render(row[1])); err != nil {
			return err
		}
	}
	return nil
}
