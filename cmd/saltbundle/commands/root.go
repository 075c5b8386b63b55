// Package commands implements the CLI commands for saltbundle.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/saltbundle/internal/adapters/config"
	"go.trai.ch/saltbundle/internal/adapters/detector"
	"go.trai.ch/saltbundle/internal/adapters/telemetry"
	"go.trai.ch/saltbundle/internal/app"
	"go.trai.ch/saltbundle/internal/build"
	"go.trai.ch/saltbundle/internal/core/domain"
	"go.trai.ch/saltbundle/internal/core/ports"
)

// skipOptions marks commands that run without host options.
const skipOptions = "saltbundle/skip-options"

// Application represents the application logic interface.
type Application interface {
	Fileserver() ports.Fileserver
	ServeDaemon(ctx context.Context, opts domain.HostOptions, daemonOpts app.DaemonOptions) error
	StartDaemon(ctx context.Context, socketPath string, args ...string) error
	DaemonStatus(ctx context.Context, socketPath string) (*ports.DaemonStatus, error)
	StopDaemon(ctx context.Context, socketPath string) error
	RefreshDaemon(ctx context.Context, socketPath string) error
	Mount(ctx context.Context, opts domain.HostOptions, mountpoint string) error
}

// OptionsLoader assembles host options from the master configuration, the
// environment and the command line.
type OptionsLoader interface {
	Load(masterConfig string, flags *pflag.FlagSet) (domain.HostOptions, error)
}

// configurableLogger is implemented by the logger adapter.
type configurableLogger interface {
	SetJSON(enable bool)
	SetLevel(level slog.Level)
}

type globalFlags struct {
	cwd          string
	configDir    string
	masterConfig string
	hashType     string
	verbose      bool
	jsonLogs     bool
	trace        bool
}

// CLI represents the command line interface for saltbundle.
type CLI struct {
	app     Application
	loader  OptionsLoader
	logger  ports.Logger
	rootCmd *cobra.Command

	flags         globalFlags
	opts          domain.HostOptions
	shutdownTrace func(context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application, loader OptionsLoader, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "saltbundle",
		Short:         "Serve vendored Salt formulas as one virtual file tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		loader:  loader,
		logger:  logger,
		rootCmd: rootCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.flags.cwd, "cwd", "", "Directory the project configuration search starts from")
	pf.StringVar(&c.flags.configDir, "config-dir", "", "Salt configuration directory (defaults to the master config's directory)")
	pf.StringVar(&c.flags.masterConfig, "master-config", config.DefaultMasterConfig, "Salt master configuration to read host settings from")
	pf.StringVar(&c.flags.hashType, "hash-type", "", "Default digest algorithm")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&c.flags.jsonLogs, "json-logs", false, "Write logs as JSON")
	pf.BoolVar(&c.flags.trace, "trace", false, "Log a line for every finished operation span")

	rootCmd.PersistentPreRunE = c.preRun
	rootCmd.PersistentPostRunE = c.postRun

	rootCmd.AddCommand(c.newEnvsCmd())
	rootCmd.AddCommand(c.newFindCmd())
	rootCmd.AddCommand(c.newFilesCmd())
	rootCmd.AddCommand(c.newDirsCmd())
	rootCmd.AddCommand(c.newHashCmd())
	rootCmd.AddCommand(c.newCatCmd())
	rootCmd.AddCommand(c.newRootsCmd())
	rootCmd.AddCommand(c.newPillarCmd())
	rootCmd.AddCommand(c.newMountCmd())
	rootCmd.AddCommand(c.newDaemonCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	c.configureLogger()

	if c.flags.trace {
		c.shutdownTrace = telemetry.Setup(c.logger)
	}

	if cmd.Annotations[skipOptions] != "" {
		return nil
	}

	opts, err := c.loader.Load(c.flags.masterConfig, cmd.Flags())
	if err != nil {
		return err
	}
	c.opts = opts
	return nil
}

func (c *CLI) postRun(cmd *cobra.Command, _ []string) error {
	if c.shutdownTrace == nil {
		return nil
	}
	return c.shutdownTrace(cmd.Context())
}

func (c *CLI) configureLogger() {
	l, ok := c.logger.(configurableLogger)
	if !ok {
		return
	}

	format := detector.ResolveFormat(detector.DetectLogFormat(), c.flags.jsonLogs)
	l.SetJSON(format == detector.FormatJSON)

	if c.flags.verbose || c.flags.trace {
		l.SetLevel(slog.LevelDebug)
	}
}

// socketPath anchors a relative socket path at the project search directory.
func (c *CLI) socketPath(socket string) string {
	if socket == "" {
		socket = domain.DefaultDaemonSocketPath()
	}
	if filepath.IsAbs(socket) || c.opts.Cwd == "" {
		return socket
	}
	return filepath.Join(c.opts.Cwd, socket)
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
