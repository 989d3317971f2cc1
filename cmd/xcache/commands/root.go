// Package commands implements the CLI commands for xcache.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.trai.ch/xcache/internal/app"
	"go.trai.ch/xcache/internal/build"
	"go.trai.ch/xcache/internal/core/ports"
)

// jsonToggler is implemented by loggers that can switch to JSON output.
type jsonToggler interface {
	SetJSON(enabled bool)
}

// CLI represents the command line interface for xcache.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	out     io.Writer
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "xcache",
		Short:         "Content fingerprints for Xcode build units",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to xcache.yaml or xcache.toml (default: discovered from the working directory)")
	flags.String("algorithm", "", "Override the hashing algorithm (xxhash64, xxh3-128, sha256)")
	flags.IntP("parallelism", "j", 0, "Number of units hashed at once (default: manifest value or one per CPU)")
	flags.Bool("json-logs", false, "Write logs as JSON")
	flags.Bool("no-color", false, "Disable colored output")

	c := &CLI{
		app:     a,
		logger:  logger,
		out:     os.Stdout,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
			if t, ok := c.logger.(jsonToggler); ok {
				t.SetJSON(true)
			}
		}
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	}

	rootCmd.AddCommand(c.newHashCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
	c.rootCmd.SetOut(w)
}

func options(cmd *cobra.Command, units []string) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	algorithm, _ := cmd.Flags().GetString("algorithm")
	parallelism, _ := cmd.Flags().GetInt("parallelism")
	return app.Options{
		ConfigPath:  configPath,
		Units:       units,
		Algorithm:   algorithm,
		Parallelism: parallelism,
	}
}
