// Package cli implements the thermoicon command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/thermoicon/pkg/buildinfo"
	"github.com/matzehuels/thermoicon/pkg/icon"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "thermoicon"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// probe checks the raster backend before any icon is written.
	probe func() error
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		probe:  icon.Probe,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Invoked without a subcommand it generates the default icon set.
func (c *CLI) RootCommand() *cobra.Command {
	var opts generateOpts

	root := &cobra.Command{
		Use:           appName,
		Short:         "Thermoicon draws the thermometer app icons",
		Long:          `Thermoicon procedurally draws the thermometer badge icon and writes it as PNG at the sizes a progressive web app needs (192, 512 and the 180px Apple touch icon).`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.register(root)

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}
