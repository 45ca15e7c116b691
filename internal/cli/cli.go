// Package cli implements the tianzige command-line interface.
//
// # Commands
//
//   - generate: render one grid to a PDF file
//   - templates: render every standard page/square size combination
//   - serve: expose the pipeline over HTTP
//   - completion: generate shell completion scripts
//
// # Configuration
//
// Settings are resolved in three layers: built-in defaults, then the config
// file (--config, or ~/.config/tianzige/config.toml when present), then
// flags given explicitly on the command line.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tianzige/pkg/buildinfo"
	"github.com/matzehuels/tianzige/pkg/config"
	"github.com/matzehuels/tianzige/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "tianzige"

	// defaultOutput is the PDF written by generate when no path is given.
	defaultOutput = "tianzige.pdf"

	// defaultTemplateDir is the directory written by templates when no
	// path is given.
	defaultTemplateDir = "sample_pdf"
)

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

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Tianzige generates Chinese character practice grids as PDF",
		Long: `Tianzige generates printable 田字格 practice sheets: a grid of square
cells, each split into quarters by dashed guide lines, laid out to fit
the chosen paper size and margins.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (.toml, .yaml or .yml; default ~/.config/tianzige/config.toml)")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// configFile returns the config file in effect: the --config path, or the
// default path when that file exists. It returns "" when there is none.
func (c *CLI) configFile() string {
	if c.configPath != "" {
		return c.configPath
	}
	path := config.DefaultPath()
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// baseOptions returns the defaults overlaid with the config file.
func (c *CLI) baseOptions() (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	opts.Logger = c.Logger

	path := c.configFile()
	if path == "" {
		return opts, nil
	}
	f, err := config.Load(path)
	if err != nil {
		return opts, err
	}
	f.Apply(&opts)
	c.Logger.Debug("loaded config", "path", path)
	return opts, nil
}
