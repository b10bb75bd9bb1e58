package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/rinchi/internal/config"
	"github.com/roach88/rinchi/internal/engine"
	"github.com/roach88/rinchi/internal/ir"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Config is loaded from ConfigPath before any subcommand runs. Commands
	// built directly in tests use config.Default.
	Config *config.Config

	// Engine overrides the native engine (for testing).
	Engine engine.Engine

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the rinchi CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "rinchi",
		Short:   "RInChI toolkit",
		Long:    "Decompose, rebuild, key and index reaction InChIs.\n\n" + ir.License,
		Version: fmt.Sprintf("%s (RInChI %s)", ir.ToolkitVersion, ir.RInChIVersion),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			opts.Config = &cfg
			opts.logger.Debug("config loaded", "path", opts.ConfigPath, "workers", cfg.Workers, "keys", cfg.Keys)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "CUE config file")

	// Add subcommands
	cmd.AddCommand(NewDecomposeCommand(opts))
	cmd.AddCommand(NewRecomposeCommand(opts))
	cmd.AddCommand(NewKeyCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewIndexCommand(opts))
	cmd.AddCommand(NewLookupCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// config returns the loaded config, or the defaults when the root command
// did not run.
func (o *RootOptions) config() config.Config {
	if o.Config != nil {
		return *o.Config
	}
	return config.Default()
}

// log returns the logger installed by the root command, or a discarding
// logger.
func (o *RootOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// engine returns the configured engine, the native one by default.
func (o *RootOptions) engine() engine.Engine {
	if o.Engine != nil {
		return o.Engine
	}
	return engine.NewNative()
}

// client returns a client over the configured engine.
func (o *RootOptions) client() *engine.Client {
	return engine.NewClient(o.engine(), engine.WithLogger(o.log()))
}

// formatter returns an OutputFormatter writing to the command's streams.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
