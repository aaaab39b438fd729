// Package cli wires configuration, logging and the command dispatcher
// into the albumcat command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TerminTURK/AlbumCollectionManager/internal/collection"
	"github.com/TerminTURK/AlbumCollectionManager/internal/command"
	"github.com/TerminTURK/AlbumCollectionManager/internal/config"
	"github.com/TerminTURK/AlbumCollectionManager/internal/logger"
	"github.com/TerminTURK/AlbumCollectionManager/internal/render"
)

// Execute runs the albumcat command line and exits non-zero on failure.
func Execute() {
	run(newRootCmd())
}

// ExecuteTUI runs the interactive interface as a standalone command.
func ExecuteTUI() {
	run(newTUICmd(&globalFlags{}, true))
}

func run(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	debug      bool
	styled     bool
	logFile    string
}

func (g *globalFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default searches $HOME/.config/albumcat and .)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "log at debug level")
	cmd.PersistentFlags().BoolVar(&g.styled, "styled", false, "render listings with colors and columns")
	cmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "log file path; empty disables logging")
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	var script string

	cmd := &cobra.Command{
		Use:          "albumcat",
		Short:        "Album Collection Manager: keep and rate an album catalog",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, _, cleanup, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			var in io.Reader = cmd.InOrStdin()
			if script != "" {
				f, err := os.Open(script)
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			// Interrupts end the session like Q does.
			err = d.Run(cmd.Context(), in, cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&script, "script", "", "read commands from a file instead of stdin")

	cmd.AddCommand(newTUICmd(flags, false))
	cmd.AddCommand(newConfigCmd())
	return cmd
}

// setup loads settings, applies flag overrides and builds a dispatcher
// over an empty collection. The returned cleanup closes the log file.
func setup(cmd *cobra.Command, flags *globalFlags) (*command.Dispatcher, *config.Settings, func() error, error) {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	changed := cmd.Flags().Changed
	if changed("debug") {
		settings.Debug = flags.debug
	}
	if changed("styled") {
		settings.StyledOutput = flags.styled
	}
	if changed("log-file") {
		settings.LogFile = flags.logFile
	}

	log, closeLog, err := logger.New(logger.Config{
		Path:       settings.LogFile,
		MaxSizeMB:  settings.LogMaxSizeMB,
		MaxBackups: settings.LogMaxBackups,
		MaxAgeDays: settings.LogMaxAgeDays,
		Debug:      settings.Debug,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	format := render.FormatPlain
	if settings.StyledOutput {
		format = render.FormatStyled
	}

	log.Info("session started", "command", cmd.Name(), "format", format.String(), "import_concurrency", settings.ImportConcurrency)

	d := command.New(collection.New(), command.Options{
		Listing:           render.NewListing(format),
		ImportConcurrency: settings.ImportConcurrency,
		Logger:            log,
	})
	return d, settings, closeLog, nil
}
