package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"runlog/internal/app"
	"runlog/internal/app/cli"
	"runlog/internal/config"
	"runlog/internal/config/logger"
)

// main is the entry point for the application
func main() {
	os.Exit(runApp(os.Args[1:]))
}

// runApp parses flags and config before handing over to fx
func runApp(args []string) int {
	opts, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		return cli.ExitError
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		return cli.ExitError
	}

	application := createApp(cfg, opts)
	application.Run()

	return cli.ExitOK
}

// loadConfig loads runlog.yaml and applies command-line overrides
func loadConfig(opts *cli.Options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := opts.Apply(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.StopTimeout(config.ShutdownTimeout),
		fx.Supply(cfg, opts),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, logOutput(opts))
		}),
		app.Module,
	)
}

// logOutput silences application logs while the overlay owns the terminal
func logOutput(opts *cli.Options) io.Writer {
	if opts.Type == cli.CommandRun && !opts.NoUI {
		return io.Discard
	}

	return nil
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
