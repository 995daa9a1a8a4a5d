//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"runlog/internal/app/capture"
	"runlog/internal/app/errors"
	"runlog/internal/app/generator"
	"runlog/internal/app/navigator"
	"runlog/internal/app/overlay"
	"runlog/internal/app/producer"
	"runlog/internal/config"
	"runlog/internal/config/logger"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// Params contains dependencies for the cli
type Params struct {
	fx.In

	Options   *Options
	Config    *config.Config
	Sink      *capture.Sink
	Navigator navigator.Navigator
	Producer  producer.Producer
	Program   overlay.Program
	Generator generator.Generator
	Logger    logger.Logger
}

type cli struct {
	opts      *Options
	cfg       *config.Config
	sink      *capture.Sink
	nav       navigator.Navigator
	producer  producer.Producer
	program   overlay.Program
	generator generator.Generator
	out       io.Writer
	errOut    io.Writer
	log       logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(p Params) CLI {
	return &cli{
		opts:      p.Options,
		cfg:       p.Config,
		sink:      p.Sink,
		nav:       p.Navigator,
		producer:  p.Producer,
		program:   p.Program,
		generator: p.Generator,
		out:       os.Stdout,
		errOut:    os.Stderr,
		log:       p.Logger.WithComponent("CLI"),
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	var err error

	switch c.opts.Type {
	case CommandHelp:
		_, err = fmt.Fprint(c.out, RenderUsage())
	case CommandVersion:
		_, err = fmt.Fprintln(c.out, RenderTitle())
	case CommandInit:
		err = c.handleInit()
	case CommandRun:
		err = c.handleRun()
	default:
		err = errors.ErrUnknownCommand
	}

	if err != nil {
		c.log.Error().Err(err).Msg("Command failed")
		fmt.Fprintln(c.errOut, RenderError(err))

		return ExitError, err
	}

	return ExitOK, nil
}

func (c *cli) handleInit() error {
	opts := generator.Options{
		Path:   config.FileName,
		Format: c.opts.Format,
		Config: c.cfg,
	}

	if c.opts.Format == config.FormatTOML {
		opts.Path = config.TOMLFileName
	}

	return c.generator.Generate(opts, c.opts.Force, c.opts.DryRun)
}

func (c *cli) handleRun() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.opts.NoUI {
		return c.runHeadless(ctx)
	}

	return c.runOverlay(ctx)
}

// runHeadless prints accepted entries until ctx is cancelled
func (c *cli) runHeadless(ctx context.Context) error {
	p := newPrinter(c.out)
	c.sink.Watch(p.print)

	c.log.Info().Strs("severities", c.cfg.Capture.Severities).Msg("Capturing, press ctrl+c to stop")

	return c.runProducer(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
}

func (c *cli) runOverlay(ctx context.Context) error {
	return c.runProducer(ctx, func(ctx context.Context) error {
		program, err := c.program(ctx)
		if err != nil {
			return err
		}

		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("overlay: %w", err)
		}

		return nil
	})
}

// runProducer runs the demo producer alongside fn and stops it once fn returns
func (c *cli) runProducer(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		if err := c.producer.Run(ctx); err != nil {
			c.log.Error().Err(err).Msg("Producer stopped")
		}
	}()

	err := fn(ctx)

	cancel()
	wg.Wait()

	stats := c.sink.Stats()
	snap := c.nav.Snapshot()

	unread := 0
	if snap.HasUnread {
		unread = snap.Len - snap.UnreadIndex
	}

	c.log.Info().
		Int("retained", snap.Len).
		Int("unread", unread).
		Str("state", snap.State).
		Msgf("Session finished (accepted: %d, masked: %d, ignored: %d)", stats.Accepted, stats.Masked, stats.Ignored)

	return err
}
