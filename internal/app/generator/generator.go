//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"fmt"
	"io"
	"os"

	"runlog/internal/app/errors"
	"runlog/internal/config"
	"runlog/internal/config/logger"
)

const header = "# runlog configuration\n# Every key can be overridden with a RUNLOG_ variable, e.g. RUNLOG_BUFFER_CAPACITY=500\n\n"

// Options contains the configuration for generating the config file
type Options struct {
	Path string
	// Format is yaml or toml; empty means infer it from Path
	Format string
	Config *config.Config
}

// DefaultOptions returns the default file name and settings
func DefaultOptions() Options {
	return Options{
		Path:   config.FileName,
		Format: config.FormatYAML,
		Config: config.DefaultConfig(),
	}
}

// Generator defines the interface for generating runlog.yaml or runlog.toml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator instance; dry runs print to stdout
func NewGenerator(log logger.Logger) Generator {
	return newGenerator(os.Stdout, log)
}

func newGenerator(out io.Writer, log logger.Logger) *generator {
	return &generator{
		out: out,
		log: log,
	}
}

// Generate renders the settings and writes them to opts.Path
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}

	if opts.Format == "" {
		opts.Format = config.FormatOf(opts.Path)
	}

	if !dryRun && !force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrFileExists, opts.Path)
		}
	}

	body, err := opts.Config.MarshalAs(opts.Format)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	content := append([]byte(header), body...)

	if dryRun {
		_, err := g.out.Write(content)
		return err
	}

	if err := os.WriteFile(opts.Path, content, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", opts.Path)

	return nil
}
