package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runlog/internal/app/errors"
	"runlog/internal/app/severity"
	"runlog/internal/config"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{
			name:     "no args runs",
			args:     []string{},
			expected: Options{Type: CommandRun, Format: config.FormatYAML},
		},
		{
			name:     "run with mask and rate",
			args:     []string{"run", "--mask", "error,exception", "--rate", "250ms"},
			expected: Options{Type: CommandRun, Mask: []string{"error", "exception"}, Rate: 250 * time.Millisecond, Format: config.FormatYAML},
		},
		{
			name:     "run alias with repeated mask",
			args:     []string{"r", "-m", "all", "-m", "info"},
			expected: Options{Type: CommandRun, Mask: []string{"all", "info"}, Format: config.FormatYAML},
		},
		{
			name:     "headless run",
			args:     []string{"--no-ui", "run"},
			expected: Options{Type: CommandRun, NoUI: true, Format: config.FormatYAML},
		},
		{
			name:     "init with force",
			args:     []string{"init", "--force"},
			expected: Options{Type: CommandInit, Force: true, Format: config.FormatYAML},
		},
		{
			name:     "init dry run",
			args:     []string{"i", "--dry-run"},
			expected: Options{Type: CommandInit, DryRun: true, Format: config.FormatYAML},
		},
		{
			name:     "init as toml",
			args:     []string{"init", "--format", "toml"},
			expected: Options{Type: CommandInit, Format: config.FormatTOML},
		},
		{
			name:     "version subcommand",
			args:     []string{"version"},
			expected: Options{Type: CommandVersion, Format: config.FormatYAML},
		},
		{
			name:     "version flag",
			args:     []string{"-v"},
			expected: Options{Type: CommandVersion, Format: config.FormatYAML},
		},
		{
			name:     "help flag",
			args:     []string{"--help"},
			expected: Options{Type: CommandHelp, Format: config.FormatYAML},
		},
		{
			name:     "subcommand help",
			args:     []string{"run", "--help"},
			expected: Options{Type: CommandHelp, Format: config.FormatYAML},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *opts)
		})
	}
}

func Test_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "bad duration", args: []string{"run", "--rate", "soon"}},
		{name: "unexpected argument", args: []string{"version", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			assert.Error(t, err)
		})
	}
}

func Test_Options_Apply(t *testing.T) {
	t.Run("flags override config", func(t *testing.T) {
		cfg := config.DefaultConfig()
		opts := &Options{Mask: []string{"all"}, Rate: time.Second}

		require.NoError(t, opts.Apply(cfg))
		assert.Equal(t, []string{"all"}, cfg.Capture.Severities)
		assert.Equal(t, time.Second, cfg.Producer.Rate)

		mask, err := cfg.Mask()
		require.NoError(t, err)
		assert.Equal(t, severity.MaskAll, mask)
	})

	t.Run("empty flags keep config", func(t *testing.T) {
		cfg := config.DefaultConfig()

		require.NoError(t, (&Options{}).Apply(cfg))
		assert.Equal(t, config.DefaultConfig().Capture.Severities, cfg.Capture.Severities)
		assert.Equal(t, config.DefaultProducerRate, cfg.Producer.Rate)
	})

	t.Run("invalid mask rejected", func(t *testing.T) {
		cfg := config.DefaultConfig()

		err := (&Options{Mask: []string{"loud"}}).Apply(cfg)
		assert.ErrorIs(t, err, errors.ErrUnknownSeverity)
	})
}
