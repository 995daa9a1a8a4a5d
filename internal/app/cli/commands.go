package cli

import (
	"time"

	"github.com/spf13/cobra"

	"runlog/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type   CommandType
	Mask   []string
	Rate   time.Duration
	NoUI   bool
	Force  bool
	DryRun bool
	Format string
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandRun}

	var version bool

	root := buildRootCommand(result, &version)
	root.AddCommand(
		buildRunCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if version {
		result.Type = CommandVersion
	}

	return result, nil
}

// Apply overlays flag values onto cfg and validates the result
func (o *Options) Apply(cfg *config.Config) error {
	if len(o.Mask) > 0 {
		cfg.Capture.Severities = o.Mask
	}

	if o.Rate > 0 {
		cfg.Producer.Rate = o.Rate
	}

	return cfg.Validate()
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, version *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Capture host log output and surface unread errors in an overlay",
		Long: `runlog subscribes to the host log stream, keeps the records that pass
the severity mask and shows the newest one in a compact banner. Activating the
banner opens the oldest unread record in detail.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Print accepted entries as JSON lines instead of the overlay")
	cmd.Flags().BoolVarP(version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRunCommand creates the run subcommand
func buildRunCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Aliases: []string{"r"},
		Short:   "Run the overlay with the demo producer",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.Flags().StringSliceVarP(&result.Mask, "mask", "m", nil, "Severities to capture (names, all or errors)")
	cmd.Flags().DurationVar(&result.Rate, "rate", 0, "Interval between demo records")

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate runlog.yaml with the current settings",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the file instead of writing it")
	cmd.Flags().StringVar(&result.Format, "format", config.FormatYAML, "File format (yaml or toml)")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}
