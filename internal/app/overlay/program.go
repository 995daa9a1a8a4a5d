package overlay

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"

	"runlog/internal/app/errors"
	"runlog/internal/app/navigator"
	"runlog/internal/config"
	"runlog/internal/config/logger"
)

// Program creates a bubbletea program drawing the overlay
type Program func(ctx context.Context) (*tea.Program, error)

// Module provides the overlay program factory
var Module = fx.Options(
	fx.Provide(NewProgram),
)

// ProgramParams contains dependencies for creating the program factory
type ProgramParams struct {
	fx.In

	Config    *config.Config
	Navigator navigator.Navigator
	Logger    logger.Logger
}

// NewProgram creates a factory for overlay programs bound to the terminal
func NewProgram(params ProgramParams) Program {
	return func(ctx context.Context) (*tea.Program, error) {
		fd := os.Stdout.Fd()
		if !term.IsTerminal(fd) {
			return nil, errors.ErrNotTerminal
		}

		model := NewModel(params.Navigator, params.Config.Overlay.BannerRate, params.Logger)

		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = fallbackWidth, fallbackHeight
		}

		model.resize(TerminalGeometry(width, height))

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msgf("Overlay program created (%dx%d)", width, height)

		return p, nil
	}
}
