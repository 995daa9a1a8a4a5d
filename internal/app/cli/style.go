package cli

import (
	"github.com/charmbracelet/lipgloss"

	"runlog/internal/config"
)

var (
	sectionHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
	commandName   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	exampleCode   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	body          = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	errorLabel    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E53935"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

type usageLine struct {
	command string
	text    string
}

var (
	commands = []usageLine{
		{"runlog run [--mask error,exception] [--rate 500ms]", "Run the overlay with the demo producer"},
		{"runlog run --no-ui", "Print accepted entries as JSON lines"},
		{"runlog init [--force] [--dry-run]", "Generate runlog.yaml"},
		{"runlog version", "Show version"},
	}

	examples = []usageLine{
		{"runlog run --mask all", "Capture every severity"},
		{"RUNLOG_BUFFER_CAPACITY=100 runlog", "Keep only the newest 100 entries"},
	}
)

// RenderTitle renders the app title block with name, version and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, body.Render(config.AppDescription))
}

// RenderUsage renders the help screen
func RenderUsage() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		renderLines(commands, commandName),
		sectionHeader.Render("Examples:"),
		renderLines(examples, exampleCode),
	) + "\n"
}

// RenderError renders an error line for stderr
func RenderError(err error) string {
	return errorLabel.Render("Error:") + " " + err.Error()
}

func renderLines(lines []usageLine, style lipgloss.Style) string {
	width := 0
	for _, l := range lines {
		if len(l.command) > width {
			width = len(l.command)
		}
	}

	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		cmd := style.Width(width + 4).Render(l.command)
		rows = append(rows, "  "+cmd+body.Render(l.text))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
