package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"runlog/internal/app/navigator"
)

const ellipsis = "…"

// View renders the current navigator view inside the draw rectangle
func (m Model) View() string {
	if m.quit || !m.layout.Ready() {
		return ""
	}

	switch m.view.Kind {
	case navigator.ViewCompact:
		return m.place(m.layout.Banner(), m.renderBanner())
	case navigator.ViewDetail:
		return m.place(m.layout.Rect(), m.renderDetail())
	default:
		return ""
	}
}

// place offsets rendered content to the rectangle origin
func (m Model) place(r Rect, content string) string {
	if r.Y > 0 {
		content = strings.Repeat("\n", r.Y) + content
	}

	if r.X > 0 {
		content = lipgloss.NewStyle().MarginLeft(r.X).Render(content)
	}

	return content
}

func (m Model) renderBanner() string {
	r := m.layout.Banner()

	counter := ""
	if m.view.Unread > 0 {
		counter = fmt.Sprintf(" %s %d unread", m.pulse.Render(m.styles.Marker), m.view.Unread)
	}

	message := firstLine(m.view.Message)
	room := r.Width - bannerPadding - lipgloss.Width(counter)
	if room < 0 {
		room = 0
	}

	message = ansi.Truncate(message, room, ellipsis)
	gap := room - lipgloss.Width(message)
	if gap < 0 {
		gap = 0
	}

	line := message + strings.Repeat(" ", gap) + counter

	return m.styles.Banner(m.view.Severity).
		Width(r.Width).
		Height(r.Height).
		Render(line)
}

func (m Model) renderDetail() string {
	r := m.layout.Rect()

	header := fmt.Sprintf("%s  %d of %d", m.view.Severity, m.view.Position, m.view.Total)
	if m.view.Unread > 1 {
		header += fmt.Sprintf("  (%d more unread)", m.view.Unread-1)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Header.Width(r.Width).Render(ansi.Truncate(header, r.Width, ellipsis)),
		m.viewport.View(),
		m.styles.Help.Render(m.help.View(m.keys)),
	)
}

// detailContent renders the message and detail wrapped to the viewport width
func (m Model) detailContent() string {
	text := m.view.Message
	if m.view.Detail != "" {
		text += "\n" + m.view.Detail
	}

	width := m.viewport.Width
	if width <= 0 {
		width = fallbackWidth
	}

	return m.styles.Detail(m.view.Severity).Width(width).Render(text)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}

	return s
}
