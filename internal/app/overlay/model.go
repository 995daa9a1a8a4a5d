package overlay

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"runlog/internal/app/navigator"
	"runlog/internal/config/logger"
)

// frameMsg signals a redraw frame
type frameMsg time.Time

// Model is the bubbletea model drawing the navigator's current view
type Model struct {
	nav    navigator.Navigator
	layout *Layout
	styles Styles
	keys   KeyMap
	help   help.Model
	pulse  *Pulse
	log    logger.Logger

	view     navigator.View
	viewport viewport.Model
	// rendered detail currently loaded into the viewport
	loaded   string
	quit     bool
}

// NewModel creates the overlay model
func NewModel(nav navigator.Navigator, bannerRate float64, log logger.Logger) Model {
	return Model{
		nav:      nav,
		layout:   NewLayout(bannerRate),
		styles:   NewStyles(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		pulse:    NewPulse(),
		log:      log.WithComponent("OVERLAY"),
		viewport: viewport.New(0, 0),
	}
}

// Init starts the frame loop
func (m Model) Init() tea.Cmd {
	return frameCmd()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(TerminalGeometry(msg.Width, msg.Height))
		m.refresh()

		return m, nil

	case frameMsg:
		m.refresh()
		m.pulse.Update()

		return m, frameCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		m.quit = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Activate):
		m.activate()
		return m, nil
	}

	if m.view.Kind != navigator.ViewDetail {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.hitTest(msg.X, msg.Y) {
		m.activate()
	}

	return m, nil
}

// hitTest reports whether a click lands on the drawn surface
func (m Model) hitTest(x, y int) bool {
	if !m.layout.Ready() {
		return false
	}

	switch m.view.Kind {
	case navigator.ViewCompact:
		return m.layout.Banner().Contains(x, y)
	case navigator.ViewDetail:
		return m.layout.Rect().Contains(x, y)
	default:
		return false
	}
}

func (m *Model) activate() {
	m.refresh()

	if !m.view.Activatable() {
		return
	}

	if m.nav.Activate() {
		m.log.Debug().Msgf("Activated %s view at %d of %d", m.view.Kind, m.view.Position, m.view.Total)
	}

	m.refresh()
}

func (m *Model) resize(g Geometry) {
	if !m.layout.Apply(g) {
		return
	}

	r := m.layout.Rect()
	m.help.Width = r.Width
	m.viewport.Width = r.Width

	height := r.Height - detailHeader - detailFooter
	if height < 0 {
		height = 0
	}

	m.viewport.Height = height
	m.log.Debug().Msgf("Layout recomputed: %dx%d at (%d,%d)", r.Width, r.Height, r.X, r.Y)
}

// refresh pulls the current view and reloads the viewport when the detail entry changes
func (m *Model) refresh() {
	m.view = m.nav.CurrentView()
	m.pulse.SetActive(m.view.Kind == navigator.ViewCompact && m.view.Unread > 0)

	if m.view.Kind != navigator.ViewDetail {
		m.loaded = ""
		return
	}

	content := m.detailContent()
	if content == m.loaded {
		return
	}

	m.loaded = content
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
