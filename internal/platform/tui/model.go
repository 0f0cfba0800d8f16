package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quintrel/gridrealm/internal/session"
	"github.com/quintrel/gridrealm/internal/sim"
)

// Model is the Bubble Tea model for a city session.
type Model struct {
	sess    *session.Session
	catalog *sim.Catalog

	// Cached snapshot, refreshed after every mutation.
	grid  sim.Grid
	stats sim.CityStats

	cursorX int
	cursorY int
	tool    int // index into catalog.Buildable()

	keys   KeyMap
	help   help.Model
	status string // last action outcome, shown in the side panel

	width    int
	height   int
	quitting bool
}

// NewModel creates a model over a running session.
func NewModel(sess *session.Session, catalog *sim.Catalog) Model {
	grid, stats := sess.Snapshot()
	h := help.New()
	h.ShowAll = false

	return Model{
		sess:    sess,
		catalog: catalog,
		grid:    grid,
		stats:   stats,
		cursorX: grid.Size / 2,
		cursorY: grid.Size / 2,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init starts the day clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.sess.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.sess.Tick()
		m.refresh()
		return m, tickCmd(m.sess.TickInterval())
	}

	return m, nil
}

// refresh pulls the latest grid and stats from the session.
func (m *Model) refresh() {
	m.grid, m.stats = m.sess.Snapshot()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tools := m.catalog.Buildable()

	switch {
	case key.Matches(msg, m.keys.Quit):
		// Best-effort save on the way out.
		//nolint:errcheck
		m.sess.Save()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursorY > 0 {
			m.cursorY--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursorY < m.grid.Size-1 {
			m.cursorY++
		}
	case key.Matches(msg, m.keys.Left):
		if m.cursorX > 0 {
			m.cursorX--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursorX < m.grid.Size-1 {
			m.cursorX++
		}

	case key.Matches(msg, m.keys.NextTool):
		m.tool = (m.tool + 1) % len(tools)
	case key.Matches(msg, m.keys.PrevTool):
		m.tool--
		if m.tool < 0 {
			m.tool = len(tools) - 1
		}

	case key.Matches(msg, m.keys.Build):
		resp := m.sess.Apply(sim.Action{
			Kind:     sim.ActionBuild,
			X:        m.cursorX,
			Y:        m.cursorY,
			Building: tools[m.tool].Type,
		})
		m.status = resp.Message
		m.refresh()

	case key.Matches(msg, m.keys.Upgrade):
		resp := m.sess.Apply(sim.Action{Kind: sim.ActionUpgrade, X: m.cursorX, Y: m.cursorY})
		m.status = resp.Message
		m.refresh()

	case key.Matches(msg, m.keys.Bulldoze):
		resp := m.sess.Apply(sim.Action{Kind: sim.ActionBulldoze, X: m.cursorX, Y: m.cursorY})
		m.status = resp.Message
		m.refresh()

	case key.Matches(msg, m.keys.Pause):
		if m.sess.TogglePause() {
			m.status = "Time stands still."
		} else {
			m.status = "Time flows again."
		}

	case key.Matches(msg, m.keys.Weather):
		m.sess.SetWeather(nextWeather(m.stats.Weather))
		m.refresh()

	case key.Matches(msg, m.keys.TaxUp):
		m.sess.SetTaxRate(m.stats.TaxRate + 0.1)
		m.refresh()
	case key.Matches(msg, m.keys.TaxDown):
		m.sess.SetTaxRate(m.stats.TaxRate - 0.1)
		m.refresh()

	case key.Matches(msg, m.keys.Save):
		if err := m.sess.Save(); err != nil {
			m.status = "Save failed."
		} else {
			m.status = "Realm preserved."
		}
	}

	return m, nil
}

// nextWeather cycles clear -> rain -> storm -> clear.
func nextWeather(w sim.Weather) sim.Weather {
	switch w {
	case sim.WeatherClear:
		return sim.WeatherRain
	case sim.WeatherRain:
		return sim.WeatherStorm
	default:
		return sim.WeatherClear
	}
}

// View renders the city, side panel, and help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderView(m)
}

// Run starts the Bubble Tea program over the given session.
func Run(sess *session.Session, catalog *sim.Catalog) error {
	p := tea.NewProgram(
		NewModel(sess, catalog),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
