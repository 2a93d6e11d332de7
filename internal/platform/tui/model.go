package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Rows taken by the HUD line and the help line around the board.
const chromeRows = 2

// Options configures a Model.
type Options struct {
	Game   game.Options
	Glyphs game.Glyphs
	FPS    int
	Seed   int64 // 0 picks a time-based seed
	Logger *log.Logger
}

// DefaultOptions returns a time-gated 20x20 game at 60 frames per second.
func DefaultOptions() Options {
	return Options{
		Game:   game.DefaultOptions(),
		Glyphs: game.DefaultGlyphs(),
		FPS:    60,
	}
}

// Model is the Bubble Tea model for one snake session.
type Model struct {
	state    *game.State
	rng      game.Random
	opts     Options
	board    *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	last     time.Time // time of the previous frame
	width    int
	height   int
	paused   bool
	quitting bool
}

// NewModel creates a model with a freshly placed game.
func NewModel(opts Options) Model {
	if opts.FPS < 1 {
		opts.FPS = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := game.NewRandom(opts.Seed)
	state := game.New(opts.Game, rng)
	side := state.GridSize() + 2 // board plus border

	return Model{
		state:  state,
		rng:    rng,
		opts:   opts,
		board:  core.NewScreen(side, side),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "ticks", m.state.Ticks(), "len", m.state.Len())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.state = game.New(m.opts.Game, m.rng)
		m.paused = false
		m.logger.Info("restart", "head", m.state.Head(), "target", m.state.Target())
		return m, nil
	}

	if h, ok := m.keys.Heading(msg); ok && !m.paused {
		m.state.ChangeHeading(h)
	}
	return m, nil
}

// handleTick feeds the time since the previous frame into the engine.
// Nothing is fed while paused, and the first frame only records the time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.last.IsZero() && !m.paused {
		elapsed := now.Sub(m.last).Seconds()
		res := m.state.Step(elapsed)
		switch {
		case res.Collided:
			m.logger.Info("self-collision", "capacity", m.state.Capacity(), "head", m.state.Head())
		case res.Ate:
			m.logger.Debug("target reached", "capacity", m.state.Capacity(), "target", m.state.Target())
		}
	}
	m.last = now

	return m, tickCmd(m.opts.FPS)
}

// State returns the game driven by the model.
func (m Model) State() *game.State {
	return m.state
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// View renders the HUD, the board and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	side := m.board.Width()
	if m.width > 0 && (m.width < side || m.height < side+chromeRows) {
		msg := warnStyle.Render(fmt.Sprintf("Window too small: need %dx%d", side, side+chromeRows))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.board.Clear()
	m.board.DrawBox(m.board.Bounds())
	m.state.Render(m.board, 1, 1, m.opts.Glyphs)
	if m.paused {
		m.board.DrawTextCentered(side/2, " PAUSED ")
	}

	hud := hudStyle.Render(fmt.Sprintf("Snake  len %d/%d  %s",
		m.state.Len(), m.state.Capacity(), m.state.Heading()))

	view := lipgloss.JoinVertical(lipgloss.Left,
		hud,
		RenderScreen(m.board),
		m.help.View(m.keys),
	)
	if m.width == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

// Run starts a Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
