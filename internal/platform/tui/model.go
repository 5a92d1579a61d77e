package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
	"github.com/vovakirdan/snake-tui/internal/storage"
)

// Model is the Bubble Tea model hosting one snake game. It owns the sole
// reference to the simulation and translates host events into its three
// entry points: HandleInput, Update and Reset. No game logic lives here.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	store    *storage.Store // Optional run history; nil disables recording
	config   core.RuntimeConfig
	keys     KeyMapper
	start    time.Time // Simulation clock epoch
	snap     game.Snapshot
	quitting bool
	runSaved bool // Whether the current game over was recorded already
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		start:  time.Now(),
	}
}

// Init initializes the simulation and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey forwards keyboard input to the simulation.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionRestart:
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.start = time.Now()
		m.snap = m.game.Snapshot()
		m.runSaved = false

	default:
		if dir, ok := action.Heading(); ok {
			m.game.HandleInput(dir)
		}
	}

	return m, nil
}

// handleFrame polls the simulation clock and records finished runs.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.game.Update(now.Sub(m.start).Seconds())
	m.snap = m.game.Snapshot()

	// Record the run once per game over
	if m.snap.GameOver && !m.runSaved {
		if m.store != nil && m.snap.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.snap.Score)
		}
		m.runSaved = true
	}

	return m, frameCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Render(m.screen, m.snap)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program hosting the game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
