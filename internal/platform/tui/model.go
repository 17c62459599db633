package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadekit/roadrush/internal/core"
	"github.com/arcadekit/roadrush/internal/registry"
	"github.com/arcadekit/roadrush/internal/storage"
)

// holdWindow is how long a steering key counts as held after a key event.
// Terminals deliver presses, not releases, so a held key shows up as a
// stream of auto-repeat events; each one re-arms the window.
const holdWindow = 150 * time.Millisecond

// Model is the Bubble Tea model that drives a game run.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keymap     *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	difficulty string
	holdUp     int // Remaining ticks the up key counts as held
	holdDown   int
	runStart   time.Time
	quitting   bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keymap:     NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		difficulty: difficulty,
		runStart:   time.Now(),
	}
}

// holdWindowTicks converts the hold window to simulation ticks.
func (m Model) holdWindowTicks() int {
	ticks := int(holdWindow * time.Duration(m.config.TickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Steering keys arm a hold window
// that auto-repeat keeps refreshed; everything else is a one-shot action
// consumed on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.holdUp = m.holdWindowTicks()
	case core.ActionDown:
		m.holdDown = m.holdWindowTicks()
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.runStart = time.Now()
		m.inputFrame.Clear()
		m.holdUp, m.holdDown = 0, 0
		return m, tickCmd(m.config.TickRate)
	}

	// Fold the active hold windows into this tick's frame
	if m.holdUp > 0 {
		m.inputFrame.Set(core.ActionUp)
		m.holdUp--
	}
	if m.holdDown > 0 {
		m.inputFrame.Set(core.ActionDown)
		m.holdDown--
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil && m.gameState.Score > 0 {
			duration := int(time.Since(m.runStart).Seconds())
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.gameState.Score, m.difficulty, duration)
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) error {
	model := NewModel(game, store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
