package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/core"
)

// maxPending bounds the number of key presses queued between ticks.
const maxPending = 8

// Game is the interface the platform drives.
// Games contain pure logic; the platform handles input, timing and display.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state and starts its timers.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Hinter is implemented by games that show a hint line under the playfield.
type Hinter interface {
	Hint() string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	interval   time.Duration // Delay between ticks
	delay      time.Duration // Delay before the scheduled tick
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	pending    []core.Action // Key presses not yet consumed by a tick
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The screen buffer is sized from cfg.ScreenW x cfg.ScreenH.
func NewModel(game Game, cfg core.RuntimeConfig) Model {
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := DefaultKeyMap()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		interval:   tickInterval(cfg.TickRate),
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, abort := m.keyMapper.MapKey(msg)
	if abort {
		m.quitting = true
		return m, tea.Quit
	}

	// The game over screen waits for any key.
	if m.gameState.GameOver {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionAny {
		return m, nil
	}
	if len(m.pending) < maxPending {
		m.pending = append(m.pending, action)
	}
	return m, nil
}

// handleTick runs one simulation step.
// At most one queued key press is consumed per tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, nil
	}
	if len(m.pending) > 0 {
		m.inputFrame.Set(m.pending[0])
		m.pending = m.pending[1:]
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		// Keys typed during play must not dismiss the summary.
		m.pending = nil
		return m, nil
	}

	m.delay = m.interval + result.Hold
	return m, tickCmd(m.delay)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.gameState.GameOver {
		return out
	}
	if h, ok := m.game.(Hinter); ok {
		out += "\n" + hintStyle.Render(fmt.Sprintf("Hint: %s", h.Hint()))
	}
	return out + "\n" + m.help.View(m.keys)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays one round of the game in the terminal's alternate screen and
// returns the final game state once the player dismisses the summary.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg)
	logger.Debug("starting game", "game", game.ID(), "seed", model.config.Seed, "tick", model.interval)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Alternate screen buffer, cursor hidden until exit
	)

	final, err := p.Run()
	if err != nil {
		return game.State(), fmt.Errorf("tui: program failed: %w", err)
	}

	state := game.State()
	if fm, ok := final.(Model); ok {
		state = fm.State()
	}
	logger.Debug("game finished", "game", game.ID(), "score", state.Score, "lives", state.Lives)
	return state, nil
}
