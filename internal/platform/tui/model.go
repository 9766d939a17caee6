package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/kojo-codeur/Mario/internal/core"
	"github.com/kojo-codeur/Mario/internal/logging"
	"github.com/kojo-codeur/Mario/internal/registry"
	"github.com/kojo-codeur/Mario/internal/storage"
)

// DefaultHoldWindow is how many ticks a key-down keeps its action held.
const DefaultHoldWindow = 8

// ResultStore persists finished runs. *storage.Store implements it.
type ResultStore interface {
	SaveScore(gameID string, score int) (int64, error)
	SaveRun(run storage.RunRecord) (string, error)
	HighScore(gameID string) (int, error)
}

// Options configures a Model.
type Options struct {
	Config     core.RuntimeConfig
	Store      ResultStore    // nil disables persistence
	Audio      core.AudioSink // nil is silent
	Logger     *log.Logger    // nil discards
	HoldWindow int            // ticks; 0 uses DefaultHoldWindow
	// Embedded models do not end the program when the game quits; the
	// parent checks Done instead.
	Embedded bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   ResultStore
	logger  *log.Logger
	config  core.RuntimeConfig
	keys    *KeyMapper
	latch   *core.HoldLatch
	edges   *core.EdgeTracker
	pending *core.InputFrame // one-shot presses since the last tick

	tick      uint64
	gameState core.GameState
	quitting  bool
	embedded  bool

	run      int // run number being tracked
	runStart time.Time
	runSaved bool // whether the current run has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	window := opts.HoldWindow
	if window <= 0 {
		window = DefaultHoldWindow
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	highScore := 0
	if opts.Store != nil {
		hs, err := opts.Store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not read high score", "game", game.ID(), "err", err)
		}
		highScore = hs
	}
	registry.Wire(game, opts.Audio, logger, highScore)

	pending := core.NewInputFrame()
	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    opts.Store,
		logger:   logger,
		config:   cfg,
		keys:     NewKeyMapper(),
		latch:    core.NewHoldLatch(window),
		edges:    core.NewEdgeTracker(),
		pending:  &pending,
		embedded: opts.Embedded,
	}
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
		if m.quitting {
			return m, nil
		}
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key-downs; the next tick turns them into an input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.finishRun(storage.OutcomeAbandoned, time.Now())
		return m.quit()
	case action == core.ActionNone:
	case IsHeld(action):
		m.latch.Press(action, m.tick)
	default:
		m.pending.Set(action)
	}
	return m, nil
}

// quit stops the tick loop and, unless embedded, the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit
}

// handleResize processes window resize events. The game scales its
// playfield to the screen, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// frame builds the input frame for the current tick and clears pending presses.
func (m *Model) frame() core.InputFrame {
	frame := m.edges.Next(m.latch.Held(m.tick))
	for a, pressed := range m.pending.Actions {
		if pressed {
			frame.Set(a)
		}
	}
	m.pending.Clear()
	return frame
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.frame())
	m.tick++
	m.trackRun(result.State, now)

	if m.gameState.Quit {
		m.finishRun(storage.OutcomeAbandoned, now)
		return m.quit()
	}

	return m, tickCmd(m.config.TickRate)
}

// trackRun persists each run exactly once: on game over or victory, or as
// abandoned when a new run replaces an unfinished one.
func (m *Model) trackRun(state core.GameState, now time.Time) {
	if state.Run != m.run {
		m.finishRun(storage.OutcomeAbandoned, now)
		m.run = state.Run
		m.runStart = now
		m.runSaved = false
	}
	m.gameState = state

	if state.GameOver && !m.runSaved {
		outcome := storage.OutcomeGameOver
		if state.Victory {
			outcome = storage.OutcomeVictory
		}
		m.finishRun(outcome, now)
	}
}

// finishRun saves the tracked run if it has not been saved yet.
func (m *Model) finishRun(outcome string, now time.Time) {
	if m.run == 0 || m.runSaved {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	id := m.game.ID()
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(id, m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "game", id, "err", err)
		}
	}
	runID, err := m.store.SaveRun(storage.RunRecord{
		GameID:    id,
		Score:     m.gameState.Score,
		Level:     m.gameState.Level,
		Coins:     m.gameState.Coins,
		Outcome:   outcome,
		StartedAt: m.runStart,
		EndedAt:   now,
	})
	if err != nil {
		m.logger.Warn("could not save run", "game", id, "err", err)
		return
	}
	m.logger.Info("run saved", "id", runID, "outcome", outcome, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(xdg.StateHome, "mario", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state observed on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Done reports whether the player left the game.
func (m Model) Done() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
