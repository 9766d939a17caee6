// Package mario implements a side-scrolling platformer: a campaign of
// hand-authored levels with platforms, coins, patrolling enemies and doors.
package mario

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/kojo-codeur/Mario/internal/config"
	"github.com/kojo-codeur/Mario/internal/core"
	"github.com/kojo-codeur/Mario/internal/registry"
)

// Mode is the top-level state of the game.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
	ModeVictory
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	case ModeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel overrides the configured start level when non-zero
var startLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartLevel makes every new run begin at id.
func SetStartLevel(id int) {
	startLevel = id
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithConfig uses cfg instead of loading configuration from disk.
func WithConfig(cfg config.MarioConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgSet = true
	}
}

// WithKinds makes enemy kinds come from choose instead of the seeded RNG.
func WithKinds(choose KindChooser) Option {
	return func(g *Game) { g.kinds = choose }
}

// WithAudio routes cues to sink.
func WithAudio(sink core.AudioSink) Option {
	return func(g *Game) { g.audio = sink }
}

// WithLogger routes game events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// Game implements the platformer state machine on top of World.
type Game struct {
	id    string
	title string

	cfg        config.MarioConfig
	cfgSet     bool
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	catalog    *Catalog
	kinds      KindChooser
	rng        *rand.Rand

	world     World
	mode      Mode
	resume    Mode // mode the menu interrupted
	menu      Menu
	started   bool
	runs      int
	quit      bool
	tick      uint64
	highScore int

	audio  core.AudioSink
	logger *log.Logger
}

// New creates a platformer with the default rules.
func New(opts ...Option) *Game {
	g := &Game{
		id:     "mario",
		title:  "Mario",
		audio:  core.NopAudio{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewClassic creates the variant where entering the final level wins and
// enemy hits leave the player in place.
func NewClassic(opts ...Option) *Game {
	g := New(opts...)
	g.id = "mario_classic"
	g.title = "Mario (Classic)"
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// SetAudio replaces the cue sink.
func (g *Game) SetAudio(sink core.AudioSink) {
	if sink == nil {
		sink = core.NopAudio{}
	}
	g.audio = sink
}

// SetLogger replaces the event logger.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger
}

// SetHighScore seeds the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// Config returns the active configuration.
func (g *Game) Config() config.MarioConfig { return g.cfg }

// Mode returns the current top-level state.
func (g *Game) Mode() Mode { return g.mode }

// Reset initializes the game into the menu with a fresh player and the
// start level loaded.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.cfgSet {
		cfg, err := config.LoadMario(configPath)
		if err != nil {
			g.logger.Warn("using default config", "err", err)
			cfg = config.DefaultMarioConfig()
		}
		if difficultyPreset != "" {
			config.ApplyMarioPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	if g.id == "mario_classic" {
		g.cfg.Rules.VictoryOnFinalEntry = true
		g.cfg.Rules.RespawnOnHit = false
	}
	if startLevel != 0 {
		g.cfg.Rules.StartLevel = startLevel
	}
	if g.cfg.Rules.StartLevel == 0 {
		g.cfg.Rules.StartLevel = FirstLevel()
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	kinds := g.kinds
	if kinds == nil {
		kinds = RandomKinds(g.rng)
	}
	g.catalog = &Catalog{
		EnemyW:     g.cfg.Enemies.Width,
		EnemyH:     g.cfg.Enemies.Height,
		EnemySpeed: g.enemySpeed,
		ChooseKind: kinds,
	}

	g.world = World{Player: NewPlayer(g.cfg, g.play)}
	g.world.Level = g.catalog.Load(g.cfg.Rules.StartLevel)
	g.mode = ModeMenu
	g.resume = ModeMenu
	g.menu = newMenu(false)
	g.started = false
	g.runs = 0
	g.quit = false
	g.tick = 0
}

// enemySpeed scales the per-level patrol speed by the difficulty curve.
func (g *Game) enemySpeed(levelID int) float64 {
	base := g.cfg.Enemies.SpeedPerLevel * float64(levelID)
	score := 0
	if g.world.Player != nil {
		score = g.world.Player.Score
	}
	return g.difficulty.Speed(base, score, levelID)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.mode {
	case ModeMenu:
		g.stepMenu(in)
	case ModePlaying:
		g.stepPlaying(in)
	case ModeGameOver, ModeVictory:
		if in.Has(core.ActionMenu) {
			g.openMenu()
		} else if in.Has(core.ActionConfirm) {
			g.restart()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(in core.InputFrame) {
	if in.Has(core.ActionMenu) && g.started {
		g.closeMenu()
		return
	}
	if in.Has(core.ActionUp) {
		g.menu.Up()
	}
	if in.Has(core.ActionDown) {
		g.menu.Down()
	}
	if !in.Has(core.ActionConfirm) && !in.Has(core.ActionJump) {
		return
	}
	switch g.menu.Selected() {
	case OptionResume:
		g.closeMenu()
	case OptionNewGame:
		g.restart()
	case OptionQuit:
		g.quit = true
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionMenu) {
		g.openMenu()
		return
	}
	if in.Has(core.ActionRestart) {
		g.restart()
		return
	}
	g.apply(g.world.Step(in))
}

// apply feeds a frame outcome into the state machine.
func (g *Game) apply(out Outcome) {
	switch out.Kind {
	case OutcomeGameOver:
		g.mode = ModeGameOver
		g.recordHighScore()
		g.play(core.CueGameOver)
		g.logger.Info("game over", "score", g.world.Player.Score, "stage", g.world.Level.ID)

	case OutcomeTransition:
		if g.completesCampaign(out.Level) {
			g.mode = ModeVictory
			g.recordHighScore()
			g.play(core.CueVictory)
			g.logger.Info("campaign complete", "score", g.world.Player.Score)
			return
		}
		g.play(core.CueDoor)
		g.loadLevel(out.Level)
		g.world.Player.Respawn()
	}
}

// completesCampaign reports whether a transition to target ends the run.
func (g *Game) completesCampaign(target int) bool {
	if g.cfg.Rules.VictoryOnFinalEntry {
		return IsFinal(target)
	}
	return IsFinal(g.world.Level.ID)
}

func (g *Game) loadLevel(id int) {
	g.world.Level = g.catalog.Load(id)
	if g.world.Level.Empty() {
		g.logger.Warn("unknown level loaded as empty", "stage", id)
	}
	g.logger.Debug("level loaded", "stage", id,
		"coins", len(g.world.Level.Coins), "enemies", len(g.world.Level.Enemies))
}

// restart performs the full reset of a new run.
func (g *Game) restart() {
	g.world.Player.ResetRun()
	g.loadLevel(g.cfg.Rules.StartLevel)
	g.mode = ModePlaying
	g.started = true
	g.runs++
	g.logger.Debug("run started", "stage", g.cfg.Rules.StartLevel, "lives", g.world.Player.Lives)
}

func (g *Game) openMenu() {
	g.resume = g.mode
	g.mode = ModeMenu
	g.menu = newMenu(g.started)
}

func (g *Game) closeMenu() {
	g.mode = g.resume
}

func (g *Game) recordHighScore() {
	if g.world.Player.Score > g.highScore {
		g.highScore = g.world.Player.Score
	}
}

// play emits a cue without letting the sink disturb the frame.
func (g *Game) play(c core.Cue) {
	core.SafePlay(g.audio, c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Player.Score,
		Level:    g.world.Level.ID,
		Coins:    g.world.Player.Coins,
		Lives:    g.world.Player.Lives,
		Run:      g.runs,
		GameOver: g.mode == ModeGameOver || g.mode == ModeVictory,
		Victory:  g.mode == ModeVictory,
		Paused:   g.mode == ModeMenu,
		Quit:     g.quit,
	}
}

// Register the games with the registry
func init() {
	registry.Register("mario", func() registry.Game {
		return New()
	})
	registry.Register("mario_classic", func() registry.Game {
		return NewClassic()
	})
}
