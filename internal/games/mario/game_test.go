package mario

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kojo-codeur/Mario/internal/config"
	"github.com/kojo-codeur/Mario/internal/core"
	"github.com/kojo-codeur/Mario/internal/registry"
)

func TestInitialStateIsMenu(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, ModeMenu, g.Mode())
	assert.True(t, g.State().Paused)
	assert.False(t, g.State().GameOver)
	assert.Equal(t, []MenuOption{OptionNewGame, OptionQuit}, g.Snapshot().Menu.Options)

	// Nothing to resume yet
	g.Step(press(core.ActionMenu))
	assert.Equal(t, ModeMenu, g.Mode())
}

func TestMenuQuit(t *testing.T) {
	g := newTestGame(t)

	g.Step(press(core.ActionDown))
	assert.Equal(t, OptionQuit, g.Snapshot().Menu.Selected())
	g.Step(press(core.ActionConfirm))

	assert.True(t, g.State().Quit)
}

func TestMenuCursorWraps(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionUp))
	assert.Equal(t, 1, g.Snapshot().Menu.Cursor)
	g.Step(press(core.ActionDown))
	assert.Equal(t, 0, g.Snapshot().Menu.Cursor)
}

func assertFreshRun(t *testing.T, g *Game) {
	t.Helper()
	p := g.world.Player
	assert.Equal(t, ModePlaying, g.Mode())
	assert.Zero(t, p.Score)
	assert.Zero(t, p.Coins)
	assert.Equal(t, 3, p.Lives)
	assert.Equal(t, core.NewBox(100, 450, 40, 60), p.Box)
	assert.Equal(t, testCatalog(g.cfg).Load(1), g.world.Level, "level 1 reloaded exactly")
}

func TestStartFromMenuIsFullRestart(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionConfirm))
	assertFreshRun(t, g)
}

// loseLastLife puts the player on level 1's first enemy with one life left.
func loseLastLife(t *testing.T, g *Game) {
	t.Helper()
	p := g.world.Player
	p.Lives = 1
	p.Invincible = 0
	p.Box.X, p.Box.Y = 400, 390
	p.VelY = 0
	g.Step(core.NewInputFrame())
	require.Equal(t, ModeGameOver, g.Mode())
}

func TestGameOverAndRestart(t *testing.T) {
	sink := &recordingSink{}
	g := startedGame(t, WithAudio(sink))
	g.world.Player.Score = 700
	g.world.Player.Coins = 2
	g.world.Level.Coins = nil

	loseLastLife(t, g)
	state := g.State()
	assert.True(t, state.GameOver)
	assert.False(t, state.Victory)
	assert.Equal(t, 700, state.Score)
	assert.Equal(t, 2, state.Coins)
	assert.Equal(t, 1, state.Run)
	assert.Zero(t, state.Lives)
	assert.Zero(t, g.world.Player.Lives)
	assert.Equal(t, 1, sink.count(core.CueGameOver))

	// Movement is ignored after game over
	g.Step(hold(core.ActionRight))
	assert.Equal(t, ModeGameOver, g.Mode())

	g.Step(press(core.ActionConfirm))
	assertFreshRun(t, g)
	assert.Equal(t, 2, g.State().Run)
	assert.Equal(t, 700, g.Snapshot().HUD.HighScore)
}

func TestGameOverNotBeforeLastLife(t *testing.T) {
	g := startedGame(t)
	p := g.world.Player
	p.Lives = 2
	p.Box.X, p.Box.Y = 400, 390

	g.Step(core.NewInputFrame())

	assert.Equal(t, ModePlaying, g.Mode())
	assert.Equal(t, 1, p.Lives)
}

func TestRestartKeyDuringPlay(t *testing.T) {
	g := startedGame(t)
	g.world.Player.Score = 300
	g.world.Player.Lives = 1
	g.world.Level.Enemies = nil

	g.Step(press(core.ActionRestart))
	assertFreshRun(t, g)
}

// atLevelOneDoor places the player in level 1's door.
func atLevelOneDoor(g *Game, coins int) {
	p := g.world.Player
	p.Coins = coins
	p.Box.X, p.Box.Y = 700, 140
	p.VelY = 0
}

func TestDoorLockedKeepsLevel(t *testing.T) {
	g := startedGame(t)
	atLevelOneDoor(g, 2)

	g.Step(core.NewInputFrame())

	assert.Equal(t, ModePlaying, g.Mode())
	assert.Equal(t, 1, g.world.Level.ID)
}

func TestDoorTransitionPreservesRun(t *testing.T) {
	sink := &recordingSink{}
	g := startedGame(t, WithAudio(sink))
	atLevelOneDoor(g, 3)
	g.world.Player.Score = 500
	g.world.Player.Lives = 2
	g.world.Player.Fire()

	g.Step(core.NewInputFrame())

	p := g.world.Player
	assert.Equal(t, ModePlaying, g.Mode())
	assert.Equal(t, testCatalog(g.cfg).Load(2), g.world.Level)
	assert.Equal(t, core.NewBox(100, 450, 40, 60), p.Box)
	assert.Zero(t, p.VelY)
	assert.Equal(t, 500, p.Score)
	assert.Equal(t, 2, p.Lives)
	assert.Equal(t, 3, p.Coins, "coins carry over to the next door")
	assert.Empty(t, p.Fireballs)
	assert.Equal(t, 1, sink.count(core.CueDoor))
}

func TestVictoryOnFinalDoor(t *testing.T) {
	sink := &recordingSink{}
	g := startedGame(t, WithAudio(sink))
	g.loadLevel(FinalLevel())
	p := g.world.Player
	p.Box.X, p.Box.Y = 450, 140

	g.Step(core.NewInputFrame())

	assert.Equal(t, ModeVictory, g.Mode())
	assert.True(t, g.State().GameOver)
	assert.True(t, g.State().Victory)
	assert.Equal(t, 1, sink.count(core.CueVictory))

	g.Step(press(core.ActionConfirm))
	assertFreshRun(t, g)
}

func TestEnteringFinalLevelIsNotVictory(t *testing.T) {
	g := startedGame(t)
	g.loadLevel(3)
	p := g.world.Player
	p.Coins = 7
	p.Box.X, p.Box.Y = 700, 10
	g.world.Level.Enemies = nil

	g.Step(core.NewInputFrame())

	assert.Equal(t, ModePlaying, g.Mode())
	assert.Equal(t, 4, g.world.Level.ID)
}

func TestClassicVictoryOnFinalEntry(t *testing.T) {
	g := NewClassic(WithConfig(config.DefaultMarioConfig()), WithKinds(FixedKind(KindGoomba)))
	g.Reset(testRuntime)
	g.Step(press(core.ActionConfirm))
	require.True(t, g.Config().Rules.VictoryOnFinalEntry)
	require.False(t, g.Config().Rules.RespawnOnHit)

	g.loadLevel(3)
	p := g.world.Player
	p.Coins = 7
	p.Box.X, p.Box.Y = 700, 10
	g.world.Level.Enemies = nil

	g.Step(core.NewInputFrame())
	assert.Equal(t, ModeVictory, g.Mode())
}

func TestMenuResumesWithoutReset(t *testing.T) {
	g := startedGame(t)
	for range 10 {
		g.Step(hold(core.ActionRight))
	}
	before := g.Snapshot()

	g.Step(press(core.ActionMenu))
	require.Equal(t, ModeMenu, g.Mode())
	assert.Equal(t, []MenuOption{OptionResume, OptionNewGame, OptionQuit}, g.Snapshot().Menu.Options)

	// The world is frozen while the menu is open
	g.Step(hold(core.ActionRight))
	assert.Equal(t, before.Player, g.Snapshot().Player)

	g.Step(press(core.ActionMenu))
	assert.Equal(t, ModePlaying, g.Mode())
	assert.Equal(t, before.Player, g.Snapshot().Player)
	assert.Equal(t, before.HUD, g.Snapshot().HUD)
}

func TestMenuResumeOption(t *testing.T) {
	g := startedGame(t)
	g.world.Player.Score = 100

	g.Step(press(core.ActionMenu))
	g.Step(press(core.ActionConfirm))

	assert.Equal(t, ModePlaying, g.Mode())
	assert.Equal(t, 100, g.world.Player.Score)
}

func TestMenuFromGameOverReturnsToGameOver(t *testing.T) {
	g := startedGame(t)
	loseLastLife(t, g)

	g.Step(press(core.ActionMenu))
	assert.Equal(t, ModeMenu, g.Mode())
	g.Step(press(core.ActionMenu))
	assert.Equal(t, ModeGameOver, g.Mode())
}

func TestMenuNewGame(t *testing.T) {
	g := startedGame(t)
	g.world.Player.Score = 100

	g.Step(press(core.ActionMenu))
	g.Step(press(core.ActionDown))
	g.Step(press(core.ActionConfirm))

	assertFreshRun(t, g)
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	g := startedGame(t)
	for range 120 {
		g.Step(core.NewInputFrame())
	}
	require.False(t, g.world.Player.Jumping)

	g.Step(hold(core.ActionJump))
	assert.False(t, g.world.Player.Jumping, "a held key without a press does not jump")

	g.Step(press(core.ActionJump))
	assert.True(t, g.world.Player.Jumping)
}

func TestHeldMovement(t *testing.T) {
	g := startedGame(t)
	x := g.world.Player.Box.X

	g.Step(hold(core.ActionRight))
	assert.Equal(t, x+5, g.world.Player.Box.X)

	g.Step(hold(core.ActionLeft))
	assert.Equal(t, x, g.world.Player.Box.X)
}

type panickySink struct{}

func (panickySink) Play(core.Cue) { panic("no audio device") }

func TestBrokenAudioNeverStopsTheFrame(t *testing.T) {
	g := startedGame(t, WithAudio(panickySink{}))
	for range 120 {
		g.Step(core.NewInputFrame())
	}

	assert.NotPanics(t, func() {
		g.Step(press(core.ActionJump))
		g.Step(press(core.ActionFire))
	})
	assert.True(t, g.world.Player.Jumping)
}

func TestLivesStayInBoundsUnderRandomPlay(t *testing.T) {
	cfg := config.DefaultMarioConfig()
	cfg.Playfield.SolidFloor = false
	g := New(WithConfig(cfg))
	g.Reset(testRuntime)
	g.Step(press(core.ActionConfirm))

	rng := rand.New(rand.NewSource(99))
	actions := []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionFire}
	lives := g.world.Player.Lives

	for range 20000 {
		in := core.NewInputFrame()
		for _, a := range actions {
			switch rng.Intn(4) {
			case 0:
				in.Set(a)
			case 1:
				in.Hold(a)
			}
		}
		g.Step(in)

		now := g.world.Player.Lives
		require.GreaterOrEqual(t, now, 0)
		require.LessOrEqual(t, now, lives, "lives never increase within a run")
		lives = now
		if g.Mode() != ModePlaying {
			break
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		g := New(WithConfig(config.DefaultMarioConfig()))
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
		g.Step(press(core.ActionConfirm))
		for i := range 600 {
			in := core.NewInputFrame()
			switch {
			case i%40 == 0:
				in.Set(core.ActionJump)
			case i%7 == 0:
				in.Set(core.ActionFire)
			}
			if i%100 < 60 {
				in.Hold(core.ActionRight)
			} else {
				in.Hold(core.ActionLeft)
			}
			g.Step(in)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	assert.Equal(t, run(), run())
}

func TestSnapshotIsACopy(t *testing.T) {
	g := startedGame(t)
	snap := g.Snapshot()
	snap.Coins = snap.Coins[:0]
	snap.Enemies[0].Box.X = -1

	fresh := g.Snapshot()
	assert.Len(t, fresh.Coins, 5)
	assert.Equal(t, 400.0, fresh.Enemies[0].Box.X)
}

func TestHighScoreSeed(t *testing.T) {
	g := newTestGame(t)
	g.SetHighScore(5000)
	g.SetHighScore(10)
	assert.Equal(t, 5000, g.Snapshot().HUD.HighScore)
}

func TestRegistered(t *testing.T) {
	ids := map[string]bool{}
	for _, info := range registry.List() {
		ids[info.ID] = true
	}
	assert.True(t, ids["mario"])
	assert.True(t, ids["mario_classic"])

	g, err := registry.Create("mario")
	require.NoError(t, err)
	assert.Equal(t, "Mario", g.Title())
}

func TestLogsCarryLevelID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g := newTestGame(t, WithLogger(logger))

	g.loadLevel(3)

	assert.Contains(t, buf.String(), "level loaded")
	assert.Contains(t, buf.String(), "stage=3")
}

func TestSnapshotHashOnReturnedValue(t *testing.T) {
	g := startedGame(t)
	before := g.Snapshot()

	g.Step(core.NewInputFrame())

	assert.Equal(t, g.Snapshot().Hash(), g.Snapshot().Hash())
	assert.NotEqual(t, before.Hash(), g.Snapshot().Hash(), "the tick advances")
}
