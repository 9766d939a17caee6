package mario

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kojo-codeur/Mario/internal/config"
	"github.com/kojo-codeur/Mario/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

// recordingSink collects every cue it receives.
type recordingSink struct {
	cues []core.Cue
}

func (r *recordingSink) Play(c core.Cue) { r.cues = append(r.cues, c) }

func (r *recordingSink) count(c core.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func testCatalog(cfg config.MarioConfig) *Catalog {
	return &Catalog{
		EnemyW:     cfg.Enemies.Width,
		EnemyH:     cfg.Enemies.Height,
		EnemySpeed: func(id int) float64 { return cfg.Enemies.SpeedPerLevel * float64(id) },
		ChooseKind: FixedKind(KindGoomba),
	}
}

// newTestGame builds a game with default config and deterministic kinds.
func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	base := []Option{
		WithConfig(config.DefaultMarioConfig()),
		WithKinds(FixedKind(KindGoomba)),
	}
	g := New(append(base, opts...)...)
	g.Reset(testRuntime)
	return g
}

// startedGame returns a game that has left the menu and is playing level 1.
func startedGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := newTestGame(t, opts...)
	g.Step(press(core.ActionConfirm))
	require.Equal(t, ModePlaying, g.Mode())
	return g
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func hold(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

// emptyLevel is a level with no entities at all.
func emptyLevel(id int) *Level {
	return &Level{ID: id}
}
