package mario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kojo-codeur/Mario/internal/config"
	"github.com/kojo-codeur/Mario/internal/core"
)

func newTestPlayer(cfg config.MarioConfig) (*Player, *recordingSink) {
	sink := &recordingSink{}
	return NewPlayer(cfg, sink.Play), sink
}

func TestNewPlayerAtSpawn(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())

	assert.Equal(t, core.NewBox(100, 450, 40, 60), p.Box)
	assert.Equal(t, 3, p.Lives)
	assert.Zero(t, p.Score)
	assert.Zero(t, p.Coins)
	assert.False(t, p.Jumping)
	assert.Equal(t, FacingRight, p.Facing)
}

func TestGravityAndFloor(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())
	lvl := emptyLevel(1)

	p.Advance(lvl)
	assert.InDelta(t, 0.8, p.VelY, 1e-9)
	assert.InDelta(t, 450.8, p.Box.Y, 1e-9)

	for range 200 {
		p.Advance(lvl)
	}
	assert.Equal(t, 540.0, p.Box.Y, "player rests on the playfield floor")
	assert.Zero(t, p.VelY)
	assert.False(t, p.Jumping)
}

func TestLandsOnPlatformWhenDescending(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())
	lvl := &Level{ID: 1, Platforms: []Platform{{Box: core.NewBox(80, 515, 100, PlatformHeight)}}}

	// Bottom at 510 + 0.8 + ... enters the band within a few frames
	for range 10 {
		p.Advance(lvl)
	}
	assert.Equal(t, 455.0, p.Box.Y)
	assert.Zero(t, p.VelY)
}

func TestDoesNotLandWhileRising(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())
	p.Box.Y = 460
	p.VelY = -10
	lvl := &Level{ID: 1, Platforms: []Platform{{Box: core.NewBox(80, 505, 100, PlatformHeight)}}}

	p.Advance(lvl)
	assert.Less(t, p.VelY, 0.0, "rising player passes through platforms from below")
}

func TestIgnoresPlatformWithoutHorizontalOverlap(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())
	lvl := &Level{ID: 1, Platforms: []Platform{{Box: core.NewBox(140, 511, 100, PlatformHeight)}}}

	p.Advance(lvl)
	assert.InDelta(t, 0.8, p.VelY, 1e-9, "touching edges do not support the player")
}

func TestJump(t *testing.T) {
	p, sink := newTestPlayer(config.DefaultMarioConfig())

	require.True(t, p.Jump())
	assert.Equal(t, -15.0, p.VelY)
	assert.True(t, p.Jumping)

	p.VelY = -3
	assert.False(t, p.Jump(), "jump is a no-op while airborne")
	assert.Equal(t, -3.0, p.VelY)
	assert.Equal(t, 1, sink.count(core.CueJump))
}

func TestMoveClampsAndFaces(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())

	p.Move(-1)
	assert.Equal(t, 95.0, p.Box.X)
	assert.Equal(t, FacingLeft, p.Facing)

	for range 100 {
		p.Move(-1)
	}
	assert.Zero(t, p.Box.X)

	for range 500 {
		p.Move(1)
	}
	assert.Equal(t, 760.0, p.Box.X)
	assert.Equal(t, FacingRight, p.Facing)
}

func TestCoinPickup(t *testing.T) {
	p, sink := newTestPlayer(config.DefaultMarioConfig())
	lvl := &Level{ID: 1, Coins: []Coin{
		{Box: core.NewBox(110, 470, CoinSize, CoinSize)},
		{Box: core.NewBox(700, 100, CoinSize, CoinSize)},
	}}

	out := p.Advance(lvl)

	assert.Equal(t, Continue(1), out)
	assert.Equal(t, 100, p.Score)
	assert.Equal(t, 1, p.Coins)
	require.Len(t, lvl.Coins, 1)
	assert.Equal(t, 700.0, lvl.Coins[0].Box.X, "only the touched coin is removed")
	assert.Equal(t, 1, sink.count(core.CueCoin))

	// Re-checking the same spot has no further effect
	p.Advance(lvl)
	assert.Equal(t, 100, p.Score)
	assert.Equal(t, 1, p.Coins)
}

func TestSimultaneousCoins(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())
	lvl := &Level{ID: 1, Coins: []Coin{
		{Box: core.NewBox(100, 460, CoinSize, CoinSize)},
		{Box: core.NewBox(120, 480, CoinSize, CoinSize)},
	}}

	p.Advance(lvl)

	assert.Equal(t, 200, p.Score)
	assert.Equal(t, 2, p.Coins)
	assert.Empty(t, lvl.Coins)
}

func TestStomp(t *testing.T) {
	p, sink := newTestPlayer(config.DefaultMarioConfig())
	p.Box.Y = 462
	p.VelY = 2
	lvl := &Level{ID: 1, Enemies: []Enemy{{Box: core.NewBox(100, 520, 30, 30), MinX: 0, MaxX: 800, Dir: 1}}}

	out := p.Advance(lvl)

	assert.Equal(t, Continue(1), out)
	assert.Empty(t, lvl.Enemies)
	assert.Equal(t, 200, p.Score)
	assert.Equal(t, -7.5, p.VelY, "bounce is half the jump impulse")
	assert.Equal(t, 3, p.Lives)
	assert.Equal(t, 1, sink.count(core.CueStomp))
}

func TestStompWorksWhileInvincible(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())
	p.Invincible = 30
	p.Box.Y = 462
	p.VelY = 2
	lvl := &Level{ID: 1, Enemies: []Enemy{{Box: core.NewBox(100, 520, 30, 30)}}}

	p.Advance(lvl)
	assert.Empty(t, lvl.Enemies)
	assert.Equal(t, 200, p.Score)
}

// groundedOnEnemy returns a player standing on the floor inside an enemy.
func groundedOnEnemy(cfg config.MarioConfig, lives int) (*Player, *Level) {
	p, _ := newTestPlayer(cfg)
	p.Lives = lives
	p.Box.Y = 540
	lvl := &Level{ID: 2, Enemies: []Enemy{{Box: core.NewBox(100, 560, 30, 30)}}}
	return p, lvl
}

func TestEnemyHitCostsLife(t *testing.T) {
	p, lvl := groundedOnEnemy(config.DefaultMarioConfig(), 3)

	out := p.Advance(lvl)

	assert.Equal(t, Continue(2), out)
	assert.Equal(t, 2, p.Lives)
	assert.Equal(t, 60, p.Invincible)
	assert.Len(t, lvl.Enemies, 1, "hit enemy survives")
	assert.Equal(t, 100.0, p.Box.X)
	assert.Equal(t, 450.0, p.Box.Y, "respawned at spawn")
	assert.Zero(t, p.VelY)
}

func TestEnemyHitWithoutRespawn(t *testing.T) {
	cfg := config.DefaultMarioConfig()
	cfg.Rules.RespawnOnHit = false
	p, lvl := groundedOnEnemy(cfg, 3)

	p.Advance(lvl)
	assert.Equal(t, 2, p.Lives)
	assert.Equal(t, 540.0, p.Box.Y, "player stays in place")

	// Still overlapping but invincible
	p.Advance(lvl)
	assert.Equal(t, 2, p.Lives)
	assert.Equal(t, 59, p.Invincible)
}

func TestInvincibilityCountsDown(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())
	p.Invincible = 2

	p.Advance(emptyLevel(1))
	assert.True(t, p.InvincibleNow())
	p.Advance(emptyLevel(1))
	assert.False(t, p.InvincibleNow())
	p.Advance(emptyLevel(1))
	assert.Zero(t, p.Invincible)
}

func TestGameOverOnLastLifeByEnemy(t *testing.T) {
	p, lvl := groundedOnEnemy(config.DefaultMarioConfig(), 2)
	require.Equal(t, Continue(2), p.Advance(lvl), "losing a life with lives left continues")

	p.Invincible = 0
	p.Box.X, p.Box.Y = 100, 540
	out := p.Advance(lvl)

	assert.Equal(t, GameOver(), out)
	assert.Zero(t, p.Lives)
}

func fallingPlayer(lives int) *Player {
	cfg := config.DefaultMarioConfig()
	cfg.Playfield.SolidFloor = false
	p, _ := newTestPlayer(cfg)
	p.Lives = lives
	p.Box.Y = 600
	p.VelY = 5
	return p
}

func TestFallCostsLife(t *testing.T) {
	p := fallingPlayer(3)

	out := p.Advance(emptyLevel(1))

	assert.Equal(t, Continue(1), out)
	assert.Equal(t, 2, p.Lives)
	assert.Equal(t, 120, p.Invincible)
	assert.Equal(t, core.NewBox(100, 450, 40, 60), p.Box)
	assert.Zero(t, p.VelY)
}

func TestGameOverOnLastLifeByFall(t *testing.T) {
	p := fallingPlayer(1)

	out := p.Advance(emptyLevel(1))

	assert.Equal(t, GameOver(), out)
	assert.Zero(t, p.Lives)
}

func TestSolidFloorPreventsFalling(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())
	p.Box.Y = 600
	p.VelY = 5

	out := p.Advance(emptyLevel(1))

	assert.Equal(t, Continue(1), out)
	assert.Equal(t, 3, p.Lives)
	assert.Equal(t, 540.0, p.Box.Y)
}

func doorLevel(required int) *Level {
	return &Level{ID: 1, Doors: []Door{{
		Box:           core.NewBox(100, 450, DoorWidth, DoorHeight),
		NextLevel:     2,
		CoinsRequired: required,
	}}}
}

func TestDoorThreshold(t *testing.T) {
	tests := []struct {
		coins    int
		expected Outcome
	}{
		{2, Continue(1)},
		{3, Transition(2)},
		{4, Transition(2)},
	}

	for _, tc := range tests {
		p, _ := newTestPlayer(config.DefaultMarioConfig())
		p.Coins = tc.coins
		assert.Equal(t, tc.expected, p.Advance(doorLevel(3)), "coins=%d", tc.coins)
	}
}

func TestFirstQualifyingDoorWins(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())
	lvl := doorLevel(0)
	lvl.Doors = append(lvl.Doors, Door{Box: core.NewBox(110, 450, DoorWidth, DoorHeight), NextLevel: 3})

	assert.Equal(t, Transition(2), p.Advance(lvl))
}

func TestFireCooldownAndDirection(t *testing.T) {
	p, sink := newTestPlayer(config.DefaultMarioConfig())

	require.True(t, p.Fire())
	assert.False(t, p.Fire(), "cooldown blocks a second throw")
	require.Len(t, p.Fireballs, 1)
	assert.Equal(t, 1.0, p.Fireballs[0].Dir)
	assert.Equal(t, 140.0, p.Fireballs[0].Box.X)

	for range 20 {
		p.Advance(emptyLevel(1))
	}
	p.Move(-1)
	require.True(t, p.Fire())
	assert.Equal(t, -1.0, p.Fireballs[len(p.Fireballs)-1].Dir)
	assert.Equal(t, 2, sink.count(core.CueFire))
}

func TestFireDisabled(t *testing.T) {
	cfg := config.DefaultMarioConfig()
	cfg.Fireballs.Enabled = false
	p, _ := newTestPlayer(cfg)
	assert.False(t, p.Fire())
	assert.Empty(t, p.Fireballs)
}

func TestFireballKillsFirstEnemyOnly(t *testing.T) {
	p, sink := newTestPlayer(config.DefaultMarioConfig())
	p.Box.Y = 540
	lvl := &Level{ID: 1, Enemies: []Enemy{
		{Box: core.NewBox(150, 565, 30, 30)},
		{Box: core.NewBox(155, 565, 30, 30)},
	}}

	require.True(t, p.Fire())
	p.Advance(lvl)

	assert.Len(t, lvl.Enemies, 1, "one fireball removes one enemy")
	assert.Equal(t, 155.0, lvl.Enemies[0].Box.X)
	assert.Empty(t, p.Fireballs)
	assert.Equal(t, 200, p.Score)
	assert.Equal(t, 1, sink.count(core.CueStomp), "a fireball kill shares the stomp cue")
}

func TestFireballCulledOffscreen(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())
	p.Box.X = 750
	require.True(t, p.Fire())

	p.Advance(emptyLevel(1))
	p.Advance(emptyLevel(1))
	assert.Empty(t, p.Fireballs)
}

func TestResetRun(t *testing.T) {
	p, _ := newTestPlayer(config.DefaultMarioConfig())
	p.Score, p.Coins, p.Lives, p.Invincible = 900, 4, 1, 30
	p.Box.X = 500
	p.Fire()

	p.ResetRun()

	assert.Zero(t, p.Score)
	assert.Zero(t, p.Coins)
	assert.Equal(t, 3, p.Lives)
	assert.Zero(t, p.Invincible)
	assert.Empty(t, p.Fireballs)
	assert.Equal(t, 100.0, p.Box.X)
}
