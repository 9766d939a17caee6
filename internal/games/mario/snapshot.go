package mario

import (
	"hash/fnv"
	"math"
	"slices"

	"github.com/kojo-codeur/Mario/internal/core"
)

// HUD is the heads-up data shown alongside the playfield.
type HUD struct {
	Score     int
	Level     int
	Coins     int
	Lives     int
	HighScore int
}

// PlayerPose is what a renderer needs to draw the player.
type PlayerPose struct {
	Box        core.Box
	Facing     Facing
	Jumping    bool
	Invincible bool
}

// Snapshot is a settled, read-only copy of one frame. Mutating it does not
// affect the game.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Resume    Mode
	Player    PlayerPose
	Platforms []Platform
	Coins     []Coin
	Enemies   []Enemy
	Doors     []Door
	Fireballs []Fireball
	HUD       HUD
	Menu      Menu
}

// Snapshot returns a copy of the current frame.
func (g *Game) Snapshot() Snapshot {
	p := g.world.Player
	lvl := g.world.Level
	return Snapshot{
		Tick:   g.tick,
		Mode:   g.mode,
		Resume: g.resume,
		Player: PlayerPose{
			Box:        p.Box,
			Facing:     p.Facing,
			Jumping:    p.Jumping,
			Invincible: p.InvincibleNow(),
		},
		Platforms: slices.Clone(lvl.Platforms),
		Coins:     slices.Clone(lvl.Coins),
		Enemies:   slices.Clone(lvl.Enemies),
		Doors:     slices.Clone(lvl.Doors),
		Fireballs: slices.Clone(p.Fireballs),
		HUD: HUD{
			Score:     p.Score,
			Level:     lvl.ID,
			Coins:     p.Coins,
			Lives:     p.Lives,
			HighScore: max(g.highScore, p.Score),
		},
		Menu: Menu{
			Options: slices.Clone(g.menu.Options),
			Cursor:  g.menu.Cursor,
		},
	}
}

// Hash returns a digest of the simulation-relevant fields for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeU := func(v uint64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never errors
	}
	writeF := func(v float64) { writeU(math.Float64bits(v)) }
	writeBox := func(b core.Box) {
		writeF(b.X)
		writeF(b.Y)
		writeF(b.W)
		writeF(b.H)
	}

	writeU(snap.Tick)
	writeU(uint64(snap.Mode)) //#nosec G115 -- small enum
	writeBox(snap.Player.Box)
	writeU(uint64(snap.HUD.Score)) //#nosec G115 -- score is non-negative
	writeU(uint64(snap.HUD.Coins)) //#nosec G115 -- coins are non-negative
	writeU(uint64(snap.HUD.Lives)) //#nosec G115 -- lives are non-negative
	writeU(uint64(snap.HUD.Level)) //#nosec G115 -- level ids are positive
	for _, c := range snap.Coins {
		writeBox(c.Box)
	}
	for _, e := range snap.Enemies {
		writeBox(e.Box)
		writeF(e.Dir)
		writeU(uint64(e.Kind)) //#nosec G115 -- small enum
	}
	for _, f := range snap.Fireballs {
		writeBox(f.Box)
	}
	return h.Sum64()
}
