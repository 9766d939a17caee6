package mario

import "github.com/kojo-codeur/Mario/internal/core"

// EnemyKind is the visual and thematic variant of an enemy.
// Both kinds share the same patrol and stomp rules.
type EnemyKind int

const (
	KindGoomba EnemyKind = iota // ground-type walker
	KindKoopa                   // shelled walker
)

// String returns the kind name.
func (k EnemyKind) String() string {
	switch k {
	case KindGoomba:
		return "goomba"
	case KindKoopa:
		return "koopa"
	default:
		return "unknown"
	}
}

// Facing is the horizontal direction the player looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right and -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Entity is anything the simulation places in the playfield.
type Entity interface {
	Bounds() core.Box
}

// Platform is a static surface the player can land on from above.
type Platform struct {
	Box       core.Box
	Breakable bool // cosmetic only
}

// Bounds returns the platform's bounding box.
func (p Platform) Bounds() core.Box { return p.Box }

// Coin is a collectible removed the moment the player touches it.
type Coin struct {
	Box core.Box
}

// Bounds returns the coin's bounding box.
func (c Coin) Bounds() core.Box { return c.Box }

// Enemy patrols horizontally between MinX and MaxX.
type Enemy struct {
	Box   core.Box
	Speed float64
	MinX  float64
	MaxX  float64
	Dir   float64 // +1 or -1
	Kind  EnemyKind
}

// Bounds returns the enemy's bounding box.
func (e Enemy) Bounds() core.Box { return e.Box }

// Advance moves the enemy one frame and reverses at the patrol bounds.
// The bound check runs after the move, so the enemy may overshoot by one step.
func (e *Enemy) Advance() {
	e.Box.X += e.Speed * e.Dir
	if e.Box.X <= e.MinX {
		e.Dir = 1
	} else if e.Box.Right() >= e.MaxX {
		e.Dir = -1
	}
}

// Door moves the player to NextLevel once enough coins are collected.
type Door struct {
	Box           core.Box
	NextLevel     int
	CoinsRequired int
}

// Bounds returns the door's bounding box.
func (d Door) Bounds() core.Box { return d.Box }

// Unlocked reports whether a player holding coins may pass.
func (d Door) Unlocked(coins int) bool {
	return coins >= d.CoinsRequired
}

// Fireball is a horizontal projectile thrown by the player.
type Fireball struct {
	Box   core.Box
	Speed float64
	Dir   float64
}

// Bounds returns the fireball's bounding box.
func (f Fireball) Bounds() core.Box { return f.Box }

// Advance moves the fireball one frame.
func (f *Fireball) Advance() {
	f.Box.X += f.Speed * f.Dir
}

// Outside reports whether the fireball has fully left a playfield of the given width.
func (f Fireball) Outside(width float64) bool {
	return f.Box.Right() < 0 || f.Box.X > width
}
