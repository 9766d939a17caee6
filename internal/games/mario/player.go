package mario

import (
	"github.com/kojo-codeur/Mario/internal/config"
	"github.com/kojo-codeur/Mario/internal/core"
)

// landingBand is how far below a platform's top edge the player's feet may
// sink and still snap onto it.
const landingBand = 20

// Player is the controlled character and the run's bookkeeping.
type Player struct {
	Box       core.Box
	VelY      float64
	Facing    Facing
	Jumping   bool
	Score     int
	Coins     int
	Lives     int
	Fireballs []Fireball

	// Invincible counts down the remaining frames of immunity to enemy hits.
	Invincible int

	fireCooldown int
	cfg          config.MarioConfig
	emit         func(core.Cue)
}

// NewPlayer creates a player at the spawn point with a fresh run.
func NewPlayer(cfg config.MarioConfig, emit func(core.Cue)) *Player {
	p := &Player{cfg: cfg, emit: emit}
	p.ResetRun()
	return p
}

// ResetRun restores everything a full restart clears.
func (p *Player) ResetRun() {
	p.Score = 0
	p.Coins = 0
	p.Lives = p.cfg.Player.Lives
	p.Invincible = 0
	p.Facing = FacingRight
	p.Respawn()
}

// Respawn places the player at the spawn point at rest.
func (p *Player) Respawn() {
	p.Box = core.NewBox(p.cfg.Player.SpawnX, p.cfg.Player.SpawnY, p.cfg.Player.Width, p.cfg.Player.Height)
	p.VelY = 0
	p.Jumping = false
	p.Fireballs = p.Fireballs[:0]
	p.fireCooldown = 0
}

// InvincibleNow reports whether enemy contact currently costs a life.
func (p *Player) InvincibleNow() bool {
	return p.Invincible > 0
}

// Move shifts the player horizontally by one frame of speed in dir (-1 or +1).
func (p *Player) Move(dir float64) {
	if dir == 0 {
		return
	}
	if dir < 0 {
		p.Facing = FacingLeft
	} else {
		p.Facing = FacingRight
	}
	p.Box.X += p.cfg.Physics.MoveSpeed * dir
	p.Box.X = core.ClampF(p.Box.X, 0, p.cfg.Playfield.Width-p.Box.W)
}

// Jump launches the player unless already airborne from a jump.
func (p *Player) Jump() bool {
	if p.Jumping {
		return false
	}
	p.VelY = p.cfg.Physics.JumpImpulse
	p.Jumping = true
	p.cue(core.CueJump)
	return true
}

// Fire throws a fireball in the facing direction when the cooldown allows.
func (p *Player) Fire() bool {
	fb := p.cfg.Fireballs
	if !fb.Enabled || p.fireCooldown > 0 {
		return false
	}
	x := p.Box.Right()
	if p.Facing == FacingLeft {
		x = p.Box.X - fb.Size
	}
	p.Fireballs = append(p.Fireballs, Fireball{
		Box:   core.NewBox(x, p.Box.MidY()-fb.Size/2, fb.Size, fb.Size),
		Speed: fb.Speed,
		Dir:   p.Facing.Sign(),
	})
	p.fireCooldown = fb.Cooldown
	p.cue(core.CueFire)
	return true
}

// Advance integrates one frame and resolves every interaction with the level.
// Coins and enemies consumed this frame are compacted out of level.
func (p *Player) Advance(level *Level) Outcome {
	current := Continue(level.ID)

	// Gravity
	p.VelY += p.cfg.Physics.Gravity
	p.Box.Y += p.VelY

	if p.Invincible > 0 {
		p.Invincible--
	}

	p.resolveFloor()
	p.resolvePlatforms(level.Platforms)
	p.collectCoins(level)

	if p.resolveEnemies(level) {
		return GameOver()
	}
	if p.resolveFall() {
		return GameOver()
	}

	p.advanceFireballs(level)

	if next, ok := p.findDoor(level.Doors); ok {
		return Transition(next)
	}
	return current
}

func (p *Player) resolveFloor() {
	if !p.cfg.Playfield.SolidFloor {
		return
	}
	if p.Box.Bottom() > p.cfg.Playfield.Height {
		p.Box.Y = p.cfg.Playfield.Height - p.Box.H
		p.land()
	}
}

func (p *Player) resolvePlatforms(platforms []Platform) {
	for _, plat := range platforms {
		bottom := p.Box.Bottom()
		if bottom < plat.Box.Y || bottom > plat.Box.Y+landingBand {
			continue
		}
		if !p.Box.OverlapsX(plat.Box) || p.VelY < 0 {
			continue
		}
		p.Box.Y = plat.Box.Y - p.Box.H
		p.land()
	}
}

func (p *Player) land() {
	p.VelY = 0
	p.Jumping = false
}

func (p *Player) collectCoins(level *Level) {
	kept := level.Coins[:0]
	for _, c := range level.Coins {
		if p.Box.Intersects(c.Box) {
			p.Score += p.cfg.Scoring.Coin
			p.Coins++
			p.cue(core.CueCoin)
			continue
		}
		kept = append(kept, c)
	}
	level.Coins = kept
}

// resolveEnemies handles stomps and hits. It returns true when the last life is lost.
func (p *Player) resolveEnemies(level *Level) bool {
	kept := level.Enemies[:0]
	dead := false
	for i, e := range level.Enemies {
		if dead || !p.Box.Intersects(e.Box) {
			kept = append(kept, e)
			continue
		}
		if p.VelY > 0 && p.Box.Bottom() < e.Box.MidY() {
			p.VelY = p.cfg.Physics.JumpImpulse / 2
			p.Score += p.cfg.Scoring.Stomp
			p.cue(core.CueStomp)
			continue
		}
		kept = append(kept, e)
		if p.InvincibleNow() {
			continue
		}
		if p.loseLife() {
			dead = true
			kept = append(kept, level.Enemies[i+1:]...)
			break
		}
		p.Invincible = p.cfg.Player.HitInvincibility
		if p.cfg.Rules.RespawnOnHit {
			p.Box.X, p.Box.Y = p.cfg.Player.SpawnX, p.cfg.Player.SpawnY
			p.VelY = 0
			p.Jumping = false
		}
	}
	level.Enemies = kept
	return dead
}

// resolveFall handles the player dropping below the playfield.
func (p *Player) resolveFall() bool {
	if p.Box.Y <= p.cfg.Playfield.Height {
		return false
	}
	if p.loseLife() {
		return true
	}
	p.Box.X, p.Box.Y = p.cfg.Player.SpawnX, p.cfg.Player.SpawnY
	p.VelY = 0
	p.Jumping = false
	p.Invincible = p.cfg.Player.FallInvincibility
	return false
}

// loseLife removes one life and reports whether none remain.
func (p *Player) loseLife() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.Lives == 0
}

func (p *Player) advanceFireballs(level *Level) {
	if p.fireCooldown > 0 {
		p.fireCooldown--
	}
	if len(p.Fireballs) == 0 {
		return
	}

	killed := make([]bool, len(level.Enemies))
	live := p.Fireballs[:0]
	for _, fb := range p.Fireballs {
		fb.Advance()
		if fb.Outside(p.cfg.Playfield.Width) {
			continue
		}
		hit := false
		for i, e := range level.Enemies {
			if killed[i] || !fb.Box.Intersects(e.Box) {
				continue
			}
			killed[i] = true
			hit = true
			p.Score += p.cfg.Scoring.Fireball
			p.cue(core.CueStomp)
			break
		}
		if !hit {
			live = append(live, fb)
		}
	}
	p.Fireballs = live

	kept := level.Enemies[:0]
	for i, e := range level.Enemies {
		if !killed[i] {
			kept = append(kept, e)
		}
	}
	level.Enemies = kept
}

func (p *Player) findDoor(doors []Door) (int, bool) {
	for _, d := range doors {
		if p.Box.Intersects(d.Box) && d.Unlocked(p.Coins) {
			return d.NextLevel, true
		}
	}
	return 0, false
}

func (p *Player) cue(c core.Cue) {
	if p.emit != nil {
		p.emit(c)
	}
}
