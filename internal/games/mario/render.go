package mario

import (
	"fmt"
	"math"
	"strings"

	"github.com/kojo-codeur/Mario/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	PlatformChar  = '▀'
	BreakableChar = '▒'
	CoinChar      = 'o'
	EnemyChar     = '▄'
	DoorChar      = '█'
	FireballChar  = '•'
	LifeChar      = '♥'
)

// Minimum terminal size the playfield is drawn at.
const (
	MinScreenW = 40
	MinScreenH = 15
)

// viewport maps playfield units onto screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, fieldW, fieldH float64) viewport {
	return viewport{
		sx:  float64(dst.Width()) / fieldW,
		sy:  float64(dst.Height()-1) / fieldH,
		top: 1,
	}
}

// cells converts a box to the screen rectangle covering it, at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0+v.top, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.cfg.Playfield.Width, g.cfg.Playfield.Height)
}

// RenderSnapshot draws a frame snapshot. It never mutates the snapshot.
func RenderSnapshot(dst *core.Screen, snap Snapshot, fieldW, fieldH float64) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	vp := newViewport(dst, fieldW, fieldH)

	renderHUD(dst, snap.HUD)

	for _, p := range snap.Platforms {
		r := vp.cells(p.Box)
		r.H = 1
		if p.Breakable {
			dst.DrawRectColored(r, BreakableChar, core.ColorBrown)
		} else {
			dst.DrawRectColored(r, PlatformChar, core.ColorGreen)
		}
	}

	for _, d := range snap.Doors {
		color := core.ColorGray
		if d.Unlocked(snap.HUD.Coins) {
			color = core.ColorBrown
		}
		dst.DrawRectColored(vp.cells(d.Box), DoorChar, color)
	}

	for _, c := range snap.Coins {
		r := vp.cells(c.Box)
		dst.SetColored(r.X, r.Y, CoinChar, core.ColorBrightYellow)
	}

	for _, e := range snap.Enemies {
		color := core.ColorOrange
		if e.Kind == KindKoopa {
			color = core.ColorBrightGreen
		}
		dst.DrawRectColored(vp.cells(e.Box), EnemyChar, color)
	}

	for _, f := range snap.Fireballs {
		r := vp.cells(f.Box)
		dst.SetColored(r.X, r.Y, FireballChar, core.ColorOrange)
	}

	renderPlayer(dst, vp, snap)
	renderOverlay(dst, snap)
}

func renderPlayer(dst *core.Screen, vp viewport, snap Snapshot) {
	// Blink while invincible
	if snap.Player.Invincible && (snap.Tick/6)%2 == 0 {
		return
	}
	r := vp.cells(snap.Player.Box)
	dst.DrawRectColored(r, PlayerChar, core.ColorRed)

	eyeX := r.Right() - 1
	eye := '>'
	if snap.Player.Facing == FacingLeft {
		eyeX = r.X
		eye = '<'
	}
	dst.SetColored(eyeX, r.Y, eye, core.ColorWhite)
}

// renderHUD draws score, coins, lives and level on the top row.
func renderHUD(dst *core.Screen, hud HUD) {
	left := fmt.Sprintf("Score: %d  Coins: %d", hud.Score, hud.Coins)
	dst.DrawTextColored(1, 0, left, core.ColorWhite)

	lives := strings.Repeat(string(LifeChar), core.Max(hud.Lives, 0))
	dst.DrawTextColored((dst.Width()-len([]rune(lives)))/2, 0, lives, core.ColorBrightRed)

	right := fmt.Sprintf("Best: %d  Level: %d/%d", hud.HighScore, hud.Level, FinalLevel())
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorWhite)
}

// renderOverlay draws mode-specific boxes over the playfield.
func renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.Mode {
	case ModeMenu:
		renderMenu(dst, snap.Menu)
	case ModeGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Enter to play again", snap.HUD.Score))
	case ModeVictory:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Enter to play again", snap.HUD.Score))
	}
}

func renderMenu(dst *core.Screen, menu Menu) {
	lines := []string{"MARIO", ""}
	for i, opt := range menu.Options {
		prefix := "  "
		if i == menu.Cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+opt.Label())
	}
	lines = append(lines, "", "←/→ move  Space jump  F fire", "R restart  Esc menu  Q quit")

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for i, l := range lines {
		color := core.ColorDefault
		switch {
		case i == 0:
			color = core.ColorBrightRed
		case i >= 2 && i-2 == menu.Cursor && i-2 < len(menu.Options):
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(boxX+2, boxY+1+i, l, color)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
