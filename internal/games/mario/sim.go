package mario

import (
	"fmt"

	"github.com/kojo-codeur/Mario/internal/core"
)

// OutcomeKind classifies the result of one simulation frame.
type OutcomeKind int

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeTransition
	OutcomeGameOver
)

// Outcome tells the state machine what the frame decided.
type Outcome struct {
	Kind  OutcomeKind
	Level int // active level for Continue, target level for Transition
}

// Continue keeps playing level id.
func Continue(id int) Outcome { return Outcome{Kind: OutcomeContinue, Level: id} }

// Transition moves the player to level id.
func Transition(id int) Outcome { return Outcome{Kind: OutcomeTransition, Level: id} }

// GameOver ends the run.
func GameOver() Outcome { return Outcome{Kind: OutcomeGameOver} }

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeContinue:
		return fmt.Sprintf("continue(%d)", o.Level)
	case OutcomeTransition:
		return fmt.Sprintf("transition(%d)", o.Level)
	case OutcomeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// World is the session context one frame mutates: the player and the
// entities of the active level. The state machine owns it.
type World struct {
	Player *Player
	Level  Level
}

// Step runs one frame: input, player motion, enemy patrol, then collision
// resolution and the transition decision.
func (w *World) Step(in core.InputFrame) Outcome {
	if in.Held(core.ActionLeft) {
		w.Player.Move(-1)
	}
	if in.Held(core.ActionRight) {
		w.Player.Move(1)
	}
	if in.Has(core.ActionJump) {
		w.Player.Jump()
	}
	if in.Has(core.ActionFire) {
		w.Player.Fire()
	}

	for i := range w.Level.Enemies {
		w.Level.Enemies[i].Advance()
	}

	return w.Player.Advance(&w.Level)
}
