package core

// Cue names a sound effect requested by a game.
type Cue string

const (
	CueJump     Cue = "jump"
	CueCoin     Cue = "coin"
	CueStomp    Cue = "stomp"
	CueFire     Cue = "fire"
	CueDoor     Cue = "door"
	CueGameOver Cue = "game-over"
	CueVictory  Cue = "victory"
)

// AllCues lists every cue a game may emit.
func AllCues() []Cue {
	return []Cue{CueJump, CueCoin, CueStomp, CueFire, CueDoor, CueGameOver, CueVictory}
}

// AudioSink receives fire-and-forget cue requests.
// Implementations may drop cues silently when muted or unavailable.
type AudioSink interface {
	Play(c Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play(Cue) {}

// SafePlay forwards a cue to sink and swallows any panic it raises,
// so a broken sink can never stop the simulation loop.
func SafePlay(sink AudioSink, c Cue) {
	if sink == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	sink.Play(c)
}
