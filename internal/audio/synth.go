package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/kojo-codeur/Mario/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveTriangle
	WaveNoise
)

// Note is one segment of a cue: a tone that may sweep between two pitches.
type Note struct {
	From     float64 // Hz at the start
	To       float64 // Hz at the end; equal to From for a steady tone
	Duration time.Duration
	Wave     Wave
}

// tone generates a single swept note.
type tone struct {
	note     Note
	rate     beep.SampleRate
	rng      *rand.Rand
	phase    float64
	position int
	total    int
	attack   int
	release  int
}

func newTone(n Note, rate beep.SampleRate, rng *rand.Rand) *tone {
	total := rate.N(n.Duration)
	edge := rate.N(5 * time.Millisecond)
	if edge*2 > total {
		edge = total / 2
	}
	return &tone{note: n, rate: rate, rng: rng, total: total, attack: edge, release: edge}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		progress := float64(t.position) / float64(t.total)
		freq := t.note.From + (t.note.To-t.note.From)*progress

		var val float64
		switch t.note.Wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(t.phase-0.5) - 1
		case WaveNoise:
			val = t.rng.Float64()*2 - 1
		}
		val *= t.gain()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

// gain applies a short linear attack and release to avoid clicks.
func (t *tone) gain() float64 {
	switch {
	case t.attack > 0 && t.position < t.attack:
		return float64(t.position) / float64(t.attack)
	case t.release > 0 && t.position >= t.total-t.release:
		return float64(t.total-t.position) / float64(t.release)
	default:
		return 1
	}
}

func (t *tone) Err() error { return nil }

// Recipes maps each cue to its notes.
var Recipes = map[core.Cue][]Note{
	core.CueJump: {
		{From: 300, To: 640, Duration: 120 * time.Millisecond, Wave: WaveSquare},
	},
	core.CueCoin: {
		{From: 988, To: 988, Duration: 60 * time.Millisecond, Wave: WaveSquare},
		{From: 1319, To: 1319, Duration: 180 * time.Millisecond, Wave: WaveSquare},
	},
	core.CueStomp: {
		{From: 420, To: 110, Duration: 90 * time.Millisecond, Wave: WaveTriangle},
	},
	core.CueFire: {
		{From: 900, To: 300, Duration: 80 * time.Millisecond, Wave: WaveNoise},
	},
	core.CueDoor: {
		{From: 523, To: 523, Duration: 80 * time.Millisecond, Wave: WaveSquare},
		{From: 659, To: 659, Duration: 80 * time.Millisecond, Wave: WaveSquare},
		{From: 784, To: 784, Duration: 120 * time.Millisecond, Wave: WaveSquare},
	},
	core.CueGameOver: {
		{From: 392, To: 392, Duration: 200 * time.Millisecond, Wave: WaveTriangle},
		{From: 330, To: 330, Duration: 200 * time.Millisecond, Wave: WaveTriangle},
		{From: 262, To: 196, Duration: 400 * time.Millisecond, Wave: WaveTriangle},
	},
	core.CueVictory: {
		{From: 523, To: 523, Duration: 120 * time.Millisecond, Wave: WaveSquare},
		{From: 659, To: 659, Duration: 120 * time.Millisecond, Wave: WaveSquare},
		{From: 784, To: 784, Duration: 120 * time.Millisecond, Wave: WaveSquare},
		{From: 1047, To: 1047, Duration: 360 * time.Millisecond, Wave: WaveSquare},
	},
}

// Streamer builds the finite stream for a cue at the given volume offset
// (0 is unity gain, negative is quieter). Unknown cues return nil.
func Streamer(c core.Cue, rate beep.SampleRate, volume float64, rng *rand.Rand) beep.Streamer {
	notes, ok := Recipes[c]
	if !ok || len(notes) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n, rate, rng))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}
}

// Length returns the total playing time of a cue.
func Length(c core.Cue) time.Duration {
	var d time.Duration
	for _, n := range Recipes[c] {
		d += n.Duration
	}
	return d
}
