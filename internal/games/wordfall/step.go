package wordfall

import (
	"math/rand"

	"github.com/vovakirdan/wordfall/internal/core"
)

// CatchEvent describes a falling word meeting the paddle.
type CatchEvent struct {
	Slot      int
	WordIndex int
	Y         int  // Row the word landed on
	Correct   bool // The word was the target at the time of the catch
}

// CatchBox returns the columns within which the paddle catches o.
// The paddle is a single column; the box spans one column left of the word
// to one column past its end.
func (r Rules) CatchBox(o FallingObject) core.Span {
	return core.Span{Lo: o.X - 1, Hi: o.X + r.Words.At(o.WordIndex).Width()}
}

// Advance moves every active object down one row and resolves landings.
//
// An object at or below the ground row whose catch box holds the paddle is
// caught: the target scores and a new target is drawn (repeats allowed),
// anything else costs a life. Caught objects are freed either way. Objects
// below the floor row are freed without effect.
func (w *World) Advance(rng *rand.Rand, r Rules) []CatchEvent {
	var events []CatchEvent

	for i := range w.Objects {
		o := &w.Objects[i]
		if !o.Active {
			continue
		}

		o.Y++
		if o.Y < r.GroundY() {
			continue
		}

		if r.CatchBox(*o).Contains(w.PlayerX) {
			ev := CatchEvent{Slot: i, WordIndex: o.WordIndex, Y: o.Y}
			if o.WordIndex == w.Target {
				ev.Correct = true
				w.Score += r.Points
				w.Target = rng.Intn(r.Words.Len())
			} else if w.Lives > 0 {
				w.Lives--
			}
			events = append(events, ev)
			*o = FallingObject{}
		} else if o.Y > r.FloorY() {
			*o = FallingObject{}
		}
	}

	return events
}
