package wordfall

import "math/rand"

// Spawn activates the lowest-index free slot at the top row.
// It returns the slot used, or -1 when every slot is taken; a full arena
// simply drops the request.
//
// The column is uniform over [EdgeMargin, Width-EdgeMargin-1] so that words
// are not drawn against the edges. With TargetChance percent probability the
// word is the current target; otherwise any other word is picked.
func (w *World) Spawn(rng *rand.Rand, r Rules) int {
	slot := -1
	for i := range w.Objects {
		if !w.Objects[i].Active {
			slot = i
			break
		}
	}
	if slot == -1 {
		return -1
	}

	o := &w.Objects[slot]
	o.Active = true
	o.Y = 1
	o.X = rng.Intn(r.Width-2*r.EdgeMargin) + r.EdgeMargin

	if rng.Intn(100) < r.TargetChance {
		o.WordIndex = w.Target
	} else {
		o.WordIndex = w.obstacleWord(rng, r)
	}
	return slot
}

// obstacleWord draws words until one differs from the target.
func (w *World) obstacleWord(rng *rand.Rand, r Rules) int {
	for {
		idx := rng.Intn(r.Words.Len())
		if idx != w.Target {
			return idx
		}
	}
}
