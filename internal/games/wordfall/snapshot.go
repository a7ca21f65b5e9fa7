package wordfall

import (
	"encoding/binary"
	"hash/fnv"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick      int
	Score     int
	Lives     int
	Target    int
	PlayerX   int
	Active    int
	Remaining int
	GameOver  bool
	Reason    EndReason
	Objects   [Capacity]FallingObject
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.frame,
		Score:     g.world.Score,
		Lives:     g.world.Lives,
		Target:    g.world.Target,
		PlayerX:   g.world.PlayerX,
		Active:    g.world.ActiveCount(),
		Remaining: g.remaining,
		GameOver:  g.gameOver,
		Reason:    g.reason,
		Objects:   g.world.Objects,
	}
}

// Hash returns an FNV-1a hash over every field of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}

	put(s.Tick)
	put(s.Score)
	put(s.Lives)
	put(s.Target)
	put(s.PlayerX)
	put(s.Active)
	put(s.Remaining)
	put(boolInt(s.GameOver))
	put(int(s.Reason))
	for _, o := range s.Objects {
		put(o.X)
		put(o.Y)
		put(o.WordIndex)
		put(boolInt(o.Active))
	}
	return h.Sum64()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
