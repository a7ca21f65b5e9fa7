package wordfall

import (
	"math/rand"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
)

// Capacity is the number of falling object slots.
const Capacity = 20

// PlayerMargin is the closest the paddle may get to either side.
const PlayerMargin = 2

// FallingObject is one slot of the object arena.
// Coordinates are 1-based playfield columns and rows.
type FallingObject struct {
	X, Y      int
	WordIndex int
	Active    bool
}

// World holds all mutable game data.
type World struct {
	PlayerX int
	Score   int
	Lives   int
	Target  int // Dictionary index of the word to catch
	Objects [Capacity]FallingObject
}

// Rules are the fixed parameters the world is simulated with.
type Rules struct {
	Width        int
	Height       int
	EdgeMargin   int
	TargetChance int // Percent
	Points       int
	MoveStep     int
	Words        Dictionary
}

// NewRules derives simulation rules from the game configuration.
func NewRules(cfg config.WordfallConfig) Rules {
	return Rules{
		Width:        cfg.Playfield.Width,
		Height:       cfg.Playfield.Height,
		EdgeMargin:   cfg.Spawn.EdgeMargin,
		TargetChance: cfg.Spawn.TargetChance,
		Points:       cfg.Rules.PointsPerCatch,
		MoveStep:     cfg.Rules.MoveStep,
		Words:        NewDictionary(cfg.Words),
	}
}

// GroundY is the row the paddle stands on and where catches are tested.
func (r Rules) GroundY() int {
	return r.Height - 2
}

// FloorY is the row of the floor line.
func (r Rules) FloorY() int {
	return r.Height - 1
}

// NewWorld returns a world with every slot free, the paddle centered and a
// random target word.
func NewWorld(r Rules, lives int, rng *rand.Rand) World {
	return World{
		PlayerX: r.Width / 2,
		Score:   0,
		Lives:   lives,
		Target:  rng.Intn(r.Words.Len()),
	}
}

// ActiveCount returns the number of occupied slots.
func (w *World) ActiveCount() int {
	n := 0
	for i := range w.Objects {
		if w.Objects[i].Active {
			n++
		}
	}
	return n
}

// MovePlayer shifts the paddle one step left (dir < 0) or right (dir > 0),
// snapping to the edge margin instead of leaving the playfield.
func (w *World) MovePlayer(dir int, r Rules) {
	switch {
	case dir < 0:
		w.PlayerX -= r.MoveStep
	case dir > 0:
		w.PlayerX += r.MoveStep
	}
	w.PlayerX = core.Clamp(w.PlayerX, PlayerMargin, r.Width-PlayerMargin)
}
