// Package wordfall implements Word Fall: english words rain down and the
// player moves a paddle to catch the one matching the target, dodging the rest.
package wordfall

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
)

// EndReason records why a round ended.
type EndReason int

const (
	EndNone  EndReason = iota
	EndLives           // Lives ran out
	EndTime            // Timer reached zero
	EndQuit            // Player pressed quit
)

// String returns a short description shown on the game over screen.
func (r EndReason) String() string {
	switch r {
	case EndLives:
		return "Out of lives"
	case EndTime:
		return "Time's up"
	case EndQuit:
		return "Game quit"
	default:
		return ""
	}
}

// Game implements the Word Fall game logic.
type Game struct {
	cfg       config.WordfallConfig
	rules     Rules
	world     World
	rng       *rand.Rand
	clock     core.Clock
	started   time.Time    // Wall-clock start of the round
	remaining int          // Whole seconds left on the timer
	frame     int          // Ticks since start
	gameOver  bool         // Whether the round has ended
	reason    EndReason    // Why the round ended
	hits      []CatchEvent // Wrong catches of the last tick, drawn as flashes
}

// New creates a Word Fall game using the given configuration.
func New(cfg config.WordfallConfig) *Game {
	return &Game{
		cfg:   cfg,
		rules: NewRules(cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "wordfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Word Fall"
}

// Reset initializes or restarts the game and starts the round timer.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.clock = runtime.Clock
	if g.clock == nil {
		g.clock = core.SystemClock{}
	}

	g.world = NewWorld(g.rules, g.cfg.Rules.StartLives, g.rng)
	g.started = g.clock.Now()
	g.remaining = g.limitSeconds()
	g.frame = 0
	g.gameOver = false
	g.reason = EndNone
	g.hits = g.hits[:0]
}

// Step advances the game by one tick.
//
// Termination is checked first (lives, then the timer), then input is
// applied, a word is spawned every SpawnEvery ticks and the world advances.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.hits = g.hits[:0]

	if g.world.Lives <= 0 {
		g.end(EndLives)
		return core.StepResult{State: g.State()}
	}

	elapsed := g.clock.Now().Sub(g.started)
	g.remaining = g.limitSeconds() - int(elapsed/time.Second)
	if g.remaining <= 0 {
		g.remaining = 0
		g.end(EndTime)
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionQuit):
		g.end(EndQuit)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionLeft):
		g.world.MovePlayer(-1, g.rules)
	case in.Has(core.ActionRight):
		g.world.MovePlayer(1, g.rules)
	}

	g.frame++
	if g.frame%g.cfg.Spawn.EveryTicks == 0 {
		g.world.Spawn(g.rng, g.rules)
	}

	result := core.StepResult{}
	for _, ev := range g.world.Advance(g.rng, g.rules) {
		if !ev.Correct {
			g.hits = append(g.hits, ev)
			result.Hold = g.cfg.Timing.HitFlash
		}
	}

	result.State = g.State()
	return result
}

func (g *Game) end(reason EndReason) {
	g.gameOver = true
	g.reason = reason
}

func (g *Game) limitSeconds() int {
	return int(g.cfg.Rules.TimeLimit / time.Second)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.world.Score,
		Lives:     g.world.Lives,
		Remaining: g.remaining,
		GameOver:  g.gameOver,
	}
}

// Reason returns why the round ended, or EndNone while it is running.
func (g *Game) Reason() EndReason {
	return g.reason
}

// Target returns the word the player has to catch.
func (g *Game) Target() Word {
	return g.rules.Words.At(g.world.Target)
}

// Hint returns the translation of the target word.
func (g *Game) Hint() string {
	return g.Target().Chinese
}
