// Package config holds the compiled-in constants of the game: playfield size,
// spawn tuning, rules, tick timing and the word dictionary.
package config

import "time"

// WordfallConfig contains all configuration for the Word Fall game.
type WordfallConfig struct {
	Playfield Playfield `yaml:"playfield"`
	Spawn     Spawn     `yaml:"spawn"`
	Rules     Rules     `yaml:"rules"`
	Timing    Timing    `yaml:"timing"`
	Words     []Word    `yaml:"words"`
}

// Playfield defines the size of the play area in terminal cells.
type Playfield struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Spawn defines how falling words enter the playfield.
type Spawn struct {
	EveryTicks   int `yaml:"every_ticks"`
	TargetChance int `yaml:"target_chance"` // Percent, 0-100
	EdgeMargin   int `yaml:"edge_margin"`
}

// Rules defines scoring, lives and the round timer.
type Rules struct {
	TimeLimit      time.Duration `yaml:"time_limit"`
	StartLives     int           `yaml:"start_lives"`
	PointsPerCatch int           `yaml:"points_per_catch"`
	MoveStep       int           `yaml:"move_step"`
}

// Timing defines the loop cadence.
type Timing struct {
	Tick     time.Duration `yaml:"tick"`
	HitFlash time.Duration `yaml:"hit_flash"`
}

// Word is one dictionary entry.
type Word struct {
	English string `yaml:"english"`
	Chinese string `yaml:"chinese"`
}

// TickRate returns the number of ticks per second.
func (c WordfallConfig) TickRate() int {
	if c.Timing.Tick <= 0 {
		return 0
	}
	return int(time.Second / c.Timing.Tick)
}
