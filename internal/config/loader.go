package config

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Load returns the compiled-in Word Fall configuration.
// The embedded YAML is decoded first; if it cannot be decoded the hardcoded
// defaults are used. The result is always validated.
func Load() (WordfallConfig, error) {
	cfg, err := Parse(defaultWordfallYAML)
	if err != nil {
		cfg = DefaultWordfallConfig() // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes a Word Fall configuration from YAML.
// Unknown keys are rejected so typos in the defaults file fail loudly.
func Parse(data []byte) (WordfallConfig, error) {
	var cfg WordfallConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse wordfall config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable game.
func (c WordfallConfig) Validate() error {
	var errs []error

	if c.Playfield.Height < 5 {
		errs = append(errs, fmt.Errorf("playfield height %d is below 5", c.Playfield.Height))
	}
	if c.Spawn.EdgeMargin < 1 {
		errs = append(errs, fmt.Errorf("spawn edge margin %d must be positive", c.Spawn.EdgeMargin))
	}
	if c.Playfield.Width-2*c.Spawn.EdgeMargin < 1 {
		errs = append(errs, fmt.Errorf("playfield width %d leaves no spawn columns with margin %d",
			c.Playfield.Width, c.Spawn.EdgeMargin))
	}
	if c.Spawn.EveryTicks < 1 {
		errs = append(errs, fmt.Errorf("spawn interval %d must be at least 1 tick", c.Spawn.EveryTicks))
	}
	if c.Spawn.TargetChance < 0 || c.Spawn.TargetChance > 100 {
		errs = append(errs, fmt.Errorf("target chance %d is outside 0-100", c.Spawn.TargetChance))
	}
	if c.Rules.TimeLimit < time.Second {
		errs = append(errs, fmt.Errorf("time limit %s is below 1s", c.Rules.TimeLimit))
	}
	if c.Rules.StartLives < 1 {
		errs = append(errs, fmt.Errorf("start lives %d must be positive", c.Rules.StartLives))
	}
	if c.Rules.PointsPerCatch < 1 {
		errs = append(errs, fmt.Errorf("points per catch %d must be positive", c.Rules.PointsPerCatch))
	}
	if c.Rules.MoveStep < 1 {
		errs = append(errs, fmt.Errorf("move step %d must be positive", c.Rules.MoveStep))
	}
	if c.Timing.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick %s must be positive", c.Timing.Tick))
	}
	if c.Timing.HitFlash < 0 {
		errs = append(errs, fmt.Errorf("hit flash %s must not be negative", c.Timing.HitFlash))
	}

	// Obstacle spawns pick a word different from the target, so at least two are needed.
	if len(c.Words) < 2 {
		errs = append(errs, fmt.Errorf("dictionary has %d words, need at least 2", len(c.Words)))
	}
	seen := make(map[string]bool, len(c.Words))
	for i, w := range c.Words {
		if w.English == "" {
			errs = append(errs, fmt.Errorf("word %d has no english text", i))
			continue
		}
		if seen[w.English] {
			errs = append(errs, fmt.Errorf("word %q appears twice", w.English))
		}
		seen[w.English] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid wordfall config: %w", errors.Join(errs...))
	}
	return nil
}
