package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/wordfall.yaml
var defaultWordfallYAML []byte

// DefaultWordfallConfig returns the hardcoded Word Fall configuration.
// It mirrors defaults/wordfall.yaml and is used if the embedded file cannot be decoded.
func DefaultWordfallConfig() WordfallConfig {
	return WordfallConfig{
		Playfield: Playfield{
			Width:  60,
			Height: 25,
		},
		Spawn: Spawn{
			EveryTicks:   10,
			TargetChance: 30,
			EdgeMargin:   3,
		},
		Rules: Rules{
			TimeLimit:      60 * time.Second,
			StartLives:     3,
			PointsPerCatch: 10,
			MoveStep:       4,
		},
		Timing: Timing{
			Tick:     100 * time.Millisecond,
			HitFlash: 200 * time.Millisecond,
		},
		Words: []Word{
			{English: "apple", Chinese: "蘋果"},
			{English: "book", Chinese: "書本"},
			{English: "cat", Chinese: "貓"},
			{English: "dog", Chinese: "狗"},
			{English: "egg", Chinese: "雞蛋"},
			{English: "fish", Chinese: "魚"},
			{English: "girl", Chinese: "女孩"},
			{English: "hat", Chinese: "帽子"},
			{English: "ice", Chinese: "冰塊"},
			{English: "jump", Chinese: "跳"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWordfallYAML
}
