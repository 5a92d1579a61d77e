package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in tunables.
func Default() Tunables {
	return Tunables{
		Speed: SpeedConfig{
			Initial: 0.2,
			Factor:  0.95,
			Min:     0.1,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
	}
}
