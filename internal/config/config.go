// Package config provides YAML-based gameplay tunables for the snake game.
package config

// Tunables contains the gameplay parameters that may be overridden from a
// YAML file. The defaults match the classic rules: five moves per second at
// the start, speeding up five percent per food down to a floor.
type Tunables struct {
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// SpeedConfig defines the speed progression curve.
type SpeedConfig struct {
	Initial float64 `yaml:"initial"` // Seconds between moves at game start
	Factor  float64 `yaml:"factor"`  // Multiplier applied per food eaten
	Min     float64 `yaml:"min"`     // Lower bound on seconds between moves
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}
