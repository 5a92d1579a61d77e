package game

import "github.com/vovakirdan/snake-tui/internal/core"

// Snapshot is a read-only view of the simulation, sufficient to render a
// frame without any game logic on the consumer side.
type Snapshot struct {
	Snake     []core.Position // Ordered segments, head first; a copy
	Direction core.Direction
	Food      core.Position
	Score     int
	HighScore int
	GameOver  bool
	Speed     float64 // Seconds between moves
}

// Snapshot returns the current game state. The snake slice is copied so the
// caller can hold it across ticks.
func (g *Game) Snapshot() Snapshot {
	snake := make([]core.Position, len(g.snake))
	copy(snake, g.snake)

	return Snapshot{
		Snake:     snake,
		Direction: g.dir,
		Food:      g.food,
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.gameOver,
		Speed:     g.speed,
	}
}
