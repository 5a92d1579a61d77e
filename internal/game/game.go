// Package game implements the snake rules engine: deterministic movement,
// collision detection, food spawning, scoring and speed progression.
// It exposes no rendering; the platform layer reads snapshots and forwards
// heading events.
package game

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/core"
)

// Store persists the high score across runs. Implementations live in
// internal/storage; a nil store keeps the high score in memory only.
type Store interface {
	// Load returns the stored high score, or 0 when none exists.
	Load() (int, error)
	// Save durably records a new high score.
	Save(score int) error
}

// Game owns the full simulation state. It is mutated only by HandleInput,
// Update and Reset, all invoked sequentially by the host loop; there is no
// internal concurrency.
type Game struct {
	rng *rand.Rand

	snake   []core.Position // Head at index 0
	dir     core.Direction
	nextDir core.Direction // Buffered heading for the next move

	food      core.Position
	score     int
	highScore int
	gameOver  bool

	speed    float64 // Seconds between moves
	lastMove float64 // Clock reading at the last actual move

	tunables config.Tunables
	store    Store
}

// New creates a game with the given tunables and high-score store.
// Call Reset before the first Update.
func New(tun config.Tunables, store Store) *Game {
	return &Game{
		tunables: tun,
		store:    store,
	}
}

// Reset re-initializes the simulation to a fresh running state: a three
// segment snake at the grid center heading right, food off-snake, score
// zero. The high score is the only state carried across the boundary,
// re-seeded from the store.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	cx, cy := core.GridWidth/2, core.GridHeight/2
	g.snake = []core.Position{
		{X: cx, Y: cy}, // Head
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
	g.dir = core.DirRight
	g.nextDir = core.DirRight
	g.food = g.spawnFood()
	g.score = 0
	g.gameOver = false
	g.speed = g.tunables.Speed.Initial
	g.lastMove = 0

	g.highScore = g.loadHighScore()
}

// loadHighScore seeds the high score from the store, keeping whatever is
// already in memory if it is higher or the store is unavailable.
func (g *Game) loadHighScore() int {
	best := g.highScore
	if g.store == nil {
		return best
	}
	stored, err := g.store.Load()
	if err != nil {
		log.Warn("could not load high score", "error", err)
		return best
	}
	if stored > best {
		best = stored
	}
	return best
}

// spawnFood samples uniformly random cells until one is free of the snake.
// This does not terminate if the snake covers the entire grid; with 300
// cells that state is unreachable in normal play, so it is deliberately
// not guarded.
func (g *Game) spawnFood() core.Position {
	for {
		p := core.Position{X: g.rng.Intn(core.GridWidth), Y: g.rng.Intn(core.GridHeight)}
		if !g.occupies(p) {
			return p
		}
	}
}

// occupies checks if the snake occupies the given position.
func (g *Game) occupies(p core.Position) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// HandleInput buffers a heading change for the next move. A heading that
// would reverse the snake into its own neck is silently dropped. Multiple
// calls between moves overwrite each other; the latest valid one wins.
func (g *Game) HandleInput(d core.Direction) {
	if g.gameOver {
		return
	}
	if d != g.dir.Opposite() {
		g.nextDir = d
	}
}

// WouldCollide reports whether moving the head to p ends the game: p is
// outside the grid or on the snake body. The current tail cell is exempt
// since it vacates on the same move.
func (g *Game) WouldCollide(p core.Position) bool {
	if !p.IsValid() {
		return true
	}
	for _, seg := range g.snake[:len(g.snake)-1] {
		if seg == p {
			return true
		}
	}
	return false
}

// Update advances the simulation by one move if at least speed seconds have
// passed since the last one. now is a monotonically non-decreasing clock
// reading in seconds supplied by the host, polled once per frame. Returns
// true when a move happened. Once the game is over, Update does nothing.
func (g *Game) Update(now float64) bool {
	if g.gameOver {
		return false
	}
	if now-g.lastMove < g.speed {
		return false
	}
	g.moveSnake()
	g.lastMove = now
	return true
}

// moveSnake performs one tick: commit the buffered heading, move the head,
// resolve collisions, food and growth.
func (g *Game) moveSnake() {
	g.dir = g.nextDir
	newHead := g.snake[0].Move(g.dir)

	if g.WouldCollide(newHead) {
		g.gameOver = true
		g.updateHighScore()
		return
	}

	g.snake = append([]core.Position{newHead}, g.snake...)

	if newHead == g.food {
		g.score += g.tunables.Scoring.FoodPoints
		g.food = g.spawnFood()
		g.speed = math.Max(g.speed*g.tunables.Speed.Factor, g.tunables.Speed.Min)
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// updateHighScore persists the score if it beats the stored best. A write
// failure only affects durability across restarts, never the running game.
func (g *Game) updateHighScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.highScore); err != nil {
		log.Warn("could not save high score", "error", err)
	}
}
