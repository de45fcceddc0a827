package snake

// GameStateType represents the current game phase.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick       uint64
	Score      int
	HighScore  int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        Direction
	FoodCount  int
	WallCount  int
	Difficulty string
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		HighScore:  g.highScore,
		SnakeLen:   len(g.snake),
		HeadX:      headX,
		HeadY:      headY,
		Dir:        g.direction,
		FoodCount:  len(g.foods),
		WallCount:  len(g.walls),
		Difficulty: string(g.preset),
		State:      state,
	}
}
