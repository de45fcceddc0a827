package flappy

import "github.com/arcadehall/canvas-arcade/internal/config"

// GameStateType describes the current phase of the game.
type GameStateType string

const (
	StateIdle     GameStateType = "idle"
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a comparable summary of the full game state, used to
// verify that equal seeds and inputs produce equal runs.
type Snapshot struct {
	Tick       uint64
	Score      int
	HighScore  int
	BirdY      float64
	BirdVel    float64
	Rotation   float64
	PipeCount  int
	Difficulty config.DifficultyPreset
	State      GameStateType
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case !g.started:
		state = StateIdle
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		HighScore:  g.highScore,
		BirdY:      g.birdY,
		BirdVel:    g.birdVel,
		Rotation:   g.rotation,
		PipeCount:  len(g.pipes.Pipes()),
		Difficulty: g.preset,
		State:      state,
	}
}
