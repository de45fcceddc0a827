package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// Matches defaults/snake.yaml; used as the last-resort fallback.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Size:          20,
			InitialLength: 1,
		},
		Food: SnakeFood{
			Kinds: []FoodKind{
				{Name: "apple", Weight: 0.4, Points: 1},
				{Name: "banana", Weight: 0.3, Points: 2},
				{Name: "meat", Weight: 0.2, Points: 3},
				{Name: "berry", Weight: 0.1, Points: 1},
			},
			MultiThreshold:  5,
			MaxSimultaneous: 3,
		},
		Walls: SnakeWalls{
			ScoreStep: 10,
		},
		Difficulties: map[string]SnakeDifficulty{
			"easy":    {TickIntervalMs: 150, BorderKills: false},
			"normal":  {TickIntervalMs: 100, BorderKills: false},
			"hard":    {TickIntervalMs: 70, BorderKills: false},
			"extreme": {TickIntervalMs: 70, BorderKills: true},
		},
	}
}

// DefaultFlappyConfig returns the default flappy configuration.
// Matches defaults/flappy.yaml; used as the last-resort fallback.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: FlappyCanvas{
			Width:  480,
			Height: 640,
		},
		Bird: FlappyBird{
			X:            80,
			Width:        34,
			Height:       24,
			FlapStrength: -7.0,
		},
		Pipes: FlappyPipes{
			Width:      60,
			Speed:      3.0,
			EdgeMargin: 50,
		},
		Difficulties: map[string]FlappyDifficulty{
			"easy":   {Gravity: 0.3, Gap: 180, SpawnIntervalMs: 2000},
			"normal": {Gravity: 0.4, Gap: 150, SpawnIntervalMs: 1500},
			"hard":   {Gravity: 0.5, Gap: 120, SpawnIntervalMs: 1200},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
