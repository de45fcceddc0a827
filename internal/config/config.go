// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid         SnakeGrid                  `yaml:"grid"`
	Food         SnakeFood                  `yaml:"food"`
	Walls        SnakeWalls                 `yaml:"walls"`
	Difficulties map[string]SnakeDifficulty `yaml:"difficulties"`
}

// SnakeGrid defines the playing field.
type SnakeGrid struct {
	Size          int `yaml:"size"`           // Cells per side (square grid)
	InitialLength int `yaml:"initial_length"` // Starting snake length
}

// SnakeFood defines the food table and replenishment thresholds.
type SnakeFood struct {
	Kinds []FoodKind `yaml:"kinds"`
	// MultiThreshold is the score at which multiple simultaneous foods
	// start appearing; below it food is replenished one-for-one.
	MultiThreshold int `yaml:"multi_threshold"`
	// MaxSimultaneous caps the food count; the target is
	// min(MaxSimultaneous, score/MultiThreshold) once past the threshold.
	MaxSimultaneous int `yaml:"max_simultaneous"`
}

// FoodKind is one weighted food type.
type FoodKind struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
	Points int     `yaml:"points"`
}

// SnakeWalls defines obstacle spawning.
type SnakeWalls struct {
	// ScoreStep spawns one wall each time the score crosses a positive
	// multiple of this value. Ignored in border-kill (extreme) mode.
	ScoreStep int `yaml:"score_step"`
}

// SnakeDifficulty is one named difficulty preset for snake.
type SnakeDifficulty struct {
	TickIntervalMs int  `yaml:"tick_interval_ms"` // Logical move interval
	BorderKills    bool `yaml:"border_kills"`     // Lethal border instead of wrap-around
}

// FlappyConfig contains all configuration for the flappy game.
type FlappyConfig struct {
	Canvas       FlappyCanvas                `yaml:"canvas"`
	Bird         FlappyBird                  `yaml:"bird"`
	Pipes        FlappyPipes                 `yaml:"pipes"`
	Difficulties map[string]FlappyDifficulty `yaml:"difficulties"`
}

// FlappyCanvas is the logical play field in continuous pixel coordinates.
type FlappyCanvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyBird defines the bird's hitbox and flap impulse.
type FlappyBird struct {
	X            float64 `yaml:"x"` // Fixed horizontal position (left edge)
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FlapStrength float64 `yaml:"flap_strength"` // Velocity set (not added) on flap
}

// FlappyPipes defines pipe geometry and scrolling.
type FlappyPipes struct {
	Width      float64 `yaml:"width"`
	Speed      float64 `yaml:"speed"`       // Pixels per tick, leftward
	EdgeMargin float64 `yaml:"edge_margin"` // Min distance of the gap from top/bottom
}

// FlappyDifficulty is one named difficulty preset for flappy.
type FlappyDifficulty struct {
	Gravity         float64 `yaml:"gravity"`           // Acceleration per tick
	Gap             float64 `yaml:"gap"`               // Vertical gap size
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"` // Time between pipe spawns
}

// Difficulty returns the snake preset by name, falling back to normal.
func (c SnakeConfig) Difficulty(preset DifficultyPreset) SnakeDifficulty {
	if d, ok := c.Difficulties[string(preset)]; ok {
		return d
	}
	return c.Difficulties[string(DifficultyNormal)]
}

// Difficulty returns the flappy preset by name, falling back to normal.
func (c FlappyConfig) Difficulty(preset DifficultyPreset) FlappyDifficulty {
	if d, ok := c.Difficulties[string(preset)]; ok {
		return d
	}
	return c.Difficulties[string(DifficultyNormal)]
}
