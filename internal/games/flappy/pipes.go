package flappy

import (
	"math/rand"

	"github.com/arcadehall/canvas-arcade/internal/config"
	"github.com/arcadehall/canvas-arcade/internal/core"
)

// Pipe is a vertical obstacle pair with a gap between the two segments.
// Coordinates are in logical canvas pixels, not screen cells.
type Pipe struct {
	X         float64 // Left edge
	TopHeight float64 // Height of the upper segment, gap starts below it
	Gap       float64 // Vertical gap size at spawn time
	Passed    bool    // Set once the bird has cleared the pipe (scores once)
}

// TopRect returns the collision rectangle of the upper segment.
func (p Pipe) TopRect(width float64) core.RectF {
	return core.NewRectF(p.X, 0, width, p.TopHeight)
}

// BottomRect returns the collision rectangle of the lower segment.
func (p Pipe) BottomRect(width, canvasH float64) core.RectF {
	bottomY := p.TopHeight + p.Gap
	return core.NewRectF(p.X, bottomY, width, canvasH-bottomY)
}

// PipeManager handles spawning, movement, scoring, and removal of pipes.
type PipeManager struct {
	pipes   []Pipe
	rng     *rand.Rand
	cfg     config.FlappyConfig
	diff    config.FlappyDifficulty
	timerMs float64
}

// NewPipeManager creates a pipe manager with the given RNG seed.
func NewPipeManager(seed int64, cfg config.FlappyConfig, diff config.FlappyDifficulty) *PipeManager {
	pm := &PipeManager{
		pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
		diff:  diff,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes, the spawn timer, and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
	pm.timerMs = 0
}

// SetDifficulty switches the active preset for future spawns.
func (pm *PipeManager) SetDifficulty(diff config.FlappyDifficulty) {
	pm.diff = diff
}

// Update advances the pipe field by one tick: moves pipes left, scores
// pipes the bird has cleared, drops off-screen pipes, and spawns new
// ones on the wall-clock timer. Returns the number of pipes passed.
func (pm *PipeManager) Update(birdX, dtMs float64) int {
	width := pm.cfg.Pipes.Width

	for i := range pm.pipes {
		pm.pipes[i].X -= pm.cfg.Pipes.Speed
	}

	passed := 0
	for i := range pm.pipes {
		if !pm.pipes[i].Passed && pm.pipes[i].X+width < birdX {
			pm.pipes[i].Passed = true
			passed++
		}
	}

	// Drop pipes fully off the left edge
	alive := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+width > 0 {
			alive = append(alive, p)
		}
	}
	pm.pipes = alive

	pm.timerMs += dtMs
	interval := float64(pm.diff.SpawnIntervalMs)
	for interval > 0 && pm.timerMs >= interval {
		pm.timerMs -= interval
		pm.spawnPipe()
	}

	return passed
}

// spawnPipe creates a pipe at the right edge of the canvas. The gap's
// top edge lands uniformly between the edge margins.
func (pm *PipeManager) spawnPipe() {
	canvasH := pm.cfg.Canvas.Height
	margin := pm.cfg.Pipes.EdgeMargin
	gap := pm.diff.Gap

	span := canvasH - gap - 2*margin
	if span < 0 {
		span = 0
	}
	topHeight := margin + pm.rng.Float64()*span

	pm.pipes = append(pm.pipes, Pipe{
		X:         pm.cfg.Canvas.Width,
		TopHeight: topHeight,
		Gap:       gap,
	})
}

// Pipes returns the current pipe field.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests the bird's rectangle against every pipe segment.
func (pm *PipeManager) CheckCollision(bird core.RectF) bool {
	width := pm.cfg.Pipes.Width
	canvasH := pm.cfg.Canvas.Height
	for _, p := range pm.pipes {
		if bird.Intersects(p.TopRect(width)) || bird.Intersects(p.BottomRect(width, canvasH)) {
			return true
		}
	}
	return false
}
