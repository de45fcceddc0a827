package flappy

import (
	"math"
	"testing"

	"github.com/arcadehall/canvas-arcade/internal/config"
	"github.com/arcadehall/canvas-arcade/internal/core"
)

// newTestGame builds a game from defaults. TickRate 10 gives a 100ms
// platform tick, which makes the wall-clock spawn timer easy to count.
func newTestGame(t *testing.T, preset config.DifficultyPreset, seed int64) *Game {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	g := &Game{
		cfg:    cfg,
		preset: preset,
		diff:   cfg.Difficulty(preset),
	}
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 30, TickRate: 10})
	return g
}

func flap() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestIdleUntilFirstFlap(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)

	startY := g.birdY
	input := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if g.birdY != startY || g.birdVel != 0 {
		t.Error("bird should hover motionless before the first flap")
	}
	if g.Snapshot().State != StateIdle {
		t.Errorf("state = %s, expected idle", g.Snapshot().State)
	}

	g.Step(flap())
	if !g.started {
		t.Fatal("flap should start the game")
	}
	if g.birdVel != g.cfg.Bird.FlapStrength {
		t.Errorf("velocity = %v, expected flap strength %v", g.birdVel, g.cfg.Bird.FlapStrength)
	}
}

func TestIntegrationOrder(t *testing.T) {
	// Position moves on the pre-gravity velocity: from rest the bird
	// stays put for one tick while its velocity becomes one gravity unit.
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.started = true

	g.Step(core.NewInputFrame())

	if g.birdY != 320 {
		t.Errorf("y = %v, expected 320 (position uses pre-gravity velocity)", g.birdY)
	}
	if g.birdVel != 0.4 {
		t.Errorf("velocity = %v, expected 0.4", g.birdVel)
	}
	if math.Abs(g.rotation-0.04) > 1e-9 {
		t.Errorf("rotation = %v, expected 0.04", g.rotation)
	}
}

func TestFlapReplacesVelocity(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.started = true
	g.birdVel = 5.0

	g.Step(flap())
	// Flap overwrote the fall, then gravity added one unit
	want := g.cfg.Bird.FlapStrength + g.diff.Gravity
	if g.birdVel != want {
		t.Errorf("velocity = %v, expected %v", g.birdVel, want)
	}

	// Mashing does not stack impulses: a second flap lands on the same value
	g.Step(flap())
	if g.birdVel != want {
		t.Errorf("velocity after second flap = %v, expected %v", g.birdVel, want)
	}
}

func TestRotationClamped(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.started = true

	g.birdVel = 100 // Diving far beyond the clamp
	g.birdY = 100   // Keep clear of the floor for this tick
	g.Step(core.NewInputFrame())
	if g.rotation != math.Pi/2 {
		t.Errorf("rotation = %v, expected clamp at pi/2", g.rotation)
	}
}

func TestCeilingIsTerminal(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.started = true
	g.birdY = 3
	g.birdVel = -7

	g.Step(core.NewInputFrame())

	if !g.gameOver {
		t.Error("crossing the top edge should be terminal")
	}
}

func TestFloorIsTerminal(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.started = true
	g.birdY = 630
	g.birdVel = 5

	g.Step(core.NewInputFrame())

	if !g.gameOver {
		t.Error("crossing the bottom edge should be terminal")
	}
}

func TestPipeScoresExactlyOnce(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.started = true
	// A pipe whose gap spans the whole canvas cannot collide; it sits
	// just right of the scoring line and crosses it on the first move.
	g.pipes.pipes = []Pipe{{X: 22, TopHeight: 0, Gap: g.cfg.Canvas.Height}}

	g.Step(core.NewInputFrame())
	if g.score != 1 {
		t.Fatalf("score = %d, expected 1 after clearing the pipe", g.score)
	}

	g.Step(core.NewInputFrame())
	if g.score != 1 {
		t.Errorf("score = %d, a pipe must score only once", g.score)
	}
}

func TestPipeRemovedOffScreen(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.started = true
	g.pipes.pipes = []Pipe{{X: -58, TopHeight: 0, Gap: g.cfg.Canvas.Height, Passed: true}}

	g.Step(core.NewInputFrame())

	if len(g.pipes.Pipes()) != 0 {
		t.Error("pipe fully left of the canvas should be dropped")
	}
}

func TestPipeCollisionIsTerminal(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.started = true
	g.pipes.pipes = []Pipe{{X: 83, TopHeight: 400, Gap: 150}}

	g.Step(core.NewInputFrame())

	if !g.gameOver {
		t.Error("overlapping a pipe segment should be terminal")
	}
}

func TestEdgeContactIsTerminal(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.started = true
	// After one 3px move the pipe's left edge lands exactly on the
	// bird's right edge (80 + 34 = 114). Touching counts.
	g.pipes.pipes = []Pipe{{X: 117, TopHeight: 400, Gap: 150}}

	g.Step(core.NewInputFrame())

	if !g.gameOver {
		t.Error("edge contact with a pipe should be terminal")
	}
}

func TestSpawnTimer(t *testing.T) {
	// Normal difficulty spawns every 1500ms; at 100ms per tick the first
	// pipe appears on tick 15.
	g := newTestGame(t, config.DifficultyNormal, 5)
	g.started = true

	input := core.NewInputFrame()
	for i := 0; i < 14; i++ {
		g.Step(input)
	}
	if n := len(g.pipes.Pipes()); n != 0 {
		t.Fatalf("pipe count = %d before the spawn interval elapsed", n)
	}

	g.Step(input)
	pipes := g.pipes.Pipes()
	if len(pipes) != 1 {
		t.Fatalf("pipe count = %d, expected 1 after 1500ms", len(pipes))
	}

	// The gap must respect the edge margins
	p := pipes[0]
	margin := g.cfg.Pipes.EdgeMargin
	maxTop := g.cfg.Canvas.Height - g.diff.Gap - margin
	if p.TopHeight < margin || p.TopHeight > maxTop {
		t.Errorf("top height %v outside [%v, %v]", p.TopHeight, margin, maxTop)
	}
	if p.Gap != g.diff.Gap {
		t.Errorf("gap = %v, expected preset gap %v", p.Gap, g.diff.Gap)
	}
}

func TestPauseFreezesPhysics(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.Step(flap())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.paused {
		t.Fatal("game should be paused")
	}

	y, v := g.birdY, g.birdVel
	input := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if g.birdY != y || g.birdVel != v {
		t.Error("physics should not advance while paused")
	}
}

func TestFlapRestartsAfterGameOver(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.score = 9
	g.highScore = 9
	g.gameOver = true

	g.Step(flap())

	snap := g.Snapshot()
	if snap.State != StateIdle {
		t.Errorf("state = %s, expected idle after restart", snap.State)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0 after restart", snap.Score)
	}
	if snap.HighScore != 9 {
		t.Errorf("high score = %d, expected 9 preserved", snap.HighScore)
	}
}

func TestDifficultySwitchPreservesHighScore(t *testing.T) {
	g := newTestGame(t, config.DifficultyNormal, 1)
	g.score = 4
	g.highScore = 4

	input := core.NewInputFrame()
	input.Set(core.ActionDifficulty3) // hard
	g.Step(input)

	if g.preset != config.DifficultyHard {
		t.Fatalf("preset = %s, expected hard", g.preset)
	}
	if g.diff.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected 0.5 on hard", g.diff.Gravity)
	}
	if g.score != 0 || g.highScore != 4 {
		t.Errorf("score/high = %d/%d, expected 0/4", g.score, g.highScore)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, config.DifficultyNormal, 777)
		input := core.NewInputFrame()
		for i := 0; i < 300; i++ {
			input.Clear()
			if i%5 == 0 {
				input.Set(core.ActionJump)
			}
			g.Step(input)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1 != snap2 {
		t.Errorf("same seed and inputs should produce identical snapshots:\n%+v\n%+v", snap1, snap2)
	}
}
