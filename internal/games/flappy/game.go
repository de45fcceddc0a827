// Package flappy implements a Flappy Bird-style game.
// The bird lives on a continuous 480x640 logical canvas and must navigate
// gaps in scrolling pipes. A flap sets the vertical velocity to a fixed
// upward impulse; gravity pulls it back every tick.
package flappy

import (
	"fmt"
	"math"

	"github.com/arcadehall/canvas-arcade/internal/config"
	"github.com/arcadehall/canvas-arcade/internal/core"
	"github.com/arcadehall/canvas-arcade/internal/registry"
)

// RotationFactor converts velocity into the bird's display tilt.
const RotationFactor = 0.1

// Visual characters for rendering
const (
	PipeChar   = '█'
	GroundChar = '═'
)

// Game implements the flappy game logic.
type Game struct {
	cfg    config.FlappyConfig
	preset config.DifficultyPreset
	diff   config.FlappyDifficulty
	pipes  *PipeManager
	tick   uint64

	// Bird state in canvas pixels. birdY is the top of the hitbox.
	birdY    float64
	birdVel  float64
	rotation float64 // Radians, clamped to [-pi/4, pi/2]

	score     int
	highScore int // Survives resets and difficulty changes

	started  bool // False while hovering on the start screen
	gameOver bool
	paused   bool
	tooSmall bool

	msPerTick float64
	screenW   int
	screenH   int
}

// Package-level knobs set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used by the next New.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by the next New.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new flappy game instance.
func New() *Game {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}

	preset := config.DifficultyPreset(difficultyPreset)
	if !config.ValidPreset(preset, config.FlappyPresets()) {
		preset = config.DifficultyNormal
	}

	return &Game{
		cfg:    cfg,
		preset: preset,
		diff:   cfg.Difficulty(preset),
	}
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Difficulty returns the active difficulty preset.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.preset
}

// Reset initializes/restarts the game. The high score survives. The bird
// starts centered and idle; physics begin on the first flap.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.msPerTick = cfg.MillisPerTick()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < 40 || cfg.ScreenH < 16

	g.tick = 0
	g.score = 0
	g.birdY = g.cfg.Canvas.Height / 2
	g.birdVel = 0
	g.rotation = 0
	g.started = false
	g.gameOver = false
	g.paused = false

	if g.pipes == nil {
		g.pipes = NewPipeManager(cfg.Seed, g.cfg, g.diff)
	} else {
		g.pipes.SetDifficulty(g.diff)
		g.pipes.Reset(cfg.Seed)
	}
}

// setPreset switches difficulty at runtime. The whole round resets;
// the high score is preserved.
func (g *Game) setPreset(preset config.DifficultyPreset) {
	g.preset = preset
	g.diff = g.cfg.Difficulty(preset)
	g.Reset(core.RuntimeConfig{
		Seed:     g.pipes.rng.Int63(),
		ScreenW:  g.screenW,
		ScreenH:  g.screenH,
		TickRate: int(1000.0 / g.msPerTick),
	})
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Runtime difficulty toggle
	for i, action := range core.DifficultyActions() {
		presets := config.FlappyPresets()
		if i < len(presets) && input.Has(action) && presets[i] != g.preset {
			g.setPreset(presets[i])
			return core.StepResult{State: g.State()}
		}
	}

	if g.gameOver {
		// Either restart key or a flap starts a fresh round
		if input.Has(core.ActionRestart) || input.Has(core.ActionJump) {
			g.Reset(core.RuntimeConfig{
				Seed:     g.pipes.rng.Int63(),
				ScreenW:  g.screenW,
				ScreenH:  g.screenH,
				TickRate: int(1000.0 / g.msPerTick),
			})
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.started {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// The bird hovers until the first flap
	if !g.started {
		if input.Has(core.ActionJump) {
			g.started = true
			g.birdVel = g.cfg.Bird.FlapStrength
		}
		return core.StepResult{State: g.State()}
	}

	// A flap replaces the velocity rather than adding to it, so mashing
	// the key cannot stack impulses.
	if input.Has(core.ActionJump) {
		g.birdVel = g.cfg.Bird.FlapStrength
	}

	// Position moves on the current velocity, then gravity accelerates it.
	// The tilt follows the post-gravity velocity.
	g.birdY += g.birdVel
	g.birdVel += g.diff.Gravity
	g.rotation = core.ClampF(g.birdVel*RotationFactor, -math.Pi/4, math.Pi/2)

	g.score += g.pipes.Update(g.cfg.Bird.X, g.msPerTick)
	if g.score > g.highScore {
		g.highScore = g.score
	}

	if g.birdY < 0 || g.birdY+g.cfg.Bird.Height > g.cfg.Canvas.Height {
		g.gameOver = true
	}

	if g.pipes.CheckCollision(g.birdRect()) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// birdRect returns the bird's collision rectangle in canvas pixels.
func (g *Game) birdRect() core.RectF {
	return core.NewRectF(g.cfg.Bird.X, g.birdY, g.cfg.Bird.Width, g.cfg.Bird.Height)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// --- Rendering ---

// Render draws the game, scaling the logical canvas to the screen cells
// below the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	fieldY := 2
	fieldH := dst.Height() - fieldY - 1
	scaleX := float64(dst.Width()) / g.cfg.Canvas.Width
	scaleY := float64(fieldH) / g.cfg.Canvas.Height

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar)

	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, p, fieldY, fieldH, scaleX, scaleY)
	}

	// Bird glyph follows the tilt: climbing, gliding, or diving
	glyph := '>'
	switch {
	case g.rotation < -0.2:
		glyph = '^'
	case g.rotation > 0.5:
		glyph = 'v'
	}
	bx := int(g.cfg.Bird.X * scaleX)
	by := fieldY + int(g.birdY*scaleY)
	dst.SetCell(bx, by, glyph, core.ColorBrightYellow)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Flap or R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case !g.started:
		g.renderOverlay(dst, "Flappy Bird", "Flap (space) to start")
	}
}

// drawPipe renders both segments of a pipe as screen columns.
func (g *Game) drawPipe(dst *core.Screen, p Pipe, fieldY, fieldH int, scaleX, scaleY float64) {
	x0 := int(p.X * scaleX)
	x1 := int((p.X + g.cfg.Pipes.Width) * scaleX)
	topH := int(p.TopHeight * scaleY)
	bottomY := int((p.TopHeight + p.Gap) * scaleY)

	for x := x0; x < x1; x++ {
		for y := 0; y < topH; y++ {
			dst.SetCell(x, fieldY+y, PipeChar, core.ColorGreen)
		}
		for y := bottomY; y < fieldH; y++ {
			dst.SetCell(x, fieldY+y, PipeChar, core.ColorGreen)
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Flappy | Score: %d  Best: %d  Difficulty: %s (1-3 to change)",
		g.score, g.highScore, g.preset)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
