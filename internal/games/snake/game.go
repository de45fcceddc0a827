// Package snake implements a grid-based snake game.
// The snake moves on a 20x20 grid with wrap-around edges, eats weighted
// food types, and dodges walls that appear as the score grows. The extreme
// difficulty replaces wrap-around with a lethal border.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/arcadehall/canvas-arcade/internal/config"
	"github.com/arcadehall/canvas-arcade/internal/core"
	"github.com/arcadehall/canvas-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// delta returns the per-move cell offset for the direction.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// isOpposite reports whether two directions cancel each other.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Game implements the snake game.
type Game struct {
	cfg    config.SnakeConfig
	preset config.DifficultyPreset
	diff   config.SnakeDifficulty
	rng    *rand.Rand
	tick   uint64

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move

	// Board state
	foods []Food
	walls []Point

	// Tick gating: a logical move fires when accumulated milliseconds
	// cross the difficulty's interval. Sub-threshold frames are discarded.
	accumMs   float64
	msPerTick float64

	score     int
	highScore int // Survives resets and difficulty changes
	color     core.Color

	gameOver bool
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// Package-level knobs set by the CLI before game creation (like the
// config-path pattern used for flappy).
var (
	configPath       string
	difficultyPreset string
	colorName        string
)

// SetConfigPath sets the config file path used by the next New.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by the next New.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetColor sets the snake color preference used by the next New.
func SetColor(name string) {
	colorName = name
}

// New creates a new snake game instance.
func New() *Game {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}

	preset := config.DifficultyPreset(difficultyPreset)
	if !config.ValidPreset(preset, config.SnakePresets()) {
		preset = config.DifficultyNormal
	}

	return &Game{
		cfg:    cfg,
		preset: preset,
		diff:   cfg.Difficulty(preset),
		color:  core.ParseColor(colorName),
	}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Difficulty returns the active difficulty preset.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.preset
}

// Reset initializes/restarts the game. High score and color survive.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.msPerTick = cfg.MillisPerTick()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.tick = 0
	g.score = 0
	g.accumMs = 0
	g.gameOver = false
	g.paused = false
	g.walls = nil
	g.foods = nil

	size := g.cfg.Grid.Size
	g.tooSmall = cfg.ScreenW < size+2 || cfg.ScreenH < size+4

	g.initSnake()
	g.spawnFood()
}

// initSnake places the snake in the center of the grid, facing right.
func (g *Game) initSnake() {
	size := g.cfg.Grid.Size
	length := core.Max(1, g.cfg.Grid.InitialLength)

	g.snake = make([]Point, 0, length)
	for i := 0; i < length; i++ {
		g.snake = append(g.snake, Point{X: size/2 - i, Y: size / 2})
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// setPreset switches difficulty at runtime. The whole board resets;
// the high score and color preference are preserved.
func (g *Game) setPreset(preset config.DifficultyPreset) {
	g.preset = preset
	g.diff = g.cfg.Difficulty(preset)
	g.Reset(core.RuntimeConfig{
		Seed:     g.rng.Int63(),
		ScreenW:  g.screenW,
		ScreenH:  g.screenH,
		TickRate: int(1000.0 / g.msPerTick),
	})
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Restart after game over
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(1000.0 / g.msPerTick),
		})
		return core.StepResult{State: g.State()}
	}

	// Runtime difficulty toggle
	for i, action := range core.DifficultyActions() {
		presets := config.SnakePresets()
		if i < len(presets) && input.Has(action) && presets[i] != g.preset {
			g.setPreset(presets[i])
			return core.StepResult{State: g.State()}
		}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Buffer direction input for the next move
	g.processInput(input)

	// Fixed-timestep gate: move only when enough wall-clock time passed
	g.accumMs += g.msPerTick
	interval := float64(g.diff.TickIntervalMs)
	for g.accumMs >= interval && !g.gameOver {
		g.accumMs -= interval
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// processInput handles direction changes. Reversals are ignored against
// the committed direction, not the buffered one, so an instant 180 is
// impossible regardless of input rate.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// advance performs one logical move of the snake.
func (g *Game) advance() {
	if len(g.snake) == 0 {
		return
	}

	size := g.cfg.Grid.Size
	head := g.snake[0]
	dx, dy := g.nextDir.delta()
	next := Point{X: head.X + dx, Y: head.Y + dy}

	if g.diff.BorderKills {
		// Border rows/columns are lethal walls; takes precedence over wrap.
		if next.X <= 0 || next.X >= size-1 || next.Y <= 0 || next.Y >= size-1 {
			g.terminate()
			return
		}
	} else {
		next.X = (next.X + size) % size
		next.Y = (next.Y + size) % size
	}

	if g.isSnakeAt(next) || g.isWallAt(next) {
		g.terminate()
		return
	}

	// Move: prepend new head
	g.snake = append([]Point{next}, g.snake...)

	prevScore := g.score
	if i := g.foodIndexAt(next); i >= 0 {
		g.score += g.foods[i].Points
		if g.score > g.highScore {
			g.highScore = g.score
		}
		g.foods = append(g.foods[:i], g.foods[i+1:]...)
		g.replenishFood()

		step := g.cfg.Walls.ScoreStep
		if !g.diff.BorderKills && step > 0 && g.score/step > prevScore/step {
			g.spawnWall()
		}
	} else {
		// No growth: tail moves on
		g.snake = g.snake[:len(g.snake)-1]
	}

	// Commit only after a successful move
	g.direction = g.nextDir
}

// terminate enters the game-over state.
func (g *Game) terminate() {
	g.gameOver = true
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// replenishFood tops the board up to the current target food count:
// one food below the multi threshold, then min(cap, score/threshold).
func (g *Game) replenishFood() {
	target := 1
	if threshold := g.cfg.Food.MultiThreshold; threshold > 0 && g.score >= threshold {
		target = core.Min(g.cfg.Food.MaxSimultaneous, g.score/threshold)
	}
	for len(g.foods) < target {
		if !g.spawnFood() {
			break
		}
	}
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// isWallAt checks if a wall occupies the given point.
func (g *Game) isWallAt(p Point) bool {
	for _, w := range g.walls {
		if w == p {
			return true
		}
	}
	return false
}

// foodIndexAt returns the index of the food at p, or -1.
func (g *Game) foodIndexAt(p Point) int {
	for i, f := range g.foods {
		if f.Pos == p {
			return i
		}
	}
	return -1
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

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	size := g.cfg.Grid.Size
	offX := (dst.Width() - size) / 2
	offY := 2 + core.Max(0, (dst.Height()-2-size)/2)

	// Board frame; in border-kill mode the outermost grid cells themselves
	// are the lethal wall, so they are drawn as wall cells instead.
	if g.diff.BorderKills {
		for i := 0; i < size; i++ {
			dst.SetCell(offX+i, offY, '#', core.ColorBrightRed)
			dst.SetCell(offX+i, offY+size-1, '#', core.ColorBrightRed)
			dst.SetCell(offX, offY+i, '#', core.ColorBrightRed)
			dst.SetCell(offX+size-1, offY+i, '#', core.ColorBrightRed)
		}
	} else {
		dst.DrawBox(core.NewRect(offX-1, offY-1, size+2, size+2))
	}

	for _, w := range g.walls {
		dst.SetCell(offX+w.X, offY+w.Y, '#', core.ColorGray)
	}

	for _, f := range g.foods {
		r, c := foodGlyph(f.Type)
		dst.SetCell(offX+f.Pos.X, offY+f.Pos.Y, r, c)
	}

	for i, seg := range g.snake {
		glyph := 'o'
		if i == 0 {
			glyph = 'O'
		}
		dst.SetCell(offX+seg.X, offY+seg.Y, glyph, g.color)
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Best: %d  Difficulty: %s (1-4 to change)",
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

// foodGlyph maps a food type to its display rune and color.
func foodGlyph(kind string) (rune, core.Color) {
	switch kind {
	case "apple":
		return '*', core.ColorBrightRed
	case "banana":
		return '&', core.ColorBrightYellow
	case "meat":
		return '%', core.ColorMagenta
	case "berry":
		return '+', core.ColorBrightBlue
	default:
		return '*', core.ColorWhite
	}
}
