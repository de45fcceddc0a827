package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadehall/canvas-arcade/internal/core"
	"github.com/arcadehall/canvas-arcade/internal/games/flappy"
	"github.com/arcadehall/canvas-arcade/internal/games/snake"
	"github.com/arcadehall/canvas-arcade/internal/platform/tui"
	"github.com/arcadehall/canvas-arcade/internal/registry"
	"github.com/arcadehall/canvas-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagColor      string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Steer the snake
  Space       - Flap
  1-4         - Switch difficulty mid-game
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty presets:
  snake  - easy, normal, hard, extreme (lethal border)
  flappy - easy, normal, hard

When no --difficulty is given, an interactive selector is shown.

Examples:
  arcade play snake
  arcade play snake --difficulty extreme --color cyan
  arcade play flappy --difficulty hard
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (shows selector if omitted)")
	playCmd.Flags().StringVar(&flagColor, "color", "", "Snake color: green, cyan, yellow, magenta, red, blue, orange, white")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the setup selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if !applyGameSetup(gameID, cfg) {
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameSetup wires CLI flags into the game's package knobs, showing
// the interactive selector when no difficulty was given. Returns false
// if the user backed out.
func applyGameSetup(gameID string, cfg core.RuntimeConfig) bool {
	difficulty := flagDifficulty
	color := flagColor

	if difficulty == "" {
		game, err := registry.Create(gameID)
		if err != nil {
			return false
		}

		setup, setupErr := tui.RunGameSetup(gameID, game.Title(), cfg)
		if setupErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", setupErr)
			os.Exit(1)
		}
		if setup == nil {
			return false // User backed out
		}

		difficulty = string(setup.Difficulty)
		if color == "" {
			color = setup.Color
		}
	}

	switch gameID {
	case "snake":
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(difficulty)
		snake.SetColor(color)
	case "flappy":
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(difficulty)
	}

	return true
}
