package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadehall/canvas-arcade/internal/config"
	"github.com/arcadehall/canvas-arcade/internal/core"
)

// GameSetup holds the user's pre-game choices.
type GameSetup struct {
	Difficulty config.DifficultyPreset
	Color      string // Snake body color; empty for games without one
}

// SetupModel lets users choose a difficulty preset and, for snake,
// a body color before the game starts.
type SetupModel struct {
	gameTitle     string
	presets       []config.DifficultyPreset
	colors        []string // Empty disables the color step
	cursor        int
	colorCursor   int
	inColorSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	setup         GameSetup
	choosing      bool
	quitting      bool
	back          bool
}

// NewSetupModel creates a setup model for the given game.
func NewSetupModel(gameTitle string, presets []config.DifficultyPreset, colors []string, width, height int) SetupModel {
	return SetupModel{
		gameTitle: gameTitle,
		presets:   presets,
		colors:    colors,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inColorSelect {
		return m.handleColorKey(action)
	}
	return m.handleDifficultyKey(action)
}

func (m SetupModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.setup.Difficulty = m.presets[m.cursor]
		if len(m.colors) > 0 {
			m.inColorSelect = true
			m.colorCursor = 0
			return m, nil
		}
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SetupModel) handleColorKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.colorCursor > 0 {
			m.colorCursor--
		}
	case MenuActionDown:
		if m.colorCursor < len(m.colors)-1 {
			m.colorCursor++
		}
	case MenuActionSelect:
		m.setup.Color = m.colors[m.colorCursor]
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.inColorSelect = false
	}

	return m, nil
}

// View renders the setup screens.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inColorSelect {
		return m.viewColorSelect()
	}
	return m.viewDifficultySelect()
}

func (m SetupModel) viewDifficultySelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.gameTitle), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, preset := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, preset), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SetupModel) viewColorSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT COLOR", m.width))
	b.WriteString("\n\n")

	for i, name := range m.colors {
		cursor := "  "
		if i == m.colorCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, name), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the setup, or nil if still choosing.
func (m SetupModel) Selected() *GameSetup {
	if m.choosing {
		return nil
	}
	return &m.setup
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunGameSetup runs the pre-game selector for the given game and returns
// the choices, or nil if the user backed out.
func RunGameSetup(gameID, gameTitle string, cfg core.RuntimeConfig) (*GameSetup, error) {
	var presets []config.DifficultyPreset
	var colors []string

	switch gameID {
	case "snake":
		presets = config.SnakePresets()
		colors = core.ColorNames()
	case "flappy":
		presets = config.FlappyPresets()
	default:
		presets = []config.DifficultyPreset{config.DifficultyNormal}
	}

	model := NewSetupModel(gameTitle, presets, colors, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
