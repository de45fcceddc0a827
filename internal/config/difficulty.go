package config

// DifficultyPreset names a difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyExtreme DifficultyPreset = "extreme"
)

// SnakePresets lists the presets the snake game accepts, in toggle order.
func SnakePresets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExtreme}
}

// FlappyPresets lists the presets the flappy game accepts, in toggle order.
func FlappyPresets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ValidPreset reports whether preset is in the given list.
func ValidPreset(preset DifficultyPreset, presets []DifficultyPreset) bool {
	for _, p := range presets {
		if p == preset {
			return true
		}
	}
	return false
}
