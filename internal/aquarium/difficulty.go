package aquarium

import (
	"fmt"
	"strings"
)

// Difficulty selects one of the tuning's presets.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
	difficultyCount
)

func (d Difficulty) Valid() bool { return d < difficultyCount }

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	default:
		return fmt.Sprintf("Difficulty(%d)", uint8(d))
	}
}

// ParseDifficulty accepts names (any case) or the 1-based key numbers used by
// the keyboard binding.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// Preset returns the tuning values for the difficulty.
func (t Tuning) Preset(d Difficulty) DifficultyPreset {
	if !d.Valid() || int(d) >= len(t.Difficulty) {
		return t.Difficulty[Easy]
	}
	return t.Difficulty[d]
}
