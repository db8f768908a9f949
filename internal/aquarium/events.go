package aquarium

import (
	"github.com/google/uuid"

	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

// Event types published on the engine's bus.
const (
	EventFoodEaten         = "food.eaten"
	EventPlayerDamaged     = "player.damaged"
	EventPlayerDied        = "player.died"
	EventWorldReset        = "world.reset"
	EventDifficultyChanged = "difficulty.changed"
	EventCheatToggled      = "cheat.toggled"
)

type FoodEaten struct {
	Pos    physics.Vec3
	Health int
}

type PlayerDamaged struct {
	PredatorID uuid.UUID
	Amount     int
	Health     int
}

type PlayerDied struct {
	Pos         physics.Vec3
	SurvivedFor float64
}

type DifficultyChanged struct {
	From, To Difficulty
}

type CheatToggled struct {
	Enabled bool
}
