package aquarium

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

// Snapshot is a detached copy of everything a renderer or HUD draws.
type Snapshot struct {
	Frame      uint64
	Clock      float64
	Player     PlayerView
	Predators  []PredatorView
	Food       []physics.Vec3
	Bubbles    []BubbleView
	Plants     []Plant
	Bubbler    physics.Vec2
	SafeZone   physics.Disc
	Difficulty Difficulty
	// FirstPerson is view state only; the simulation ignores it.
	FirstPerson bool
	Stats       StatsSnapshot
}

type PlayerView struct {
	Pos       physics.Vec3
	Yaw       float64
	Health    int
	MaxHealth int
	Dead      bool
	Cheat     bool
	InBunker  bool
}

type PredatorView struct {
	ID      uuid.UUID
	Pos     physics.Vec3
	Yaw     float64
	Color   Color
	Chasing bool
}

type BubbleView struct {
	Pos    physics.Vec3
	Radius float64
}

// Snapshot copies the world. Only the newest bubbles, up to the render
// window, are included.
func (w *World) Snapshot() Snapshot {
	p := w.Player
	s := Snapshot{
		Frame: w.Frame,
		Clock: w.Clock,
		Player: PlayerView{
			Pos:       p.Pos,
			Yaw:       p.Yaw,
			Health:    p.Health,
			MaxHealth: p.MaxHealth,
			Dead:      p.Dead,
			Cheat:     p.Cheat,
			InBunker:  w.InBunker(p.Pos),
		},
		Predators:  make([]PredatorView, len(w.Predators)),
		Food:       make([]physics.Vec3, len(w.Food)),
		Plants:     append([]Plant(nil), w.Plants...),
		Bubbler:    w.Bubbler,
		SafeZone:   w.SafeZone,
		Difficulty: w.Difficulty,
	}
	for i, pr := range w.Predators {
		s.Predators[i] = PredatorView{ID: pr.ID, Pos: pr.Pos, Yaw: pr.Facing, Color: pr.Color, Chasing: pr.Chasing}
	}
	for i, f := range w.Food {
		s.Food[i] = f.Position(w.Clock)
	}
	bubbles := w.Bubbles
	if window := w.Tuning.Bubbles.RenderWindow; window >= 0 && len(bubbles) > window {
		bubbles = bubbles[len(bubbles)-window:]
	}
	s.Bubbles = make([]BubbleView, len(bubbles))
	for i, b := range bubbles {
		s.Bubbles[i] = BubbleView{Pos: b.Pos, Radius: b.Radius}
	}
	return s
}

// HUD renders the text overlay lines.
func (s Snapshot) HUD() []string {
	lines := []string{
		fmt.Sprintf("Health: %d/%d", s.Player.Health, s.Player.MaxHealth),
		fmt.Sprintf("Difficulty: %s", s.Difficulty),
		fmt.Sprintf("Food eaten: %d", s.Stats.FoodEaten),
	}
	if s.Player.Cheat {
		lines = append(lines, "Cheat: ON")
	}
	if s.Player.InBunker {
		lines = append(lines, "Safe in bunker")
	}
	if s.Player.Dead {
		lines = append(lines, "You were eaten! Press R to restart")
	}
	return lines
}
