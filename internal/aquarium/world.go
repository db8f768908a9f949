package aquarium

import (
	"math"

	"github.com/zeusync/fishtank/internal/core/events/bus"
	"github.com/zeusync/fishtank/internal/core/npc"
	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

const eventSource = "aquarium"

// World is the whole mutable state of one session. A reset builds a new
// World rather than editing this one.
type World struct {
	Tuning     Tuning
	Bounds     physics.Bounds
	Field      BubbleField
	SafeZone   physics.Disc
	Bubbler    physics.Vec2
	Difficulty Difficulty

	// Clock is simulation time in seconds; it only advances with ticks.
	Clock float64
	Frame uint64

	Player    *Player
	Predators []*Predator
	Food      []Food
	Plants    []Plant
	Bubbles   []Bubble

	LastFoodSpawn float64

	intent  Intent
	rng     Rand
	agents  []*npc.Agent
	pending []bus.Event
}

// NewWorld builds a fresh session. A nil brain falls back to DefaultBrain.
func NewWorld(t Tuning, d Difficulty, brain *Brain, rng Rand) *World {
	if brain == nil {
		brain = MustDefaultBrain()
	}
	w := &World{
		Tuning:        t,
		Bounds:        t.Bounds(),
		Field:         t.BubbleField(),
		SafeZone:      t.SafeDisc(),
		Bubbler:       t.BubblerAnchor(),
		Difficulty:    d,
		LastFoodSpawn: math.Inf(-1),
		rng:           rng,
	}
	w.Player = newPlayer(t.Player, w.Bounds)

	w.Predators = make([]*Predator, t.Predator.Count)
	w.agents = make([]*npc.Agent, t.Predator.Count)
	for i := range w.Predators {
		w.Predators[i] = newPredator(t, rng)
		w.agents[i] = brain.newAgent(w, w.Predators[i])
	}

	w.Plants = placePlants(t, rng)
	w.Food = make([]Food, 0, t.Food.Quota)
	w.seedBubbles()
	return w
}

// seedBubbles lays down the three initial batches with heights spread over
// the water column, so the streams do not start in lockstep.
func (w *World) seedBubbles() {
	bt := w.Tuning.Bubbles
	w.Bubbles = make([]Bubble, 0, bt.Cap)
	add := func(src Source) {
		if len(w.Bubbles) >= bt.Cap {
			return
		}
		z := uniform(w.rng, bt.RecycleZMin, w.Field.Ceiling)
		w.Bubbles = append(w.Bubbles, newBubble(src, z, w.Field, w.rng))
	}
	for range bt.InitialAmbient {
		add(AmbientSource())
	}
	for _, p := range w.Plants {
		for range bt.PerPlant {
			add(PlantSource(p.X, p.Y))
		}
	}
	for range bt.InitialBubbler {
		add(BubblerSource(w.Bubbler.X, w.Bubbler.Y))
	}
}

func (w *World) Preset() DifficultyPreset { return w.Tuning.Preset(w.Difficulty) }

// PlayerSafe reports whether the player is currently immune to damage.
func (w *World) PlayerSafe() bool {
	return w.Player.Cheat || w.InBunker(w.Player.Pos)
}

// InBunker is the safe-zone test for an arbitrary point.
func (w *World) InBunker(p physics.Vec3) bool {
	return w.SafeZone.Contains(p)
}

func (w *World) event(eventType string, data any) bus.Event {
	return bus.NewEvent(eventType, eventSource, w.Clock, data)
}

func (w *World) emit(eventType string, data any) {
	w.pending = append(w.pending, w.event(eventType, data))
}

// drainEvents hands over the events produced since the last call.
func (w *World) drainEvents() []bus.Event {
	out := w.pending
	w.pending = nil
	return out
}

func (w *World) stepPlayer(dt float64) {
	if w.Player.Dead {
		return
	}
	dx, dy, dz := w.intent.Axes()
	w.Player.Face(dx, dy)
	if dx != 0 || dy != 0 {
		w.Player.Move(dx, dy, dt, w.Bounds)
	}
	if dz != 0 {
		w.Player.MoveVertical(dz, dt, w.Bounds)
	}
}

func (w *World) separatePredators() {
	pt := w.Tuning.Predator
	Separate(w.Predators, pt.MinSeparation, pt.SeparationFloor, w.Bounds)
}

func (w *World) stepBubbles(dt float64) {
	for i := range w.Bubbles {
		w.Bubbles[i].Step(dt, w.Field, w.rng)
	}
}
