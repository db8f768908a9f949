package aquarium

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/zeusync/fishtank/internal/core/events/bus"
	"github.com/zeusync/fishtank/internal/core/observability/log"
	"github.com/zeusync/fishtank/internal/core/systems"
)

// Tick phases, in execution order.
const (
	PhasePlayer      = "player"
	PhasePredators   = "predators"
	PhaseSeparation  = "separation"
	PhaseFoodSpawn   = "food-spawn"
	PhaseFoodPickup  = "food-pickup"
	PhaseDamage      = "damage"
	PhaseDeath       = "death"
	PhaseBubbles     = "bubbles"
	PhaseBubbleSpawn = "bubble-spawn"
)

// Options configure an Engine.
type Options struct {
	Tuning     Tuning
	Seed       uint64
	Difficulty Difficulty
	// Brain drives the predators; nil selects DefaultBrain.
	Brain *Brain
}

func DefaultOptions() Options {
	return Options{Tuning: DefaultTuning(), Seed: 1, Difficulty: Easy}
}

// Engine owns the current World and advances it one tick at a time. It is
// driven from a single goroutine; readers on other goroutines only go
// through World and Snapshot, which see either the old or the new world
// across a Reset, never a mix.
type Engine struct {
	world atomic.Pointer[World]

	tuning      Tuning
	brain       *Brain
	rng         Rand
	difficulty  Difficulty
	firstPerson atomic.Bool

	phases *systems.Manager[*World]
	events bus.EventBus
	stats  *Stats
	logger log.Log
}

func NewEngine(opts Options, logger log.Log, events bus.EventBus) (*Engine, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}
	if !opts.Difficulty.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, opts.Difficulty)
	}
	if logger == nil {
		logger = log.NewNop()
	}
	if events == nil {
		events = bus.New()
	}
	brain := opts.Brain
	if brain == nil {
		var err error
		if brain, err = DefaultBrain(); err != nil {
			return nil, err
		}
	}
	stats, err := NewStats(events)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		tuning:     opts.Tuning,
		brain:      brain,
		rng:        NewRand(opts.Seed),
		difficulty: opts.Difficulty,
		phases:     newPhases(),
		events:     events,
		stats:      stats,
		logger:     logger.Named("aquarium"),
	}
	e.world.Store(NewWorld(e.tuning, e.difficulty, e.brain, e.rng))
	e.logger.Info("engine ready",
		log.Uint64("seed", opts.Seed),
		log.String("difficulty", e.difficulty.String()),
		log.Int("predators", opts.Tuning.Predator.Count),
	)
	return e, nil
}

func newPhases() *systems.Manager[*World] {
	m := systems.NewManager[*World]()
	m.MustRegister(
		systems.NewFunc(PhasePlayer, func(dt float64, w *World) error {
			w.stepPlayer(dt)
			return nil
		}),
		systems.NewFunc(PhasePredators, func(dt float64, w *World) error {
			return w.stepPredators(dt)
		}),
		systems.NewFunc(PhaseSeparation, func(_ float64, w *World) error {
			w.separatePredators()
			return nil
		}),
		systems.NewFunc(PhaseFoodSpawn, func(_ float64, w *World) error {
			w.spawnFood()
			return nil
		}),
		systems.NewFunc(PhaseFoodPickup, func(_ float64, w *World) error {
			w.pickupFood()
			return nil
		}),
		systems.NewFunc(PhaseDamage, func(_ float64, w *World) error {
			w.resolveDamage()
			return nil
		}),
		systems.NewFunc(PhaseDeath, func(_ float64, w *World) error {
			w.resolveDeath()
			return nil
		}),
		systems.NewFunc(PhaseBubbles, func(dt float64, w *World) error {
			w.stepBubbles(dt)
			return nil
		}),
		systems.NewFunc(PhaseBubbleSpawn, func(_ float64, w *World) error {
			w.spawnBubbles()
			return nil
		}),
	)
	return m
}

// Tick advances the world by dt seconds, clamped to the tuning's MaxStep.
// While the player is dead the world is frozen and Tick does nothing.
func (e *Engine) Tick(dt float64, in Intent) error {
	w := e.world.Load()
	if w.Player.Dead {
		return nil
	}
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	dt = min(dt, e.tuning.MaxStep)

	w.Clock += dt
	w.Frame++
	w.intent = in

	err := e.phases.Update(dt, w)
	if err != nil {
		e.logger.Error("tick failed", log.Uint64("frame", w.Frame), log.Error(err))
	}
	if perr := e.publish(w.drainEvents()); perr != nil {
		e.logger.Warn("event delivery failed", log.Error(perr))
	}
	return err
}

func (e *Engine) publish(events []bus.Event) error {
	for _, ev := range events {
		switch d := ev.Data().(type) {
		case PlayerDamaged:
			e.logger.Debug("player damaged", log.Int("health", d.Health), log.String("predator", d.PredatorID.String()))
		case PlayerDied:
			e.logger.Info("player died", log.Float64("survived_for", d.SurvivedFor))
		case FoodEaten:
			e.logger.Debug("food eaten", log.Int("health", d.Health))
		}
	}
	return e.events.PublishBatch(events...)
}

// Reset discards the session and starts a new one with the current
// difficulty. The new world is built completely before it is swapped in.
func (e *Engine) Reset() {
	next := NewWorld(e.tuning, e.difficulty, e.brain, e.rng)
	prev := e.world.Swap(next)
	e.logger.Info("world reset", log.Uint64("previous_frames", prev.Frame))
	if err := e.events.Publish(next.event(EventWorldReset, nil)); err != nil {
		e.logger.Warn("event delivery failed", log.Error(err))
	}
}

// SetDifficulty switches preset immediately and keeps it across resets.
func (e *Engine) SetDifficulty(d Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDifficulty, d)
	}
	w := e.world.Load()
	prev := e.difficulty
	e.difficulty = d
	w.Difficulty = d
	if prev == d {
		return nil
	}
	e.logger.Info("difficulty changed", log.String("from", prev.String()), log.String("to", d.String()))
	return e.events.Publish(w.event(EventDifficultyChanged, DifficultyChanged{From: prev, To: d}))
}

// ToggleCheat flips the player's invulnerability and returns the new state.
func (e *Engine) ToggleCheat() bool {
	w := e.world.Load()
	w.Player.Cheat = !w.Player.Cheat
	e.logger.Info("cheat toggled", log.Bool("enabled", w.Player.Cheat))
	if err := e.events.Publish(w.event(EventCheatToggled, CheatToggled{Enabled: w.Player.Cheat})); err != nil {
		e.logger.Warn("event delivery failed", log.Error(err))
	}
	return w.Player.Cheat
}

// ToggleFirstPerson flips the camera mode reported in snapshots.
func (e *Engine) ToggleFirstPerson() bool {
	for {
		cur := e.firstPerson.Load()
		if e.firstPerson.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

func (e *Engine) Difficulty() Difficulty { return e.difficulty }

// World returns the current world. Callers must treat it as read-only.
func (e *Engine) World() *World { return e.world.Load() }

func (e *Engine) Snapshot() Snapshot {
	s := e.world.Load().Snapshot()
	s.FirstPerson = e.firstPerson.Load()
	s.Stats = e.stats.Snapshot()
	return s
}

func (e *Engine) Events() bus.EventBus { return e.events }

func (e *Engine) Stats() StatsSnapshot { return e.stats.Snapshot() }

// PhaseMetrics exposes timing for one tick phase.
func (e *Engine) PhaseMetrics(name string) (systems.Metrics, bool) {
	return e.phases.GetSystemMetrics(name)
}
