package aquarium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/fishtank/internal/core/events/bus"
	"github.com/zeusync/fishtank/internal/core/observability/log"
	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

const frame = 1.0 / 60

func newTestEngine(t *testing.T, mutate ...func(*Options)) *Engine {
	t.Helper()
	opts := DefaultOptions()
	opts.Seed = 42
	for _, m := range mutate {
		m(&opts)
	}
	e, err := NewEngine(opts, log.NewNop(), bus.New())
	require.NoError(t, err)
	return e
}

func TestNewEngineValidates(t *testing.T) {
	opts := DefaultOptions()
	opts.Tuning.MaxStep = 0
	_, err := NewEngine(opts, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidTuning)

	opts = DefaultOptions()
	opts.Difficulty = Difficulty(7)
	_, err = NewEngine(opts, nil, nil)
	assert.ErrorIs(t, err, ErrUnknownDifficulty)

	e, err := NewEngine(DefaultOptions(), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, e.Events())
}

func TestPhaseOrder(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, []string{
		PhasePlayer, PhasePredators, PhaseSeparation,
		PhaseFoodSpawn, PhaseFoodPickup, PhaseDamage,
		PhaseDeath, PhaseBubbles, PhaseBubbleSpawn,
	}, e.phases.GetExecutionOrder())
}

func TestTickAdvancesClock(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Tick(frame, Intent{}))
	w := e.World()
	assert.InDelta(t, frame, w.Clock, 1e-12)
	assert.Equal(t, uint64(1), w.Frame)

	require.NoError(t, e.Tick(1.5, Intent{}))
	assert.InDelta(t, frame+e.tuning.MaxStep, w.Clock, 1e-12, "dt is clamped")

	require.NoError(t, e.Tick(-3, Intent{}))
	assert.InDelta(t, frame+e.tuning.MaxStep, w.Clock, 1e-12, "negative dt is treated as zero")
	assert.Equal(t, uint64(3), w.Frame)

	m, ok := e.PhaseMetrics(PhaseBubbles)
	require.True(t, ok)
	assert.Equal(t, uint64(3), m.ExecutionCount)
}

func TestTickMovesPlayer(t *testing.T) {
	e := newTestEngine(t)
	w := e.World()
	w.Player.Cheat = true
	start := w.Player.Pos

	require.NoError(t, e.Tick(0.05, Intent{Right: true, Up: true}))
	assert.InDelta(t, start.X+w.Player.Speed*0.05, w.Player.Pos.X, 1e-9)
	assert.InDelta(t, start.Z+w.Player.VerticalSpeed*0.05, w.Player.Pos.Z, 1e-9)
	assert.InDelta(t, 90, w.Player.Yaw, 1e-9)

	require.NoError(t, e.Tick(0.05, Intent{}))
	assert.InDelta(t, 90, w.Player.Yaw, 1e-9)
}

func TestClampingInvariantUnderLoad(t *testing.T) {
	e := newTestEngine(t, func(o *Options) { o.Difficulty = Hard })
	w := e.World()
	w.Player.Cheat = true
	rng := NewRand(99)

	for range 3000 {
		in := Intent{
			Forward: chance(rng, 0.5), Back: chance(rng, 0.3),
			Left: chance(rng, 0.4), Right: chance(rng, 0.4),
			Up: chance(rng, 0.3), Down: chance(rng, 0.3),
		}
		require.NoError(t, e.Tick(uniform(rng, 0, 0.08), in))

		require.True(t, w.Bounds.Contains(w.Player.Pos), "player out of bounds: %+v", w.Player.Pos)
		for _, p := range w.Predators {
			require.True(t, w.Bounds.Contains(p.Pos), "predator out of bounds: %+v", p.Pos)
		}
		require.LessOrEqual(t, len(w.Bubbles), w.Tuning.Bubbles.Cap)
		require.LessOrEqual(t, len(w.Food), w.Tuning.Food.Quota)
	}
}

func TestCheatSurvivesChase(t *testing.T) {
	e := newTestEngine(t)
	w := e.World()
	keepPredators(w, 1)
	w.Player.Cheat = true
	w.Player.Pos = physics.Vec3{Z: 100}
	pr := w.Predators[0]
	pr.Pos = physics.Vec3{X: w.Preset().AggroRange / 2, Z: 100}

	for range 600 {
		require.NoError(t, e.Tick(frame, Intent{}))
		require.Equal(t, w.Player.MaxHealth, w.Player.Health)
	}
	assert.True(t, pr.Chasing)
	assert.Less(t, physics.PlanarDistance(pr.Pos, w.Player.Pos), w.Preset().AggroRange/2)
	assert.Zero(t, e.Stats().HitsTaken)
}

func TestFoodPickedUpOnNextTick(t *testing.T) {
	e := newTestEngine(t)
	w := e.World()
	w.Player.Cheat = true
	w.Player.Health = 50
	w.Food = []Food{stillFood(physics.Vec3{
		X: w.Player.Pos.X + w.Player.Size/2 + w.Tuning.Food.Size - 0.5,
		Y: w.Player.Pos.Y,
		Z: w.Player.Pos.Z,
	}, w.Tuning.Food.Size)}
	w.LastFoodSpawn = 0
	eaten := 0
	_, err := e.Events().Subscribe(EventFoodEaten, func(bus.Event) error {
		eaten++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, e.Tick(frame, Intent{}))
	assert.Empty(t, w.Food)
	assert.Equal(t, 50+w.Tuning.Food.Reward, w.Player.Health)
	assert.Equal(t, 1, eaten)
	assert.Equal(t, 1, e.Stats().FoodEaten)
}

func TestDeathFreezesWorld(t *testing.T) {
	e := newTestEngine(t)
	w := e.World()
	keepPredators(w, 1)
	w.Player.Health = 5
	w.Predators[0].Pos = w.Player.Pos

	require.NoError(t, e.Tick(frame, Intent{}))
	require.True(t, w.Player.Dead)
	assert.Equal(t, 0, w.Player.Health)

	pos, clock, frameNo := w.Player.Pos, w.Clock, w.Frame
	bubble := w.Bubbles[0].Pos
	for range 50 {
		require.NoError(t, e.Tick(frame, Intent{Forward: true, Up: true}))
	}
	assert.Equal(t, pos, w.Player.Pos)
	assert.Equal(t, 0, w.Player.Health)
	assert.True(t, w.Player.Dead)
	assert.Equal(t, clock, w.Clock)
	assert.Equal(t, frameNo, w.Frame)
	assert.Equal(t, bubble, w.Bubbles[0].Pos)

	stats := e.Stats()
	assert.Equal(t, 1, stats.Deaths)
	assert.Equal(t, 1, stats.HitsTaken)
	assert.InDelta(t, frame, stats.SurvivedFor, 1e-12)
	assert.Contains(t, e.Snapshot().HUD(), "You were eaten! Press R to restart")
}

func TestResetSwapsWorld(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.SetDifficulty(Hard))
	e.ToggleCheat()
	old := e.World()
	old.Player.Health = 0
	require.NoError(t, e.Tick(frame, Intent{}))
	require.True(t, old.Player.Dead)

	e.Reset()
	w := e.World()
	assert.NotSame(t, old, w)
	assert.True(t, old.Player.Dead, "previous world is left untouched")
	assert.False(t, w.Player.Dead)
	assert.False(t, w.Player.Cheat)
	assert.Equal(t, w.Player.MaxHealth, w.Player.Health)
	assert.Zero(t, w.Clock)
	assert.Equal(t, Hard, w.Difficulty, "difficulty survives reset")
	assert.Equal(t, Hard, e.Difficulty())

	stats := e.Stats()
	assert.Equal(t, 1, stats.Resets)
	assert.Zero(t, stats.Deaths)

	require.NoError(t, e.Tick(frame, Intent{}))
	assert.Equal(t, uint64(1), w.Frame)
}

func TestSetDifficulty(t *testing.T) {
	e := newTestEngine(t)
	var changes []DifficultyChanged
	_, err := e.Events().Subscribe(EventDifficultyChanged, func(ev bus.Event) error {
		changes = append(changes, ev.Data().(DifficultyChanged))
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, e.SetDifficulty(Medium))
	require.NoError(t, e.SetDifficulty(Medium))
	assert.ErrorIs(t, e.SetDifficulty(Difficulty(5)), ErrUnknownDifficulty)

	assert.Equal(t, Medium, e.World().Difficulty)
	assert.Equal(t, []DifficultyChanged{{From: Easy, To: Medium}}, changes)
}

func TestToggles(t *testing.T) {
	e := newTestEngine(t)

	assert.True(t, e.ToggleCheat())
	assert.True(t, e.World().Player.Cheat)
	assert.False(t, e.ToggleCheat())

	assert.True(t, e.ToggleFirstPerson())
	assert.True(t, e.Snapshot().FirstPerson)
	assert.False(t, e.ToggleFirstPerson())
	assert.False(t, e.Snapshot().FirstPerson)
}

func TestSeededEnginesReplay(t *testing.T) {
	a := newTestEngine(t)
	b := newTestEngine(t)
	rng := NewRand(1)

	for range 500 {
		in := Intent{Forward: chance(rng, 0.6), Left: chance(rng, 0.3), Up: chance(rng, 0.2)}
		require.NoError(t, a.Tick(frame, in))
		require.NoError(t, b.Tick(frame, in))
	}

	wa, wb := a.World(), b.World()
	assert.Equal(t, wa.Player, wb.Player)
	assert.Equal(t, wa.Food, wb.Food)
	assert.Equal(t, wa.Bubbles, wb.Bubbles)
	require.Len(t, wb.Predators, len(wa.Predators))
	for i := range wa.Predators {
		assert.Equal(t, wa.Predators[i].Pos, wb.Predators[i].Pos)
	}
}

func TestSnapshot(t *testing.T) {
	e := newTestEngine(t, func(o *Options) {
		o.Tuning.Bubbles.RenderWindow = 10
	})
	w := e.World()
	w.Food = []Food{{X: 1, Y: 2, BaseZ: 90}}

	s := e.Snapshot()
	assert.Equal(t, w.Frame, s.Frame)
	assert.Equal(t, Easy, s.Difficulty)
	require.Len(t, s.Bubbles, 10)
	last := w.Bubbles[len(w.Bubbles)-1]
	assert.Equal(t, BubbleView{Pos: last.Pos, Radius: last.Radius}, s.Bubbles[9])
	assert.Equal(t, []physics.Vec3{{X: 1, Y: 2, Z: 90}}, s.Food)
	require.Len(t, s.Predators, len(w.Predators))
	assert.Equal(t, w.Predators[0].ID, s.Predators[0].ID)

	w.Food[0].X = 50
	assert.Equal(t, 1.0, s.Food[0].X, "snapshot is detached")

	hud := s.HUD()
	assert.Contains(t, hud, "Health: 100/100")
	assert.Contains(t, hud, "Difficulty: EASY")
	assert.NotContains(t, hud, "Cheat: ON")
}
