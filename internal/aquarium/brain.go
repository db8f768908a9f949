package aquarium

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/zeusync/fishtank/internal/core/npc"
)

// Blackboard keys shared by the predator brain and the world.
const (
	keySelf        = "self"
	keyWorld       = "world"
	keySelfPos     = "self.pos"
	keyPlayerPos   = "player.pos"
	keyAggroRadius = "aggro.radius"
)

// defaultBrainYAML chases the player inside the aggression radius and
// wanders otherwise.
const defaultBrainYAML = `
root: Predator
nodes:
  Predator:
    type: Selector
    children: [Hunt, Roam]
  Hunt:
    type: Sequence
    children: [PlayerClose, Chase]
  PlayerClose:
    type: Condition
    condition: LessOrEqual
    params: {left: player.distance, right: aggro.radius}
  Chase:
    type: Action
    action: ChasePlayer
  Roam:
    type: Action
    action: Wander
sensors:
  - name: player-distance
    type: PlanarDistance
    params: {src: self.pos, dst: player.pos, out: player.distance}
`

// Brain is a predator decision tree shared by every predator of a session.
type Brain struct {
	tree    npc.DecisionTree
	sensors []npc.Sensor
}

// NewBrain builds a brain from a YAML behavior document. Besides the npc
// builtins, documents may use the ChasePlayer and Wander actions.
func NewBrain(r io.Reader) (*Brain, error) {
	cfg, err := npc.LoadYAML(r)
	if err != nil {
		return nil, err
	}
	reg := npc.NewRegistry()
	npc.RegisterBuiltins(reg)
	registerPredatorActions(reg)
	tree, sensors, err := cfg.Build(reg)
	if err != nil {
		return nil, fmt.Errorf("build predator brain: %w", err)
	}
	return &Brain{tree: tree, sensors: sensors}, nil
}

var (
	defaultBrain     *Brain
	defaultBrainErr  error
	defaultBrainOnce sync.Once
)

// DefaultBrain returns the built-in chase-or-wander brain.
func DefaultBrain() (*Brain, error) {
	defaultBrainOnce.Do(func() {
		defaultBrain, defaultBrainErr = NewBrain(strings.NewReader(defaultBrainYAML))
	})
	return defaultBrain, defaultBrainErr
}

func MustDefaultBrain() *Brain {
	b, err := DefaultBrain()
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Brain) newAgent(w *World, p *Predator) *npc.Agent {
	bb := npc.NewBlackboard()
	bb.Set(keySelf, p)
	bb.Set(keyWorld, w)
	return npc.NewAgent(bb, b.tree, b.sensors)
}

func registerPredatorActions(reg npc.Registry) {
	reg.RegisterAction("ChasePlayer", func(map[string]any) (npc.Action, error) {
		return npc.NewAction("ChasePlayer", func(t npc.TickContext) (npc.Status, error) {
			w, p, err := actors(t.BB)
			if err != nil {
				return npc.StatusFailure, err
			}
			p.Chase(w.Player.Pos, t.DT, w.Preset().SpeedScale, w.Tuning.Predator, w.Bounds)
			return npc.StatusSuccess, nil
		}), nil
	})
	reg.RegisterAction("Wander", func(map[string]any) (npc.Action, error) {
		return npc.NewAction("Wander", func(t npc.TickContext) (npc.Status, error) {
			w, p, err := actors(t.BB)
			if err != nil {
				return npc.StatusFailure, err
			}
			p.Wander(t.DT, w.Tuning.Predator, w.rng, w.Bounds)
			return npc.StatusSuccess, nil
		}), nil
	})
}

func actors(bb npc.Blackboard) (*World, *Predator, error) {
	w, err := npc.Lookup[*World](bb, keyWorld)
	if err != nil {
		return nil, nil, err
	}
	p, err := npc.Lookup[*Predator](bb, keySelf)
	if err != nil {
		return nil, nil, err
	}
	return w, p, nil
}

// stepPredators refreshes each predator's blackboard and ticks its brain.
func (w *World) stepPredators(dt float64) error {
	radius := w.Preset().AggroRange
	for i, p := range w.Predators {
		a := w.agents[i]
		bb := a.Blackboard()
		bb.Set(keySelfPos, p.Pos)
		bb.Set(keyPlayerPos, w.Player.Pos)
		bb.Set(keyAggroRadius, radius)
		if _, err := a.Step(dt); err != nil {
			return fmt.Errorf("predator %d: %w", i, err)
		}
	}
	return nil
}
