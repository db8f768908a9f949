package npc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

const guardTree = `
root: Root
nodes:
  Root:
    type: Selector
    children: [Guard, Idle]
  Guard:
    type: Sequence
    children: [Close, Alert]
  Close:
    type: Condition
    condition: LessOrEqual
    params: {left: target.distance, right: alert.radius}
  Alert:
    type: Action
    action: SetBool
    params: {key: alerted, value: true}
  Idle:
    type: Action
    action: SetBool
    params: {key: idle, value: true}
sensors:
  - name: distance
    type: PlanarDistance
    params: {src: self.pos, dst: target.pos, out: target.distance}
`

func buildGuard(t *testing.T) (DecisionTree, []Sensor) {
	t.Helper()
	cfg, err := LoadYAML(strings.NewReader(guardTree))
	require.NoError(t, err)
	r := NewRegistry()
	RegisterBuiltins(r)
	tree, sensors, err := cfg.Build(r)
	require.NoError(t, err)
	return tree, sensors
}

func TestLoadAndRunSelector(t *testing.T) {
	tree, sensors := buildGuard(t)
	require.Len(t, sensors, 1)

	near := NewAgent(nil, tree, sensors)
	near.Blackboard().Set("self.pos", physics.Vec3{X: 0, Y: 0, Z: 50})
	near.Blackboard().Set("target.pos", physics.Vec3{X: 3, Y: 4, Z: 300})
	near.Blackboard().Set("alert.radius", 10.0)

	st, err := near.Step(0.016)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, st)
	assert.Equal(t, StatusSuccess, near.LastStatus())
	v, ok := near.Blackboard().Get("alerted")
	assert.True(t, ok)
	assert.Equal(t, true, v)
	d, _ := near.Blackboard().Get("target.distance")
	assert.InDelta(t, 5.0, d, 1e-9)

	far := NewAgent(nil, tree, sensors)
	far.Blackboard().Set("self.pos", physics.Vec3{})
	far.Blackboard().Set("target.pos", physics.Vec3{X: 100})
	far.Blackboard().Set("alert.radius", 10)

	_, err = far.Step(0.016)
	require.NoError(t, err)
	_, alerted := far.Blackboard().Get("alerted")
	assert.False(t, alerted)
	idle, _ := far.Blackboard().Get("idle")
	assert.Equal(t, true, idle)
}

func TestSensorMissingKey(t *testing.T) {
	tree, sensors := buildGuard(t)
	a := NewAgent(nil, tree, sensors)
	_, err := a.Step(0.016)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingKey))
	assert.Equal(t, StatusFailure, a.LastStatus())
}

func TestBuildErrors(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltins(r)

	cases := map[string]struct {
		doc  string
		want error
	}{
		"unknown node": {
			doc:  "root: Missing\nnodes: {}\n",
			want: ErrUnknownNode,
		},
		"unknown action": {
			doc:  "root: A\nnodes:\n  A: {type: Action, action: Fly}\n",
			want: ErrUnknownAction,
		},
		"unknown condition": {
			doc:  "root: A\nnodes:\n  A: {type: Condition, condition: Maybe}\n",
			want: ErrUnknownCondition,
		},
		"unsupported type": {
			doc:  "root: A\nnodes:\n  A: {type: Parallel}\n",
			want: ErrUnsupportedNode,
		},
		"missing param": {
			doc:  "root: A\nnodes:\n  A: {type: Condition, condition: IsTrue}\n",
			want: ErrMissingParam,
		},
		"cycle": {
			doc:  "root: A\nnodes:\n  A: {type: Sequence, children: [B]}\n  B: {type: Selector, children: [A]}\n",
			want: ErrCycle,
		},
		"decorator without child": {
			doc:  "root: A\nnodes:\n  A: {type: Decorator, decorator: Inverter}\n",
			want: ErrNilChild,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadYAML(strings.NewReader(tc.doc))
			require.NoError(t, err)
			_, _, err = cfg.Build(r)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestInverterAndSequence(t *testing.T) {
	bb := NewBlackboard()
	fail := NewCondition("never", func(TickContext) (bool, error) { return false, nil })
	inv := NewInverter("not")
	inv.SetChild(fail)

	calls := 0
	count := NewAction("count", func(TickContext) (Status, error) { calls++; return StatusSuccess, nil })
	seq := NewSequence("seq", inv, count)

	st, err := NewTree(seq).Tick(TickContext{BB: bb})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, st)
	assert.Equal(t, 1, calls)

	running := NewAction("wait", func(TickContext) (Status, error) { return StatusRunning, nil })
	st, err = NewSequence("s", running, count).Tick(TickContext{BB: bb})
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, st)
	assert.Equal(t, 1, calls)

	st, err = NewInverter("orphan").Tick(TickContext{BB: bb})
	assert.ErrorIs(t, err, ErrNilChild)
	assert.Equal(t, StatusFailure, st)
}

func TestBlackboard(t *testing.T) {
	bb := NewBlackboard()
	bb.Set("b", 2)
	bb.Set("a", 1)
	assert.Equal(t, []string{"a", "b"}, bb.Keys())

	n, err := Lookup[int](bb, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = Lookup[string](bb, "a")
	assert.ErrorIs(t, err, ErrMissingKey)

	bb.Delete("a")
	_, ok := bb.Get("a")
	assert.False(t, ok)

	bb.Clear()
	assert.Empty(t, bb.Keys())
}

func TestEmptyTreeSucceeds(t *testing.T) {
	cfg := &Config{}
	tree, sensors, err := cfg.Build(NewRegistry())
	require.NoError(t, err)
	assert.Empty(t, sensors)
	st, err := tree.Tick(TickContext{BB: NewBlackboard()})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, st)
}
