package npc

import "fmt"

// Agent couples a shared decision tree with its own blackboard and sensors.
type Agent struct {
	bb      Blackboard
	tree    DecisionTree
	sensors []Sensor
	last    Status
}

func NewAgent(bb Blackboard, tree DecisionTree, sensors []Sensor) *Agent {
	if bb == nil {
		bb = NewBlackboard()
	}
	return &Agent{bb: bb, tree: tree, sensors: sensors}
}

func (a *Agent) Blackboard() Blackboard { return a.bb }

// LastStatus is the status returned by the most recent Step.
func (a *Agent) LastStatus() Status { return a.last }

// Step runs every sensor, then ticks the tree once.
func (a *Agent) Step(dt float64) (Status, error) {
	for _, s := range a.sensors {
		if err := s.Update(a.bb); err != nil {
			a.last = StatusFailure
			return StatusFailure, fmt.Errorf("sensor %s: %w", s.Name(), err)
		}
	}
	st, err := a.tree.Tick(TickContext{BB: a.bb, DT: dt})
	a.last = st
	return st, err
}
