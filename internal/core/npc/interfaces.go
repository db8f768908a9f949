package npc

// Status represents the execution result of a behavior node tick.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Blackboard is the per-agent key/value store shared between sensors and nodes.
type Blackboard interface {
	// Get retrieves a value by key. Returns (nil, false) if absent.
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)
	// Keys returns a sorted snapshot of existing keys.
	Keys() []string
	Clear()
}

// TickContext is passed into nodes during Tick. DT is the simulation step in seconds.
type TickContext struct {
	BB Blackboard
	DT float64
}

// BehaviorNode is the fundamental interface for behavior tree nodes.
// Nodes are shared between agents; per-agent state lives in the Blackboard.
type BehaviorNode interface {
	Tick(t TickContext) (Status, error)
	Name() string
}

// Action performs side effects and returns status based on Blackboard state.
type Action interface {
	BehaviorNode
}

// Condition evaluates to success/failure based on Blackboard state.
type Condition interface {
	BehaviorNode
}

// Decorator wraps a single child node.
type Decorator interface {
	BehaviorNode
	SetChild(child BehaviorNode)
}

// Composite node manages multiple children.
type Composite interface {
	BehaviorNode
	SetChildren(children ...BehaviorNode)
}

// Sensor refreshes Blackboard state before the tree runs.
type Sensor interface {
	Name() string
	Update(bb Blackboard) error
}

// DecisionTree holds a root node and exposes Tick.
type DecisionTree interface {
	Root() BehaviorNode
	Tick(t TickContext) (Status, error)
}

type (
	ActionFactory    func(params map[string]any) (Action, error)
	ConditionFactory func(params map[string]any) (Condition, error)
	DecoratorFactory func(params map[string]any) (Decorator, error)
	SensorFactory    func(params map[string]any) (Sensor, error)
)

// Registry maps configuration names onto node and sensor factories.
type Registry interface {
	RegisterAction(name string, factory ActionFactory)
	RegisterCondition(name string, factory ConditionFactory)
	RegisterDecorator(name string, factory DecoratorFactory)
	RegisterSensor(name string, factory SensorFactory)

	NewAction(name string, params map[string]any) (Action, error)
	NewCondition(name string, params map[string]any) (Condition, error)
	NewDecorator(name string, params map[string]any) (Decorator, error)
	NewSensor(name string, params map[string]any) (Sensor, error)
}
