package systems

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSystemExists   = errors.New("system already registered")
	ErrSystemNotFound = errors.New("system not found")
)

// System is one phase of a simulation step. W is the world type it mutates.
type System[W any] interface {
	Name() string
	Update(deltaTime float64, world W) error
}

// Func adapts a plain function into a System.
type Func[W any] struct {
	name string
	fn   func(deltaTime float64, world W) error
}

func NewFunc[W any](name string, fn func(deltaTime float64, world W) error) Func[W] {
	return Func[W]{name: name, fn: fn}
}

func (f Func[W]) Name() string { return f.name }

func (f Func[W]) Update(deltaTime float64, world W) error {
	return f.fn(deltaTime, world)
}

// Metrics provides runtime metrics for a system.
type Metrics struct {
	ExecutionCount       uint64
	TotalExecutionTime   time.Duration
	AverageExecutionTime time.Duration
	MaxExecutionTime     time.Duration
	ErrorCount           uint64
	LastError            error
}

type entry[W any] struct {
	system  System[W]
	enabled bool
	metrics Metrics
}

// Manager runs registered systems in registration order. The order is the
// contract: callers register phases in the sequence they must execute.
// A Manager is not safe for concurrent use.
type Manager[W any] struct {
	entries []*entry[W]
	index   map[string]int
	now     func() time.Time
}

func NewManager[W any]() *Manager[W] {
	return &Manager[W]{index: make(map[string]int), now: time.Now}
}

func (m *Manager[W]) Register(s System[W]) error {
	if _, ok := m.index[s.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrSystemExists, s.Name())
	}
	m.index[s.Name()] = len(m.entries)
	m.entries = append(m.entries, &entry[W]{system: s, enabled: true})
	return nil
}

// MustRegister registers every system and panics on a duplicate name.
func (m *Manager[W]) MustRegister(systems ...System[W]) {
	for _, s := range systems {
		if err := m.Register(s); err != nil {
			panic(err)
		}
	}
}

func (m *Manager[W]) SetEnabled(name string, enabled bool) error {
	i, ok := m.index[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSystemNotFound, name)
	}
	m.entries[i].enabled = enabled
	return nil
}

func (m *Manager[W]) IsEnabled(name string) bool {
	i, ok := m.index[name]
	return ok && m.entries[i].enabled
}

// Update runs every enabled system once. A failing system does not stop the
// ones after it; all errors are joined.
func (m *Manager[W]) Update(deltaTime float64, world W) error {
	var joined error
	for _, e := range m.entries {
		if !e.enabled {
			continue
		}
		start := m.now()
		err := e.system.Update(deltaTime, world)
		e.record(m.now().Sub(start), err)
		if err != nil {
			joined = errors.Join(joined, fmt.Errorf("%s: %w", e.system.Name(), err))
		}
	}
	return joined
}

func (e *entry[W]) record(d time.Duration, err error) {
	e.metrics.ExecutionCount++
	e.metrics.TotalExecutionTime += d
	e.metrics.AverageExecutionTime = e.metrics.TotalExecutionTime / time.Duration(e.metrics.ExecutionCount)
	if d > e.metrics.MaxExecutionTime {
		e.metrics.MaxExecutionTime = d
	}
	if err != nil {
		e.metrics.ErrorCount++
		e.metrics.LastError = err
	}
}

func (m *Manager[W]) GetSystemMetrics(name string) (Metrics, bool) {
	i, ok := m.index[name]
	if !ok {
		return Metrics{}, false
	}
	return m.entries[i].metrics, true
}

// GetExecutionOrder lists system names in the order Update runs them.
func (m *Manager[W]) GetExecutionOrder() []string {
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.system.Name()
	}
	return names
}
