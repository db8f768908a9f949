package npc

import (
	"fmt"
	"sync"
)

type reg struct {
	mu    sync.RWMutex
	acts  map[string]ActionFactory
	conds map[string]ConditionFactory
	decos map[string]DecoratorFactory
	sens  map[string]SensorFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return &reg{
		acts:  make(map[string]ActionFactory),
		conds: make(map[string]ConditionFactory),
		decos: make(map[string]DecoratorFactory),
		sens:  make(map[string]SensorFactory),
	}
}

func (r *reg) RegisterAction(name string, factory ActionFactory) {
	r.mu.Lock()
	r.acts[name] = factory
	r.mu.Unlock()
}

func (r *reg) RegisterCondition(name string, factory ConditionFactory) {
	r.mu.Lock()
	r.conds[name] = factory
	r.mu.Unlock()
}

func (r *reg) RegisterDecorator(name string, factory DecoratorFactory) {
	r.mu.Lock()
	r.decos[name] = factory
	r.mu.Unlock()
}

func (r *reg) RegisterSensor(name string, factory SensorFactory) {
	r.mu.Lock()
	r.sens[name] = factory
	r.mu.Unlock()
}

func (r *reg) NewAction(name string, params map[string]any) (Action, error) {
	r.mu.RLock()
	f := r.acts[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	return f(params)
}

func (r *reg) NewCondition(name string, params map[string]any) (Condition, error) {
	r.mu.RLock()
	f := r.conds[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCondition, name)
	}
	return f(params)
}

func (r *reg) NewDecorator(name string, params map[string]any) (Decorator, error) {
	r.mu.RLock()
	f := r.decos[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDecorator, name)
	}
	return f(params)
}

func (r *reg) NewSensor(name string, params map[string]any) (Sensor, error) {
	r.mu.RLock()
	f := r.sens[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSensor, name)
	}
	return f(params)
}
