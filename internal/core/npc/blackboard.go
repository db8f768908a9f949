package npc

import (
	"fmt"
	"sort"
)

// bbMap is a map-based blackboard. Agents are ticked from a single goroutine,
// so it carries no lock.
type bbMap struct {
	data map[string]any
}

// NewBlackboard creates an empty blackboard.
func NewBlackboard() Blackboard {
	return &bbMap{data: make(map[string]any)}
}

func (b *bbMap) Get(key string) (any, bool) {
	v, ok := b.data[key]
	return v, ok
}

func (b *bbMap) Set(key string, value any) { b.data[key] = value }

func (b *bbMap) Delete(key string) { delete(b.data, key) }

func (b *bbMap) Keys() []string {
	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (b *bbMap) Clear() { clear(b.data) }

// Lookup fetches a typed value from the blackboard.
func Lookup[T any](bb Blackboard, key string) (T, error) {
	var zero T
	v, ok := bb.Get(key)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	tv, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", ErrMissingKey, key, v)
	}
	return tv, nil
}

// getFloat accepts the numeric shapes yaml and callers commonly produce.
func getFloat(bb Blackboard, key string) (float64, bool) {
	v, ok := bb.Get(key)
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

func toFloat(v any) (float64, bool) {
	switch tv := v.(type) {
	case float64:
		return tv, true
	case float32:
		return float64(tv), true
	case int:
		return float64(tv), true
	case int64:
		return float64(tv), true
	default:
		return 0, false
	}
}
