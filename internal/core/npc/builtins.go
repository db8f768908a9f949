package npc

import (
	"fmt"

	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

// RegisterBuiltins registers the generic nodes and sensors that carry no
// game-specific knowledge.
func RegisterBuiltins(r Registry) {
	r.RegisterCondition("IsTrue", func(params map[string]any) (Condition, error) {
		key, err := stringParam(params, "key")
		if err != nil {
			return nil, err
		}
		return NewCondition("IsTrue("+key+")", func(t TickContext) (bool, error) {
			v, ok := t.BB.Get(key)
			if !ok {
				return false, nil
			}
			b, ok := v.(bool)
			return ok && b, nil
		}), nil
	})

	r.RegisterCondition("LessOrEqual", func(params map[string]any) (Condition, error) {
		left, err := stringParam(params, "left")
		if err != nil {
			return nil, err
		}
		right, err := stringParam(params, "right")
		if err != nil {
			return nil, err
		}
		return NewCondition(left+"<="+right, func(t TickContext) (bool, error) {
			l, ok := getFloat(t.BB, left)
			if !ok {
				return false, fmt.Errorf("%w: %s", ErrMissingKey, left)
			}
			rv, ok := getFloat(t.BB, right)
			if !ok {
				return false, fmt.Errorf("%w: %s", ErrMissingKey, right)
			}
			return l <= rv, nil
		}), nil
	})

	r.RegisterAction("SetBool", func(params map[string]any) (Action, error) {
		key, err := stringParam(params, "key")
		if err != nil {
			return nil, err
		}
		val, _ := params["value"].(bool)
		return NewAction("SetBool("+key+")", func(t TickContext) (Status, error) {
			t.BB.Set(key, val)
			return StatusSuccess, nil
		}), nil
	})

	r.RegisterAction("Noop", func(map[string]any) (Action, error) {
		return NewAction("Noop", func(TickContext) (Status, error) { return StatusSuccess, nil }), nil
	})

	r.RegisterDecorator("Inverter", func(map[string]any) (Decorator, error) {
		return NewInverter("Inverter"), nil
	})

	r.RegisterSensor("PlanarDistance", func(params map[string]any) (Sensor, error) {
		src, err := stringParam(params, "src")
		if err != nil {
			return nil, err
		}
		dst, err := stringParam(params, "dst")
		if err != nil {
			return nil, err
		}
		out, err := stringParam(params, "out")
		if err != nil {
			return nil, err
		}
		return &PlanarDistanceSensor{src: src, dst: dst, out: out}, nil
	})
}

// PlanarDistanceSensor writes the horizontal distance between two
// physics.Vec3 blackboard values.
type PlanarDistanceSensor struct {
	src, dst, out string
}

func NewPlanarDistanceSensor(src, dst, out string) *PlanarDistanceSensor {
	return &PlanarDistanceSensor{src: src, dst: dst, out: out}
}

func (s *PlanarDistanceSensor) Name() string { return "PlanarDistance" }

func (s *PlanarDistanceSensor) Update(bb Blackboard) error {
	a, err := Lookup[physics.Vec3](bb, s.src)
	if err != nil {
		return err
	}
	b, err := Lookup[physics.Vec3](bb, s.dst)
	if err != nil {
		return err
	}
	bb.Set(s.out, physics.PlanarDistance(a, b))
	return nil
}

func stringParam(params map[string]any, key string) (string, error) {
	v, _ := params[key].(string)
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingParam, key)
	}
	return v, nil
}
