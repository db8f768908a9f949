package npc

import "errors"

var (
	ErrUnknownNode      = errors.New("unknown node")
	ErrUnsupportedNode  = errors.New("unsupported node type")
	ErrUnknownAction    = errors.New("unknown action")
	ErrUnknownCondition = errors.New("unknown condition")
	ErrUnknownDecorator = errors.New("unknown decorator")
	ErrUnknownSensor    = errors.New("unknown sensor")
	ErrMissingParam     = errors.New("missing parameter")
	ErrMissingKey       = errors.New("blackboard key missing")
	ErrNilChild         = errors.New("child is nil")
	ErrCycle            = errors.New("node cycle")
)
