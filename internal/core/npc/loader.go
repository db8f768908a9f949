package npc

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config describes a decision tree and its sensors. Nodes reference each
// other by name; the registry turns action, condition, decorator and sensor
// names into runtime nodes.
type Config struct {
	Root    string                `yaml:"root"`
	Nodes   map[string]ConfigNode `yaml:"nodes"`
	Sensors []ConfigSensor        `yaml:"sensors"`
}

type ConfigSensor struct {
	Name   string         `yaml:"name"`
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params"`
}

type ConfigNode struct {
	Type      string         `yaml:"type"`
	Children  []string       `yaml:"children,omitempty"`
	Child     string         `yaml:"child,omitempty"`
	Action    string         `yaml:"action,omitempty"`
	Condition string         `yaml:"condition,omitempty"`
	Decorator string         `yaml:"decorator,omitempty"`
	Params    map[string]any `yaml:"params,omitempty"`
}

// LoadYAML loads config from a YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode behavior config: %w", err)
	}
	return &c, nil
}

// Build constructs the decision tree and sensors from config using a registry.
func (c *Config) Build(reg Registry) (DecisionTree, []Sensor, error) {
	if c.Root == "" {
		return Tree{}, nil, nil
	}
	created := make(map[string]BehaviorNode)
	visiting := make(map[string]bool)

	var buildNode func(name string) (BehaviorNode, error)
	buildChildren := func(names []string) ([]BehaviorNode, error) {
		children := make([]BehaviorNode, 0, len(names))
		for _, chname := range names {
			ch, err := buildNode(chname)
			if err != nil {
				return nil, err
			}
			children = append(children, ch)
		}
		return children, nil
	}
	buildNode = func(name string) (BehaviorNode, error) {
		if n, ok := created[name]; ok {
			return n, nil
		}
		if visiting[name] {
			return nil, fmt.Errorf("%w: %s", ErrCycle, name)
		}
		nc, ok := c.Nodes[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownNode, name)
		}
		visiting[name] = true
		defer delete(visiting, name)

		var node BehaviorNode
		switch nc.Type {
		case "Sequence", "sequence":
			children, err := buildChildren(nc.Children)
			if err != nil {
				return nil, err
			}
			node = NewSequence(name, children...)
		case "Selector", "selector":
			children, err := buildChildren(nc.Children)
			if err != nil {
				return nil, err
			}
			node = NewSelector(name, children...)
		case "Decorator", "decorator":
			dec, err := reg.NewDecorator(nc.Decorator, nc.Params)
			if err != nil {
				return nil, err
			}
			if nc.Child == "" {
				return nil, fmt.Errorf("decorator %s: %w", name, ErrNilChild)
			}
			ch, err := buildNode(nc.Child)
			if err != nil {
				return nil, err
			}
			dec.SetChild(ch)
			node = dec
		case "Action", "action":
			a, err := reg.NewAction(nc.Action, nc.Params)
			if err != nil {
				return nil, err
			}
			node = a
		case "Condition", "condition":
			cnd, err := reg.NewCondition(nc.Condition, nc.Params)
			if err != nil {
				return nil, err
			}
			node = cnd
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedNode, nc.Type)
		}
		created[name] = node
		return node, nil
	}

	root, err := buildNode(c.Root)
	if err != nil {
		return nil, nil, err
	}
	sensors := make([]Sensor, 0, len(c.Sensors))
	for _, s := range c.Sensors {
		sen, err := reg.NewSensor(s.Type, s.Params)
		if err != nil {
			return nil, nil, fmt.Errorf("sensor %s: %w", s.Name, err)
		}
		sensors = append(sensors, sen)
	}
	return Tree{root: root}, sensors, nil
}
