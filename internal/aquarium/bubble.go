package aquarium

import (
	"fmt"
	"math"

	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

// SourceKind identifies where a bubble is emitted from.
type SourceKind uint8

const (
	SourceAmbient SourceKind = iota
	SourcePlant
	SourceBubbler
)

func (k SourceKind) String() string {
	switch k {
	case SourceAmbient:
		return "ambient"
	case SourcePlant:
		return "plant"
	case SourceBubbler:
		return "bubbler"
	default:
		return fmt.Sprintf("SourceKind(%d)", uint8(k))
	}
}

// Source is a bubble's emitter. Anchor is meaningful for plant and bubbler
// sources only.
type Source struct {
	Kind   SourceKind
	Anchor physics.Vec2
}

func AmbientSource() Source { return Source{Kind: SourceAmbient} }

func PlantSource(x, y float64) Source {
	return Source{Kind: SourcePlant, Anchor: physics.Vec2{X: x, Y: y}}
}

func BubblerSource(x, y float64) Source {
	return Source{Kind: SourceBubbler, Anchor: physics.Vec2{X: x, Y: y}}
}

// BubbleField is the slice of the tank bubbles live in.
type BubbleField struct {
	Tuning BubbleTuning
	// Bounds clamps bubbles horizontally; Z is left alone.
	Bounds   physics.Bounds
	Ceiling  float64
	HalfGrid float64
}

// emit picks a fresh planar position for the source.
func (s Source) emit(f BubbleField, rng Rand) (x, y float64) {
	bt := f.Tuning
	switch s.Kind {
	case SourceAmbient:
		spread := f.HalfGrid * bt.AmbientSpread
		return uniform(rng, -spread, spread), uniform(rng, -spread, spread)
	case SourcePlant:
		return s.Anchor.X + uniform(rng, -bt.PlantJitter, bt.PlantJitter),
			s.Anchor.Y + uniform(rng, -bt.PlantJitter, bt.PlantJitter)
	case SourceBubbler:
		return s.Anchor.X + uniform(rng, -bt.BubblerJitter, bt.BubblerJitter),
			s.Anchor.Y + uniform(rng, -bt.BubblerJitter, bt.BubblerJitter)
	default:
		panic(fmt.Sprintf("aquarium: unhandled bubble source %v", s.Kind))
	}
}

// Jitter is the maximum planar offset from the anchor at emission.
// Ambient sources have no anchor and report the ambient spread instead.
func (s Source) Jitter(f BubbleField) float64 {
	switch s.Kind {
	case SourcePlant:
		return f.Tuning.PlantJitter
	case SourceBubbler:
		return f.Tuning.BubblerJitter
	default:
		return f.HalfGrid * f.Tuning.AmbientSpread
	}
}

// Bubble rises in a lazy helix and is recycled back to its source at the top.
type Bubble struct {
	Pos    physics.Vec3
	Rise   float64
	Radius float64
	Phase  float64
	Source Source
}

func newBubble(src Source, z float64, f BubbleField, rng Rand) Bubble {
	bt := f.Tuning
	x, y := src.emit(f, rng)
	return Bubble{
		Pos:    physics.Vec3{X: x, Y: y, Z: z},
		Rise:   uniform(rng, bt.RiseMin, bt.RiseMax),
		Radius: uniform(rng, bt.RadiusMin, bt.RadiusMax),
		Phase:  rng.Float64() * 2 * math.Pi,
		Source: src,
	}
}

// Step integrates one tick and recycles the bubble once it passes the
// ceiling. It reports whether the bubble was recycled.
func (b *Bubble) Step(dt float64, f BubbleField, rng Rand) bool {
	bt := f.Tuning
	b.Pos.Z += b.Rise * dt
	b.Pos.X += math.Sin(b.Pos.Z*bt.SwayFreqX+b.Phase) * bt.SwayAmplitude * dt
	b.Pos.Y += math.Cos(b.Pos.Z*bt.SwayFreqY+b.Phase) * bt.SwayAmplitude * dt
	b.Pos = f.Bounds.ClampPlanar(b.Pos)
	if b.Pos.Z <= f.Ceiling {
		return false
	}
	b.Pos.Z = uniform(rng, bt.RecycleZMin, bt.RecycleZMax)
	b.Pos.X, b.Pos.Y = b.Source.emit(f, rng)
	return true
}
