package aquarium

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

func TestBubbleRisesWithoutRecycling(t *testing.T) {
	f := DefaultTuning().BubbleField()
	rng := NewRand(5)
	b := newBubble(AmbientSource(), 100, f, rng)

	recycled := b.Step(0.05, f, rng)
	assert.False(t, recycled)
	assert.InDelta(t, 100+b.Rise*0.05, b.Pos.Z, 1e-9)
}

func TestBubbleRecyclesPerSource(t *testing.T) {
	tn := DefaultTuning()
	f := tn.BubbleField()
	bt := tn.Bubbles
	anchor := physics.Vec2{X: 120, Y: -75}

	tests := []struct {
		name   string
		source Source
	}{
		{"ambient", AmbientSource()},
		{"plant", PlantSource(anchor.X, anchor.Y)},
		{"bubbler", BubblerSource(anchor.X, anchor.Y)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewRand(17)
			for range 200 {
				b := newBubble(tt.source, f.Ceiling-0.01, f, rng)
				b.Pos.X, b.Pos.Y = -400, 400

				require.True(t, b.Step(0.05, f, rng))
				assert.GreaterOrEqual(t, b.Pos.Z, bt.RecycleZMin)
				assert.Less(t, b.Pos.Z, bt.RecycleZMax)

				jitter := tt.source.Jitter(f)
				if tt.source.Kind == SourceAmbient {
					assert.LessOrEqual(t, math.Abs(b.Pos.X), jitter)
					assert.LessOrEqual(t, math.Abs(b.Pos.Y), jitter)
					continue
				}
				assert.LessOrEqual(t, math.Abs(b.Pos.X-anchor.X), jitter)
				assert.LessOrEqual(t, math.Abs(b.Pos.Y-anchor.Y), jitter)
			}
		})
	}
}

func TestBubblerJitterIsTighter(t *testing.T) {
	f := DefaultTuning().BubbleField()
	assert.Less(t, BubblerSource(0, 0).Jitter(f), PlantSource(0, 0).Jitter(f))
	assert.Equal(t, 2.5, BubblerSource(0, 0).Jitter(f))
	assert.Equal(t, 6.0, PlantSource(0, 0).Jitter(f))
	assert.InDelta(t, 540, AmbientSource().Jitter(f), 1e-9)
}

func TestBubbleClampedHorizontally(t *testing.T) {
	f := DefaultTuning().BubbleField()
	rng := NewRand(2)
	b := newBubble(AmbientSource(), 50, f, rng)
	b.Pos.X, b.Pos.Y = 10_000, -10_000

	b.Step(0.01, f, rng)
	assert.Equal(t, f.Bounds.HalfExtent, b.Pos.X)
	assert.Equal(t, -f.Bounds.HalfExtent, b.Pos.Y)
}

func TestUnknownSourcePanics(t *testing.T) {
	f := DefaultTuning().BubbleField()
	assert.Panics(t, func() {
		newBubble(Source{Kind: SourceKind(42)}, 0, f, NewRand(1))
	})
	assert.Equal(t, "SourceKind(42)", SourceKind(42).String())
	assert.Equal(t, "bubbler", SourceBubbler.String())
}

func TestStepBubblesKeepsSources(t *testing.T) {
	w := newTestWorld(t)
	before := make([]Source, len(w.Bubbles))
	for i, b := range w.Bubbles {
		before[i] = b.Source
	}
	for range 2000 {
		w.stepBubbles(0.05)
	}
	for i, b := range w.Bubbles {
		assert.Equal(t, before[i], b.Source)
		assert.LessOrEqual(t, b.Pos.Z, w.Field.Ceiling)
	}
}
