package aquarium

import (
	"math"

	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

// Food floats at a fixed spot, bobbing around BaseZ.
type Food struct {
	X, Y      float64
	BaseZ     float64
	Phase     float64
	Size      float64
	Amplitude float64
	Frequency float64
}

func newFood(t Tuning, rng Rand) Food {
	ft := t.Food
	spread := t.World.GridLength * ft.SpreadFactor
	return Food{
		X:         uniform(rng, -spread, spread),
		Y:         uniform(rng, -spread, spread),
		BaseZ:     uniform(rng, ft.BaseZMin, ft.BaseZMax),
		Phase:     rng.Float64() * 2 * math.Pi,
		Size:      ft.Size,
		Amplitude: ft.BobAmplitude,
		Frequency: ft.BobFrequency,
	}
}

// Position is the animated position at simulation time t.
func (f Food) Position(t float64) physics.Vec3 {
	return physics.Vec3{
		X: f.X,
		Y: f.Y,
		Z: f.BaseZ + math.Sin(t*f.Frequency+f.Phase)*f.Amplitude,
	}
}
