package aquarium

import (
	"math"

	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

const maxPlantAttempts = 100

// Plant is decoration and an anchor for bubble streams.
type Plant struct {
	X, Y          float64
	Height        float64
	Stalks        int
	Phase         float64
	SwayAmplitude float64
	SwayFrequency float64
}

// placePlants scatters plants over the floor, keeping them out of the bunker's
// surroundings. It gives up after a bounded number of rejected spots, so an
// exclusion disc covering the whole floor yields fewer plants.
func placePlants(t Tuning, rng Rand) []Plant {
	pt := t.Plants
	spread := t.World.GridLength * pt.SpreadFactor
	center := t.SafeDisc().Center
	plants := make([]Plant, 0, pt.Count)
	for attempts := 0; len(plants) < pt.Count && attempts < pt.Count*maxPlantAttempts; attempts++ {
		x := uniform(rng, -spread, spread)
		y := uniform(rng, -spread, spread)
		if physics.Distance2(x, y, center.X, center.Y) < pt.Exclusion {
			continue
		}
		plants = append(plants, Plant{
			X:             x,
			Y:             y,
			Height:        uniform(rng, pt.HeightMin, pt.HeightMax),
			Stalks:        intBetween(rng, pt.StalksMin, pt.StalksMax),
			Phase:         rng.Float64() * 2 * math.Pi,
			SwayAmplitude: pt.SwayAmplitude,
			SwayFrequency: pt.SwayFrequency,
		})
	}
	return plants
}

// StalkSway is the lean of stalk i in degrees at time t.
func (p Plant) StalkSway(t float64, i int) float64 {
	ang := float64(i)/float64(p.Stalks)*2*math.Pi + p.Phase
	return math.Sin(t*p.SwayFrequency+ang) * p.SwayAmplitude
}
