// Package autopilot steers the player from read-only snapshots, standing in
// for a human at the keyboard in headless runs.
package autopilot

import (
	"math"

	"github.com/zeusync/fishtank/internal/aquarium"
	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

// Pilot flees to the bunker when a chasing predator comes within
// ThreatRadius and otherwise swims to the nearest food. Offsets smaller than
// Deadband on an axis produce no input on that axis.
type Pilot struct {
	ThreatRadius float64
	Deadband     float64
}

func New() *Pilot {
	return &Pilot{ThreatRadius: 160, Deadband: 6}
}

// Decide turns a snapshot into the held keys for the next tick.
func (p *Pilot) Decide(s aquarium.Snapshot) aquarium.Intent {
	if s.Player.Dead {
		return aquarium.Intent{}
	}
	if !s.Player.Cheat && p.threatened(s) {
		if s.Player.InBunker {
			return aquarium.Intent{}
		}
		return p.steer(s.Player.Pos, bunkerTarget(s.SafeZone))
	}
	if food, ok := nearest(s.Player.Pos, s.Food); ok {
		return p.steer(s.Player.Pos, food)
	}
	return aquarium.Intent{}
}

func (p *Pilot) threatened(s aquarium.Snapshot) bool {
	for _, pr := range s.Predators {
		if pr.Chasing && physics.PlanarDistance(pr.Pos, s.Player.Pos) < p.ThreatRadius {
			return true
		}
	}
	return false
}

func (p *Pilot) steer(from, to physics.Vec3) aquarium.Intent {
	dx, dy, dz := to.X-from.X, to.Y-from.Y, to.Z-from.Z
	return aquarium.Intent{
		Right:   dx > p.Deadband,
		Left:    dx < -p.Deadband,
		Forward: dy > p.Deadband,
		Back:    dy < -p.Deadband,
		Up:      dz > p.Deadband,
		Down:    dz < -p.Deadband,
	}
}

// bunkerTarget is the middle of the safe cylinder.
func bunkerTarget(d physics.Disc) physics.Vec3 {
	return physics.Vec3{X: d.Center.X, Y: d.Center.Y, Z: d.Floor + d.Height/2}
}

func nearest(from physics.Vec3, points []physics.Vec3) (physics.Vec3, bool) {
	best, bestDist := physics.Vec3{}, math.Inf(1)
	for _, pt := range points {
		if d := physics.Distance3(from, pt); d < bestDist {
			best, bestDist = pt, d
		}
	}
	return best, len(points) > 0
}
