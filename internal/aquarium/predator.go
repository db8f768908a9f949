package aquarium

import (
	"math"

	"github.com/google/uuid"

	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

// Color is an RGB triple in [0, 1] for renderers.
type Color struct{ R, G, B float64 }

var predatorPalette = [...]Color{
	{R: 0.12, G: 0.18, B: 0.28},
	{R: 0.10, G: 0.20, B: 0.18},
	{R: 0.16, G: 0.14, B: 0.24},
	{R: 0.18, G: 0.22, B: 0.30},
}

// Predator roams the tank and hunts the player when it gets close.
type Predator struct {
	ID    uuid.UUID
	Pos   physics.Vec3
	Speed float64
	Size  float64
	Color Color
	// WanderHeading is in radians, measured like Player.Yaw.
	WanderHeading float64
	WanderTimer   float64
	// Facing is the yaw in degrees of the last movement, for renderers.
	Facing  float64
	Chasing bool
}

// newPredator places a predator on a ring outside the glass and pulls it
// inside the bounds.
func newPredator(t Tuning, rng Rand) *Predator {
	pt := t.Predator
	ang := rng.Float64() * 2 * math.Pi
	rad := t.World.GridLength*pt.SpawnRingFactor + uniform(rng, pt.SpawnRingMin, pt.SpawnRingMax)
	pos := physics.Vec3{
		X: math.Cos(ang) * rad,
		Y: math.Sin(ang) * rad,
		Z: uniform(rng, pt.SpawnZMin, pt.SpawnZMax),
	}
	p := &Predator{
		ID:            uuid.New(),
		Pos:           t.Bounds().Clamp(pos),
		Speed:         pt.Speed,
		Size:          pt.Size,
		Color:         predatorPalette[rng.IntN(len(predatorPalette))],
		WanderHeading: uniform(rng, 0, 2*math.Pi),
		WanderTimer:   uniform(rng, pt.InitialTimerMin, pt.InitialTimerMax),
	}
	p.Facing = p.WanderHeading * 180 / math.Pi
	return p
}

// Wander drifts along the wander heading at reduced speed, nudging the
// heading whenever the timer runs out.
func (p *Predator) Wander(dt float64, pt PredatorTuning, rng Rand, b physics.Bounds) {
	p.Chasing = false
	p.WanderTimer -= dt
	if p.WanderTimer <= 0 {
		p.WanderTimer = uniform(rng, pt.WanderTimerMin, pt.WanderTimerMax)
		p.WanderHeading += uniform(rng, -pt.WanderTurn, pt.WanderTurn)
	}
	speed := p.Speed * pt.WanderSpeedFactor
	p.Pos.X += math.Sin(p.WanderHeading) * speed * dt
	p.Pos.Y += math.Cos(p.WanderHeading) * speed * dt
	p.Pos.Z += math.Sin(p.WanderHeading*pt.WanderBobFreq) * pt.WanderBob * dt
	p.Pos = b.Clamp(p.Pos)
	p.Facing = p.WanderHeading * 180 / math.Pi
}

// Chase heads straight for target. Climb speed is proportional to the height
// gap, saturating at one unit.
func (p *Predator) Chase(target physics.Vec3, dt, speedScale float64, pt PredatorTuning, b physics.Bounds) {
	p.Chasing = true
	toX := target.X - p.Pos.X
	toY := target.Y - p.Pos.Y
	toZ := target.Z - p.Pos.Z
	p.Pos.Z += physics.Clamp(toZ, -1, 1) * pt.ChaseClimbRate * dt

	dist := math.Hypot(toX, toY) + 1e-6
	speed := p.Speed * speedScale
	p.Pos.X += toX / dist * speed * dt
	p.Pos.Y += toY / dist * speed * dt
	p.Pos = b.Clamp(p.Pos)
	if toX != 0 || toY != 0 {
		p.Facing = math.Atan2(toX, toY) * 180 / math.Pi
	}
}

// Separate pushes apart every pair of predators closer than minSep. Each
// member of a pair moves half the overlap along the line joining them.
// Pairs closer than floor are skipped: they have no usable direction.
func Separate(preds []*Predator, minSep, floor float64, b physics.Bounds) {
	for i := 0; i < len(preds); i++ {
		a := preds[i]
		for j := i + 1; j < len(preds); j++ {
			c := preds[j]
			dx := c.Pos.X - a.Pos.X
			dy := c.Pos.Y - a.Pos.Y
			d := math.Hypot(dx, dy)
			if d >= minSep || d <= floor {
				continue
			}
			push := (minSep - d) / 2
			nx, ny := dx/d, dy/d
			a.Pos.X -= nx * push
			a.Pos.Y -= ny * push
			c.Pos.X += nx * push
			c.Pos.Y += ny * push
			a.Pos = b.Clamp(a.Pos)
			c.Pos = b.Clamp(c.Pos)
		}
	}
}
