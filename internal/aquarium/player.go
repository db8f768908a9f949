package aquarium

import (
	"math"

	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

// Player is the fish the user steers. Yaw is in degrees; yaw 0 faces +Y.
type Player struct {
	Pos           physics.Vec3
	Yaw           float64
	Speed         float64
	VerticalSpeed float64
	Size          float64
	Health        int
	MaxHealth     int
	Dead          bool
	Cheat         bool
	// LastDamageAt is the simulation time of the last hit taken.
	LastDamageAt float64
}

func newPlayer(t PlayerTuning, b physics.Bounds) *Player {
	return &Player{
		Pos:           b.Clamp(physics.Vec3{X: t.StartX, Y: t.StartY, Z: t.StartZ}),
		Speed:         t.Speed,
		VerticalSpeed: t.VerticalSpeed,
		Size:          t.Size,
		Health:        t.MaxHealth,
		MaxHealth:     t.MaxHealth,
		LastDamageAt:  math.Inf(-1),
	}
}

// Forward is the unit heading vector used by first-person cameras.
func (p *Player) Forward() (x, y float64) {
	r := p.Yaw * math.Pi / 180
	return math.Sin(r), math.Cos(r)
}

// Move translates the player horizontally along (dx, dy) at full speed,
// whatever the input magnitude.
func (p *Player) Move(dx, dy, dt float64, b physics.Bounds) {
	if p.Dead {
		return
	}
	nx, ny, _ := physics.Normalize2(dx, dy, 1e-6)
	p.Pos.X += nx * p.Speed * dt
	p.Pos.Y += ny * p.Speed * dt
	p.Pos = b.Clamp(p.Pos)
}

// MoveVertical climbs (dz > 0) or dives (dz < 0).
func (p *Player) MoveVertical(dz, dt float64, b physics.Bounds) {
	if p.Dead {
		return
	}
	p.Pos.Z += dz * p.VerticalSpeed * dt
	p.Pos = b.Clamp(p.Pos)
}

// Face turns toward the horizontal input. Idle input keeps the last heading.
func (p *Player) Face(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	p.Yaw = math.Atan2(dx, dy) * 180 / math.Pi
}

// Heal adds health up to the maximum.
func (p *Player) Heal(amount int) {
	p.Health = min(p.Health+amount, p.MaxHealth)
}

// Hurt subtracts health and stamps the damage time.
func (p *Player) Hurt(amount int, now float64) {
	p.Health -= amount
	p.LastDamageAt = now
}

// CheckDeath floors health at zero and marks the player dead once it runs out.
// It reports whether this call caused the transition.
func (p *Player) CheckDeath() bool {
	if p.Dead || p.Health > 0 {
		return false
	}
	p.Health = 0
	p.Dead = true
	return true
}
