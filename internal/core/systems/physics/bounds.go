package physics

// Bounds is an axis-aligned box centred on the origin in the horizontal plane.
// HalfExtent applies to both X and Y.
type Bounds struct {
	HalfExtent float64
	MinZ       float64
	MaxZ       float64
}

// Clamp pulls p into the box.
func (b Bounds) Clamp(p Vec3) Vec3 {
	return Vec3{
		X: Clamp(p.X, -b.HalfExtent, b.HalfExtent),
		Y: Clamp(p.Y, -b.HalfExtent, b.HalfExtent),
		Z: Clamp(p.Z, b.MinZ, b.MaxZ),
	}
}

// ClampPlanar clamps x and y only, leaving z untouched.
func (b Bounds) ClampPlanar(p Vec3) Vec3 {
	p.X = Clamp(p.X, -b.HalfExtent, b.HalfExtent)
	p.Y = Clamp(p.Y, -b.HalfExtent, b.HalfExtent)
	return p
}

// Contains reports whether p already lies within the box.
func (b Bounds) Contains(p Vec3) bool {
	return p.X >= -b.HalfExtent && p.X <= b.HalfExtent &&
		p.Y >= -b.HalfExtent && p.Y <= b.HalfExtent &&
		p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// Disc is a vertical cylinder standing on Z=Floor.
type Disc struct {
	Center Vec2
	Radius float64
	Floor  float64
	Height float64
}

// Contains reports whether p is within the disc radius and the height band.
func (d Disc) Contains(p Vec3) bool {
	onDisc := Distance2Sq(p.X, p.Y, d.Center.X, d.Center.Y) <= d.Radius*d.Radius
	inBand := p.Z >= d.Floor && p.Z <= d.Floor+d.Height
	return onDisc && inBand
}
