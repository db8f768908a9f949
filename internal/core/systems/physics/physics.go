package physics

import "math"

// Lightweight spatial helpers shared by the simulation. Positions are plain
// value types; nothing here allocates.

// Vec2 is a planar vector.
type Vec2 struct{ X, Y float64 }

// Vec3 is a point or direction in the aquarium volume. Z is height.
type Vec3 struct{ X, Y, Z float64 }

func (v Vec3) Planar() Vec2 { return Vec2{X: v.X, Y: v.Y} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s} }

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Distance2 computes Euclidean distance between two planar points.
func Distance2(x1, y1, x2, y2 float64) float64 { return math.Hypot(x2-x1, y2-y1) }

// Distance2Sq is Distance2 without the square root.
func Distance2Sq(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return dx*dx + dy*dy
}

// Distance3 computes Euclidean distance between two points in space.
func Distance3(a, b Vec3) float64 {
	dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PlanarDistance ignores height.
func PlanarDistance(a, b Vec3) float64 { return Distance2(a.X, a.Y, b.X, b.Y) }

// Normalize2 returns the unit vector of (x, y) and its original length.
// Vectors shorter than eps are returned unchanged with their length.
func Normalize2(x, y, eps float64) (nx, ny, length float64) {
	length = math.Hypot(x, y)
	if length <= eps {
		return x, y, length
	}
	return x / length, y / length, length
}
