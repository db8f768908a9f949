package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(5, -1, 1))
	assert.Equal(t, -1.0, Clamp(-5, -1, 1))
	assert.Equal(t, 0.25, Clamp(0.25, -1, 1))
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{HalfExtent: 570, MinZ: 20, MaxZ: 410}

	p := b.Clamp(Vec3{X: 1000, Y: -1000, Z: 0})
	require.Equal(t, Vec3{X: 570, Y: -570, Z: 20}, p)
	require.True(t, b.Contains(p))

	p = b.Clamp(Vec3{X: 3, Y: 4, Z: 999})
	require.Equal(t, Vec3{X: 3, Y: 4, Z: 410}, p)

	p = b.ClampPlanar(Vec3{X: 900, Y: 0, Z: 999})
	require.Equal(t, Vec3{X: 570, Y: 0, Z: 999}, p)
	require.False(t, b.Contains(p))
}

func TestDistances(t *testing.T) {
	assert.InDelta(t, 5.0, Distance2(0, 0, 3, 4), 1e-12)
	assert.InDelta(t, 25.0, Distance2Sq(0, 0, 3, 4), 1e-12)
	assert.InDelta(t, math.Sqrt(50), Distance3(Vec3{}, Vec3{X: 3, Y: 4, Z: 5}), 1e-12)
	assert.InDelta(t, 5.0, PlanarDistance(Vec3{Z: 100}, Vec3{X: 3, Y: 4, Z: -7}), 1e-12)
}

func TestNormalize2(t *testing.T) {
	nx, ny, l := Normalize2(1, 1, 1e-6)
	assert.InDelta(t, math.Sqrt2, l, 1e-12)
	assert.InDelta(t, 1.0, math.Hypot(nx, ny), 1e-12)

	nx, ny, l = Normalize2(0, 0, 1e-6)
	assert.Zero(t, nx)
	assert.Zero(t, ny)
	assert.Zero(t, l)
}

func TestDiscContains(t *testing.T) {
	d := Disc{Center: Vec2{X: 220, Y: -180}, Radius: 120, Height: 90}

	assert.True(t, d.Contains(Vec3{X: 220, Y: -180, Z: 40}))
	assert.True(t, d.Contains(Vec3{X: 340, Y: -180, Z: 90}))
	assert.False(t, d.Contains(Vec3{X: 341, Y: -180, Z: 40}))
	assert.False(t, d.Contains(Vec3{X: 220, Y: -180, Z: 91}))
	assert.False(t, d.Contains(Vec3{X: 220, Y: -180, Z: -1}))
}
