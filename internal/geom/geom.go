// Package geom has the small amount of linear algebra the HUD needs to map
// pointer positions through the camera transform.
package geom

import "math"

// Vec2 is a 2D point or size.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	dx, dy := v.X-o.X, v.Y-o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Vec4 is a homogeneous point.
type Vec4 struct {
	X, Y, Z, W float64
}

// Mat4 is a row-major 4x4 matrix. M[r][c].
type Mat4 [4][4]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a matrix translating by (x, y, z).
func Translation(x, y, z float64) Mat4 {
	m := Identity()
	m[0][3], m[1][3], m[2][3] = x, y, z
	return m
}

// Scaling returns a matrix scaling each axis.
func Scaling(x, y, z float64) Mat4 {
	m := Identity()
	m[0][0], m[1][1], m[2][2] = x, y, z
	return m
}

// RotationZ returns a counter-clockwise rotation about the Z axis.
func RotationZ(rad float64) Mat4 {
	s, c := math.Sincos(rad)
	m := Identity()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[r][k] * o[k][c]
			}
			out[r][c] = sum
		}
	}
	return out
}

// Apply returns m * v.
func (m Mat4) Apply(v Vec4) Vec4 {
	in := [4]float64{v.X, v.Y, v.Z, v.W}
	var out [4]float64
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			out[r] += m[r][k] * in[k]
		}
	}
	return Vec4{out[0], out[1], out[2], out[3]}
}

// ApplyPoint transforms the 2D point p as (p.X, p.Y, 0, 1).
func (m Mat4) ApplyPoint(p Vec2) Vec2 {
	v := m.Apply(Vec4{p.X, p.Y, 0, 1})
	return Vec2{v.X, v.Y}
}

// InverseAffine inverts a matrix whose bottom row is (0, 0, 0, 1).
// ok is false when the linear part is singular.
func (m Mat4) InverseAffine() (inv Mat4, ok bool) {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	co00 := e*i - f*h
	co01 := -(d*i - f*g)
	co02 := d*h - e*g
	det := a*co00 + b*co01 + c*co02
	if math.Abs(det) < 1e-12 {
		return Mat4{}, false
	}
	invDet := 1 / det

	// adjugate^T / det
	lin := [3][3]float64{
		{co00 * invDet, -(b*i - c*h) * invDet, (b*f - c*e) * invDet},
		{co01 * invDet, (a*i - c*g) * invDet, -(a*f - c*d) * invDet},
		{co02 * invDet, -(a*h - b*g) * invDet, (a*e - b*d) * invDet},
	}

	inv = Identity()
	for r := 0; r < 3; r++ {
		var t float64
		for k := 0; k < 3; k++ {
			inv[r][k] = lin[r][k]
			t += lin[r][k] * m[k][3]
		}
		inv[r][3] = -t
	}
	return inv, true
}
