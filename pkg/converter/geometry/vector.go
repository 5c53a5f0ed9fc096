// Package geometry provides the point, vector and box primitives used by the
// cell synthesis pipeline.
package geometry

import "math"

// Point represent a point in 3D space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3D represent a vector in 3D space.
type Vec3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec3D {
	return Vec3D{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Sub ...
func (v Vec3D) Sub(w Vec3D) Vec3D {
	return Vec3D{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale ...
func (v Vec3D) Scale(s float64) Vec3D {
	return Vec3D{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot ...
func (v Vec3D) Dot(w Vec3D) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross ...
func (v Vec3D) Cross(w Vec3D) Vec3D {
	return Vec3D{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Norm ...
func (v Vec3D) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3D) Normalized() Vec3D {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// IsParallel reports whether v and w point in the same or opposite direction
// within the angular tolerance. Both vectors must be unit length.
func (v Vec3D) IsParallel(w Vec3D, angularTolerance float64) bool {
	return v.Cross(w).Norm() <= angularTolerance
}

// IsSameDirection reports whether unit vectors v and w point in the same
// direction within the angular tolerance.
func (v Vec3D) IsSameDirection(w Vec3D, angularTolerance float64) bool {
	return v.IsParallel(w, angularTolerance) && v.Dot(w) > 0
}
