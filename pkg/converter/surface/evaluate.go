package surface

import (
	"math"

	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
)

// Evaluate returns the signed value of the surface equation at p. The
// positive half-space of a surface is where Evaluate > 0; a negative
// half-space reference selects Evaluate < 0. A cone evaluates negative inside
// either nappe, matching the full quadric the target codes model.
func Evaluate(g GeometryType, p geometry.Point) float64 {
	switch s := g.(type) {
	case Plane:
		return s.Normal.Normalized().Dot(p.Sub(s.Position))
	case Cylinder:
		axis := s.Axis.Normalized()
		d := p.Sub(s.Center)
		return d.Sub(axis.Scale(d.Dot(axis))).Norm() - s.Radius
	case Cone:
		axis := s.Axis.Normalized()
		d := p.Sub(s.Apex)
		axial := d.Dot(axis)
		radial := d.Sub(axis.Scale(axial)).Norm()
		return radial - math.Abs(axial)*math.Tan(s.HalfAngle)
	case Sphere:
		return p.Sub(s.Center).Norm() - s.Radius
	case Torus:
		axis := s.Axis.Normalized()
		d := p.Sub(s.Center)
		axial := d.Dot(axis)
		radial := d.Sub(axis.Scale(axial)).Norm()
		dr := radial - s.MajorRadius
		return math.Sqrt(dr*dr+axial*axial) - s.MinorRadius
	default:
		return math.NaN()
	}
}
