package kernel

import (
	"fmt"
	"math"

	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
	"github.com/brepcsg/brepcsg/pkg/converter/surface"
)

// relationSamples is the per-axis sampling resolution used to probe boolean
// relations inside a region.
const relationSamples = 8

// boundaryEps skips sample points too close to either surface, where the
// inside test is numerically ambiguous.
const boundaryEps = 1e-9

// Analytic is a Kernel over solids whose convex decomposition and face
// classification were already done on the CAD side. Geometric predicates are
// evaluated from the parametric surface equations by grid sampling.
type Analytic struct{}

// DecomposeIntoConvex returns the fragments carried by the solid. The CAD
// exporter guarantees each fragment is convex.
func (Analytic) DecomposeIntoConvex(s Solid) ([]Fragment, error) {
	if len(s.Fragments) == 0 {
		return nil, fmt.Errorf("solid carries no convex fragments")
	}
	return s.Fragments, nil
}

// ClassifyFace validates that the face geometry is one of the supported
// primitive kinds with usable parameters.
func (Analytic) ClassifyFace(f Face) (surface.GeometryType, error) {
	g := f.Geometry.GeometryType
	switch s := g.(type) {
	case surface.Plane:
		if s.Normal.Norm() == 0 {
			return nil, fmt.Errorf("plane face with zero normal")
		}
	case surface.Cylinder:
		if s.Axis.Norm() == 0 || s.Radius <= 0 {
			return nil, fmt.Errorf("degenerate cylinder face")
		}
	case surface.Cone:
		if s.Axis.Norm() == 0 || s.HalfAngle <= 0 || s.HalfAngle >= math.Pi/2 {
			return nil, fmt.Errorf("degenerate cone face")
		}
	case surface.Sphere:
		if s.Radius <= 0 {
			return nil, fmt.Errorf("degenerate sphere face")
		}
	case surface.Torus:
		if s.Axis.Norm() == 0 || s.MajorRadius <= 0 || s.MinorRadius <= 0 {
			return nil, fmt.Errorf("degenerate torus face")
		}
	default:
		return nil, fmt.Errorf("unsupported face geometry %T", g)
	}
	return g, nil
}

// BoundingBox ...
func (Analytic) BoundingBox(s Solid) geometry.Box {
	return s.BoundingBox
}

// BooleanRelation reports which pairwise half-space implications hold inside
// the region. Parallel plane pairs are resolved analytically on their common
// axis; every other pair is evaluated on a regular sample grid. A sampled
// relation is only asserted when supporting samples existed on both sides, so
// geometry thinner than the grid spacing degrades to unrelated instead of a
// false exclusion.
func (Analytic) BooleanRelation(
	a, b surface.Ref, region geometry.Box, reg *surface.Registry,
) surface.Relation {
	sa := reg.Get(a.Surface())
	sb := reg.Get(b.Surface())
	if sa == nil || sb == nil {
		return surface.Relation{}
	}

	ga := sa.Geometry.GeometryType
	gb := sb.Geometry.GeometryType
	if pa, okA := ga.(surface.Plane); okA {
		if pb, okB := gb.(surface.Plane); okB {
			if rel, parallel := parallelPlaneRelation(
				pa, a.Positive(), pb, b.Positive(), region,
			); parallel {
				return rel
			}
		}
	}

	rel := surface.Relation{Implies: true, ImpliedBy: true, Excludes: true, Complementary: true}
	var insideA, insideB, outsideA, outsideB int
	n := relationSamples
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				p := region.Sample(
					(float64(i)+0.5)/float64(n),
					(float64(j)+0.5)/float64(n),
					(float64(k)+0.5)/float64(n),
				)
				fa := surface.Evaluate(ga, p)
				fb := surface.Evaluate(gb, p)
				if math.Abs(fa) < boundaryEps || math.Abs(fb) < boundaryEps {
					continue
				}
				inA := (fa > 0) == a.Positive()
				inB := (fb > 0) == b.Positive()
				if inA {
					insideA++
				} else {
					outsideA++
				}
				if inB {
					insideB++
				} else {
					outsideB++
				}
				if inA && !inB {
					rel.Implies = false
				}
				if inB && !inA {
					rel.ImpliedBy = false
				}
				if inA && inB {
					rel.Excludes = false
				}
				if !inA && !inB {
					rel.Complementary = false
				}
			}
		}
	}

	// a relation with no supporting samples on one of its sides is vacuous
	if insideA == 0 {
		rel.Implies = false
		rel.Excludes = false
	}
	if insideB == 0 {
		rel.ImpliedBy = false
		rel.Excludes = false
	}
	if outsideA == 0 || outsideB == 0 {
		rel.Complementary = false
	}
	return rel
}

// span is a 1D interval on the common axis of two parallel planes, clipped to
// the region's support.
type span struct {
	lo, hi float64
}

func (s span) empty() bool {
	return s.lo >= s.hi
}

func (s span) within(o span) bool {
	return s.lo >= o.lo && s.hi <= o.hi
}

// parallelPlaneRelation resolves the relation of two parallel plane
// half-spaces exactly by projecting the region onto their common normal. The
// second result is false when the planes are not parallel.
func parallelPlaneRelation(
	pa surface.Plane, aPositive bool,
	pb surface.Plane, bPositive bool,
	region geometry.Box,
) (surface.Relation, bool) {
	na := pa.Normal.Normalized()
	nb := pb.Normal.Normalized()
	if !na.IsParallel(nb, boundaryEps) {
		return surface.Relation{}, false
	}

	lo, hi := projectBox(region, na)
	origin := geometry.Point{}
	sameOrientation := na.Dot(nb) > 0

	spanA := halfSpan(aPositive, na.Dot(pa.Position.Sub(origin)), lo, hi)
	spanB := halfSpan(bPositive == sameOrientation, na.Dot(pb.Position.Sub(origin)), lo, hi)

	rel := surface.Relation{
		Implies:   spanA.empty() || spanA.within(spanB),
		ImpliedBy: spanB.empty() || spanB.within(spanA),
		Excludes: spanA.empty() || spanB.empty() ||
			spanA.hi <= spanB.lo || spanB.hi <= spanA.lo,
	}
	switch {
	case spanA.empty():
		rel.Complementary = spanB.lo <= lo && spanB.hi >= hi
	case spanB.empty():
		rel.Complementary = spanA.lo <= lo && spanA.hi >= hi
	default:
		rel.Complementary = math.Min(spanA.lo, spanB.lo) <= lo &&
			math.Max(spanA.hi, spanB.hi) >= hi &&
			math.Max(spanA.lo, spanB.lo) <= math.Min(spanA.hi, spanB.hi)
	}
	return rel, true
}

// halfSpan clips the half-line above (or below) cut to the region support.
func halfSpan(above bool, cut, lo, hi float64) span {
	if above {
		return span{lo: math.Max(cut, lo), hi: hi}
	}
	return span{lo: lo, hi: math.Min(cut, hi)}
}

// projectBox returns the support interval of the box along the unit axis.
func projectBox(b geometry.Box, axis geometry.Vec3D) (lo, hi float64) {
	for _, bounds := range [3][3]float64{
		{axis.X, b.Min.X, b.Max.X},
		{axis.Y, b.Min.Y, b.Max.Y},
		{axis.Z, b.Min.Z, b.Max.Z},
	} {
		a := bounds[0] * bounds[1]
		c := bounds[0] * bounds[2]
		lo += math.Min(a, c)
		hi += math.Max(a, c)
	}
	return lo, hi
}

// InsideFunc returns a point-membership test over registered half-spaces,
// usable to evaluate cell definitions at a point.
func InsideFunc(reg *surface.Registry, p geometry.Point) func(surface.Ref) bool {
	return func(r surface.Ref) bool {
		s := reg.Get(r.Surface())
		if s == nil {
			return false
		}
		return (surface.Evaluate(s.Geometry.GeometryType, p) > 0) == r.Positive()
	}
}
