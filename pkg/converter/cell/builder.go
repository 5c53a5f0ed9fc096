package cell

import (
	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
	"github.com/brepcsg/brepcsg/pkg/converter/kernel"
	"github.com/brepcsg/brepcsg/pkg/converter/surface"
)

// interiorSamples is the per-axis grid resolution used to find a point
// inside a fragment when deciding which cone nappe it occupies.
const interiorSamples = 12

// ConePatch pairs a cone half-space with the auxiliary apex plane that
// singles out the intended nappe.
type ConePatch struct {
	Cone  surface.Ref `json:"cone"`
	Plane surface.Ref `json:"plane"`
}

// ConeRecord lists the cone patches recorded for one solid while building
// its definition. Consumed later by the cone post-processor, with signs
// inverted for derived void cells.
type ConeRecord []ConePatch

// BuildDefinition converts the convex decomposition of one solid into its
// boolean cell definition. Every fragment becomes a level-0 intersection of
// signed half-spaces through the registry; multiple fragments are joined by
// union. Faces that cannot be classified raise the warning flag and are
// skipped, keeping the pipeline total; the caller owns exporting the
// offending solid for inspection. The box must be the solid's own bounding
// box, it anchors the interior scan deciding cone nappe sides.
func BuildDefinition(
	fragments []kernel.Fragment, reg *surface.Registry, box geometry.Box,
) (*Definition, ConeRecord, bool) {
	warning := false
	cones := ConeRecord{}

	branches := make([][]surface.Ref, 0, len(fragments))
	for _, fragment := range fragments {
		refs := []surface.Ref{}
		for _, face := range fragment.Faces {
			g := face.Geometry.GeometryType
			if surface.KindOf(g) == "" {
				warning = true
				continue
			}
			id, reversed := reg.Register(g)
			positive := face.Sense > 0
			if reversed {
				positive = !positive
			}
			ref := surface.MakeRef(id, positive)
			refs = append(refs, ref)

			if cone, isCone := g.(surface.Cone); isCone {
				patch, ok := coneApexPlane(cone, ref, fragment, reg, box)
				if !ok {
					warning = true
				}
				cones = append(cones, patch)
			}
		}
		branches = append(branches, refs)
	}

	if len(branches) == 1 {
		def := NewDefinition(Intersection)
		for _, r := range branches[0] {
			def.AddRef(r)
		}
		return def, cones, warning
	}

	def := NewDefinition(Union)
	for _, refs := range branches {
		def.AddBranch(Intersection, refs...)
	}
	return def, cones, warning
}

// coneApexPlane registers the plane through the cone apex normal to its axis
// and picks the side matching the nappe the fragment occupies. Without an
// interior sample point the positive nappe is assumed and the warning flag
// raised.
func coneApexPlane(
	cone surface.Cone, coneRef surface.Ref, fragment kernel.Fragment,
	reg *surface.Registry, box geometry.Box,
) (ConePatch, bool) {
	id, reversed := reg.Register(surface.Plane{Position: cone.Apex, Normal: cone.Axis})

	positive := true
	p, found := interiorPoint(fragment, box)
	if found {
		positive = cone.Axis.Normalized().Dot(p.Sub(cone.Apex)) > 0
	}
	if reversed {
		positive = !positive
	}
	return ConePatch{Cone: coneRef, Plane: surface.MakeRef(id, positive)}, found
}

// interiorPoint scans a grid over the solid's bounding box for a point
// strictly inside the fragment.
func interiorPoint(fragment kernel.Fragment, box geometry.Box) (geometry.Point, bool) {
	inside := func(p geometry.Point) bool {
		for _, face := range fragment.Faces {
			g := face.Geometry.GeometryType
			if surface.KindOf(g) == "" {
				continue
			}
			if (surface.Evaluate(g, p) > 0) != (face.Sense > 0) {
				return false
			}
		}
		return true
	}

	if p := box.Center(); inside(p) {
		return p, true
	}
	n := interiorSamples
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				p := box.Sample(
					(float64(i)+0.5)/float64(n),
					(float64(j)+0.5)/float64(n),
					(float64(k)+0.5)/float64(n),
				)
				if inside(p) {
					return p, true
				}
			}
		}
	}
	return geometry.Point{}, false
}
