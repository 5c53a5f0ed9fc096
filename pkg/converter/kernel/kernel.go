// Package kernel defines the solid-kernel capability the cell synthesis
// pipeline consumes, together with an analytic implementation over the
// supported primitive surface kinds.
package kernel

import (
	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
	"github.com/brepcsg/brepcsg/pkg/converter/surface"
)

// Face is one bounding face of a convex fragment, already classified into a
// surface kind. Sense tells on which side of the surface the fragment
// interior lies: -1 for the negative half-space, 1 for the positive one.
type Face struct {
	Geometry surface.Geometry `json:"geometry"`
	Sense    int              `json:"sense"`
}

// Fragment is one convex piece of a decomposed solid. Its region is the
// intersection of its faces' half-spaces.
type Fragment struct {
	Faces []Face `json:"faces"`
}

// Solid is the kernel-side view of one CAD solid: its convex decomposition
// and its bounding box, both produced by the CAD side.
type Solid struct {
	Fragments   []Fragment   `json:"fragments"`
	BoundingBox geometry.Box `json:"boundingBox"`
}

// Kernel is the external CAD capability. The geometric boolean predicates it
// provides are the ground truth the cell synthesis builds on.
type Kernel interface {
	// DecomposeIntoConvex returns the convex fragments of a solid.
	DecomposeIntoConvex(s Solid) ([]Fragment, error)

	// ClassifyFace validates a face classification, returning an error for
	// geometry the engine does not model.
	ClassifyFace(f Face) (surface.GeometryType, error)

	// BoundingBox returns the axis-aligned bounding box of a solid.
	BoundingBox(s Solid) geometry.Box

	// BooleanRelation reports how two registered half-spaces relate inside
	// the region. Used to build the simplifier's comparison table.
	BooleanRelation(a, b surface.Ref, region geometry.Box, reg *surface.Registry) surface.Relation
}
