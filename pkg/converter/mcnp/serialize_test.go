package mcnp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brepcsg/brepcsg/pkg/converter"
	"github.com/brepcsg/brepcsg/pkg/converter/cell"
	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
	"github.com/brepcsg/brepcsg/pkg/converter/surface"
)

func TestSerialize(t *testing.T) {
	body := cell.NewDefinition(cell.Intersection)
	body.AddRef(-1)
	body.AddRef(2)

	voidDef := cell.NewDefinition(cell.Union)
	voidDef.AddBranch(cell.Intersection, 1)
	voidDef.AddBranch(cell.Intersection, -2)

	solid := &cell.Entity{ID: 1, Label: 1, Definition: body, Comment: "body"}
	void := &cell.Entity{
		ID: 2, Label: 2, Definition: voidDef,
		Comment: "outer void (cells 1)", IsVoid: true,
	}

	result := converter.Result{
		Cells: []*cell.Entity{
			solid,
			cell.NewDelimiter("---- VOID CELLS ----"),
			void,
		},
		Surfaces: []surface.Surface{
			{ID: 1, Geometry: surface.Geometry{GeometryType: surface.Plane{
				Position: geometry.Point{Z: 3},
				Normal:   geometry.Vec3D{Z: 2},
			}}},
			{ID: 2, Geometry: surface.Geometry{GeometryType: surface.Sphere{
				Center: geometry.Point{X: 1, Y: 2, Z: 3},
				Radius: 5,
			}}},
		},
		BoundingBox: geometry.Box{
			Min: geometry.Point{X: -2, Y: -2, Z: -2},
			Max: geometry.Point{X: 8, Y: 6, Z: 6},
		},
	}

	files := Serialize(result, DefaultNumericFormat)
	require.Contains(t, files, "cells")
	require.Contains(t, files, "surfaces")

	// the header carries the box corners in fixed-width columns
	assert.Equal(t,
		"c universe box       -2.       -2.       -2.        8.        6.        6.\n"+
			"1 -1 2 $ body\n"+
			"c ---- VOID CELLS ----\n"+
			"2 (1) : (-2) $ outer void (cells 1)\n",
		files["cells"])

	// the plane normal is emitted unit length
	assert.Equal(t,
		"1 P 0 0 1 3\n"+
			"2 S 1 2 3 5\n",
		files["surfaces"])
}

func TestSurfaceCardKinds(t *testing.T) {
	cards := map[string]surface.GeometryType{
		"C": surface.Cylinder{Axis: geometry.Vec3D{Z: 1}, Radius: 2},
		"K": surface.Cone{Axis: geometry.Vec3D{Z: 1}, HalfAngle: 0.5},
		"T": surface.Torus{Axis: geometry.Vec3D{Z: 1}, MajorRadius: 4, MinorRadius: 1},
	}
	for mnemonic, g := range cards {
		card := surfaceCard(g, DefaultNumericFormat)
		assert.Equal(t, mnemonic, card[:1], "kind %s", surface.KindOf(g))
	}

	assert.Equal(t, "c unsupported surface", surfaceCard(nil, DefaultNumericFormat))
}
