package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
)

func TestRegistryRegister(t *testing.T) {
	t.Run("SameSurfaceSameID", func(t *testing.T) {
		reg := NewRegistry(0, DefaultTolerances)

		first, reversed := reg.Register(Plane{
			Position: geometry.Point{X: 1},
			Normal:   geometry.Vec3D{X: 1},
		})
		assert.Equal(t, ID(1), first)
		assert.False(t, reversed)

		second, reversed := reg.Register(Plane{
			Position: geometry.Point{X: 1 + 1e-6, Y: 7},
			Normal:   geometry.Vec3D{X: 1},
		})
		assert.Equal(t, first, second)
		assert.False(t, reversed)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("BeyondToleranceDistinctID", func(t *testing.T) {
		reg := NewRegistry(0, DefaultTolerances)

		first, _ := reg.Register(Plane{Normal: geometry.Vec3D{X: 1}})
		second, _ := reg.Register(Plane{
			Position: geometry.Point{X: 0.5},
			Normal:   geometry.Vec3D{X: 1},
		})
		assert.NotEqual(t, first, second)
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("ReversedPlaneMatch", func(t *testing.T) {
		reg := NewRegistry(0, DefaultTolerances)

		first, _ := reg.Register(Plane{
			Position: geometry.Point{Z: 2},
			Normal:   geometry.Vec3D{Z: 1},
		})
		second, reversed := reg.Register(Plane{
			Position: geometry.Point{Z: 2},
			Normal:   geometry.Vec3D{Z: -1},
		})
		assert.Equal(t, first, second)
		assert.True(t, reversed)
	})

	t.Run("KindsNeverCollide", func(t *testing.T) {
		reg := NewRegistry(0, DefaultTolerances)

		sphereID, _ := reg.Register(Sphere{Radius: 1})
		cylinderID, _ := reg.Register(Cylinder{Axis: geometry.Vec3D{Z: 1}, Radius: 1})
		assert.NotEqual(t, sphereID, cylinderID)
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("CylinderWithinTolerance", func(t *testing.T) {
		reg := NewRegistry(0, DefaultTolerances)

		first, _ := reg.Register(Cylinder{
			Center: geometry.Point{X: 1},
			Axis:   geometry.Vec3D{Z: 1},
			Radius: 2,
		})
		// same axis line, different anchor point along it
		second, _ := reg.Register(Cylinder{
			Center: geometry.Point{X: 1, Z: 10},
			Axis:   geometry.Vec3D{Z: 1},
			Radius: 2 + 1e-6,
		})
		assert.Equal(t, first, second)
	})

	t.Run("NumberingOffset", func(t *testing.T) {
		reg := NewRegistry(100, DefaultTolerances)

		id, _ := reg.Register(Sphere{Radius: 3})
		assert.Equal(t, ID(101), id)
	})
}

func TestRegistrySurfaces(t *testing.T) {
	reg := NewRegistry(0, DefaultTolerances)

	_, _ = reg.Register(Sphere{Radius: 1})
	_, _ = reg.Register(Plane{Normal: geometry.Vec3D{X: 1}})
	_, _ = reg.Register(Torus{Axis: geometry.Vec3D{Z: 1}, MajorRadius: 5, MinorRadius: 1})

	surfaces := reg.Surfaces()
	require.Len(t, surfaces, 3)
	for i, s := range surfaces {
		assert.Equal(t, ID(i+1), s.ID)
	}

	require.NotNil(t, reg.Get(2))
	assert.Equal(t, "plane", KindOf(reg.Get(2).Geometry.GeometryType))
	assert.Nil(t, reg.Get(99))
}
