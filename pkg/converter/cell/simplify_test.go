package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
	"github.com/brepcsg/brepcsg/pkg/converter/kernel"
	"github.com/brepcsg/brepcsg/pkg/converter/surface"
)

func analyticRelation(reg *surface.Registry) RelationFunc {
	k := kernel.Analytic{}
	return func(a, b surface.Ref, region geometry.Box) surface.Relation {
		return k.BooleanRelation(a, b, region, reg)
	}
}

// simplifyRegistry registers the planes the tests below refer to by id:
// 1: x=1, 2: x=2, 3: y=1, 4: x=0.5, all with positive-axis normals so the
// negative ref selects the lower half-space.
func simplifyRegistry(t *testing.T) *surface.Registry {
	t.Helper()
	reg := surface.NewRegistry(0, surface.DefaultTolerances)
	planes := []surface.Plane{
		{Position: geometry.Point{X: 1}, Normal: geometry.Vec3D{X: 1}},
		{Position: geometry.Point{X: 2}, Normal: geometry.Vec3D{X: 1}},
		{Position: geometry.Point{Y: 1}, Normal: geometry.Vec3D{Y: 1}},
		{Position: geometry.Point{X: 0.5}, Normal: geometry.Vec3D{X: 1}},
	}
	for _, p := range planes {
		_, _ = reg.Register(p)
	}
	return reg
}

var simplifyRegion = geometry.Box{Max: geometry.Point{X: 1.5, Y: 1.5, Z: 1.5}}

func TestSimplifyDropsImpliedHalfSpace(t *testing.T) {
	reg := simplifyRegistry(t)

	// x<1 already implies x<2 everywhere in the region
	def := NewDefinition(Intersection)
	def.AddRef(-1)
	def.AddRef(-2)
	def.AddRef(-3)

	table := BuildTable(def.Refs(), simplifyRegion, analyticRelation(reg))
	Simplify(def, table)

	assert.Equal(t, []surface.Ref{-1, -3}, def.Refs())
	assert.False(t, def.IsNull())
}

func TestSimplifyExclusionYieldsNull(t *testing.T) {
	reg := simplifyRegistry(t)

	// x>1 and x<0.5 share no point
	def := NewDefinition(Intersection)
	def.AddRef(1)
	def.AddRef(-4)

	table := BuildTable(def.Refs(), simplifyRegion, analyticRelation(reg))
	Simplify(def, table)

	assert.True(t, def.IsNull())
	assert.False(t, def.Evaluate(kernel.InsideFunc(reg, geometry.Point{X: 0.2})))
}

func TestSimplifyComplementaryUnionIsUniverse(t *testing.T) {
	reg := simplifyRegistry(t)

	// x<1 and x>0.5 jointly cover the region
	def := NewDefinition(Union)
	def.AddRef(-1)
	def.AddRef(4)

	table := BuildTable(def.Refs(), simplifyRegion, analyticRelation(reg))
	Simplify(def, table)

	assert.True(t, def.IsUniverse())
	assert.True(t, def.Evaluate(kernel.InsideFunc(reg, geometry.Point{X: 1.2})))
}

func TestSimplifyAbsorbsDuplicateBranches(t *testing.T) {
	def := NewDefinition(Union)
	def.AddBranch(Intersection, -1, -3)
	def.AddBranch(Intersection, -1, -3)
	def.AddBranch(Intersection, -1, -3, -2)

	// a nil table still resolves same-surface and subset reductions
	Simplify(def, nil)

	assert.Equal(t, 2, def.Size())
	assert.Equal(t, []surface.Ref{-1, -3}, def.Refs())
}

func TestSimplifyPreservesSemantics(t *testing.T) {
	reg := simplifyRegistry(t)

	def := NewDefinition(Union)
	def.AddBranch(Intersection, -1, -3)
	def.AddBranch(Intersection, 1, -2, -3)
	sizeBefore := def.Size()

	coords := []float64{0.2, 0.6, 1.2, 1.4}
	type sample struct {
		p      geometry.Point
		inside bool
	}
	samples := []sample{}
	for _, x := range coords {
		for _, y := range coords {
			p := geometry.Point{X: x, Y: y, Z: 0.5}
			samples = append(samples, sample{p, def.Evaluate(kernel.InsideFunc(reg, p))})
		}
	}

	table := BuildTable(def.Refs(), simplifyRegion, analyticRelation(reg))
	Simplify(def, table)

	assert.LessOrEqual(t, def.Size(), sizeBefore)
	for _, s := range samples {
		assert.Equal(t, s.inside, def.Evaluate(kernel.InsideFunc(reg, s.p)),
			"membership changed at %+v", s.p)
	}
}
