package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brepcsg/brepcsg/pkg/converter/surface"
)

func insideFromSet(members ...surface.Ref) func(surface.Ref) bool {
	set := map[surface.Ref]bool{}
	for _, r := range members {
		set[r] = true
	}
	return func(r surface.Ref) bool { return set[r] }
}

func TestDefinitionLevelAndSize(t *testing.T) {
	convex := NewDefinition(Intersection)
	convex.AddRef(-1)
	convex.AddRef(2)
	assert.Equal(t, 0, convex.Level())
	assert.Equal(t, 2, convex.Size())

	union := NewDefinition(Union)
	union.AddBranch(Intersection, -1, 2)
	union.AddBranch(Intersection, -3, 4)
	assert.Equal(t, 1, union.Level())
	assert.Equal(t, 4, union.Size())
	assert.Equal(t, []surface.Ref{-1, 2, -3, 4}, union.Refs())
	assert.Equal(t, []surface.ID{1, 2, 3, 4}, union.SurfaceIDs())
}

func TestDefinitionEvaluate(t *testing.T) {
	def := NewDefinition(Union)
	def.AddBranch(Intersection, -1, 2)
	def.AddBranch(Intersection, -3)

	assert.True(t, def.Evaluate(insideFromSet(-1, 2)))
	assert.True(t, def.Evaluate(insideFromSet(-3)))
	assert.False(t, def.Evaluate(insideFromSet(-1, 3)))
	assert.False(t, def.Evaluate(insideFromSet()))
}

func TestDefinitionComplement(t *testing.T) {
	def := NewDefinition(Union)
	def.AddBranch(Intersection, -1, 2)
	def.AddBranch(Intersection, 3)

	complement := def.Complement()

	// exercise every membership combination of the referenced half-spaces
	refs := []surface.Ref{-1, 2, 3}
	for mask := 0; mask < 1<<len(refs); mask++ {
		members := []surface.Ref{}
		for i, r := range refs {
			if mask&(1<<i) != 0 {
				members = append(members, r)
			} else {
				members = append(members, r.Inverse())
			}
		}
		inside := insideFromSet(members...)
		assert.Equal(t, !def.Evaluate(inside), complement.Evaluate(inside),
			"membership mask %d", mask)
	}
}

func TestDefinitionInjectAlongside(t *testing.T) {
	t.Run("IntersectionBranch", func(t *testing.T) {
		def := NewDefinition(Intersection)
		def.AddRef(-7)
		def.AddRef(4)

		def.InjectAlongside(-7, 9)
		assert.Equal(t, []surface.Ref{-7, 4, 9}, def.Refs())
		assert.Equal(t, 0, def.Level())

		// already present: no duplicate
		def.InjectAlongside(-7, 9)
		assert.Equal(t, 3, def.Size())
	})

	t.Run("UnionGainsAlternative", func(t *testing.T) {
		def := NewDefinition(Union)
		def.AddRef(-7)
		def.AddRef(5)

		def.InjectAlongside(-7, 9)
		assert.Equal(t, 0, def.Level())
		assert.Equal(t, []surface.Ref{-7, 5, 9}, def.Refs())
		assert.True(t, def.Evaluate(insideFromSet(9)))
		assert.False(t, def.Evaluate(insideFromSet(-9, 7, -5)))
	})
}

func TestDefinitionString(t *testing.T) {
	def := NewDefinition(Union)
	def.AddBranch(Intersection, -1, 2)
	def.AddBranch(Intersection, 3)
	assert.Equal(t, "(-1 2) : (3)", def.String())

	convex := NewDefinition(Intersection)
	convex.AddRef(-1)
	convex.AddRef(2)
	assert.Equal(t, "-1 2", convex.String())
}

func TestDefinitionTreeAndJSON(t *testing.T) {
	def := NewDefinition(Union)
	def.AddBranch(Intersection, -1, 2)

	tree := def.Tree()
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "union", tree.Op)
	assert.Equal(t, []surface.Ref{-1, 2}, tree.Children[0].Refs)

	data, err := def.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"op":"union","children":[{"op":"intersection","refs":[-1,2]}]}`,
		string(data))
}
