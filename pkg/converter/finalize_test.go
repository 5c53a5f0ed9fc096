package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brepcsg/brepcsg/pkg/converter/cell"
)

func namedEntity(id int64, comment string) *cell.Entity {
	return &cell.Entity{ID: id, Comment: comment}
}

func TestFinalizeFlat(t *testing.T) {
	solids := []*cell.Entity{
		namedEntity(5, "body"),
		namedEntity(7, "vanished"),
		namedEntity(9, "shield"),
	}
	solids[1].NullCell = true

	voids := []*cell.Entity{
		{ID: 12, Comment: "outer void", IsVoid: true, AdjacentIDs: []int64{5, 7, 9}},
		{ID: 13, Comment: "void of enclosure 3", IsVoid: true, NullCell: true},
	}

	ordered := finalize(solids, voids, 0, false, AttributeOutermost)

	require.Len(t, ordered, 4)
	assert.Equal(t, int64(1), ordered[0].Label)
	assert.Equal(t, int64(2), ordered[1].Label)
	assert.Equal(t, "shield", ordered[1].Comment)
	assert.True(t, ordered[2].IsDelimiter)
	assert.Equal(t, int64(3), ordered[3].Label)

	// the pruned NullCell consumed no label and left no cross-reference
	assert.Equal(t, "outer void (cells 1 2)", ordered[3].Comment)
}

func TestFinalizeOffset(t *testing.T) {
	ordered := finalize([]*cell.Entity{namedEntity(1, "")}, nil, 99, false, AttributeOutermost)

	require.NotEmpty(t, ordered)
	assert.Equal(t, int64(100), ordered[0].Label)
}

func TestFinalizeEnclosureGrouping(t *testing.T) {
	enclosure := namedEntity(10, "enclosure")
	enclosure.IsEnclosure = true

	free := namedEntity(1, "free solid")
	inner1 := namedEntity(2, "inner one")
	inner1.EnclosureIDs = []int64{10}
	inner2 := namedEntity(3, "inner two")
	inner2.EnclosureIDs = []int64{10}

	cells := []*cell.Entity{free, enclosure, inner1, inner2}
	voids := []*cell.Entity{
		{ID: 20, Comment: "void of enclosure 10", IsVoid: true,
			EnclosureIDs: []int64{10}, AdjacentIDs: []int64{2, 3}},
		{ID: 21, Comment: "outer void", IsVoid: true, AdjacentIDs: []int64{10}},
	}

	ordered := finalize(cells, voids, 0, true, AttributeOutermost)

	// free solid, enclosure open, attributed solids, local void, enclosure
	// close, void block, outer void
	require.Len(t, ordered, 8)
	assert.Equal(t, free, ordered[0])
	assert.True(t, ordered[1].IsDelimiter)
	assert.Equal(t, inner1, ordered[2])
	assert.Equal(t, inner2, ordered[3])
	assert.Equal(t, voids[0], ordered[4])
	assert.True(t, ordered[5].IsDelimiter)
	assert.True(t, ordered[6].IsDelimiter)
	assert.Equal(t, voids[1], ordered[7])

	assert.Equal(t, []int64{1, 2, 3, 4, 5},
		[]int64{free.Label, inner1.Label, inner2.Label, voids[0].Label, voids[1].Label})

	assert.Equal(t, "void of enclosure 10 (cells 2 3)", voids[0].Comment)
	// the enclosure itself carries no label, so the outer void keeps its
	// comment untouched
	assert.Equal(t, "outer void", voids[1].Comment)
}

func TestAttributeSolids(t *testing.T) {
	outer := namedEntity(10, "")
	outer.IsEnclosure = true
	nested := namedEntity(11, "")
	nested.IsEnclosure = true
	nested.EnclosureIDs = []int64{10}

	solid := namedEntity(1, "")
	solid.EnclosureIDs = []int64{11, 10}

	cells := []*cell.Entity{outer, nested, solid}

	assert.Equal(t, int64(10), attributeSolids(cells, AttributeOutermost)[1])
	assert.Equal(t, int64(11), attributeSolids(cells, AttributeFirst)[1])
}
