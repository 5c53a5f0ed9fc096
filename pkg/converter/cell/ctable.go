package cell

import (
	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
	"github.com/brepcsg/brepcsg/pkg/converter/surface"
)

// Table is the simplifier's local comparison table: pairwise half-space
// relations restricted to one cell's surfaces and its local bounding region.
// It is sparse, never global.
type Table struct {
	relations map[[2]surface.Ref]surface.Relation
}

// RelationFunc supplies the geometric ground truth for one half-space pair
// within a region, typically kernel.BooleanRelation closed over a registry.
type RelationFunc func(a, b surface.Ref, region geometry.Box) surface.Relation

// BuildTable builds the comparison table for the given half-spaces over the
// cell's local region.
func BuildTable(refs []surface.Ref, region geometry.Box, relation RelationFunc) *Table {
	t := &Table{relations: map[[2]surface.Ref]surface.Relation{}}
	for i, a := range refs {
		for _, b := range refs[i+1:] {
			if a.Surface() == b.Surface() {
				continue
			}
			rel := relation(a, b, region)
			t.relations[[2]surface.Ref{a, b}] = rel
			t.relations[[2]surface.Ref{b, a}] = surface.Relation{
				Implies:       rel.ImpliedBy,
				ImpliedBy:     rel.Implies,
				Excludes:      rel.Excludes,
				Complementary: rel.Complementary,
			}
		}
	}
	return t
}

// Implies reports that inside a implies inside b within the region.
func (t *Table) Implies(a, b surface.Ref) bool {
	if a == b {
		return true
	}
	if t == nil {
		return false
	}
	return t.relations[[2]surface.Ref{a, b}].Implies
}

// Excludes reports that a and b share no region point. Opposite sides of the
// same surface always exclude each other.
func (t *Table) Excludes(a, b surface.Ref) bool {
	if a == b.Inverse() {
		return true
	}
	if t == nil {
		return false
	}
	return t.relations[[2]surface.Ref{a, b}].Excludes
}

// Complementary reports that a and b jointly cover the region. Opposite sides
// of the same surface always do.
func (t *Table) Complementary(a, b surface.Ref) bool {
	if a == b.Inverse() {
		return true
	}
	if t == nil {
		return false
	}
	return t.relations[[2]surface.Ref{a, b}].Complementary
}
