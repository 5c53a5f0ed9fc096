package surface

// Ref is a signed half-space reference. The absolute value is the surface id;
// the sign selects the side (positive: Evaluate > 0).
type Ref int64

// MakeRef ...
func MakeRef(id ID, positive bool) Ref {
	if positive {
		return Ref(id)
	}
	return Ref(-id)
}

// Surface returns the referenced surface id.
func (r Ref) Surface() ID {
	if r < 0 {
		return ID(-r)
	}
	return ID(r)
}

// Positive ...
func (r Ref) Positive() bool {
	return r > 0
}

// Inverse returns the opposite side of the same surface.
func (r Ref) Inverse() Ref {
	return -r
}

// Relation describes how two half-spaces relate within a region of interest.
// It backs the simplifier's local comparison table.
type Relation struct {
	// Implies: every region point inside A is inside B.
	Implies bool
	// ImpliedBy: every region point inside B is inside A.
	ImpliedBy bool
	// Excludes: no region point is inside both.
	Excludes bool
	// Complementary: every region point is inside A or B.
	Complementary bool
}
