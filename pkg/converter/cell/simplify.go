package cell

import "github.com/brepcsg/brepcsg/pkg/converter/surface"

// Simplify reduces the definition in place to a logically equivalent form of
// equal or smaller size, using the local comparison table. It is applied
// once, never iterated to a fixpoint. A definition collapsing to the empty
// region is marked null (IsNull); collapsing to the universe is possible but
// unexpected for a bounded solid and left for the caller to log.
func Simplify(d *Definition, table *Table) {
	if d.constant != nil {
		return
	}
	result := simplifyNode(d, d.root, table)
	switch {
	case result.empty:
		d.setConstant(false)
	case result.universe:
		d.setConstant(true)
	default:
		rebuilt := &Definition{}
		rebuilt.root = rebuilt.build(result)
		d.nodes = rebuilt.nodes
		d.root = rebuilt.root
	}
}

// snode is the transient tree the single simplification pass produces before
// the arena is rebuilt. No arena node is aliased while rewriting.
type snode struct {
	op       Op
	refs     []surface.Ref
	children []*snode
	empty    bool
	universe bool
}

func (d *Definition) build(s *snode) int {
	n := node{op: s.op, refs: s.refs}
	for _, child := range s.children {
		n.children = append(n.children, d.build(child))
	}
	d.nodes = append(d.nodes, n)
	return len(d.nodes) - 1
}

func simplifyNode(d *Definition, handle int, table *Table) *snode {
	src := d.nodes[handle]
	if src.op == Union {
		return simplifyUnion(d, src, table)
	}
	return simplifyIntersection(d, src, table)
}

func simplifyIntersection(d *Definition, src node, table *Table) *snode {
	out := &snode{op: Intersection}

	for _, child := range src.children {
		simplified := simplifyNode(d, child, table)
		if simplified.empty {
			return &snode{empty: true}
		}
		if simplified.universe {
			continue
		}
		// flatten nested intersections; size is unchanged
		if simplified.op == Intersection {
			out.refs = append(out.refs, simplified.refs...)
			out.children = append(out.children, simplified.children...)
			continue
		}
		out.children = append(out.children, simplified)
	}

	refs := append(out.refs, src.refs...)
	out.refs = reduceIntersectionRefs(refs, table)
	if out.refs == nil {
		return &snode{empty: true}
	}

	if len(out.refs) == 0 && len(out.children) == 0 {
		return &snode{universe: true}
	}
	if len(out.refs) == 0 && len(out.children) == 1 {
		return out.children[0]
	}
	return out
}

// reduceIntersectionRefs drops duplicate and implied half-spaces. It returns
// nil when two half-spaces are mutually exclusive, making the intersection
// empty.
func reduceIntersectionRefs(refs []surface.Ref, table *Table) []surface.Ref {
	if refsExclude(refs, table) {
		return nil
	}
	dropped := make([]bool, len(refs))
	for j, rj := range refs {
		for i, ri := range refs {
			if i == j || dropped[i] || dropped[j] {
				continue
			}
			if ri == rj {
				// duplicate: keep the earlier occurrence
				if i < j {
					dropped[j] = true
				}
				continue
			}
			if table.Implies(ri, rj) {
				// ri is the stronger constraint; rj is redundant. On mutual
				// implication keep the earlier one.
				if !table.Implies(rj, ri) || i < j {
					dropped[j] = true
				}
			}
		}
	}
	kept := []surface.Ref{}
	for i, r := range refs {
		if !dropped[i] {
			kept = append(kept, r)
		}
	}
	return kept
}

func refsExclude(refs []surface.Ref, table *Table) bool {
	for i, ri := range refs {
		for _, rj := range refs[i+1:] {
			if table.Excludes(ri, rj) {
				return true
			}
		}
	}
	return false
}

func simplifyUnion(d *Definition, src node, table *Table) *snode {
	out := &snode{op: Union}

	for _, child := range src.children {
		simplified := simplifyNode(d, child, table)
		if simplified.universe {
			return &snode{universe: true}
		}
		if simplified.empty {
			continue
		}
		if simplified.op == Union {
			out.refs = append(out.refs, simplified.refs...)
			out.children = append(out.children, simplified.children...)
			continue
		}
		out.children = append(out.children, simplified)
	}

	refs := append(out.refs, src.refs...)
	out.refs = reduceUnionRefs(refs, table)
	if out.refs == nil {
		return &snode{universe: true}
	}

	out.children = absorbUnionBranches(out.children, out.refs, table)

	if len(out.refs) == 0 && len(out.children) == 0 {
		return &snode{empty: true}
	}
	if len(out.refs) == 0 && len(out.children) == 1 {
		return out.children[0]
	}
	return out
}

// reduceUnionRefs drops duplicate and absorbed half-spaces. It returns nil
// when two half-spaces jointly cover the region, making the union universal.
func reduceUnionRefs(refs []surface.Ref, table *Table) []surface.Ref {
	for i, ri := range refs {
		for _, rj := range refs[i+1:] {
			if table.Complementary(ri, rj) {
				return nil
			}
		}
	}
	dropped := make([]bool, len(refs))
	for j, rj := range refs {
		for i, ri := range refs {
			if i == j || dropped[i] || dropped[j] {
				continue
			}
			if ri == rj {
				if i < j {
					dropped[j] = true
				}
				continue
			}
			if table.Implies(rj, ri) {
				// rj ⊆ ri: rj adds nothing to the union
				if !table.Implies(ri, rj) || i < j {
					dropped[j] = true
				}
			}
		}
	}
	kept := []surface.Ref{}
	for i, r := range refs {
		if !dropped[i] {
			kept = append(kept, r)
		}
	}
	return kept
}

// absorbUnionBranches drops intersection branches that are contained in a
// sibling half-space or duplicate/refine a sibling branch.
func absorbUnionBranches(children []*snode, refs []surface.Ref, table *Table) []*snode {
	kept := []*snode{}
	for i, child := range children {
		absorbed := false
		if len(child.children) == 0 {
			for _, k := range child.refs {
				for _, r := range refs {
					if table.Implies(k, r) {
						absorbed = true
						break
					}
				}
				if absorbed {
					break
				}
			}
			for j, other := range children {
				if absorbed || i == j || len(other.children) > 0 {
					continue
				}
				if j < i && refSubset(other.refs, child.refs) {
					// other is a weaker branch covering child
					absorbed = true
				}
				if j > i && refSubset(other.refs, child.refs) && !refSubset(child.refs, other.refs) {
					absorbed = true
				}
			}
		}
		if !absorbed {
			kept = append(kept, child)
		}
	}
	return kept
}

func refSubset(a, b []surface.Ref) bool {
	for _, r := range a {
		if !containsRef(b, r) {
			return false
		}
	}
	return true
}
