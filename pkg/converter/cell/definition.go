// Package cell builds, simplifies and evaluates boolean cell definitions
// over signed surface references.
package cell

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brepcsg/brepcsg/pkg/converter/surface"
)

// Op is a boolean operator of a definition node.
type Op int

const (
	// Intersection of half-spaces and child expressions.
	Intersection Op = iota
	// Union of half-spaces and child expressions.
	Union
)

var mapOpToJSON = map[Op]string{
	Intersection: "intersection",
	Union:        "union",
}

// node is one arena entry. A node owns leaf refs plus child node handles; no
// node is shared between definitions or reachable twice, so in-place
// rewriting cannot alias.
type node struct {
	op       Op
	refs     []surface.Ref
	children []int
}

// Definition is a boolean cell definition stored as an arena of nodes
// indexed by integer handles. The boolean complement never appears as an
// operator node: it is normalized away by De Morgan sign-flipping (see
// Complement).
type Definition struct {
	nodes []node
	root  int

	// constant is set when simplification collapses the whole expression:
	// false = empty region (NullCell), true = universe.
	constant *bool
}

// NewDefinition creates a definition with an empty root node.
func NewDefinition(op Op) *Definition {
	return &Definition{nodes: []node{{op: op}}, root: 0}
}

// AddRef appends a half-space reference to the root node.
func (d *Definition) AddRef(r surface.Ref) {
	d.nodes[d.root].refs = append(d.nodes[d.root].refs, r)
}

// AddBranch appends a child node under the root and returns its handle.
func (d *Definition) AddBranch(op Op, refs ...surface.Ref) int {
	d.nodes = append(d.nodes, node{op: op, refs: refs})
	handle := len(d.nodes) - 1
	d.nodes[d.root].children = append(d.nodes[d.root].children, handle)
	return handle
}

// AppendDefinition grafts a copy of o under d's root node.
func (d *Definition) AppendDefinition(o *Definition) {
	handle := d.graft(o, o.root)
	d.nodes[d.root].children = append(d.nodes[d.root].children, handle)
}

func (d *Definition) graft(o *Definition, handle int) int {
	src := o.nodes[handle]
	copied := node{op: src.op, refs: append([]surface.Ref{}, src.refs...)}
	for _, child := range src.children {
		copied.children = append(copied.children, d.graft(o, child))
	}
	d.nodes = append(d.nodes, copied)
	return len(d.nodes) - 1
}

// Level is the operator nesting depth: 0 means a pure intersection of
// half-spaces, i.e. a single convex region.
func (d *Definition) Level() int {
	if d.constant != nil {
		return 0
	}
	return d.levelOf(d.root)
}

func (d *Definition) levelOf(handle int) int {
	level := 0
	for _, child := range d.nodes[handle].children {
		if l := d.levelOf(child) + 1; l > level {
			level = l
		}
	}
	return level
}

// Size is the number of half-space leaves, the complexity measure the
// simplifier must not increase.
func (d *Definition) Size() int {
	if d.constant != nil {
		return 0
	}
	size := 0
	d.walk(d.root, func(n *node) {
		size += len(n.refs)
	})
	return size
}

// Refs returns the distinct half-space references in first-seen order.
func (d *Definition) Refs() []surface.Ref {
	if d.constant != nil {
		return nil
	}
	seen := map[surface.Ref]bool{}
	refs := []surface.Ref{}
	d.walk(d.root, func(n *node) {
		for _, r := range n.refs {
			if !seen[r] {
				seen[r] = true
				refs = append(refs, r)
			}
		}
	})
	return refs
}

// SurfaceIDs returns the distinct surfaces referenced, ignoring sign.
func (d *Definition) SurfaceIDs() []surface.ID {
	seen := map[surface.ID]bool{}
	ids := []surface.ID{}
	for _, r := range d.Refs() {
		if !seen[r.Surface()] {
			seen[r.Surface()] = true
			ids = append(ids, r.Surface())
		}
	}
	return ids
}

func (d *Definition) walk(handle int, visit func(*node)) {
	visit(&d.nodes[handle])
	for _, child := range d.nodes[handle].children {
		d.walk(child, visit)
	}
}

// Evaluate tests point membership given a half-space membership oracle.
func (d *Definition) Evaluate(inside func(surface.Ref) bool) bool {
	if d.constant != nil {
		return *d.constant
	}
	return d.evaluate(d.root, inside)
}

func (d *Definition) evaluate(handle int, inside func(surface.Ref) bool) bool {
	n := &d.nodes[handle]
	switch n.op {
	case Union:
		for _, r := range n.refs {
			if inside(r) {
				return true
			}
		}
		for _, child := range n.children {
			if d.evaluate(child, inside) {
				return true
			}
		}
		return false
	default:
		for _, r := range n.refs {
			if !inside(r) {
				return false
			}
		}
		for _, child := range n.children {
			if !d.evaluate(child, inside) {
				return false
			}
		}
		return true
	}
}

// Complement returns the set complement as a new definition, pushing the
// complement down to sign-flipped leaves by De Morgan.
func (d *Definition) Complement() *Definition {
	if d.constant != nil {
		c := !*d.constant
		out := NewDefinition(Intersection)
		out.constant = &c
		return out
	}
	out := &Definition{}
	out.root = out.complement(d, d.root)
	return out
}

func (out *Definition) complement(d *Definition, handle int) int {
	src := d.nodes[handle]
	flipped := node{op: Union}
	if src.op == Union {
		flipped.op = Intersection
	}
	for _, r := range src.refs {
		flipped.refs = append(flipped.refs, r.Inverse())
	}
	for _, child := range src.children {
		flipped.children = append(flipped.children, out.complement(d, child))
	}
	out.nodes = append(out.nodes, flipped)
	return len(out.nodes) - 1
}

// InjectAlongside adds the extra half-space next to every occurrence of
// target, appended to the node containing it. In an intersection the pair
// reads target AND extra; in a union the extra joins as an alternative,
// which is the De Morgan image of the intersection case. Used by the cone
// post-processor.
func (d *Definition) InjectAlongside(target, extra surface.Ref) {
	if d.constant != nil {
		return
	}
	for handle := range d.nodes {
		n := &d.nodes[handle]
		if !containsRef(n.refs, target) {
			continue
		}
		if !containsRef(n.refs, extra) {
			n.refs = append(n.refs, extra)
		}
	}
}

func containsRef(refs []surface.Ref, r surface.Ref) bool {
	for _, ref := range refs {
		if ref == r {
			return true
		}
	}
	return false
}

// IsNull reports that the definition denotes the empty region.
func (d *Definition) IsNull() bool {
	return d.constant != nil && !*d.constant
}

// IsUniverse reports that the definition denotes all space.
func (d *Definition) IsUniverse() bool {
	return d.constant != nil && *d.constant
}

func (d *Definition) setConstant(value bool) {
	d.constant = &value
	d.nodes = []node{{op: Intersection}}
	d.root = 0
}

// Node is the exported, serializable view of a definition subtree.
type Node struct {
	Op       string        `json:"op"`
	Refs     []surface.Ref `json:"refs,omitempty"`
	Children []Node        `json:"children,omitempty"`
}

// Tree materializes the definition as a nested node view.
func (d *Definition) Tree() Node {
	return d.tree(d.root)
}

func (d *Definition) tree(handle int) Node {
	n := d.nodes[handle]
	out := Node{Op: mapOpToJSON[n.op], Refs: append([]surface.Ref{}, n.refs...)}
	for _, child := range n.children {
		out.Children = append(out.Children, d.tree(child))
	}
	return out
}

// MarshalJSON ...
func (d *Definition) MarshalJSON() ([]byte, error) {
	if d.constant != nil {
		return json.Marshal(struct {
			Constant bool `json:"constant"`
		}{Constant: *d.constant})
	}
	return json.Marshal(d.Tree())
}

// String renders the definition in transport-code cell-card notation:
// intersection by whitespace, union by colon, branches in parentheses.
func (d *Definition) String() string {
	if d.IsNull() {
		return "<null>"
	}
	if d.IsUniverse() {
		return "<universe>"
	}
	return d.format(d.root, true)
}

func (d *Definition) format(handle int, top bool) string {
	n := d.nodes[handle]
	parts := []string{}
	for _, r := range n.refs {
		parts = append(parts, fmt.Sprintf("%d", r))
	}
	for _, child := range n.children {
		parts = append(parts, "("+d.format(child, false)+")")
	}
	separator := " "
	if n.op == Union {
		separator = " : "
	}
	return strings.Join(parts, separator)
}
