package surface

import (
	"sort"
	"sync"
)

// Registry is the canonical, deduplicated store of surfaces for one
// conversion run. It is the only mutable state shared between solids, so
// registration is serialized with a mutex.
//
// Candidates are compared against kept representatives only, never against
// previously rejected duplicates. This keeps the outcome well defined even
// when the pairwise tolerance comparison is not transitive; it is a known
// approximation, not something to fix by assuming transitivity.
type Registry struct {
	mu         sync.Mutex
	tolerances Tolerances
	next       ID
	byKind     map[string][]*Surface
}

// NewRegistry creates a registry whose first surface gets id offset+1, so
// cell and surface numbering can live in disjoint ranges.
func NewRegistry(offset ID, tolerances Tolerances) *Registry {
	return &Registry{
		tolerances: tolerances,
		next:       offset,
		byKind:     map[string][]*Surface{},
	}
}

// Register returns the id of the registry surface matching g within
// tolerance, storing g as a new surface if none matches. The second result
// reports that the match is orientation-reversed relative to g, in which case
// the caller must flip the half-space sign.
func (r *Registry) Register(g GeometryType) (ID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind := KindOf(g)
	for _, kept := range r.byKind[kind] {
		match, reversed := sameSurface(kept.Geometry.GeometryType, g, r.tolerances)
		if match {
			return kept.ID, reversed
		}
	}

	r.next++
	s := &Surface{ID: r.next, Geometry: Geometry{GeometryType: g}}
	r.byKind[kind] = append(r.byKind[kind], s)
	return s.ID, false
}

// Get returns the surface with the given id, or nil.
func (r *Registry) Get(id ID) *Surface {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, kept := range r.byKind {
		for _, s := range kept {
			if s.ID == id {
				return s
			}
		}
	}
	return nil
}

// Len returns the number of registered surfaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, kept := range r.byKind {
		n += len(kept)
	}
	return n
}

// Surfaces returns all registered surfaces ordered by id.
func (r *Registry) Surfaces() []Surface {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []Surface{}
	for _, kept := range r.byKind {
		for _, s := range kept {
			result = append(result, *s)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
