// Package void derives the cells filling all space not occupied by any
// solid, scoped per enclosure group.
package void

import (
	"fmt"
	"strings"

	"github.com/brepcsg/brepcsg/pkg/converter/cell"
	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
	"github.com/brepcsg/brepcsg/pkg/converter/log"
	"github.com/brepcsg/brepcsg/pkg/converter/surface"
)

// Generate computes the set complement of the solid cells within the
// bounding box. Work is partitioned per enclosure group: solids outside any
// enclosure are subtracted from the padded bounding box (outer void), solids
// directly inside an enclosure are subtracted from that enclosure's own
// region (local void). The complement of N possibly-overlapping solids is
// therefore never one global N-way subtraction.
//
// Solids whose comment matches an exclude label do not subtract; their
// volume becomes void. startID seeds void identities above all solid
// identities. A void definition simplifying to empty yields a NullCell
// entity, not an error.
func Generate(
	solids, enclosures []*cell.Entity,
	reg *surface.Registry,
	box geometry.Box,
	exclude []string,
	startID int64,
	enlarge float64,
	relation cell.RelationFunc,
) []*cell.Entity {
	contributing := excludeByLabel(solids, exclude)

	result := []*cell.Entity{}
	nextID := startID

	outer := cell.NewDefinition(cell.Intersection)
	for _, r := range registerBoxPlanes(reg, box) {
		outer.AddRef(r)
	}
	outerMembers := directMembers(contributing, enclosures, 0)
	result = append(result, buildVoidCell(outer, outerMembers, nil, box, &nextID, enlarge, relation))

	for _, enc := range enclosures {
		region := cell.NewDefinition(cell.Intersection)
		region.AppendDefinition(enc.Definition)
		members := directMembers(contributing, enclosures, enc.ID)
		v := buildVoidCell(region, members, []int64{enc.ID}, enc.BoundingBox, &nextID, enlarge, relation)
		v.Comment = fmt.Sprintf("void of enclosure %d", enc.ID)
		result = append(result, v)
	}

	return result
}

func buildVoidCell(
	region *cell.Definition,
	members []*cell.Entity,
	enclosureIDs []int64,
	regionBox geometry.Box,
	nextID *int64,
	enlarge float64,
	relation cell.RelationFunc,
) *cell.Entity {
	adjacent := []int64{}
	for _, m := range members {
		region.AppendDefinition(m.Definition.Complement())
		adjacent = append(adjacent, m.ID)
	}

	// probe the comparison table beyond the region itself, so the region's
	// own bounding half-spaces are not vacuously implied and dropped
	cell.Simplify(region, cell.BuildTable(region.Refs(), regionBox.Enlarge(enlarge), relation))

	*nextID++
	v := &cell.Entity{
		ID:           *nextID,
		Definition:   region,
		Comment:      "outer void",
		IsVoid:       true,
		EnclosureIDs: enclosureIDs,
		AdjacentIDs:  adjacent,
		BoundingBox:  regionBox,
	}
	if region.IsNull() {
		log.Debug("void cell %d is empty", v.ID)
		v.NullCell = true
	}
	return v
}

// directMembers returns the cells whose innermost enclosure is the given
// one: solids directly inside it plus child enclosures, all of which bound
// that enclosure's local void. Enclosure id 0 selects the outer group.
func directMembers(solids, enclosures []*cell.Entity, enclosureID int64) []*cell.Entity {
	members := []*cell.Entity{}
	for _, s := range solids {
		if innermost(s.EnclosureIDs) == enclosureID {
			members = append(members, s)
		}
	}
	for _, e := range enclosures {
		if e.ID != enclosureID && innermost(e.EnclosureIDs) == enclosureID {
			members = append(members, e)
		}
	}
	return members
}

func innermost(enclosureIDs []int64) int64 {
	if len(enclosureIDs) == 0 {
		return 0
	}
	return enclosureIDs[len(enclosureIDs)-1]
}

func excludeByLabel(solids []*cell.Entity, exclude []string) []*cell.Entity {
	if len(exclude) == 0 {
		return solids
	}
	kept := []*cell.Entity{}
	for _, s := range solids {
		excluded := false
		for _, label := range exclude {
			if strings.Contains(s.Comment, label) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, s)
		}
	}
	return kept
}

// registerBoxPlanes registers the six bounding planes of the universe box
// and returns the half-space refs selecting its interior.
func registerBoxPlanes(reg *surface.Registry, box geometry.Box) []surface.Ref {
	faces := []surface.Plane{
		{Position: box.Min, Normal: geometry.Vec3D{X: -1}},
		{Position: box.Min, Normal: geometry.Vec3D{Y: -1}},
		{Position: box.Min, Normal: geometry.Vec3D{Z: -1}},
		{Position: box.Max, Normal: geometry.Vec3D{X: 1}},
		{Position: box.Max, Normal: geometry.Vec3D{Y: 1}},
		{Position: box.Max, Normal: geometry.Vec3D{Z: 1}},
	}
	refs := make([]surface.Ref, 0, len(faces))
	for _, plane := range faces {
		id, reversed := reg.Register(plane)
		// interior is on the negative side of each outward-facing plane
		refs = append(refs, surface.MakeRef(id, reversed))
	}
	return refs
}
