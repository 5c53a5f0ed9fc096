package converter

import (
	"github.com/brepcsg/brepcsg/pkg/converter/cell"
	"github.com/brepcsg/brepcsg/pkg/converter/log"
)

// processCones augments cone-bearing cell definitions with their recorded
// auxiliary apex planes. The target codes model a cone as the full two-nappe
// quadric, so without the plane a cell would leak into the opposite nappe.
//
// Void cells inherit the patches of the solids they were derived from with
// all signs inverted, since the void lies on the opposite side. A void with
// no recorded adjacency, or adjacency to a removed solid, is left unpatched.
func processCones(solids, voids []*cell.Entity, coneInfo map[int64]cell.ConeRecord) {
	if len(coneInfo) == 0 {
		return
	}

	for _, s := range solids {
		record, found := coneInfo[s.ID]
		if !found {
			continue
		}
		log.Debug("patching cones of cell %d", s.ID)
		for _, patch := range record {
			s.Definition.InjectAlongside(patch.Cone, patch.Plane)
		}
	}

	for _, v := range voids {
		for _, adjacentID := range v.AdjacentIDs {
			record, found := coneInfo[adjacentID]
			if !found {
				continue
			}
			log.Debug("patching inherited cones of void cell %d", v.ID)
			for _, patch := range record {
				v.Definition.InjectAlongside(patch.Cone.Inverse(), patch.Plane.Inverse())
			}
		}
	}
}
