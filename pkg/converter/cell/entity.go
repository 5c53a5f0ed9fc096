package cell

import (
	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
	"github.com/brepcsg/brepcsg/pkg/converter/kernel"
)

// Entity is one transport cell: a solid, an enclosure, a generated void cell
// or a bare delimiter comment record. ID is the creation-time identity used
// for all cross-references; Label is the final number assigned by the
// numbering pass.
type Entity struct {
	ID    int64 `json:"id"`
	Label int64 `json:"label"`

	Definition *Definition `json:"definition,omitempty"`
	Comment    string      `json:"comment,omitempty"`

	IsVoid      bool `json:"isVoid,omitempty"`
	IsEnclosure bool `json:"isEnclosure,omitempty"`
	NullCell    bool `json:"isNullCell,omitempty"`
	IsDelimiter bool `json:"isDelimiter,omitempty"`

	// EnclosureIDs lists the enclosures this cell belongs to, outermost
	// first as produced by the CAD side.
	EnclosureIDs []int64 `json:"enclosureIds,omitempty"`

	// AdjacentIDs records, for void cells, the identities of the solid cells
	// the void was derived from. Rewritten to labels during finalize.
	AdjacentIDs []int64 `json:"adjacentIds,omitempty"`

	Fragments   []kernel.Fragment `json:"-"`
	BoundingBox geometry.Box      `json:"-"`

	// Warning marks a cell whose construction hit a geometric degeneracy.
	Warning bool `json:"-"`
}

// NewDelimiter creates a comment-only record used to bracket enclosure
// groups and the void block. Delimiters never receive a label.
func NewDelimiter(comment string) *Entity {
	return &Entity{Comment: comment, IsDelimiter: true}
}
