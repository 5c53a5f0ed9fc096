package converter

import (
	"encoding/json"

	"github.com/brepcsg/brepcsg/pkg/converter/kernel"
)

// SolidID is the creation-time identity of a loaded solid.
type SolidID int64

// Solid is one entry of the loaded-solid list handed over by the CAD side:
// its convex decomposition, enclosure membership, classification flags and
// free-text provenance comment.
type Solid struct {
	ID      SolidID `json:"id"`
	Comment string  `json:"comment,omitempty"`

	IsEnclosure bool `json:"isEnclosure,omitempty"`

	// EnclosureIDs lists the enclosures containing this solid, outermost
	// first.
	EnclosureIDs []int64 `json:"enclosureIds,omitempty"`

	kernel.Solid
}

// Model contains the full loaded geometry of one conversion run.
type Model struct {
	Solids []Solid `json:"solids"`
}

// LoadModel parses the JSON exchange representation of the loaded-solid
// list.
func LoadModel(data []byte) (Model, error) {
	model := Model{}
	if err := json.Unmarshal(data, &model); err != nil {
		return Model{}, err
	}
	return model, nil
}

// Enclosures returns the enclosure entries in model order.
func (m Model) Enclosures() []Solid {
	enclosures := []Solid{}
	for _, s := range m.Solids {
		if s.IsEnclosure {
			enclosures = append(enclosures, s)
		}
	}
	return enclosures
}
