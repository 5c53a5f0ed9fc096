package converter

import "github.com/brepcsg/brepcsg/pkg/converter/surface"

// Attribution policies for solids belonging to several enclosures.
const (
	// AttributeOutermost emits such a solid in its outermost enclosure
	// group, ties broken by first-encountered order.
	AttributeOutermost = "outermost"
	// AttributeFirst emits it in the first enclosure listed by the CAD side.
	AttributeFirst = "first"
)

// Options tune the geometric processing.
type Options struct {
	// EnlargeBox grows a cell's local box before building its comparison
	// table, so near-boundary implications are probed conservatively.
	EnlargeBox float64 `json:"enlargeBox"`
}

// DefaultOptions ...
var DefaultOptions = Options{
	EnlargeBox: 2.0,
}

// Settings control the run: numbering offsets, void generation and output
// ordering.
type Settings struct {
	VoidGen     bool     `json:"voidGen"`
	VoidExclude []string `json:"voidExclude"`

	// StartCell and StartSurf offset the final cell and surface numbering so
	// both can live in disjoint ranges.
	StartCell int64 `json:"startCell"`
	StartSurf int64 `json:"startSurf"`

	// BoxPadding is added on every side of the model bounding box to form
	// the void universe.
	BoxPadding float64 `json:"boxPadding"`

	SortEnclosure        bool   `json:"sortEnclosure"`
	EnclosureAttribution string `json:"enclosureAttribution"`
}

// DefaultSettings ...
var DefaultSettings = Settings{
	VoidGen:              true,
	StartCell:            1,
	StartSurf:            1,
	BoxPadding:           10.0,
	EnclosureAttribution: AttributeOutermost,
}

// Config aggregates all policy knobs of one conversion run.
type Config struct {
	Options    Options            `json:"options"`
	Tolerances surface.Tolerances `json:"tolerances"`
	Settings   Settings           `json:"settings"`
}

// DefaultConfig ...
func DefaultConfig() Config {
	return Config{
		Options:    DefaultOptions,
		Tolerances: surface.DefaultTolerances,
		Settings:   DefaultSettings,
	}
}
