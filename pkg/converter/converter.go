// Package converter turns a decomposed B-rep solid list into numbered CSG
// cells and surfaces ready for transport-code serialization.
package converter

import (
	"encoding/json"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/brepcsg/brepcsg/pkg/converter/cell"
	"github.com/brepcsg/brepcsg/pkg/converter/geometry"
	"github.com/brepcsg/brepcsg/pkg/converter/kernel"
	"github.com/brepcsg/brepcsg/pkg/converter/log"
	"github.com/brepcsg/brepcsg/pkg/converter/surface"
	"github.com/brepcsg/brepcsg/pkg/converter/void"
)

// Converter drives one conversion run. The surface registry is owned here
// and passed by handle through every stage; there is no ambient state.
type Converter struct {
	Config   Config
	Kernel   kernel.Kernel
	Surfaces *surface.Registry
}

// New ...
func New(config Config, k kernel.Kernel) *Converter {
	return &Converter{
		Config:   config,
		Kernel:   k,
		Surfaces: surface.NewRegistry(surface.ID(config.Settings.StartSurf-1), config.Tolerances),
	}
}

// Result is the finalized output of a run, consumable by an external
// dialect serializer.
type Result struct {
	Cells       []*cell.Entity    `json:"cells"`
	Surfaces    []surface.Surface `json:"surfaces"`
	BoundingBox geometry.Box      `json:"boundingBox"`
	Warnings    []Warning         `json:"warnings,omitempty"`
}

// Process runs the full pipeline: bounding box, cell definition building,
// simplification, void generation, cone patching and final numbering.
// Stage-local issues are accumulated as warnings; only precondition
// violations (unclassifiable enclosure geometry) abort the run.
func (c *Converter) Process(model Model) (Result, error) {
	if len(model.Solids) == 0 {
		return Result{}, GeneralGeometryError("no solid selected to translate")
	}
	if err := checkIdentities(model); err != nil {
		return Result{}, err
	}
	if err := c.checkEnclosures(model); err != nil {
		return Result{}, err
	}

	box := c.universeBox(model)
	log.Info("universe bounding box: %+v", box)

	entities, coneInfo, warnings := c.buildCells(model)
	solids, enclosures := splitEnclosures(entities)
	log.Info("end of cell definition phase: %d surfaces", c.Surfaces.Len())

	c.simplifyCells(entities)

	voids := []*cell.Entity{}
	if c.Config.Settings.VoidGen {
		log.Info("build void")
		startID := maxEntityID(solids, enclosures)
		voids = void.Generate(
			solids, enclosures, c.Surfaces, box,
			c.Config.Settings.VoidExclude, startID,
			c.Config.Options.EnlargeBox, c.relationFunc(),
		)
	}

	processCones(solids, voids, coneInfo)

	ordered := finalize(
		entities, voids,
		c.Config.Settings.StartCell-1,
		c.Config.Settings.SortEnclosure,
		c.Config.Settings.EnclosureAttribution,
	)

	reportWarningSolids(solids, warnings)

	return Result{
		Cells:       ordered,
		Surfaces:    c.Surfaces.Surfaces(),
		BoundingBox: box,
		Warnings:    warnings,
	}, nil
}

// checkIdentities enforces strictly positive, unique solid identities. Label
// assignment and adjacency comment rewriting reserve identity zero for "no
// cell", so nonpositive identities cannot enter the pipeline.
func checkIdentities(model Model) error {
	seen := map[SolidID]bool{}
	for _, s := range model.Solids {
		if s.ID <= 0 {
			return SolidIDError(s.ID, "identity must be positive")
		}
		if seen[s.ID] {
			return SolidIDError(s.ID, "duplicate identity")
		}
		seen[s.ID] = true
	}
	return nil
}

// checkEnclosures enforces the precondition that enclosure solids carry only
// classifiable faces. This is fatal before the core pipeline starts; plain
// solids get a best-effort fallback instead.
func (c *Converter) checkEnclosures(model Model) error {
	for _, s := range model.Enclosures() {
		for _, fragment := range s.Fragments {
			for _, face := range fragment.Faces {
				if _, err := c.Kernel.ClassifyFace(face); err != nil {
					return EnclosureIDError(s.ID, "unsupported face geometry: %s", err.Error())
				}
			}
		}
	}
	return nil
}

func (c *Converter) universeBox(model Model) geometry.Box {
	box := c.Kernel.BoundingBox(model.Solids[0].Solid)
	for _, s := range model.Solids[1:] {
		box = box.Union(c.Kernel.BoundingBox(s.Solid))
	}
	return box.Enlarge(c.Config.Settings.BoxPadding)
}

func (c *Converter) buildCells(model Model) (
	entities []*cell.Entity,
	coneInfo map[int64]cell.ConeRecord,
	warnings []Warning,
) {
	coneInfo = map[int64]cell.ConeRecord{}

	for _, s := range model.Solids {
		fragments, err := c.Kernel.DecomposeIntoConvex(s.Solid)
		if err != nil {
			warnings = append(warnings, Warning{
				SolidID: int64(s.ID), Stage: "decompose", Message: err.Error(),
			})
			continue
		}

		log.Info("building cell %d", s.ID)
		solidBox := c.Kernel.BoundingBox(s.Solid)
		def, cones, warn := cell.BuildDefinition(fragments, c.Surfaces, solidBox)
		log.Debug("cell %d definition:\n%s", s.ID, spew.Sdump(def.Tree()))

		entity := &cell.Entity{
			ID:           int64(s.ID),
			Definition:   def,
			Comment:      s.Comment,
			IsEnclosure:  s.IsEnclosure,
			EnclosureIDs: s.EnclosureIDs,
			Fragments:    fragments,
			BoundingBox:  solidBox,
			Warning:      warn,
		}
		if warn {
			warnings = append(warnings, Warning{
				SolidID: int64(s.ID), Stage: "cell-definition",
				Message: "face classification fell back to best effort",
			})
		}
		if len(cones) > 0 {
			coneInfo[entity.ID] = cones
		}
		entities = append(entities, entity)
	}
	return entities, coneInfo, warnings
}

func splitEnclosures(entities []*cell.Entity) (solids, enclosures []*cell.Entity) {
	for _, e := range entities {
		if e.IsEnclosure {
			enclosures = append(enclosures, e)
		} else {
			solids = append(solids, e)
		}
	}
	return solids, enclosures
}

// simplifyCells reduces every solid cell definition in place. Cells are
// independent once built, so the stage fans out per cell; the registry is
// only read here.
func (c *Converter) simplifyCells(entities []*cell.Entity) {
	relation := c.relationFunc()

	var wg sync.WaitGroup
	for _, entity := range entities {
		if entity.IsEnclosure {
			continue
		}
		wg.Add(1)
		go func(e *cell.Entity) {
			defer wg.Done()
			localBox := e.BoundingBox.Enlarge(c.Config.Options.EnlargeBox)
			table := cell.BuildTable(e.Definition.Refs(), localBox, relation)
			cell.Simplify(e.Definition, table)
			if e.Definition.IsNull() {
				e.NullCell = true
			}
			if e.Definition.IsUniverse() {
				log.Warning("unexpected constant cell %d: universe", e.ID)
			}
		}(entity)
	}
	wg.Wait()
}

func (c *Converter) relationFunc() cell.RelationFunc {
	return func(a, b surface.Ref, region geometry.Box) surface.Relation {
		return c.Kernel.BooleanRelation(a, b, region, c.Surfaces)
	}
}

func maxEntityID(solids, enclosures []*cell.Entity) int64 {
	max := int64(0)
	for _, e := range solids {
		if e.ID > max {
			max = e.ID
		}
	}
	for _, e := range enclosures {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}

// reportWarningSolids exports the offending solids' descriptions through the
// solids logger so degenerate geometry can be inspected.
func reportWarningSolids(solids []*cell.Entity, warnings []Warning) {
	if len(warnings) == 0 {
		return
	}
	for _, w := range warnings {
		log.SolidsLogger.Warningf("solid %d (%s): %s", w.SolidID, w.Stage, w.Message)
	}
	for _, s := range solids {
		if !s.Warning {
			continue
		}
		log.SolidsLogger.Infof("solid %d definition: %s", s.ID, s.Definition.String())
		if description, err := json.Marshal(s.Fragments); err == nil {
			log.SolidsLogger.Infof("solid %d fragments: %s", s.ID, description)
		}
	}
}
