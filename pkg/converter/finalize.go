package converter

import (
	"fmt"
	"strings"

	"github.com/brepcsg/brepcsg/pkg/converter/cell"
)

const voidBlockDelimiter = "---------------- VOID CELLS ----------------"

// finalize drops NullCells, assigns final sequential labels starting at
// offset+1 and orders the output either flat (solids, then the void block)
// or grouped by enclosure. Labels are assigned in a first pass building the
// identity-to-label table; cross-reference comments are rewritten through
// that table in a second pass, never in place during numbering.
func finalize(
	cells, voids []*cell.Entity, offset int64, sortEnclosure bool, attribution string,
) []*cell.Entity {
	idLabel := map[int64]int64{}
	counter := offset

	label := func(e *cell.Entity) {
		counter++
		e.Label = counter
		idLabel[e.ID] = e.Label
	}

	var ordered []*cell.Entity
	if sortEnclosure {
		ordered = orderByEnclosure(cells, voids, attribution, label)
	} else {
		ordered = orderFlat(cells, voids, label)
	}

	rewriteComments(ordered, idLabel)
	return ordered
}

func orderFlat(cells, voids []*cell.Entity, label func(*cell.Entity)) []*cell.Entity {
	ordered := []*cell.Entity{}
	for _, e := range cells {
		if e.NullCell || e.IsEnclosure {
			continue
		}
		label(e)
		ordered = append(ordered, e)
	}

	ordered = append(ordered, cell.NewDelimiter(voidBlockDelimiter))
	for _, v := range voids {
		if v.NullCell {
			continue
		}
		label(v)
		ordered = append(ordered, v)
	}
	return ordered
}

// orderByEnclosure emits, at each enclosure's position, its attributed
// solids followed by its local void cells, bracketed by delimiter records.
// Solids outside any enclosure are emitted inline; outer void cells close
// the sequence.
func orderByEnclosure(
	cells, voids []*cell.Entity, attribution string, label func(*cell.Entity),
) []*cell.Entity {
	attributedTo := attributeSolids(cells, attribution)

	ordered := []*cell.Entity{}
	for _, e := range cells {
		if e.NullCell {
			continue
		}
		if !e.IsEnclosure {
			if attributedTo[e.ID] == 0 {
				label(e)
				ordered = append(ordered, e)
			}
			continue
		}

		ordered = append(ordered, cell.NewDelimiter(
			fmt.Sprintf("---------------- ENCLOSURE %d ----------------", e.ID)))
		for _, s := range cells {
			if s.NullCell || s.IsEnclosure || attributedTo[s.ID] != e.ID {
				continue
			}
			label(s)
			ordered = append(ordered, s)
		}
		for _, v := range voids {
			if v.NullCell || innermostEnclosure(v.EnclosureIDs) != e.ID {
				continue
			}
			label(v)
			ordered = append(ordered, v)
		}
		ordered = append(ordered, cell.NewDelimiter(
			fmt.Sprintf("---------------- END ENCLOSURE %d ----------------", e.ID)))
	}

	ordered = append(ordered, cell.NewDelimiter(voidBlockDelimiter))
	for _, v := range voids {
		if v.NullCell || len(v.EnclosureIDs) != 0 {
			continue
		}
		label(v)
		ordered = append(ordered, v)
	}
	return ordered
}

// attributeSolids picks, for every solid belonging to one or more
// enclosures, the single enclosure group it is emitted in. The policy is
// deliberately configurable: the outermost enclosure level with ties broken
// by first-encountered order, or simply the first listed enclosure.
func attributeSolids(cells []*cell.Entity, attribution string) map[int64]int64 {
	levels := map[int64]int{}
	for _, e := range cells {
		if e.IsEnclosure {
			levels[e.ID] = len(e.EnclosureIDs)
		}
	}

	attributed := map[int64]int64{}
	for _, s := range cells {
		if s.IsEnclosure || len(s.EnclosureIDs) == 0 {
			continue
		}
		if attribution == AttributeFirst {
			attributed[s.ID] = s.EnclosureIDs[0]
			continue
		}
		best := s.EnclosureIDs[0]
		for _, id := range s.EnclosureIDs[1:] {
			if levels[id] < levels[best] {
				best = id
			}
		}
		attributed[s.ID] = best
	}
	return attributed
}

func innermostEnclosure(enclosureIDs []int64) int64 {
	if len(enclosureIDs) == 0 {
		return 0
	}
	return enclosureIDs[len(enclosureIDs)-1]
}

// rewriteComments maps the identities recorded in void adjacency onto the
// final labels. An identity missing from the table belonged to a removed
// cell and is silently skipped.
func rewriteComments(ordered []*cell.Entity, idLabel map[int64]int64) {
	for _, e := range ordered {
		if !e.IsVoid || len(e.AdjacentIDs) == 0 {
			continue
		}
		labels := []string{}
		for _, id := range e.AdjacentIDs {
			label, found := idLabel[id]
			if !found || label == 0 {
				continue
			}
			labels = append(labels, fmt.Sprintf("%d", label))
		}
		if len(labels) > 0 {
			e.Comment = fmt.Sprintf("%s (cells %s)", e.Comment, strings.Join(labels, " "))
		}
	}
}
