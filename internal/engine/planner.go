package engine

import (
	"sort"

	"github.com/gridforge/roomlayout/internal/model"
)

// Planner packs a room with rows of footprints. Widths and Depths are the
// allowed footprint dimensions, kept sorted ascending; the planner always
// lays out rows at depths within [min, max] and footprints at widths within
// [min, max].
type Planner struct {
	Widths []int
	Depths []int
}

// NewPlanner copies and sorts the allowed dimension sets.
func NewPlanner(widths, depths []int) Planner {
	w := append([]int(nil), widths...)
	d := append([]int(nil), depths...)
	sort.Ints(w)
	sort.Ints(d)
	return Planner{Widths: w, Depths: d}
}

// Plan computes a complete strip layout for the room: rows and corridors,
// per-row regions around door exclusions, packed footprints, synthesized
// walls, and waste areas. It returns an empty layout when the interior
// cannot fit even one minimum-depth row or when either dimension set is
// empty; callers must treat that as "nothing fit".
func (p Planner) Plan(room model.Rect, doors []model.Door) model.Layout {
	if len(p.Widths) == 0 || len(p.Depths) == 0 {
		return model.Layout{}
	}

	strips := layoutStrips(room, p.Depths[0], p.Depths[len(p.Depths)-1])
	if strips == nil {
		return model.Layout{}
	}

	rowCount := 0
	for _, s := range strips {
		if s.Kind == model.StripFootprintRow {
			rowCount++
		}
	}

	layout := model.Layout{Strips: strips}
	rowIdx := 0
	for si := range layout.Strips {
		s := &layout.Strips[si]
		if s.Kind != model.StripFootprintRow {
			continue
		}
		interiorRow := rowIdx > 0 && rowIdx < rowCount-1
		s.Regions = rowRegions(room, *s, doors, interiorRow)

		for ri, reg := range s.Regions {
			if reg.Exclusion {
				continue
			}
			exclWest := ri > 0 && s.Regions[ri-1].Exclusion
			exclEast := ri < len(s.Regions)-1 && s.Regions[ri+1].Exclusion
			pk := packRegion(room, *s, reg, p.Widths, exclWest, exclEast)
			layout.Footprints = append(layout.Footprints, pk.footprints...)
			layout.Walls = append(layout.Walls, pk.walls...)
			layout.Waste = append(layout.Waste, pk.waste...)
		}
		rowIdx++
	}
	return layout
}
