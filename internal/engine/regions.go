package engine

import (
	"sort"

	"github.com/gridforge/roomlayout/internal/model"
)

// xspan is an inclusive column range used while merging door exclusions.
type xspan struct {
	lo, hi int
}

// rowBackWall returns the z coordinate of the row's back wall and whether
// that wall is the room boundary itself. A North-facing row backs onto the
// south, a South-facing row onto the north.
func rowBackWall(room model.Rect, s model.Strip) (z int, boundary bool) {
	in := room.Interior()
	if s.Facing == model.North {
		return s.MinZ - 1, s.MinZ == in.MinZ
	}
	return s.MaxZ + 1, s.MaxZ == in.MaxZ()
}

// rowRegions partitions one footprint row into alternating usable and
// exclusion regions. Doors on the boundary the row backs onto reserve a
// 3-wide range centered on the door; doors on the east/west walls whose z
// falls in the row's span (or on its synthesized back wall) reserve a 2-wide
// range anchored at that interior edge. An interior row that would end up
// with no exclusion at all gets one forced at its west edge so the corridors
// on either side stay connected.
func rowRegions(room model.Rect, s model.Strip, doors []model.Door, interiorRow bool) []model.Region {
	in := room.Interior()
	backZ, backBoundary := rowBackWall(room, s)

	var spans []xspan
	for _, d := range doors {
		switch {
		case backBoundary && onBackBoundary(room, s, d):
			lo, hi := d.X-1, d.X+1
			if lo < in.MinX {
				lo = in.MinX
			}
			if hi > in.MaxX() {
				hi = in.MaxX()
			}
			spans = append(spans, xspan{lo, hi})
		case d.X == room.MinX && doorConstrainsRow(d, s, backZ, backBoundary):
			spans = append(spans, xspan{in.MinX, in.MinX + 1})
		case d.X == room.MaxX() && doorConstrainsRow(d, s, backZ, backBoundary):
			spans = append(spans, xspan{in.MaxX() - 1, in.MaxX()})
		}
	}

	spans = mergeSpans(spans)
	if interiorRow && len(spans) == 0 {
		spans = []xspan{{in.MinX, in.MinX + 1}}
	}

	var regions []model.Region
	x := in.MinX
	for _, sp := range spans {
		if sp.lo > x {
			regions = append(regions, model.Region{MinX: x, MaxX: sp.lo - 1})
		}
		regions = append(regions, model.Region{MinX: sp.lo, MaxX: sp.hi, Exclusion: true})
		x = sp.hi + 1
	}
	if x <= in.MaxX() {
		regions = append(regions, model.Region{MinX: x, MaxX: in.MaxX()})
	}
	return regions
}

// onBackBoundary reports whether the door sits on the room boundary this row
// backs onto.
func onBackBoundary(room model.Rect, s model.Strip, d model.Door) bool {
	if s.Facing == model.North {
		return d.Z == room.MinZ
	}
	return d.Z == room.MaxZ()
}

// doorConstrainsRow reports whether an east/west-wall door affects this row:
// its z lies within the row's span, or it aligns with the row's synthesized
// back wall.
func doorConstrainsRow(d model.Door, s model.Strip, backZ int, backBoundary bool) bool {
	if d.Z >= s.MinZ && d.Z <= s.MaxZ {
		return true
	}
	return !backBoundary && d.Z == backZ
}

// mergeSpans merges overlapping and adjacent column ranges.
func mergeSpans(spans []xspan) []xspan {
	if len(spans) < 2 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	merged := spans[:1]
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp.lo <= last.hi+1 {
			if sp.hi > last.hi {
				last.hi = sp.hi
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}
