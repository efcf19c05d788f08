package model

import "fmt"

// ValidateLayout checks the structural invariants of a computed layout
// against the room and doors it was produced for. It returns a list of
// human-readable violations; an empty list means the layout is sound.
// Consumers materializing a layout into a live map can run this defensively
// before spawning anything.
func ValidateLayout(room Rect, doors []Door, l Layout) []string {
	var problems []string

	for i := 0; i < len(l.Footprints); i++ {
		for j := i + 1; j < len(l.Footprints); j++ {
			if l.Footprints[i].Bounds.Intersects(l.Footprints[j].Bounds) {
				problems = append(problems,
					fmt.Sprintf("footprints %d and %d overlap", i, j))
			}
		}
	}

	interior := room.Interior()
	for i, fp := range l.Footprints {
		if !interior.Contains(fp.Bounds.MinX, fp.Bounds.MinZ) ||
			!interior.Contains(fp.Bounds.MaxX(), fp.Bounds.MaxZ()) {
			problems = append(problems,
				fmt.Sprintf("footprint %d extends outside the room interior", i))
		}
	}

	for wi, w := range l.Walls {
		for _, c := range w.Cells() {
			for fi, fp := range l.Footprints {
				if fp.Bounds.Contains(c.X, c.Z) {
					problems = append(problems,
						fmt.Sprintf("wall %d cell (%d,%d) lies inside footprint %d", wi, c.X, c.Z, fi))
				}
			}
			for _, d := range doors {
				if c.X == d.X && c.Z == d.Z {
					problems = append(problems,
						fmt.Sprintf("wall %d covers door (%d,%d)", wi, d.X, d.Z))
				}
			}
		}
	}

	for i, fp := range l.Footprints {
		for _, d := range doors {
			if fp.Bounds.Contains(d.X, d.Z) {
				problems = append(problems,
					fmt.Sprintf("footprint %d covers door (%d,%d)", i, d.X, d.Z))
			}
		}
	}

	rowIndex := 0
	rowCount := 0
	for _, s := range l.Strips {
		if s.Kind == StripFootprintRow {
			rowCount++
		}
	}
	for _, s := range l.Strips {
		if s.Kind != StripFootprintRow {
			continue
		}
		if rowIndex > 0 && rowIndex < rowCount-1 {
			hasExclusion := false
			for _, r := range s.Regions {
				if r.Exclusion {
					hasExclusion = true
				}
			}
			if !hasExclusion {
				problems = append(problems,
					fmt.Sprintf("middle row at z=%d..%d has no exclusion zone", s.MinZ, s.MaxZ))
			}
		}
		rowIndex++
	}

	return problems
}
