package engine

import "github.com/gridforge/roomlayout/internal/model"

// regionPack is the outcome of packing one usable region.
type regionPack struct {
	footprints []model.PlacedFootprint
	walls      []model.WallSegment
	waste      []model.WasteArea
}

// packRegion fills one usable region of a footprint row with as many
// footprints as fit, separated by 1-cell walls. Footprints are anchored
// toward the nearer east/west room boundary so leftover width falls toward
// the interior; leftover width is first spent widening footprints (outermost
// first, round-robin, capped at the maximum allowed width) and only then
// left as waste. exclWest/exclEast report whether the region borders an
// exclusion zone on that side, which decides whether leftover width is
// reported as a waste area.
func packRegion(room model.Rect, s model.Strip, reg model.Region, widths []int, exclWest, exclEast bool) regionPack {
	in := room.Interior()
	minW := widths[0]
	maxW := widths[len(widths)-1]

	anchorWest := reg.MinX-room.MinX <= room.MaxX()-reg.MaxX

	// The outer edge gets an enclosing wall unless the room boundary already
	// closes it; that cell comes out of the packing budget.
	outerWall := false
	if anchorWest {
		outerWall = reg.MinX != in.MinX
	} else {
		outerWall = reg.MaxX != in.MaxX()
	}
	budget := reg.Width()
	if outerWall {
		budget--
	}

	n := (budget + 1) / (minW + 1)
	for n >= 1 && n*minW+(n-1) > budget {
		n--
	}
	if n < 1 {
		whole := model.NewRect(reg.MinX, s.MinZ, reg.Width(), s.Depth())
		return regionPack{waste: regionWaste(s, reg, whole, exclWest, exclEast)}
	}

	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = minW
	}
	leftover := budget - (n*minW + (n - 1))
	for leftover > 0 {
		grew := false
		for i := 0; i < n && leftover > 0; i++ {
			if sizes[i] < maxW {
				sizes[i]++
				leftover--
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	var pack regionPack
	depth := s.Depth()

	// Lay footprints outward-in; sizes[0] is the outermost.
	x := reg.MinX
	if outerWall && anchorWest {
		pack.walls = append(pack.walls, model.VerticalWall(reg.MinX, s.MinZ, s.MaxZ))
		x++
	}
	order := sizes
	if !anchorWest {
		order = make([]int, n)
		for i, w := range sizes {
			order[n-1-i] = w
		}
		x = reg.MinX + leftover
	}
	firstX, lastX := 0, 0
	for i, w := range order {
		b := model.NewRect(x, s.MinZ, w, depth)
		pack.footprints = append(pack.footprints, model.PlacedFootprint{
			Bounds:   b,
			Rotation: s.Facing,
			Width:    w,
			Depth:    depth,
			Variant:  model.VariantID(w, depth),
		})
		if i == 0 {
			firstX = b.MinX
		}
		lastX = b.MaxX()
		x += w
		if i < n-1 {
			pack.walls = append(pack.walls, model.VerticalWall(x, s.MinZ, s.MaxZ))
			x++
		}
	}
	if outerWall && !anchorWest {
		pack.walls = append(pack.walls, model.VerticalWall(reg.MaxX, s.MinZ, s.MaxZ))
	}

	// Back wall for rows whose back is not the room boundary, spanning the
	// packed run plus any enclosing side wall.
	if backZ, boundary := rowBackWall(room, s); !boundary {
		lo, hi := firstX, lastX
		if outerWall {
			if anchorWest {
				lo = reg.MinX
			} else {
				hi = reg.MaxX
			}
		}
		pack.walls = append(pack.walls, model.HorizontalWall(backZ, lo, hi))
	}

	if leftover > 0 {
		var wb model.Rect
		if anchorWest {
			wb = model.NewRect(reg.MaxX-leftover+1, s.MinZ, leftover, depth)
		} else {
			wb = model.NewRect(reg.MinX, s.MinZ, leftover, depth)
		}
		pack.waste = append(pack.waste, regionWaste(s, reg, wb, exclWest, exclEast)...)
	}
	return pack
}

// regionWaste reports leftover space as a waste area only when the region
// borders an exclusion zone, with the facing hint naming the exclusion side.
func regionWaste(s model.Strip, reg model.Region, bounds model.Rect, exclWest, exclEast bool) []model.WasteArea {
	switch {
	case exclEast && bounds.MaxX() == reg.MaxX:
		return []model.WasteArea{{Bounds: bounds, Facing: model.East}}
	case exclWest && bounds.MinX == reg.MinX:
		return []model.WasteArea{{Bounds: bounds, Facing: model.West}}
	}
	return nil
}
