package engine

import "github.com/gridforge/roomlayout/internal/model"

// rowFacings assigns a facing to each of n footprint rows stacked south to
// north. The first row backs onto the south boundary and faces North; the
// last backs onto the north boundary and faces South; interior rows pair
// fronts with the previous row when possible.
func rowFacings(n int) []model.Rotation {
	f := make([]model.Rotation, n)
	f[0] = model.North
	for i := 1; i < n; i++ {
		if f[i-1] == model.North {
			f[i] = model.South
		} else {
			f[i] = model.North
		}
	}
	if n > 1 {
		f[n-1] = model.South
	}
	return f
}

// corridorWidth returns the gap between two adjacent rows: 1 cell when their
// fronts meet across it, 2 cells when a back wall is involved (back wall
// plus aisle, or wall against wall for back-to-back).
func corridorWidth(lower, upper model.Rotation) int {
	if lower == model.North && upper == model.South {
		return 1
	}
	return 2
}

// layoutStrips performs the strip layout over the room's interior height:
// try the largest candidate row count first, decrement until a uniform
// minimum-depth layout plus required corridors fits, then distribute the
// leftover height into row depth (cycling, capped at maxDepth) and finally
// into corridor widening. The stack is anchored flush against both the
// south and north boundaries. Returns nil when not even one row fits.
func layoutStrips(room model.Rect, minDepth, maxDepth int) []model.Strip {
	in := room.Interior()
	h := in.Height
	if h < minDepth || in.Width < 1 {
		return nil
	}

	// Each additional row costs at least minDepth plus a 1-cell corridor.
	upper := (h + 1) / (minDepth + 1)
	if upper < 1 {
		upper = 1
	}

	for n := upper; n >= 1; n-- {
		facings := rowFacings(n)
		gaps := make([]int, 0, n-1)
		total := n * minDepth
		for i := 0; i < n-1; i++ {
			g := corridorWidth(facings[i], facings[i+1])
			gaps = append(gaps, g)
			total += g
		}
		if total > h {
			continue
		}

		depths := make([]int, n)
		for i := range depths {
			depths[i] = minDepth
		}
		leftover := h - total

		// Deepen rows first, one cell at a time, cycling.
		for leftover > 0 {
			grew := false
			for i := 0; i < n && leftover > 0; i++ {
				if depths[i] < maxDepth {
					depths[i]++
					leftover--
					grew = true
				}
			}
			if !grew {
				break
			}
		}
		// Then widen corridors.
		for leftover > 0 && n > 1 {
			for i := 0; i < n-1 && leftover > 0; i++ {
				gaps[i]++
				leftover--
			}
		}

		strips := make([]model.Strip, 0, 2*n-1)
		z := in.MinZ
		for i := 0; i < n; i++ {
			strips = append(strips, model.Strip{
				Kind:   model.StripFootprintRow,
				MinZ:   z,
				MaxZ:   z + depths[i] - 1,
				Facing: facings[i],
			})
			z += depths[i]
			if i < n-1 {
				strips = append(strips, model.Strip{
					Kind: model.StripCorridor,
					MinZ: z,
					MaxZ: z + gaps[i] - 1,
				})
				z += gaps[i]
			}
		}
		// A single row at maximum depth cannot absorb everything; the rest
		// becomes a trailing corridor so the row stays flush south.
		if leftover > 0 {
			strips = append(strips, model.Strip{
				Kind: model.StripCorridor,
				MinZ: z,
				MaxZ: z + leftover - 1,
			})
		}
		return strips
	}
	return nil
}
