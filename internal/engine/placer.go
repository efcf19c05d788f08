// Package engine implements the two placement strategies: single-footprint
// placement (corner/edge/center cascade) and strip packing. Both are pure
// functions of their inputs; identical inputs always produce identical
// results.
package engine

import "github.com/gridforge/roomlayout/internal/model"

// PlaceFootprint places one square footprint of the given side length inside
// the room, avoiding door positions. It tries the four corners first (NW,
// NE, SE, SW), then the four walls (N, E, S, W), then a floating center
// position, and degrades to PlacementInvalid only when the footprint cannot
// fit the room interior at all.
func PlaceFootprint(room model.Rect, size int, doors []model.Door) model.Placement {
	in := room.Interior()
	if size < 1 || size > in.Width || size > in.Height {
		return model.Placement{Kind: model.PlacementInvalid}
	}
	if p, ok := placeCorner(room, size, doors); ok {
		return p
	}
	if p, ok := placeEdge(room, size, doors); ok {
		return p
	}
	return placeCenter(room, size)
}

// wallConflict reports whether any door lies on a room wall the footprint is
// flush against, within the footprint's span. A door exactly on a room
// corner belongs to neither wall span and is deliberately skipped; callers
// relying on corner doors being protected must place them one cell in.
func wallConflict(room, b model.Rect, doors []model.Door) bool {
	in := room.Interior()
	for _, d := range doors {
		switch {
		case d.X == room.MinX && b.MinX == in.MinX && d.Z >= b.MinZ && d.Z <= b.MaxZ():
			return true
		case d.X == room.MaxX() && b.MaxX() == in.MaxX() && d.Z >= b.MinZ && d.Z <= b.MaxZ():
			return true
		case d.Z == room.MinZ && b.MinZ == in.MinZ && d.X >= b.MinX && d.X <= b.MaxX():
			return true
		case d.Z == room.MaxZ() && b.MaxZ() == in.MaxZ() && d.X >= b.MinX && d.X <= b.MaxX():
			return true
		}
	}
	return false
}

// placeCorner tries the four corners in fixed order. A corner placement
// reuses the two adjoining room walls, so no wall segments are synthesized.
// The footprint faces away from the z boundary it is flush against.
func placeCorner(room model.Rect, size int, doors []model.Door) (model.Placement, bool) {
	in := room.Interior()
	candidates := []struct {
		bounds model.Rect
		rot    model.Rotation
	}{
		{model.NewRect(in.MinX, in.MaxZ()-size+1, size, size), model.South},          // NW
		{model.NewRect(in.MaxX()-size+1, in.MaxZ()-size+1, size, size), model.South}, // NE
		{model.NewRect(in.MaxX()-size+1, in.MinZ, size, size), model.North},          // SE
		{model.NewRect(in.MinX, in.MinZ, size, size), model.North},                   // SW
	}
	for _, c := range candidates {
		if wallConflict(room, c.bounds, doors) {
			continue
		}
		cx, cz := model.CenterForRect(c.bounds)
		return model.Placement{
			Kind:     model.PlacementCorner,
			CenterX:  cx,
			CenterZ:  cz,
			Rotation: c.rot,
			Bounds:   c.bounds,
		}, true
	}
	return model.Placement{}, false
}

// placeEdge scans each wall (N, E, S, W) for the longest contiguous
// door-free run, excluding a 2-cell buffer at each end so edge placements
// never shade into corners. The run must be at least size+1 cells (one cell
// of safety margin); the footprint is centered in it, one cell inward from
// the wall, with a single synthesized side wall on the run-start side.
func placeEdge(room model.Rect, size int, doors []model.Door) (model.Placement, bool) {
	in := room.Interior()

	build := func(b model.Rect, rot model.Rotation, side model.WallSegment) (model.Placement, bool) {
		cx, cz := model.CenterForRect(b)
		return model.Placement{
			Kind:     model.PlacementEdge,
			CenterX:  cx,
			CenterZ:  cz,
			Rotation: rot,
			Bounds:   b,
			Walls:    []model.WallSegment{side},
		}, true
	}

	// North wall: footprint backs onto z=MaxZ, faces South.
	if start, ok := scanWall(in.MinX+2, in.MaxX()-2, size, doorsAlongX(doors, room.MaxZ())); ok {
		b := model.NewRect(start, in.MaxZ()-size+1, size, size)
		return build(b, model.South, model.VerticalWall(b.MinX-1, b.MinZ, b.MaxZ()))
	}
	// East wall: faces West.
	if start, ok := scanWall(in.MinZ+2, in.MaxZ()-2, size, doorsAlongZ(doors, room.MaxX())); ok {
		b := model.NewRect(in.MaxX()-size+1, start, size, size)
		return build(b, model.West, model.HorizontalWall(b.MinZ-1, b.MinX, b.MaxX()))
	}
	// South wall: faces North.
	if start, ok := scanWall(in.MinX+2, in.MaxX()-2, size, doorsAlongX(doors, room.MinZ)); ok {
		b := model.NewRect(start, in.MinZ, size, size)
		return build(b, model.North, model.VerticalWall(b.MinX-1, b.MinZ, b.MaxZ()))
	}
	// West wall: faces East.
	if start, ok := scanWall(in.MinZ+2, in.MaxZ()-2, size, doorsAlongZ(doors, room.MinX)); ok {
		b := model.NewRect(in.MinX, start, size, size)
		return build(b, model.East, model.HorizontalWall(b.MinZ-1, b.MinX, b.MaxX()))
	}
	return model.Placement{}, false
}

// scanWall finds the longest door-free run in [lo, hi] and, when it is long
// enough for the footprint plus safety margin, returns the footprint's
// centered start coordinate along the wall.
func scanWall(lo, hi, size int, blocked map[int]bool) (int, bool) {
	var start, length, curStart, curLen int
	for v := lo; v <= hi; v++ {
		if blocked[v] {
			curLen = 0
			continue
		}
		if curLen == 0 {
			curStart = v
		}
		curLen++
		if curLen > length {
			length, start = curLen, curStart
		}
	}
	if length < size+1 {
		return 0, false
	}
	return start + (length-size)/2, true
}

func doorsAlongX(doors []model.Door, z int) map[int]bool {
	m := make(map[int]bool)
	for _, d := range doors {
		if d.Z == z {
			m[d.X] = true
		}
	}
	return m
}

func doorsAlongZ(doors []model.Door, x int) map[int]bool {
	m := make(map[int]bool)
	for _, d := range doors {
		if d.X == x {
			m[d.Z] = true
		}
	}
	return m
}

// placeCenter floats the footprint at the interior center with the default
// South facing and synthesizes an L of two wall segments: a back wall to the
// north and a side wall to the west. Segments that would coincide with the
// room's own perimeter walls are omitted.
func placeCenter(room model.Rect, size int) model.Placement {
	in := room.Interior()
	cx := in.MinX + in.Width/2
	cz := in.MinZ + in.Height/2
	b := model.BoundsFromCenter(cx, cz, size, size, model.South)

	// The asymmetric even-size span can poke past a boundary in a tight
	// room; shift the realized rectangle back inside.
	if b.MinX < in.MinX {
		b.MinX = in.MinX
	}
	if b.MinZ < in.MinZ {
		b.MinZ = in.MinZ
	}
	if b.MaxX() > in.MaxX() {
		b.MinX = in.MaxX() - size + 1
	}
	if b.MaxZ() > in.MaxZ() {
		b.MinZ = in.MaxZ() - size + 1
	}
	cx, cz = model.CenterForRect(b)

	var walls []model.WallSegment
	if b.MaxZ()+1 <= in.MaxZ() {
		walls = append(walls, model.HorizontalWall(b.MaxZ()+1, max(b.MinX-1, in.MinX), b.MaxX()))
	}
	if b.MinX-1 >= in.MinX {
		walls = append(walls, model.VerticalWall(b.MinX-1, b.MinZ, b.MaxZ()))
	}
	return model.Placement{
		Kind:     model.PlacementCenter,
		CenterX:  cx,
		CenterZ:  cz,
		Rotation: model.South,
		Bounds:   b,
		Walls:    walls,
	}
}
