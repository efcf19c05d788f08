package importer

import (
	"fmt"
	"math"

	"github.com/gridforge/roomlayout/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// FloorPlan is a room rectangle plus its doors, recovered from a drawing.
type FloorPlan struct {
	Room  model.Rect
	Doors []model.Door
}

// ImportDXF reads a floor plan from a DXF file. The room rectangle is the
// bounding box of all LINE entities (the drawn walls) snapped to grid cells;
// each CIRCLE entity marks a door at its center. Coordinates in the drawing
// are taken as grid-cell units.
func ImportDXF(path string) (FloorPlan, ImportResult) {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return FloorPlan{}, result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return FloorPlan{}, result
	}

	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	haveLines := false
	var doors []model.Door

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Line:
			haveLines = true
			minX = math.Min(minX, math.Min(e.Start[0], e.End[0]))
			maxX = math.Max(maxX, math.Max(e.Start[0], e.End[0]))
			minZ = math.Min(minZ, math.Min(e.Start[1], e.End[1]))
			maxZ = math.Max(maxZ, math.Max(e.Start[1], e.End[1]))

		case *entity.Circle:
			doors = append(doors, model.Door{
				X: int(math.Round(e.Center[0])),
				Z: int(math.Round(e.Center[1])),
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	if !haveLines {
		result.Errors = append(result.Errors, "No wall lines found in DXF file")
		return FloorPlan{}, result
	}

	room := model.NewRect(
		int(math.Round(minX)),
		int(math.Round(minZ)),
		int(math.Round(maxX-minX))+1,
		int(math.Round(maxZ-minZ))+1,
	)
	if room.Width < 3 || room.Height < 3 {
		result.Errors = append(result.Errors, fmt.Sprintf("Room %dx%d has no interior", room.Width, room.Height))
		return FloorPlan{}, result
	}

	for _, d := range doors {
		if !room.OnPerimeter(d.X, d.Z) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Door (%d,%d) is not on the room perimeter, skipping", d.X, d.Z))
			continue
		}
		result.Doors = append(result.Doors, d)
	}

	return FloorPlan{Room: room, Doors: result.Doors}, result
}
