package export

import (
	"fmt"

	"github.com/gridforge/roomlayout/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names, one per feature class.
const (
	layerRoom       = "ROOM"
	layerFootprints = "FOOTPRINTS"
	layerWalls      = "WALLS"
	layerDoors      = "DOORS"
	layerWaste      = "WASTE"
)

// ExportDXF writes the layout as a DXF drawing with one layer per feature
// class. Grid cells map to drawing units; each rectangle is traced along its
// cell-boundary outline.
func ExportDXF(path string, sc model.Scenario, layout model.Layout) error {
	if layout.IsEmpty() {
		return fmt.Errorf("nothing fit in room %q, no layout to export", sc.Name)
	}

	d := dxf.NewDrawing()

	if err := addRectLayer(d, layerRoom, []model.Rect{sc.Room, sc.Room.Interior()}); err != nil {
		return err
	}

	footprints := make([]model.Rect, 0, len(layout.Footprints))
	for _, fp := range layout.Footprints {
		footprints = append(footprints, fp.Bounds)
	}
	if err := addRectLayer(d, layerFootprints, footprints); err != nil {
		return err
	}

	if _, err := d.AddLayer(layerWalls, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("adding layer %s: %w", layerWalls, err)
	}
	for _, w := range layout.Walls {
		// Centerline of the 1-cell-wide run.
		var err error
		if w.IsHorizontal() {
			_, err = d.Line(float64(w.X1), float64(w.Z1)+0.5, 0, float64(w.X2)+1, float64(w.Z1)+0.5, 0)
		} else {
			_, err = d.Line(float64(w.X1)+0.5, float64(w.Z1), 0, float64(w.X1)+0.5, float64(w.Z2)+1, 0)
		}
		if err != nil {
			return fmt.Errorf("drawing wall segment: %w", err)
		}
	}

	if _, err := d.AddLayer(layerDoors, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("adding layer %s: %w", layerDoors, err)
	}
	for _, door := range sc.Doors {
		if _, err := d.Circle(float64(door.X)+0.5, float64(door.Z)+0.5, 0, 0.4); err != nil {
			return fmt.Errorf("drawing door marker: %w", err)
		}
	}

	waste := make([]model.Rect, 0, len(layout.Waste))
	for _, w := range layout.Waste {
		waste = append(waste, w.Bounds)
	}
	if err := addRectLayer(d, layerWaste, waste); err != nil {
		return err
	}

	return d.SaveAs(path)
}

// addRectLayer creates a layer and traces each rectangle's outline on it.
func addRectLayer(d *drawing.Drawing, name string, rects []model.Rect) error {
	if _, err := d.AddLayer(name, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("adding layer %s: %w", name, err)
	}
	for _, r := range rects {
		if r.IsEmpty() {
			continue
		}
		// Outline along the cell boundary, so a rect spanning cells
		// [MinX..MaxX] is drawn from MinX to MaxX+1.
		x1, z1 := float64(r.MinX), float64(r.MinZ)
		x2, z2 := float64(r.MaxX())+1, float64(r.MaxZ())+1
		lines := [][4]float64{
			{x1, z1, x2, z1},
			{x2, z1, x2, z2},
			{x2, z2, x1, z2},
			{x1, z2, x1, z1},
		}
		for _, l := range lines {
			if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
				return fmt.Errorf("drawing outline on %s: %w", name, err)
			}
		}
	}
	return nil
}
