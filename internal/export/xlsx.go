package export

import (
	"fmt"

	"github.com/gridforge/roomlayout/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the layout as a placement schedule workbook: one sheet
// of footprints, one of wall segments, one of waste areas.
func ExportXLSX(path string, sc model.Scenario, layout model.Layout) error {
	if layout.IsEmpty() {
		return fmt.Errorf("nothing fit in room %q, no layout to export", sc.Name)
	}

	f := excelize.NewFile()
	defer f.Close()

	const footprintSheet = "Footprints"
	f.SetSheetName(f.GetSheetName(0), footprintSheet)

	header := []interface{}{"#", "Variant", "Width", "Depth", "Rotation", "Min X", "Min Z", "Max X", "Max Z"}
	if err := f.SetSheetRow(footprintSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing footprint header: %w", err)
	}
	for i, fp := range layout.Footprints {
		row := []interface{}{
			i + 1, fp.Variant, fp.Width, fp.Depth, fp.Rotation.String(),
			fp.Bounds.MinX, fp.Bounds.MinZ, fp.Bounds.MaxX(), fp.Bounds.MaxZ(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(footprintSheet, cell, &row); err != nil {
			return fmt.Errorf("writing footprint row %d: %w", i+1, err)
		}
	}

	const wallSheet = "Walls"
	if _, err := f.NewSheet(wallSheet); err != nil {
		return fmt.Errorf("creating wall sheet: %w", err)
	}
	wallHeader := []interface{}{"#", "X1", "Z1", "X2", "Z2", "Cells"}
	if err := f.SetSheetRow(wallSheet, "A1", &wallHeader); err != nil {
		return fmt.Errorf("writing wall header: %w", err)
	}
	for i, w := range layout.Walls {
		row := []interface{}{i + 1, w.X1, w.Z1, w.X2, w.Z2, w.Len()}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(wallSheet, cell, &row); err != nil {
			return fmt.Errorf("writing wall row %d: %w", i+1, err)
		}
	}

	const wasteSheet = "Waste"
	if _, err := f.NewSheet(wasteSheet); err != nil {
		return fmt.Errorf("creating waste sheet: %w", err)
	}
	wasteHeader := []interface{}{"#", "Min X", "Min Z", "Width", "Depth", "Facing"}
	if err := f.SetSheetRow(wasteSheet, "A1", &wasteHeader); err != nil {
		return fmt.Errorf("writing waste header: %w", err)
	}
	for i, w := range layout.Waste {
		row := []interface{}{
			i + 1, w.Bounds.MinX, w.Bounds.MinZ, w.Bounds.Width, w.Bounds.Height, w.Facing.String(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(wasteSheet, cell, &row); err != nil {
			return fmt.Errorf("writing waste row %d: %w", i+1, err)
		}
	}

	return f.SaveAs(path)
}
