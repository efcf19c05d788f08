package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridforge/roomlayout/internal/engine"
	"github.com/gridforge/roomlayout/internal/export"
	"github.com/gridforge/roomlayout/internal/importer"
	"github.com/gridforge/roomlayout/internal/model"
)

// exportPaths collects the optional output targets of the plan command.
type exportPaths struct {
	PDF    string
	DXF    string
	XLSX   string
	Labels string
}

func loadScenario(path string) (*model.Scenario, error) {
	sc, err := model.LoadScenario(path)
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

func runInit(path string, width, height int) error {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sc := model.NewScenario(name, model.NewRect(0, 0, width, height))
	if err := sc.Validate(); err != nil {
		return err
	}
	if err := sc.Save(path); err != nil {
		return err
	}
	fmt.Printf("Wrote scenario %s (%s)\n", sc.ID, path)
	return nil
}

func runPlan(path string, out exportPaths) error {
	sc, err := loadScenario(path)
	if err != nil {
		return err
	}

	planner := engine.NewPlanner(sc.AllowedWidths, sc.AllowedDepths)
	layout := planner.Plan(sc.Room, sc.Doors)
	if layout.IsEmpty() {
		fmt.Printf("Nothing fits in room %q (%dx%d)\n", sc.Name, sc.Room.Width, sc.Room.Height)
		return nil
	}

	printLayoutReport(sc, layout)

	if out.PDF != "" {
		if err := export.ExportPDF(out.PDF, *sc, layout); err != nil {
			return fmt.Errorf("writing PDF: %w", err)
		}
		fmt.Printf("Wrote %s\n", out.PDF)
	}
	if out.DXF != "" {
		if err := export.ExportDXF(out.DXF, *sc, layout); err != nil {
			return fmt.Errorf("writing DXF: %w", err)
		}
		fmt.Printf("Wrote %s\n", out.DXF)
	}
	if out.XLSX != "" {
		if err := export.ExportXLSX(out.XLSX, *sc, layout); err != nil {
			return fmt.Errorf("writing XLSX: %w", err)
		}
		fmt.Printf("Wrote %s\n", out.XLSX)
	}
	if out.Labels != "" {
		if err := export.ExportLabels(out.Labels, *sc, layout); err != nil {
			return fmt.Errorf("writing labels: %w", err)
		}
		fmt.Printf("Wrote %s\n", out.Labels)
	}
	return nil
}

func runPlace(path string) error {
	sc, err := loadScenario(path)
	if err != nil {
		return err
	}
	if sc.FootprintSize < 1 {
		return fmt.Errorf("scenario %s has no footprint_size set", path)
	}

	p := engine.PlaceFootprint(sc.Room, sc.FootprintSize, sc.Doors)
	if p.Kind == model.PlacementInvalid {
		fmt.Printf("No placement found for a %dx%d footprint in room %q\n",
			sc.FootprintSize, sc.FootprintSize, sc.Name)
		return nil
	}

	fmt.Printf("Placement: %s\n", p.Kind)
	fmt.Printf("  Center:   (%d, %d) facing %s\n", p.CenterX, p.CenterZ, p.Rotation)
	fmt.Printf("  Bounds:   x %d..%d, z %d..%d\n",
		p.Bounds.MinX, p.Bounds.MaxX(), p.Bounds.MinZ, p.Bounds.MaxZ())
	if len(p.Walls) == 0 {
		fmt.Println("  Walls:    none (room walls reused)")
	}
	for _, w := range p.Walls {
		fmt.Printf("  Wall:     (%d,%d)..(%d,%d)\n", w.X1, w.Z1, w.X2, w.Z2)
	}
	return nil
}

func runValidate(path string) error {
	sc, err := loadScenario(path)
	if err != nil {
		return err
	}

	layout := engine.NewPlanner(sc.AllowedWidths, sc.AllowedDepths).Plan(sc.Room, sc.Doors)
	if layout.IsEmpty() {
		fmt.Printf("Scenario %q is valid; nothing fits in its room\n", sc.Name)
		return nil
	}

	problems := model.ValidateLayout(sc.Room, sc.Doors, layout)
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "violation: %s\n", p)
		}
		return fmt.Errorf("layout for %q has %d invariant violations", sc.Name, len(problems))
	}

	fmt.Printf("Scenario %q is valid: %d footprints, %d walls, %d waste areas, all invariants hold\n",
		sc.Name, len(layout.Footprints), len(layout.Walls), len(layout.Waste))
	return nil
}

func runImportDoors(scenarioPath, schedulePath string) error {
	sc, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(schedulePath)) {
	case ".xlsx", ".xls":
		result = importer.ImportExcel(schedulePath)
	case ".dxf":
		_, result = importer.ImportDXF(schedulePath)
	default:
		result = importer.ImportCSV(schedulePath)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		return fmt.Errorf("door schedule %s has %d errors", schedulePath, len(result.Errors))
	}

	existing := make(map[model.Door]bool, len(sc.Doors))
	for _, d := range sc.Doors {
		existing[d] = true
	}
	added := 0
	for _, d := range result.Doors {
		if !sc.Room.OnPerimeter(d.X, d.Z) {
			fmt.Fprintf(os.Stderr, "warning: door (%d,%d) is not on the room perimeter, skipping\n", d.X, d.Z)
			continue
		}
		if existing[d] {
			continue
		}
		sc.Doors = append(sc.Doors, d)
		existing[d] = true
		added++
	}

	if err := sc.Save(scenarioPath); err != nil {
		return err
	}
	fmt.Printf("Added %d doors to %s (%d total)\n", added, scenarioPath, len(sc.Doors))
	return nil
}

// printLayoutReport writes a human-readable strip-by-strip summary.
func printLayoutReport(sc *model.Scenario, layout model.Layout) {
	fmt.Printf("Room %q: %dx%d cells, %d doors\n", sc.Name, sc.Room.Width, sc.Room.Height, len(sc.Doors))

	for _, s := range layout.Strips {
		if s.Kind == model.StripCorridor {
			fmt.Printf("  corridor  z %2d..%2d (%d deep)\n", s.MinZ, s.MaxZ, s.Depth())
			continue
		}
		fmt.Printf("  row       z %2d..%2d (%d deep, facing %s)\n", s.MinZ, s.MaxZ, s.Depth(), s.Facing)
		for _, r := range s.Regions {
			kind := "usable"
			if r.Exclusion {
				kind = "exclusion"
			}
			fmt.Printf("    %-9s x %2d..%2d\n", kind, r.MinX, r.MaxX)
		}
	}

	fmt.Printf("Footprints (%d):\n", len(layout.Footprints))
	for _, fp := range layout.Footprints {
		fmt.Printf("  %-12s at (%d,%d) facing %s\n", fp.Variant, fp.Bounds.MinX, fp.Bounds.MinZ, fp.Rotation)
	}
	if len(layout.Walls) > 0 {
		fmt.Printf("Walls (%d):\n", len(layout.Walls))
		for _, w := range layout.Walls {
			fmt.Printf("  (%d,%d)..(%d,%d)\n", w.X1, w.Z1, w.X2, w.Z2)
		}
	}
	if len(layout.Waste) > 0 {
		fmt.Printf("Waste (%d):\n", len(layout.Waste))
		for _, w := range layout.Waste {
			fmt.Printf("  %dx%d at (%d,%d), exclusion to the %s\n",
				w.Bounds.Width, w.Bounds.Height, w.Bounds.MinX, w.Bounds.MinZ, w.Facing)
		}
	}
}
