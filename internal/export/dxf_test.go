package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gridforge/roomlayout/internal/model"
	"github.com/yofu/dxf"
)

func TestExportDXF_CreatesReadableDrawing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.dxf")

	sc, layout := buildTestScenario()

	if err := ExportDXF(path, sc, layout); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("DXF file is empty")
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		t.Fatalf("exported DXF cannot be reopened: %v", err)
	}
	// Room outline (8 lines), footprint outlines, walls, doors, waste.
	minEntities := 8 + 4*len(layout.Footprints) + len(layout.Walls) + len(sc.Doors)
	if got := len(drawing.Entities()); got < minEntities {
		t.Errorf("expected at least %d entities, got %d", minEntities, got)
	}
}

func TestExportDXF_EmptyLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dxf")

	sc := model.NewScenario("Closet", model.NewRect(0, 0, 5, 5))

	if err := ExportDXF(path, sc, model.Layout{}); err == nil {
		t.Fatal("expected error for empty layout, got nil")
	}
}
