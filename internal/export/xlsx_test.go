package export

import (
	"path/filepath"
	"testing"

	"github.com/gridforge/roomlayout/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.xlsx")

	sc, layout := buildTestScenario()

	if err := ExportXLSX(path, sc, layout); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Footprints": true, "Walls": true, "Waste": true}
	for _, s := range sheets {
		delete(want, s)
	}
	if len(want) > 0 {
		t.Errorf("missing sheets: %v (got %v)", want, sheets)
	}

	rows, err := f.GetRows("Footprints")
	if err != nil {
		t.Fatalf("cannot read footprint sheet: %v", err)
	}
	// Header plus one row per placed footprint
	if len(rows) != len(layout.Footprints)+1 {
		t.Errorf("expected %d footprint rows, got %d", len(layout.Footprints)+1, len(rows))
	}
	if len(rows) > 1 && rows[1][1] != layout.Footprints[0].Variant {
		t.Errorf("first footprint variant %q, want %q", rows[1][1], layout.Footprints[0].Variant)
	}
}

func TestExportXLSX_EmptyLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.xlsx")

	sc := model.NewScenario("Closet", model.NewRect(0, 0, 5, 5))

	if err := ExportXLSX(path, sc, model.Layout{}); err == nil {
		t.Fatal("expected error for empty layout, got nil")
	}
}
