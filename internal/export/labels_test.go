package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gridforge/roomlayout/internal/model"
)

func TestCollectLabelInfos(t *testing.T) {
	sc, layout := buildTestScenario()

	labels := CollectLabelInfos(sc, layout)

	if len(labels) != len(layout.Footprints) {
		t.Fatalf("expected %d labels, got %d", len(layout.Footprints), len(labels))
	}
	for i, l := range labels {
		fp := layout.Footprints[i]
		if l.Variant != fp.Variant {
			t.Errorf("label %d: variant %q, want %q", i, l.Variant, fp.Variant)
		}
		if l.MinX != fp.Bounds.MinX || l.MinZ != fp.Bounds.MinZ {
			t.Errorf("label %d: anchor (%d,%d), want (%d,%d)",
				i, l.MinX, l.MinZ, fp.Bounds.MinX, fp.Bounds.MinZ)
		}
		if l.Scenario != sc.Name {
			t.Errorf("label %d: scenario %q, want %q", i, l.Scenario, sc.Name)
		}
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	sc, layout := buildTestScenario()

	if err := ExportLabels(path, sc, layout); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("labels PDF was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("labels PDF is empty")
	}
}

func TestExportLabels_EmptyLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	sc := model.NewScenario("Empty", model.NewRect(0, 0, 10, 10))

	if err := ExportLabels(path, sc, model.Layout{}); err == nil {
		t.Fatal("expected error for layout without footprints, got nil")
	}
}
