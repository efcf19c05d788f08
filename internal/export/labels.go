package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/gridforge/roomlayout/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each footprint label's QR code. A
// builder scanning the code gets everything needed to spawn the right prefab
// at the right cell.
type LabelInfo struct {
	Scenario string `json:"scenario"`
	Variant  string `json:"variant"`
	Width    int    `json:"width"`
	Depth    int    `json:"depth"`
	Rotation string `json:"rotation"`
	MinX     int    `json:"min_x"`
	MinZ     int    `json:"min_z"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per placed footprint.
// Each label carries the variant name, dimensions, and a QR code encoding
// the placement as JSON. Labels are laid out on a standard label sheet
// format (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, sc model.Scenario, layout model.Layout) error {
	labels := CollectLabelInfos(sc, layout)
	if len(labels) == 0 {
		return fmt.Errorf("no footprints placed to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Variant, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%s_%d_%d", info.Variant, info.MinX, info.MinZ)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Variant name (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	variant := info.Variant
	if pdf.GetStringWidth(variant) > textW {
		for len(variant) > 0 && pdf.GetStringWidth(variant+"...") > textW {
			variant = variant[:len(variant)-1]
		}
		variant += "..."
	}
	pdf.CellFormat(textW, 4.5, variant, "", 1, "L", false, 0, "")

	// Dimensions
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%d x %d cells, facing %s", info.Width, info.Depth, info.Rotation)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Anchor cell
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	anchor := fmt.Sprintf("%s @ (%d, %d)", info.Scenario, info.MinX, info.MinZ)
	pdf.CellFormat(textW, 3, anchor, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from a layout for use in
// testing or alternative export formats.
func CollectLabelInfos(sc model.Scenario, layout model.Layout) []LabelInfo {
	var labels []LabelInfo
	for _, fp := range layout.Footprints {
		labels = append(labels, LabelInfo{
			Scenario: sc.Name,
			Variant:  fp.Variant,
			Width:    fp.Width,
			Depth:    fp.Depth,
			Rotation: fp.Rotation.String(),
			MinX:     fp.Bounds.MinX,
			MinZ:     fp.Bounds.MinZ,
		})
	}
	return labels
}
