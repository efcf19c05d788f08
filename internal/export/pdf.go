// Package export provides functionality for exporting computed room layouts
// to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/gridforge/roomlayout/internal/model"
)

// variantColor represents an RGB color for a footprint variant.
type variantColor struct {
	R, G, B int
}

// variantColors is the palette cycled over footprint variants.
var variantColors = []variantColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for a packed room: a floor plan page
// with the full strip layout, followed by a summary page with statistics.
func ExportPDF(path string, sc model.Scenario, layout model.Layout) error {
	if layout.IsEmpty() {
		return fmt.Errorf("nothing fit in room %q, no layout to export", sc.Name)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderFloorPlan(pdf, sc, layout)

	pdf.AddPage()
	renderSummaryPage(pdf, sc, layout)

	return pdf.OutputFileAndClose(path)
}

// plotter maps grid cells into page coordinates. The grid's z axis grows
// north, the page's y axis grows down, so z is flipped.
type plotter struct {
	room    model.Rect
	scale   float64
	offsetX float64
	offsetY float64
}

func newPlotter(room model.Rect) plotter {
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/float64(room.Width), drawHeight/float64(room.Height))
	canvasW := float64(room.Width) * scale

	return plotter{
		room:    room,
		scale:   scale,
		offsetX: marginLeft + (drawWidth-canvasW)/2,
		offsetY: drawAreaTop,
	}
}

// rect returns page position and size for a grid rectangle.
func (p plotter) rect(r model.Rect) (x, y, w, h float64) {
	x = p.offsetX + float64(r.MinX-p.room.MinX)*p.scale
	y = p.offsetY + float64(p.room.MaxZ()-r.MaxZ())*p.scale
	return x, y, float64(r.Width) * p.scale, float64(r.Height) * p.scale
}

// cell returns page position for a single grid cell.
func (p plotter) cell(cx, cz int) (x, y float64) {
	r := model.NewRect(cx, cz, 1, 1)
	x, y, _, _ = p.rect(r)
	return x, y
}

// renderFloorPlan draws the room, strips, footprints, walls, doors, and
// waste areas on the current page.
func renderFloorPlan(pdf *fpdf.Fpdf, sc model.Scenario, layout model.Layout) {
	room := sc.Room
	pl := newPlotter(room)

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Room %s (%d x %d cells)", sc.Name, room.Width, room.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Footprints: %d | Walls: %d | Waste areas: %d | Fill: %.1f%%",
		len(layout.Footprints), len(layout.Walls), len(layout.Waste), fillPercent(room, layout))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Room with perimeter walls
	rx, ry, rw, rh := pl.rect(room)
	pdf.SetFillColor(90, 90, 90)
	pdf.SetDrawColor(40, 40, 40)
	pdf.SetLineWidth(0.5)
	pdf.Rect(rx, ry, rw, rh, "FD")

	// Interior floor
	ix, iy, iw, ih := pl.rect(room.Interior())
	pdf.SetFillColor(245, 240, 230)
	pdf.Rect(ix, iy, iw, ih, "F")

	// Corridor strips
	in := room.Interior()
	pdf.SetFillColor(225, 225, 225)
	for _, s := range layout.Strips {
		if s.Kind != model.StripCorridor {
			continue
		}
		cx, cy, cw, ch := pl.rect(model.NewRect(in.MinX, s.MinZ, in.Width, s.Depth()))
		pdf.Rect(cx, cy, cw, ch, "F")
	}

	// Exclusion regions, hatched
	for _, s := range layout.Strips {
		if s.Kind != model.StripFootprintRow {
			continue
		}
		for _, reg := range s.Regions {
			if !reg.Exclusion {
				continue
			}
			ex, ey, ew, eh := pl.rect(model.NewRect(reg.MinX, s.MinZ, reg.Width(), s.Depth()))
			pdf.SetFillColor(255, 200, 200)
			pdf.SetDrawColor(200, 0, 0)
			pdf.SetLineWidth(0.3)
			pdf.Rect(ex, ey, ew, eh, "FD")
			drawHatchPattern(pdf, ex, ey, ew, eh)
		}
	}

	// Waste areas
	for _, w := range layout.Waste {
		wx, wy, ww, wh := pl.rect(w.Bounds)
		pdf.SetFillColor(255, 245, 180)
		pdf.SetDrawColor(180, 150, 0)
		pdf.SetLineWidth(0.2)
		pdf.Rect(wx, wy, ww, wh, "FD")
	}

	// Footprints, colored per variant
	colors := variantColorMap(layout)
	for _, fp := range layout.Footprints {
		col := colors[fp.Variant]
		fx, fy, fw, fh := pl.rect(fp.Bounds)

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(fx, fy, fw, fh, "FD")

		if fw > 12 && fh > 6 {
			pdf.SetFont("Helvetica", "", labelFontSize(fw, fh))
			pdf.SetTextColor(0, 0, 0)
			label := fmt.Sprintf("%dx%d %s", fp.Width, fp.Depth, fp.Rotation)
			labelW := pdf.GetStringWidth(label)
			if labelW < fw-2 {
				pdf.SetXY(fx+(fw-labelW)/2, fy+fh/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	// Synthesized walls
	pdf.SetFillColor(60, 60, 60)
	for _, w := range layout.Walls {
		for _, c := range w.Cells() {
			x, y := pl.cell(c.X, c.Z)
			pdf.Rect(x, y, pl.scale, pl.scale, "F")
		}
	}

	// Doors
	pdf.SetFillColor(46, 160, 67)
	pdf.SetDrawColor(20, 90, 30)
	pdf.SetLineWidth(0.2)
	for _, d := range sc.Doors {
		x, y := pl.cell(d.X, d.Z)
		pdf.Rect(x, y, pl.scale, pl.scale, "FD")
	}

	drawDimensionAnnotations(pdf, room, pl)
	drawVariantLegend(pdf, layout, colors, ry+rh+5)
}

// drawHatchPattern draws diagonal lines inside a rectangle to indicate exclusion zones.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.15)

	spacing := 4.0
	maxDist := w + h

	for d := spacing; d < maxDist; d += spacing {
		// Line from bottom-left to top-right diagonal
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)

		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds width and height labels outside the room rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, room model.Rect, pl plotter) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	rx, ry, rw, rh := pl.rect(room)

	// Width annotation (below the room)
	widthLabel := fmt.Sprintf("%d cells", room.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(rx+(rw-wLabelW)/2, ry+rh+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the room, rotated)
	heightLabel := fmt.Sprintf("%d cells", room.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, rx-3, ry+rh/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(rx-3-hLabelW/2, ry+rh/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawVariantLegend renders a compact legend of footprint variants below the plan.
func drawVariantLegend(pdf *fpdf.Fpdf, layout model.Layout, colors map[string]variantColor, startY float64) {
	if len(layout.Footprints) == 0 {
		return
	}

	counts := make(map[string]int)
	var order []string
	for _, fp := range layout.Footprints {
		if counts[fp.Variant] == 0 {
			order = append(order, fp.Variant)
		}
		counts[fp.Variant]++
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Variants placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for _, variant := range order {
		col := colors[variant]
		label := fmt.Sprintf("%s x%d", variant, counts[variant])
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with layout statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, sc model.Scenario, layout model.Layout) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Room Layout Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	rows, corridors := 0, 0
	for _, s := range layout.Strips {
		if s.Kind == model.StripFootprintRow {
			rows++
		} else {
			corridors++
		}
	}

	summaryItems := []struct {
		label string
		value string
	}{
		{"Room", fmt.Sprintf("%d x %d cells", sc.Room.Width, sc.Room.Height)},
		{"Doors", fmt.Sprintf("%d", len(sc.Doors))},
		{"Footprint Rows", fmt.Sprintf("%d", rows)},
		{"Corridors", fmt.Sprintf("%d", corridors)},
		{"Footprints Placed", fmt.Sprintf("%d", len(layout.Footprints))},
		{"Wall Segments", fmt.Sprintf("%d", len(layout.Walls))},
		{"Waste Areas", fmt.Sprintf("%d", len(layout.Waste))},
		{"Interior Fill", fmt.Sprintf("%.1f%%", fillPercent(sc.Room, layout))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-row breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Row Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 35, 30, 30, 40, 40}
	headers := []string{"Row", "Span (z)", "Depth", "Facing", "Footprints", "Exclusions"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	rowNum := 0
	for _, s := range layout.Strips {
		if s.Kind != model.StripFootprintRow {
			continue
		}
		rowNum++

		placed, exclusions := 0, 0
		for _, fp := range layout.Footprints {
			if fp.Bounds.MinZ == s.MinZ {
				placed++
			}
		}
		for _, reg := range s.Regions {
			if reg.Exclusion {
				exclusions++
			}
		}

		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", rowNum),
			fmt.Sprintf("%d..%d", s.MinZ, s.MaxZ),
			fmt.Sprintf("%d", s.Depth()),
			s.Facing.String(),
			fmt.Sprintf("%d", placed),
			fmt.Sprintf("%d", exclusions),
		}

		// Alternate row background
		if rowNum%2 == 1 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Layout invariant check results
	if problems := model.ValidateLayout(sc.Room, sc.Doors, layout); len(problems) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Layout Violations", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, p := range problems {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, "- "+p, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by RoomLayout - Strip Packing Planner", "", 0, "C", false, 0, "")
}

// variantColorMap assigns a palette color to each distinct variant, in
// first-seen order.
func variantColorMap(layout model.Layout) map[string]variantColor {
	colors := make(map[string]variantColor)
	next := 0
	for _, fp := range layout.Footprints {
		if _, ok := colors[fp.Variant]; !ok {
			colors[fp.Variant] = variantColors[next%len(variantColors)]
			next++
		}
	}
	return colors
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

// fillPercent is the share of interior cells covered by footprints.
func fillPercent(room model.Rect, layout model.Layout) float64 {
	interior := room.Interior().Area()
	if interior == 0 {
		return 0
	}
	used := 0
	for _, fp := range layout.Footprints {
		used += fp.Bounds.Area()
	}
	return float64(used) / float64(interior) * 100
}
