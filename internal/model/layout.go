package model

import "fmt"

// StripKind distinguishes footprint rows from walkable corridors.
type StripKind int

const (
	StripFootprintRow StripKind = iota
	StripCorridor
)

func (k StripKind) String() string {
	if k == StripCorridor {
		return "Corridor"
	}
	return "FootprintRow"
}

// Region is a horizontal sub-range of a footprint row. Exclusion regions
// are reserved for door clearance and stay free of footprints and walls.
type Region struct {
	MinX      int  `json:"min_x"`
	MaxX      int  `json:"max_x"`
	Exclusion bool `json:"exclusion"`
}

// Width returns the number of columns the region spans.
func (r Region) Width() int {
	return r.MaxX - r.MinX + 1
}

// Strip is a horizontal slice of a room's interior. Footprint rows carry a
// facing direction and a region partition; corridors carry neither.
type Strip struct {
	Kind    StripKind `json:"kind"`
	MinZ    int       `json:"min_z"`
	MaxZ    int       `json:"max_z"`
	Facing  Rotation  `json:"facing,omitempty"`
	Regions []Region  `json:"regions,omitempty"`
}

// Depth returns the number of rows the strip spans.
func (s Strip) Depth() int {
	return s.MaxZ - s.MinZ + 1
}

// PlacedFootprint is one packed footprint instance. Width and Depth are the
// local (pre-rotation) dimensions; Variant identifies the prefab to spawn
// and derives purely from Width x Depth.
type PlacedFootprint struct {
	Bounds   Rect     `json:"bounds"`
	Rotation Rotation `json:"rotation"`
	Width    int      `json:"width"`
	Depth    int      `json:"depth"`
	Variant  string   `json:"variant"`
}

// VariantID names the prefab variant for a footprint of the given local
// dimensions.
func VariantID(width, depth int) string {
	return fmt.Sprintf("prefab_%dx%d", width, depth)
}

// WasteArea is leftover usable space too narrow for another footprint but
// wide enough to be separately filled. Facing names the side the adjacent
// exclusion zone is on, so a filler can orient its front away from it.
type WasteArea struct {
	Bounds Rect     `json:"bounds"`
	Facing Rotation `json:"facing"`
}

// Layout is the aggregate result of strip packing a room.
type Layout struct {
	Strips     []Strip           `json:"strips"`
	Footprints []PlacedFootprint `json:"footprints"`
	Walls      []WallSegment     `json:"walls"`
	Waste      []WasteArea       `json:"waste"`
}

// IsEmpty reports whether the planner could not fit even one row; callers
// must treat this as "nothing fit" and fall back to unembellished content.
func (l Layout) IsEmpty() bool {
	return len(l.Strips) == 0 && len(l.Footprints) == 0
}
