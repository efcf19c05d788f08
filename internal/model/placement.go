package model

// PlacementKind classifies how a single footprint was placed in a room.
type PlacementKind int

const (
	PlacementInvalid PlacementKind = iota // no feasible position found
	PlacementCorner                       // flush with two adjoining room walls
	PlacementEdge                         // flush with one room wall
	PlacementCenter                       // floating at the room interior center
)

func (k PlacementKind) String() string {
	switch k {
	case PlacementCorner:
		return "Corner"
	case PlacementEdge:
		return "Edge"
	case PlacementCenter:
		return "Center"
	default:
		return "Invalid"
	}
}

// Placement is the result of placing a single footprint. CenterX/CenterZ is
// the anchor in the platform's center-coordinate convention; Bounds is the
// realized rectangle (see BoundsFromCenter). Walls lists the segments that
// must be synthesized to enclose the footprint: empty for corner placements,
// one side wall for edge placements, and an L of two segments for center
// placements.
type Placement struct {
	Kind     PlacementKind `json:"kind"`
	CenterX  int           `json:"center_x"`
	CenterZ  int           `json:"center_z"`
	Rotation Rotation      `json:"rotation"`
	Bounds   Rect          `json:"bounds"`
	Walls    []WallSegment `json:"walls,omitempty"`
}
