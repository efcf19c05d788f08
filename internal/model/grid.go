package model

// Rotation is one of the four cardinal directions a footprint's front
// (entrance side) can face. The grid convention throughout this package is
// x grows east and z grows north.
type Rotation int

const (
	North Rotation = iota // front faces +z
	East                  // front faces +x
	South                 // front faces -z
	West                  // front faces -x
)

func (r Rotation) String() string {
	switch r {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Degrees returns the rotation as a clockwise angle from North.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// Opposite returns the rotation facing the other way.
func (r Rotation) Opposite() Rotation {
	return (r + 2) % 4
}

// Cell is a single grid coordinate.
type Cell struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// Door marks a cell on a room's perimeter where traffic must remain
// unobstructed. Doors are inputs; the engine never creates or removes them.
type Door struct {
	X int `json:"x" yaml:"x"`
	Z int `json:"z" yaml:"z"`
}

// Rect is an axis-aligned region of grid cells. Width and Height count
// cells, so the inclusive far corner is (MinX+Width-1, MinZ+Height-1).
type Rect struct {
	MinX   int `json:"min_x" yaml:"min_x"`
	MinZ   int `json:"min_z" yaml:"min_z"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func NewRect(minX, minZ, width, height int) Rect {
	return Rect{MinX: minX, MinZ: minZ, Width: width, Height: height}
}

// MaxX returns the x of the easternmost column (inclusive).
func (r Rect) MaxX() int {
	return r.MinX + r.Width - 1
}

// MaxZ returns the z of the northernmost row (inclusive).
func (r Rect) MaxZ() int {
	return r.MinZ + r.Height - 1
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, z) lies inside the rectangle.
func (r Rect) Contains(x, z int) bool {
	return x >= r.MinX && x <= r.MaxX() && z >= r.MinZ && z <= r.MaxZ()
}

// Intersects reports whether any cell is covered by both rectangles.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.MinX <= o.MaxX() && r.MaxX() >= o.MinX &&
		r.MinZ <= o.MaxZ() && r.MaxZ() >= o.MinZ
}

// Interior returns the rectangle shrunk by one cell on every side. For a
// room this is the walkable area inside the perimeter walls.
func (r Rect) Interior() Rect {
	return Rect{MinX: r.MinX + 1, MinZ: r.MinZ + 1, Width: r.Width - 2, Height: r.Height - 2}
}

// OnPerimeter reports whether the cell (x, z) lies on the rectangle's
// outermost ring of cells.
func (r Rect) OnPerimeter(x, z int) bool {
	if !r.Contains(x, z) {
		return false
	}
	return x == r.MinX || x == r.MaxX() || z == r.MinZ || z == r.MaxZ()
}

// BoundsFromCenter converts a center coordinate plus a local width/depth and
// rotation into the occupied world-space rectangle. Under East/West the
// local width maps to the z axis and the depth to the x axis.
//
// For even side lengths the platform's center-to-rectangle convention is
// asymmetric: the span extends one extra cell in the negative direction on
// each world axis, independent of rotation, giving [c-s/2, c+s/2-1]. Odd
// side lengths are symmetric: [c-s/2, c+s/2].
func BoundsFromCenter(cx, cz, width, depth int, rot Rotation) Rect {
	w, h := width, depth
	if rot == East || rot == West {
		w, h = depth, width
	}
	return Rect{MinX: cx - w/2, MinZ: cz - h/2, Width: w, Height: h}
}

// CenterForRect is the exact inverse of BoundsFromCenter: it returns the
// center coordinate whose realized rectangle is r, for any rotation and for
// both odd and even side lengths.
func CenterForRect(r Rect) (cx, cz int) {
	return r.MinX + r.Width/2, r.MinZ + r.Height/2
}

// WallSegment is a straight run of wall cells along one axis. Both
// endpoints are inclusive; a single cell is a valid segment.
type WallSegment struct {
	X1 int `json:"x1"`
	Z1 int `json:"z1"`
	X2 int `json:"x2"`
	Z2 int `json:"z2"`
}

// HorizontalWall returns a segment running along the x axis at height z.
// Endpoints are normalized so X1 <= X2.
func HorizontalWall(z, x1, x2 int) WallSegment {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	return WallSegment{X1: x1, Z1: z, X2: x2, Z2: z}
}

// VerticalWall returns a segment running along the z axis at column x.
// Endpoints are normalized so Z1 <= Z2.
func VerticalWall(x, z1, z2 int) WallSegment {
	if z1 > z2 {
		z1, z2 = z2, z1
	}
	return WallSegment{X1: x, Z1: z1, X2: x, Z2: z2}
}

// IsHorizontal reports whether the segment runs along the x axis.
func (w WallSegment) IsHorizontal() bool {
	return w.Z1 == w.Z2
}

// Len returns the number of cells in the segment.
func (w WallSegment) Len() int {
	if w.IsHorizontal() {
		return w.X2 - w.X1 + 1
	}
	return w.Z2 - w.Z1 + 1
}

// Contains reports whether the cell (x, z) is part of the segment.
func (w WallSegment) Contains(x, z int) bool {
	if w.IsHorizontal() {
		return z == w.Z1 && x >= w.X1 && x <= w.X2
	}
	return x == w.X1 && z >= w.Z1 && z <= w.Z2
}

// Cells expands the segment into its individual cells.
func (w WallSegment) Cells() []Cell {
	cells := make([]Cell, 0, w.Len())
	if w.IsHorizontal() {
		for x := w.X1; x <= w.X2; x++ {
			cells = append(cells, Cell{X: x, Z: w.Z1})
		}
		return cells
	}
	for z := w.Z1; z <= w.Z2; z++ {
		cells = append(cells, Cell{X: w.X1, Z: z})
	}
	return cells
}
