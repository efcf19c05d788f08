package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsFromCenter_OddSizesAreSymmetric(t *testing.T) {
	// A 5x3 footprint centered at (10,10) must extend 2 cells each way in x
	// and 1 cell each way in z, for every rotation that keeps the axes.
	for _, rot := range []Rotation{North, South} {
		b := BoundsFromCenter(10, 10, 5, 3, rot)
		assert.Equal(t, NewRect(8, 9, 5, 3), b, "rotation %s", rot)
	}
	// East/West swap the local axes.
	for _, rot := range []Rotation{East, West} {
		b := BoundsFromCenter(10, 10, 5, 3, rot)
		assert.Equal(t, NewRect(9, 8, 3, 5), b, "rotation %s", rot)
	}
}

func TestBoundsFromCenter_EvenSizesExtendNegative(t *testing.T) {
	// Even spans always put the extra cell on the negative side of the world
	// axis, regardless of rotation.
	b := BoundsFromCenter(10, 10, 6, 4, North)
	assert.Equal(t, NewRect(7, 8, 6, 4), b)
	assert.Equal(t, 12, b.MaxX(), "3 cells negative, 2 positive in x")
	assert.Equal(t, 11, b.MaxZ(), "2 cells negative, 1 positive in z")

	// Rotated 90 degrees the dimensions swap, but the asymmetry still points
	// in the negative world direction.
	b = BoundsFromCenter(10, 10, 6, 4, East)
	assert.Equal(t, NewRect(8, 7, 4, 6), b)
}

func TestCenterForRect_InvertsBoundsFromCenter(t *testing.T) {
	for _, rot := range []Rotation{North, East, South, West} {
		for _, dims := range [][2]int{{1, 1}, {3, 5}, {4, 4}, {6, 3}, {2, 7}} {
			b := BoundsFromCenter(20, 30, dims[0], dims[1], rot)
			cx, cz := CenterForRect(b)
			assert.Equal(t, 20, cx, "%dx%d %s", dims[0], dims[1], rot)
			assert.Equal(t, 30, cz, "%dx%d %s", dims[0], dims[1], rot)
		}
	}
}

func TestRect_InteriorAndPerimeter(t *testing.T) {
	room := NewRect(0, 0, 10, 8)
	in := room.Interior()

	assert.Equal(t, NewRect(1, 1, 8, 6), in)
	assert.True(t, room.OnPerimeter(0, 4))
	assert.True(t, room.OnPerimeter(9, 0))
	assert.False(t, room.OnPerimeter(1, 1))
	assert.False(t, room.OnPerimeter(10, 4), "outside is not on the perimeter")
}

func TestRect_Intersects(t *testing.T) {
	a := NewRect(0, 0, 4, 4)

	assert.True(t, a.Intersects(NewRect(3, 3, 4, 4)), "corner overlap")
	assert.False(t, a.Intersects(NewRect(4, 0, 4, 4)), "flush edges do not overlap")
	assert.False(t, a.Intersects(Rect{}), "empty rect never intersects")
}

func TestRotation_OppositeAndDegrees(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, East, West.Opposite())
	assert.Equal(t, 270, West.Degrees())
	assert.Equal(t, "South", South.String())
}

func TestWallSegment_NormalizationAndCells(t *testing.T) {
	w := HorizontalWall(5, 9, 3)
	assert.Equal(t, 3, w.X1, "endpoints are normalized")
	assert.Equal(t, 9, w.X2)
	assert.Equal(t, 7, w.Len())
	assert.True(t, w.Contains(6, 5))
	assert.False(t, w.Contains(6, 4))

	v := VerticalWall(2, 2, 2)
	assert.Equal(t, 1, v.Len(), "a single cell is a valid segment")
	assert.Equal(t, []Cell{{X: 2, Z: 2}}, v.Cells())
}
