package engine

import (
	"testing"

	"github.com/gridforge/roomlayout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowFacings_OutermostFaceInward(t *testing.T) {
	assert.Equal(t, []model.Rotation{model.North}, rowFacings(1))
	assert.Equal(t, []model.Rotation{model.North, model.South}, rowFacings(2))
	assert.Equal(t, []model.Rotation{model.North, model.South, model.South}, rowFacings(3))
}

func TestCorridorWidth_FrontsMeetIsOne(t *testing.T) {
	assert.Equal(t, 1, corridorWidth(model.North, model.South))
	assert.Equal(t, 2, corridorWidth(model.South, model.South), "a back wall needs its own cell")
	assert.Equal(t, 2, corridorWidth(model.South, model.North))
}

func TestLayoutStrips_FillsInteriorFlush(t *testing.T) {
	// Interior height 18, depths 4..5: three rows at depth 5 with corridors
	// of 1 and 2 consume it exactly.
	strips := layoutStrips(model.NewRect(0, 0, 10, 20), 4, 5)

	require.Len(t, strips, 5)
	assert.Equal(t, 1, strips[0].MinZ, "first row flush with the south boundary")
	assert.Equal(t, 18, strips[4].MaxZ, "last row flush with the north boundary")
	for i, s := range strips {
		if i%2 == 0 {
			assert.Equal(t, model.StripFootprintRow, s.Kind)
			assert.Equal(t, 5, s.Depth())
		} else {
			assert.Equal(t, model.StripCorridor, s.Kind)
		}
	}
	assert.Equal(t, 1, strips[1].Depth(), "fronts meet across the first corridor")
	assert.Equal(t, 2, strips[3].Depth(), "the middle row's back wall needs the second")
}

func TestLayoutStrips_SingleRowGetsTrailingCorridor(t *testing.T) {
	// Interior height 8 but the maximum depth is 4: the single row cannot
	// absorb the slack, which becomes a corridor so the row stays flush.
	strips := layoutStrips(model.NewRect(0, 0, 12, 10), 4, 4)

	require.Len(t, strips, 2)
	assert.Equal(t, model.StripFootprintRow, strips[0].Kind)
	assert.Equal(t, 1, strips[0].MinZ)
	assert.Equal(t, 4, strips[0].Depth())
	assert.Equal(t, model.StripCorridor, strips[1].Kind)
	assert.Equal(t, 8, strips[1].MaxZ)
}

func TestLayoutStrips_TooShallowReturnsNil(t *testing.T) {
	assert.Nil(t, layoutStrips(model.NewRect(0, 0, 10, 5), 4, 5), "interior height 3 cannot hold depth 4")
}

func TestPlan_ThreeRowLayout(t *testing.T) {
	// Interior height 17 with depths {4,5}: three rows (5,5,4) facing
	// North, South, South, separated by corridors of 1 and 2 cells.
	room := model.NewRect(0, 0, 19, 19)
	doors := []model.Door{{X: 0, Z: 6}, {X: 18, Z: 6}}
	p := NewPlanner([]int{3, 4}, []int{4, 5})

	layout := p.Plan(room, doors)

	require.Len(t, layout.Strips, 5)
	rows := []model.Strip{layout.Strips[0], layout.Strips[2], layout.Strips[4]}
	assert.Equal(t, model.North, rows[0].Facing)
	assert.Equal(t, model.South, rows[1].Facing)
	assert.Equal(t, model.South, rows[2].Facing)
	assert.Equal(t, 1, rows[0].MinZ)
	assert.Equal(t, 17, rows[2].MaxZ)
	assert.Equal(t, 1, layout.Strips[1].Depth())
	assert.Equal(t, 2, layout.Strips[3].Depth())

	// The middle row has no door of its own, so connectivity forces an
	// exclusion zone at its west edge.
	require.NotEmpty(t, rows[1].Regions)
	assert.True(t, rows[1].Regions[0].Exclusion)
	assert.Equal(t, 2, rows[1].Regions[0].Width())

	assert.Len(t, layout.Footprints, 12, "4 per row across 3 rows")
	assert.Empty(t, model.ValidateLayout(room, doors, layout))
}

func TestPlan_MiddleRowBackWallSitsInWideCorridor(t *testing.T) {
	room := model.NewRect(0, 0, 19, 19)
	p := NewPlanner([]int{3, 4}, []int{4, 5})

	layout := p.Plan(room, nil)

	// The middle row faces South; its synthesized back wall occupies the
	// first cell of the 2-wide corridor behind it.
	var found bool
	for _, w := range layout.Walls {
		if w.IsHorizontal() && w.Z1 == 12 {
			found = true
			assert.Equal(t, 3, w.X1, "spans the packed run, clear of the forced exclusion")
			assert.Equal(t, 17, w.X2)
		}
	}
	assert.True(t, found, "middle row must be closed off behind")
}

func TestPlan_DoorCutsExclusionZone(t *testing.T) {
	// One door on the south wall splits the single row into two usable
	// regions around a 3-wide exclusion.
	room := model.NewRect(0, 0, 12, 10)
	doors := []model.Door{{X: 5, Z: 0}}
	p := NewPlanner([]int{3}, []int{4})

	layout := p.Plan(room, doors)

	require.Len(t, layout.Strips, 2)
	row := layout.Strips[0]
	require.Len(t, row.Regions, 3)
	assert.Equal(t, model.Region{MinX: 1, MaxX: 3}, row.Regions[0])
	assert.Equal(t, model.Region{MinX: 4, MaxX: 6, Exclusion: true}, row.Regions[1])
	assert.Equal(t, model.Region{MinX: 7, MaxX: 10}, row.Regions[2])

	require.Len(t, layout.Footprints, 2)
	assert.Equal(t, model.NewRect(1, 1, 3, 4), layout.Footprints[0].Bounds)
	assert.Equal(t, model.NewRect(8, 1, 3, 4), layout.Footprints[1].Bounds,
		"east region anchors east, leftover falls toward the exclusion")

	require.Len(t, layout.Waste, 1)
	assert.Equal(t, model.NewRect(7, 1, 1, 4), layout.Waste[0].Bounds)
	assert.Equal(t, model.West, layout.Waste[0].Facing, "exclusion zone lies to the west")

	assert.Empty(t, model.ValidateLayout(room, doors, layout))
}

func TestPlan_SideDoorReservesInteriorEdge(t *testing.T) {
	// A west-wall door at the row's z-level carves a 2-wide exclusion
	// anchored at the west interior edge.
	room := model.NewRect(0, 0, 12, 10)
	doors := []model.Door{{X: 0, Z: 2}}
	p := NewPlanner([]int{3}, []int{4})

	layout := p.Plan(room, doors)

	row := layout.Strips[0]
	require.NotEmpty(t, row.Regions)
	assert.Equal(t, model.Region{MinX: 1, MaxX: 2, Exclusion: true}, row.Regions[0])
	assert.Empty(t, model.ValidateLayout(room, doors, layout))
}

func TestPlan_LeftoverWidensOutermostFootprints(t *testing.T) {
	// Region width 13 with widths {3,4}: three footprints fit (3x3+2=11),
	// and the 2 leftover cells widen the two outermost to 4.
	room := model.NewRect(0, 0, 15, 7)
	p := NewPlanner([]int{3, 4}, []int{4, 5})

	layout := p.Plan(room, nil)

	require.Len(t, layout.Footprints, 3)
	assert.Equal(t, 4, layout.Footprints[0].Width)
	assert.Equal(t, 4, layout.Footprints[1].Width)
	assert.Equal(t, 3, layout.Footprints[2].Width)
	assert.Equal(t, "prefab_4x5", layout.Footprints[0].Variant)
	assert.Len(t, layout.Walls, 2, "one wall per gap between footprints")
	assert.Empty(t, layout.Waste, "widening absorbed the whole leftover")
}

func TestPlan_PackingMaximality(t *testing.T) {
	// A single doorless row of interior width W must hold floor((W+1)/4)
	// footprints of minimum width 3.
	for w := 3; w <= 20; w++ {
		room := model.NewRect(0, 0, w+2, 6)
		layout := NewPlanner([]int{3}, []int{4}).Plan(room, nil)
		assert.Len(t, layout.Footprints, (w+1)/4, "interior width %d", w)
	}
}

func TestPlan_NothingFits(t *testing.T) {
	p := NewPlanner([]int{3}, []int{4})

	layout := p.Plan(model.NewRect(0, 0, 5, 5), nil)
	assert.True(t, layout.IsEmpty(), "interior height 3 cannot hold a depth-4 row")
	assert.Empty(t, layout.Footprints)
	assert.Empty(t, layout.Walls)

	layout = Planner{}.Plan(model.NewRect(0, 0, 20, 20), nil)
	assert.True(t, layout.IsEmpty(), "empty dimension sets produce nothing")
}

func TestNewPlanner_SortsDimensionSets(t *testing.T) {
	p := NewPlanner([]int{4, 3}, []int{5, 4})
	assert.Equal(t, []int{3, 4}, p.Widths)
	assert.Equal(t, []int{4, 5}, p.Depths)
}

func TestPlan_Deterministic(t *testing.T) {
	room := model.NewRect(0, 0, 19, 19)
	doors := []model.Door{{X: 0, Z: 6}, {X: 9, Z: 0}, {X: 18, Z: 10}}
	p := NewPlanner([]int{3, 4}, []int{4, 5})

	a := p.Plan(room, doors)
	b := p.Plan(room, doors)

	assert.Equal(t, a, b)
}
