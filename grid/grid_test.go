package grid_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungen/grid"
)

// TestNew_Errors verifies that New rejects non-positive extents on any axis.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		size grid.Vec
	}{
		{"ZeroX", grid.Vec{X: 0, Y: 1, Z: 4}},
		{"ZeroY", grid.Vec{X: 4, Y: 0, Z: 4}},
		{"NegativeZ", grid.Vec{X: 4, Y: 1, Z: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.size)
			assert.ErrorIs(t, err, grid.ErrBadExtent)
		})
	}
}

// TestIndexCoord_Roundtrip checks that Coord inverts Index for every cell of
// an asymmetric domain, so no two coordinates alias the same slot.
func TestIndexCoord_Roundtrip(t *testing.T) {
	g, err := grid.New(grid.Vec{X: 4, Y: 3, Z: 5})
	require.NoError(t, err)

	seen := make(map[int]bool, g.Len())
	for z := 0; z < 5; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				v := grid.Vec{X: x, Y: y, Z: z}
				idx := g.Index(v)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, g.Len())
				assert.False(t, seen[idx], "index %d reused at %s", idx, v)
				seen[idx] = true
				assert.Equal(t, v, g.Coord(idx))
			}
		}
	}
}

// TestIndex_Linearization pins the exact layout formula so serialized cell
// arrays stay stable across releases.
func TestIndex_Linearization(t *testing.T) {
	g, err := grid.New(grid.Vec{X: 4, Y: 3, Z: 5})
	require.NoError(t, err)

	assert.Equal(t, 0, g.Index(grid.Vec{X: 0, Y: 0, Z: 0}))
	assert.Equal(t, 1, g.Index(grid.Vec{X: 1, Y: 0, Z: 0}))
	assert.Equal(t, 4, g.Index(grid.Vec{X: 0, Y: 1, Z: 0}))
	assert.Equal(t, 12, g.Index(grid.Vec{X: 0, Y: 0, Z: 1}))
	assert.Equal(t, 1+4*2+12*3, g.Index(grid.Vec{X: 1, Y: 2, Z: 3}))
}

// TestInBounds exercises the boundary cells of a 20×1×20 planar domain.
func TestInBounds(t *testing.T) {
	g, err := grid.New(grid.Vec{X: 20, Y: 1, Z: 20})
	require.NoError(t, err)

	inside := []grid.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 19, Y: 0, Z: 19},
		{X: 10, Y: 0, Z: 3},
	}
	for _, v := range inside {
		assert.True(t, g.InBounds(v), "expected %s in bounds", v)
	}

	outside := []grid.Vec{
		{X: -1, Y: 0, Z: 0},
		{X: 20, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 20},
	}
	for _, v := range outside {
		assert.False(t, g.InBounds(v), "expected %s out of bounds", v)
	}
}

// TestGetSet_Count verifies state mutation and counting.
func TestGetSet_Count(t *testing.T) {
	g, err := grid.New(grid.Vec{X: 3, Y: 2, Z: 3})
	require.NoError(t, err)

	a := grid.Vec{X: 1, Y: 0, Z: 1}
	b := grid.Vec{X: 2, Y: 1, Z: 0}
	require.Equal(t, grid.Empty, g.Get(a))

	g.Set(a, grid.Room)
	g.Set(b, grid.Stair)
	assert.Equal(t, grid.Room, g.Get(a))
	assert.Equal(t, grid.Stair, g.Get(b))
	assert.Equal(t, 1, g.Count(grid.Room))
	assert.Equal(t, 1, g.Count(grid.Stair))
	assert.Equal(t, g.Len()-2, g.Count(grid.Empty))
}

// TestGrid_JSONRoundtrip ensures a grid survives encode/decode bit-for-bit.
func TestGrid_JSONRoundtrip(t *testing.T) {
	g, err := grid.New(grid.Vec{X: 3, Y: 2, Z: 2})
	require.NoError(t, err)
	g.Set(grid.Vec{X: 0, Y: 0, Z: 0}, grid.Room)
	g.Set(grid.Vec{X: 2, Y: 1, Z: 1}, grid.Corridor)

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var back grid.Grid
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, g.Size(), back.Size())
	assert.Equal(t, grid.Room, back.Get(grid.Vec{X: 0, Y: 0, Z: 0}))
	assert.Equal(t, grid.Corridor, back.Get(grid.Vec{X: 2, Y: 1, Z: 1}))
	assert.Equal(t, back.Len()-2, back.Count(grid.Empty))
}

// TestGrid_UnmarshalErrors verifies payload validation on decode.
func TestGrid_UnmarshalErrors(t *testing.T) {
	var g grid.Grid

	err := json.Unmarshal([]byte(`{"size":{"x":2,"y":0,"z":2},"cells":[]}`), &g)
	assert.ErrorIs(t, err, grid.ErrBadExtent)

	err = json.Unmarshal([]byte(`{"size":{"x":2,"y":1,"z":2},"cells":[0,0,0]}`), &g)
	assert.ErrorIs(t, err, grid.ErrPayloadSize)
}

// TestVec_Math covers the vector helpers the pathfinder leans on.
func TestVec_Math(t *testing.T) {
	a := grid.Vec{X: 1, Y: 2, Z: 3}
	b := grid.Vec{X: 4, Y: 0, Z: -1}

	assert.Equal(t, grid.Vec{X: 5, Y: 2, Z: 2}, a.Add(b))
	assert.Equal(t, grid.Vec{X: -3, Y: 2, Z: 4}, a.Sub(b))
	assert.Equal(t, grid.Vec{X: 3, Y: 6, Z: 9}, a.Scale(3))
	assert.Equal(t, 1, a.Dot(b))
	assert.InDelta(t, 5.0, grid.Vec{X: 3, Y: 0, Z: 4}.Norm(), 1e-12)
	assert.InDelta(t, 5.0, grid.Vec{}.Dist(grid.Vec{X: 3, Y: 0, Z: 4}), 1e-12)
	assert.InDelta(t, 5.0, grid.Vec{Y: 7}.HorizontalDist(grid.Vec{X: 3, Y: 2, Z: 4}), 1e-12)
	assert.Equal(t, "(1,2,3)", a.String())
}

// TestCellState_String pins the state names used across diagnostics.
func TestCellState_String(t *testing.T) {
	assert.Equal(t, "Empty", grid.Empty.String())
	assert.Equal(t, "Room", grid.Room.String())
	assert.Equal(t, "Corridor", grid.Corridor.String())
	assert.Equal(t, "Stair", grid.Stair.String())
	assert.Equal(t, "CellState(9)", grid.CellState(9).String())
}
