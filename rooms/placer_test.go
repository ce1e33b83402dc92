package rooms_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungen/grid"
	"github.com/katalvlaran/dungen/rooms"
)

// newGrid builds a fresh grid or fails the test.
func newGrid(t *testing.T, size grid.Vec) *grid.Grid {
	t.Helper()
	g, err := grid.New(size)
	require.NoError(t, err)

	return g
}

// TestPlace_Validation verifies argument and option validation sentinels.
func TestPlace_Validation(t *testing.T) {
	g := newGrid(t, grid.Vec{X: 10, Y: 1, Z: 10})
	rng := rand.New(rand.NewSource(1))

	_, err := rooms.Place(nil, rng)
	assert.ErrorIs(t, err, rooms.ErrNilGrid)

	_, err = rooms.Place(g, nil)
	assert.ErrorIs(t, err, rooms.ErrNilRand)

	_, err = rooms.Place(g, rng, rooms.WithCount(-1))
	assert.ErrorIs(t, err, rooms.ErrBadCount)

	_, err = rooms.Place(g, rng, rooms.WithMaxAttempts(0))
	assert.ErrorIs(t, err, rooms.ErrBadAttempts)

	_, err = rooms.Place(g, rng, rooms.WithSizeRange(grid.Vec{X: 4, Y: 1, Z: 4}, grid.Vec{X: 3, Y: 1, Z: 3}))
	assert.ErrorIs(t, err, rooms.ErrSizeRange)

	_, err = rooms.Place(g, rng, rooms.WithSizeRange(grid.Vec{X: 0, Y: 1, Z: 1}, grid.Vec{X: 3, Y: 1, Z: 3}))
	assert.ErrorIs(t, err, rooms.ErrSizeRange)

	_, err = rooms.Place(g, rng, rooms.WithMargin(grid.Vec{X: -1}))
	assert.ErrorIs(t, err, rooms.ErrBadMargin)
}

// TestPlace_ReferenceScenario places 5 rooms of size 3..5 on a 20×1×20
// domain with seed 42 and checks the full acceptance contract: requested
// count reached, domain containment, buffer separation, correct stamping.
func TestPlace_ReferenceScenario(t *testing.T) {
	g := newGrid(t, grid.Vec{X: 20, Y: 1, Z: 20})
	rng := rand.New(rand.NewSource(42))
	margin := grid.Vec{X: 1, Y: 0, Z: 1}

	placed, err := rooms.Place(g, rng,
		rooms.WithCount(5),
		rooms.WithSizeRange(grid.Vec{X: 3, Y: 1, Z: 3}, grid.Vec{X: 5, Y: 1, Z: 5}),
		rooms.WithMargin(margin),
	)
	require.NoError(t, err)
	require.Len(t, placed, 5)

	domain := rooms.Room{Extent: g.Size()}
	cells := 0
	for i, r := range placed {
		assert.True(t, domain.Contains(r.Origin), "room %d origin out of domain", i)
		assert.True(t, domain.Contains(r.Max().Sub(grid.Vec{X: 1, Y: 1, Z: 1})),
			"room %d exceeds domain", i)
		for _, axis := range []struct{ got, lo, hi int }{
			{r.Extent.X, 3, 5}, {r.Extent.Y, 1, 1}, {r.Extent.Z, 3, 5},
		} {
			assert.GreaterOrEqual(t, axis.got, axis.lo)
			assert.LessOrEqual(t, axis.got, axis.hi)
		}
		cells += r.Extent.X * r.Extent.Y * r.Extent.Z

		// Buffer separation holds for every pair, in both directions.
		for j, other := range placed {
			if i == j {
				continue
			}
			assert.False(t, r.Inflate(margin).Intersects(other),
				"buffer of room %d intersects room %d", i, j)
		}
	}
	assert.Equal(t, cells, g.Count(grid.Room), "stamped cells must equal room volume")
}

// TestPlace_Deterministic re-runs placement with one seed and expects
// identical rooms, then a different seed and expects a difference.
func TestPlace_Deterministic(t *testing.T) {
	place := func(seed int64) []rooms.Room {
		g := newGrid(t, grid.Vec{X: 30, Y: 3, Z: 30})
		placed, err := rooms.Place(g, rand.New(rand.NewSource(seed)),
			rooms.WithCount(12),
			rooms.WithSizeRange(grid.Vec{X: 3, Y: 1, Z: 3}, grid.Vec{X: 6, Y: 2, Z: 6}),
		)
		require.NoError(t, err)

		return placed
	}

	first := place(7)
	second := place(7)
	assert.Equal(t, first, second, "same seed must reproduce the same rooms")

	third := place(8)
	assert.NotEqual(t, first, third, "different seeds should diverge")
}

// TestPlace_Shortfall floods a tiny domain and expects a partial result
// without an error.
func TestPlace_Shortfall(t *testing.T) {
	g := newGrid(t, grid.Vec{X: 8, Y: 1, Z: 8})
	placed, err := rooms.Place(g, rand.New(rand.NewSource(3)),
		rooms.WithCount(50),
		rooms.WithMaxAttempts(200),
		rooms.WithSizeRange(grid.Vec{X: 3, Y: 1, Z: 3}, grid.Vec{X: 3, Y: 1, Z: 3}),
	)
	require.NoError(t, err)
	assert.Less(t, len(placed), 50, "8×8 cannot hold 50 buffered 3×3 rooms")
	assert.NotEmpty(t, placed, "at least one room fits")
}

// TestRoom_Geometry exercises the box helpers the placer and assembler use.
func TestRoom_Geometry(t *testing.T) {
	r := rooms.Room{Origin: grid.Vec{X: 2, Y: 1, Z: 3}, Extent: grid.Vec{X: 4, Y: 2, Z: 3}}

	assert.Equal(t, grid.Vec{X: 6, Y: 3, Z: 6}, r.Max())
	assert.Equal(t, grid.Vec{X: 4, Y: 2, Z: 4}, r.Center())

	assert.True(t, r.Contains(grid.Vec{X: 2, Y: 1, Z: 3}), "origin corner is inside")
	assert.True(t, r.Contains(grid.Vec{X: 5, Y: 2, Z: 5}), "far corner cell is inside")
	assert.False(t, r.Contains(grid.Vec{X: 6, Y: 1, Z: 3}), "Max corner is outside")
	assert.False(t, r.Contains(grid.Vec{X: 1, Y: 1, Z: 3}))

	buf := r.Inflate(grid.Vec{X: 1, Y: 0, Z: 1})
	assert.Equal(t, grid.Vec{X: 1, Y: 1, Z: 2}, buf.Origin)
	assert.Equal(t, grid.Vec{X: 6, Y: 2, Z: 5}, buf.Extent)
}

// TestRoom_Intersects covers touching, overlapping and separated pairs on
// each axis.
func TestRoom_Intersects(t *testing.T) {
	base := rooms.Room{Origin: grid.Vec{}, Extent: grid.Vec{X: 3, Y: 1, Z: 3}}
	cases := []struct {
		name  string
		other rooms.Room
		want  bool
	}{
		{"Identical", base, true},
		{"OverlapCorner", rooms.Room{Origin: grid.Vec{X: 2, Y: 0, Z: 2}, Extent: grid.Vec{X: 3, Y: 1, Z: 3}}, true},
		{"TouchingFaces", rooms.Room{Origin: grid.Vec{X: 3, Y: 0, Z: 0}, Extent: grid.Vec{X: 3, Y: 1, Z: 3}}, false},
		{"SeparatedX", rooms.Room{Origin: grid.Vec{X: 5, Y: 0, Z: 0}, Extent: grid.Vec{X: 2, Y: 1, Z: 2}}, false},
		{"AboveOnY", rooms.Room{Origin: grid.Vec{X: 0, Y: 1, Z: 0}, Extent: grid.Vec{X: 3, Y: 1, Z: 3}}, false},
		{"OverlapXZOnly", rooms.Room{Origin: grid.Vec{X: 1, Y: 5, Z: 1}, Extent: grid.Vec{X: 3, Y: 1, Z: 3}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Intersects(tc.other))
			assert.Equal(t, tc.want, tc.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

// TestRoom_ClosestCellTo clamps targets into the box from every side.
func TestRoom_ClosestCellTo(t *testing.T) {
	r := rooms.Room{Origin: grid.Vec{X: 4, Y: 0, Z: 4}, Extent: grid.Vec{X: 3, Y: 2, Z: 3}}

	// A target east of the room lands on the east face.
	assert.Equal(t, grid.Vec{X: 6, Y: 1, Z: 5}, r.ClosestCellTo(grid.Vec{X: 12, Y: 1, Z: 5}))
	// A target northwest lands on the corner.
	assert.Equal(t, grid.Vec{X: 4, Y: 0, Z: 4}, r.ClosestCellTo(grid.Vec{X: 0, Y: -3, Z: 0}))
	// A target inside the room is returned unchanged.
	assert.Equal(t, grid.Vec{X: 5, Y: 1, Z: 6}, r.ClosestCellTo(grid.Vec{X: 5, Y: 1, Z: 6}))
}
