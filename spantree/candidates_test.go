package spantree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungen/grid"
	"github.com/katalvlaran/dungen/spantree"
)

// TestCompleteGraph_PairsAndWeights checks pair coverage and ordering.
func TestCompleteGraph_PairsAndWeights(t *testing.T) {
	centers := []grid.Vec{{X: 0}, {X: 3}, {Z: 4}}
	edges := spantree.CompleteGraph(centers)

	require.Len(t, edges, 3)
	assert.Equal(t, spantree.NewEdge(0, 1, 3), edges[0])
	assert.Equal(t, spantree.NewEdge(0, 2, 4), edges[1])
	assert.Equal(t, spantree.NewEdge(1, 2, 5), edges[2])

	assert.Empty(t, spantree.CompleteGraph(nil))
	assert.Empty(t, spantree.CompleteGraph(centers[:1]))
}

// TestGabrielGraph_DropsBlockedEdges removes the long edge over a collinear
// middle point but keeps the two short ones.
func TestGabrielGraph_DropsBlockedEdges(t *testing.T) {
	centers := []grid.Vec{{X: 0}, {X: 5}, {X: 10}}
	edges := spantree.GabrielGraph(centers)

	require.Len(t, edges, 2)
	assert.Equal(t, spantree.NewEdge(0, 1, 5), edges[0])
	assert.Equal(t, spantree.NewEdge(1, 2, 5), edges[1])
}

// TestGabrielGraph_OnCircleKeepsEdge pins the strict-interior rule: for a
// square, each diagonal's circle passes exactly through the other two
// corners, which therefore do not block it.
func TestGabrielGraph_OnCircleKeepsEdge(t *testing.T) {
	centers := []grid.Vec{
		{X: 0, Z: 0}, {X: 10, Z: 0}, {X: 0, Z: 10}, {X: 10, Z: 10},
	}
	edges := spantree.GabrielGraph(centers)

	// All four sides plus both diagonals survive.
	assert.Len(t, edges, 6)
}

// TestGabrielGraph_KeepsRepairIdle builds from Gabriel candidates over
// distinct centers and expects no synthetic repair edges: the reduction
// still carries a spanning tree.
func TestGabrielGraph_KeepsRepairIdle(t *testing.T) {
	centers := []grid.Vec{
		{X: 2, Z: 3}, {X: 40, Z: 8}, {X: 22, Z: 30}, {X: 60, Z: 44},
		{X: 9, Z: 51}, {X: 35, Z: 62}, {X: 71, Z: 12}, {X: 50, Z: 25},
	}
	res, err := spantree.Build(centers, spantree.GabrielGraph(centers),
		rand.New(rand.NewSource(2)), spantree.WithExtraEdgeProbability(0))
	require.NoError(t, err)

	assert.Empty(t, res.Repaired)
	assert.Len(t, res.Tree, len(centers)-1)
	assert.True(t, connected(len(centers), res.Selected()))
}

// TestGabrielGraph_SubsetOfComplete confirms the reduction only filters.
func TestGabrielGraph_SubsetOfComplete(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	centers := make([]grid.Vec, 15)
	for i := range centers {
		centers[i] = grid.Vec{X: rng.Intn(80), Y: rng.Intn(4), Z: rng.Intn(80)}
	}

	full := make(map[spantree.Edge]bool)
	for _, e := range spantree.CompleteGraph(centers) {
		full[e] = true
	}
	gabriel := spantree.GabrielGraph(centers)
	assert.LessOrEqual(t, len(gabriel), len(full))
	for _, e := range gabriel {
		assert.True(t, full[e], "gabriel edge %s missing from complete graph", e)
	}
}
