package spantree

import (
	"math"

	"github.com/katalvlaran/dungen/grid"
)

// CompleteGraph returns every unordered pair of centers as a candidate edge,
// weighted by Euclidean center distance. Pairs are emitted in ascending
// (i, j) order, which is the tie-break order seen by Build.
// Complexity: O(V²).
func CompleteGraph(centers []grid.Vec) []Edge {
	n := len(centers)
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{A: i, B: j, Weight: centers[i].Dist(centers[j])})
		}
	}

	return edges
}

// GabrielGraph returns the Gabriel reduction of the complete graph: pair
// (i, j) survives only when no third center lies strictly inside the sphere
// whose diameter is the segment ij. The result is a Delaunay subgraph that
// still contains the Euclidean minimum spanning tree for distinct centers,
// so Build's repair stage stays idle on it while layouts avoid the long
// skip-over edges a complete graph offers.
// Emission order matches CompleteGraph, filtered. Complexity: O(V³).
func GabrielGraph(centers []grid.Vec) []Edge {
	n := len(centers)
	edges := make([]Edge, 0, n*2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if gabrielOpen(centers, i, j) {
				edges = append(edges, Edge{A: i, B: j, Weight: centers[i].Dist(centers[j])})
			}
		}
	}

	return edges
}

// gabrielOpen reports whether the diameter sphere of (i, j) is free of other
// centers. Centers exactly on the sphere do not block the edge.
func gabrielOpen(centers []grid.Vec, i, j int) bool {
	mx := (float64(centers[i].X) + float64(centers[j].X)) / 2
	my := (float64(centers[i].Y) + float64(centers[j].Y)) / 2
	mz := (float64(centers[i].Z) + float64(centers[j].Z)) / 2
	radiusSq := distSq(float64(centers[i].X), float64(centers[i].Y), float64(centers[i].Z), mx, my, mz)

	for k := range centers {
		if k == i || k == j {
			continue
		}
		d := distSq(float64(centers[k].X), float64(centers[k].Y), float64(centers[k].Z), mx, my, mz)
		if d < radiusSq && !nearlyEqual(d, radiusSq) {
			return false
		}
	}

	return true
}

func distSq(ax, ay, az, bx, by, bz float64) float64 {
	dx, dy, dz := ax-bx, ay-by, az-bz

	return dx*dx + dy*dy + dz*dz
}

// nearlyEqual absorbs float error for centers sitting on the sphere itself.
func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
