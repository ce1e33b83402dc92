package spantree

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungen/grid"
)

// Build selects the connections for one dungeon:
//
//	1) Validate the candidate list and options.
//	2) Prim's algorithm from vertex 0: each round scans the candidates for
//	   the minimum-weight edge with exactly one endpoint in the tree; ties
//	   keep the first-encountered candidate, so equal weights resolve by
//	   input order.
//	3) Repair: every vertex the candidate graph left unreached is attached
//	   to its nearest already-connected vertex (center distance, ties to the
//	   lowest index) with a synthetic edge. After repair the selection is
//	   connected over all vertices, unconditionally.
//	4) Cycle injection: every candidate not consumed by the tree draws an
//	   independent Bernoulli(ExtraEdgeProbability) from rng, in input order;
//	   successful draws whose pair is not already selected join Extras.
//
// centers supplies both the vertex count and the distances repair needs.
// The same centers, candidates, options and RNG state always produce the
// same Result. Complexity: O(V·E + V²).
func Build(centers []grid.Vec, candidates []Edge, rng *rand.Rand, opts ...Option) (Result, error) {
	// Step 1: validation.
	if rng == nil {
		return Result{}, ErrNilRand
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	n := len(centers)
	for i, e := range candidates {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return Result{}, fmt.Errorf("%w: candidate %d is %s with %d vertices", ErrVertexRange, i, e, n)
		}
		if e.A == e.B {
			return Result{}, fmt.Errorf("%w: candidate %d is %s", ErrSelfLoop, i, e)
		}
	}
	if n == 0 {
		return Result{}, nil
	}

	// Step 2: Prim from vertex 0.
	var res Result
	used := make([]bool, len(candidates))
	inTree := mapset.New[int]()
	inTree.Put(0)
	for inTree.Size() < n {
		best := -1
		for i, e := range candidates {
			if used[i] || inTree.Has(e.A) == inTree.Has(e.B) {
				continue
			}
			if best == -1 || e.Weight < candidates[best].Weight {
				best = i
			}
		}
		if best == -1 {
			// No candidate reaches outside the tree; repair takes over.
			break
		}
		used[best] = true
		e := candidates[best]
		inTree.Put(e.A)
		inTree.Put(e.B)
		res.Tree = append(res.Tree, e)
	}

	// Step 3: mandatory connectivity repair.
	for v := 0; v < n; v++ {
		if inTree.Has(v) {
			continue
		}
		nearest, nearestDist := -1, 0.0
		for u := 0; u < n; u++ {
			if !inTree.Has(u) {
				continue
			}
			if d := centers[v].Dist(centers[u]); nearest == -1 || d < nearestDist {
				nearest, nearestDist = u, d
			}
		}
		res.Repaired = append(res.Repaired, NewEdge(v, nearest, nearestDist))
		inTree.Put(v)
	}

	// Step 4: cycle injection. Draws happen for every non-tree candidate so
	// that the RNG stream position does not depend on the probability value.
	for i, e := range candidates {
		if used[i] {
			continue
		}
		hit := rng.Float64() < o.ExtraEdgeProbability
		if hit && !selectedPair(res, e) {
			res.Extras = append(res.Extras, e)
		}
	}

	return res, nil
}

// selectedPair reports whether an edge over the same unordered pair is
// already part of the result. Pairs compare unordered, so candidate lists
// need not be canonicalized.
func selectedPair(res Result, e Edge) bool {
	c := NewEdge(e.A, e.B, 0)
	same := func(o Edge) bool {
		oc := NewEdge(o.A, o.B, 0)

		return oc.A == c.A && oc.B == c.B
	}
	for _, t := range res.Tree {
		if same(t) {
			return true
		}
	}
	for _, r := range res.Repaired {
		if same(r) {
			return true
		}
	}
	for _, x := range res.Extras {
		if same(x) {
			return true
		}
	}

	return false
}
