// Package spantree_test provides runnable examples for connection building.
package spantree_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dungen/grid"
	"github.com/katalvlaran/dungen/spantree"
)

// ExampleBuild selects the spanning tree of three room centers forming a
// 3-4-5 triangle. With the extra-edge probability at zero the result is the
// plain minimum spanning tree.
func ExampleBuild() {
	centers := []grid.Vec{
		{X: 0, Z: 0},
		{X: 4, Z: 0},
		{X: 0, Z: 3},
	}

	// 1) Candidate edges over every pair: 0-1 (4), 0-2 (3), 1-2 (5).
	candidates := spantree.CompleteGraph(centers)

	// 2) Build from a fixed seed with cycle injection disabled.
	res, err := spantree.Build(centers, candidates, rand.New(rand.NewSource(1)),
		spantree.WithExtraEdgeProbability(0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// 3) The two cheapest edges connect all three rooms.
	for _, e := range res.Tree {
		fmt.Println(e)
	}
	// Output:
	// 0-2 (3.00)
	// 0-1 (4.00)
}
