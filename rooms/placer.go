package rooms

import (
	"math/rand"

	"github.com/katalvlaran/dungen/grid"
)

// Place samples up to MaxAttempts candidate rooms and stamps every accepted
// one into g as Room cells, returning the accepted rooms in placement order.
//
// Steps per attempt:
//  1. Sample an origin uniformly over the domain, then a per-axis extent in
//     [MinSize, MaxSize].
//  2. Reject when the candidate leaves the domain on any axis.
//  3. Reject when the margin-inflated candidate intersects any accepted
//     room's box.
//  4. Otherwise stamp the candidate's cells and record it.
//
// The loop ends when Count rooms are placed or the attempt budget runs out.
// A shortfall is not an error; the caller inspects len(result).
// Complexity: O(MaxAttempts × placed + room cells).
func Place(g *grid.Grid, rng *rand.Rand, opts ...Option) ([]Room, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	o := DefaultPlaceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	domain := g.Size()
	placed := make([]Room, 0, o.Count)
	for attempt := 0; attempt < o.MaxAttempts && len(placed) < o.Count; attempt++ {
		cand := sample(rng, domain, o)
		if !insideDomain(cand, domain) {
			continue
		}
		if collides(cand.Inflate(o.Margin), placed) {
			continue
		}
		stamp(g, cand)
		placed = append(placed, cand)
	}

	return placed, nil
}

// sample draws one candidate box. The draw order (origin X,Y,Z then extent
// X,Y,Z) is fixed; changing it would change every seeded layout.
func sample(rng *rand.Rand, domain grid.Vec, o PlaceOptions) Room {
	origin := grid.Vec{
		X: rng.Intn(domain.X),
		Y: rng.Intn(domain.Y),
		Z: rng.Intn(domain.Z),
	}
	extent := grid.Vec{
		X: between(rng, o.MinSize.X, o.MaxSize.X),
		Y: between(rng, o.MinSize.Y, o.MaxSize.Y),
		Z: between(rng, o.MinSize.Z, o.MaxSize.Z),
	}

	return Room{Origin: origin, Extent: extent}
}

// between draws an int uniformly from [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if lo == hi {
		return lo
	}

	return lo + rng.Intn(hi-lo+1)
}

// insideDomain reports whether the room box fits the domain on every axis.
func insideDomain(r Room, domain grid.Vec) bool {
	max := r.Max()

	return r.Origin.X >= 0 && r.Origin.Y >= 0 && r.Origin.Z >= 0 &&
		max.X <= domain.X && max.Y <= domain.Y && max.Z <= domain.Z
}

// collides reports whether buffer overlaps any accepted room's box.
func collides(buffer Room, placed []Room) bool {
	for _, r := range placed {
		if buffer.Intersects(r) {
			return true
		}
	}

	return false
}

// stamp marks every cell of r as Room.
func stamp(g *grid.Grid, r Room) {
	max := r.Max()
	for z := r.Origin.Z; z < max.Z; z++ {
		for y := r.Origin.Y; y < max.Y; y++ {
			for x := r.Origin.X; x < max.X; x++ {
				g.Set(grid.Vec{X: x, Y: y, Z: z}, grid.Room)
			}
		}
	}
}
