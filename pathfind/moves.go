package pathfind

import (
	"math"
	"sort"

	"github.com/katalvlaran/dungen/grid"
)

// move is one neighbor template: a displacement plus whether it is a
// staircase edge.
type move struct {
	delta grid.Vec
	stair bool
}

// flatMoves are the four cardinal XZ displacements, in compass order.
var flatMoves = [...]move{
	{delta: grid.Vec{Z: -1}},
	{delta: grid.Vec{X: 1}},
	{delta: grid.Vec{Z: 1}},
	{delta: grid.Vec{X: -1}},
}

// stairMoves pair each compass direction with one level up and one level
// down. In a single-level domain every entry lands out of bounds, so flat
// searches never see them take effect.
var stairMoves = [...]move{
	{delta: grid.Vec{Y: 1, Z: -3}, stair: true},
	{delta: grid.Vec{Y: -1, Z: -3}, stair: true},
	{delta: grid.Vec{X: 3, Y: 1}, stair: true},
	{delta: grid.Vec{X: 3, Y: -1}, stair: true},
	{delta: grid.Vec{Y: 1, Z: 3}, stair: true},
	{delta: grid.Vec{Y: -1, Z: 3}, stair: true},
	{delta: grid.Vec{X: -3, Y: 1}, stair: true},
	{delta: grid.Vec{X: -3, Y: -1}, stair: true},
}

// isStairDelta reports whether d spans exactly one level and three cells
// along a single horizontal axis.
func isStairDelta(d grid.Vec) bool {
	if d.Y != 1 && d.Y != -1 {
		return false
	}

	return (d.Z == 0 && (d.X == 3 || d.X == -3)) || (d.X == 0 && (d.Z == 3 || d.Z == -3))
}

// StairFootprint lists the six cells the staircase move from→to reserves:
// the origin, the two intermediates at the origin level, the two cells at
// the destination level above or below them, and the destination. ok is
// false when to-from is not a staircase displacement.
func StairFootprint(from, to grid.Vec) (cells [6]grid.Vec, ok bool) {
	d := to.Sub(from)
	if !isStairDelta(d) {
		return cells, false
	}

	// Unit horizontal step and the vertical shift.
	h := grid.Vec{X: d.X / 3, Z: d.Z / 3}
	v := grid.Vec{Y: d.Y}

	cells[0] = from
	cells[1] = from.Add(h)
	cells[2] = cells[1].Add(h)
	cells[3] = cells[1].Add(v)
	cells[4] = cells[2].Add(v)
	cells[5] = to

	return cells, true
}

// scoredMove carries the alignment score used to order expansion.
type scoredMove struct {
	move
	score float64
}

// orderedMoves fills the reusable scratch slice with the applicable move
// templates sorted by descending alignment with the direction from→goal.
// While the goal is on another level and the horizontal residual is within
// StairUrgencyRadius, staircase moves toward that level receive
// StairUrgencyBoost on top of their alignment. The sort is stable, so tied
// scores keep the canonical template order and expansion stays
// deterministic.
func (p *Pathfinder) orderedMoves(from, goal grid.Vec) []scoredMove {
	p.scored = p.scored[:0]
	for _, m := range flatMoves {
		p.scored = append(p.scored, scoredMove{move: m})
	}
	if p.g.Size().Y > 1 {
		for _, m := range stairMoves {
			p.scored = append(p.scored, scoredMove{move: m})
		}
	}

	rem := goal.Sub(from)
	if rem == (grid.Vec{}) {
		return p.scored
	}
	remNorm := rem.Norm()
	urgent := rem.Y != 0 && from.HorizontalDist(goal) <= p.opts.StairUrgencyRadius
	for i := range p.scored {
		m := &p.scored[i]
		m.score = float64(m.delta.Dot(rem)) / (m.delta.Norm() * remNorm)
		if urgent && m.stair && sameSign(m.delta.Y, rem.Y) {
			m.score += p.opts.StairUrgencyBoost
		}
	}
	sort.SliceStable(p.scored, func(i, j int) bool { return p.scored[i].score > p.scored[j].score })

	return p.scored
}

// sameSign reports whether two non-zero ints share a sign.
func sameSign(a, b int) bool {
	return (a > 0) == (b > 0)
}

// weightedDistance is the heuristic: Euclidean distance with the vertical
// axis scaled by VerticalWeight, multiplied by PendingStairWeight while the
// two cells sit on different levels.
func (p *Pathfinder) weightedDistance(from, goal grid.Vec) float64 {
	dx := float64(goal.X - from.X)
	dy := float64(goal.Y-from.Y) * p.opts.VerticalWeight
	dz := float64(goal.Z - from.Z)
	h := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if from.Y != goal.Y {
		h *= p.opts.PendingStairWeight
	}

	return h
}
