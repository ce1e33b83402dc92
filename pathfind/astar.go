package pathfind

import (
	"fmt"

	"github.com/katalvlaran/dungen/grid"
	"github.com/katalvlaran/dungen/pqueue"
)

// visitedSet is a persistent set of coordinates a path has consumed,
// stored as an immutable cons list. Sibling nodes share the tail, so
// extending a set is O(1) and membership is a walk of the chain. A nil
// *visitedSet is the empty set.
type visitedSet struct {
	pos  grid.Vec
	next *visitedSet
}

// contains walks the chain looking for v.
func (s *visitedSet) contains(v grid.Vec) bool {
	for cur := s; cur != nil; cur = cur.next {
		if cur.pos == v {
			return true
		}
	}

	return false
}

// push returns a new head extending s, leaving s untouched.
func (s *visitedSet) push(v grid.Vec) *visitedSet {
	return &visitedSet{pos: v, next: s}
}

// node is the per-coordinate search record. Records live in a flat arena
// indexed by the grid linearization; gen marks which search an entry
// belongs to, so starting a new search never clears the arena.
type node struct {
	gen     uint64
	cost    float64
	parent  int // arena index of the predecessor, -1 at the start
	visited *visitedSet
	closed  bool
}

// Pathfinder runs constrained A* searches over one grid. It is reusable
// across searches but not safe for concurrent use.
type Pathfinder struct {
	g      *grid.Grid
	opts   Options
	nodes  []node
	gen    uint64
	open   *pqueue.Queue[int]
	scored []scoredMove
}

// New builds a Pathfinder for g. The arena is sized to the grid once; every
// later search reuses it.
func New(g *grid.Grid, opts ...Option) (*Pathfinder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return &Pathfinder{
		g:      g,
		opts:   o,
		nodes:  make([]node, g.Len()),
		open:   pqueue.New[int](),
		scored: make([]scoredMove, 0, len(flatMoves)+len(stairMoves)),
	}, nil
}

// FindPath searches for a route from start to goal under policy.
//
// Algorithm:
//  1. Validate the endpoints and the policy, then start a fresh generation.
//  2. Seed the open set with start at its heuristic estimate.
//  3. Pop the cheapest node; if it is the goal, rebuild the path by walking
//     predecessors. Otherwise close it and expand its moves in alignment
//     order, skipping moves that leave the domain or revisit a cell the
//     path already consumed (all six cells, for staircase moves).
//  4. Ask the policy about each surviving move and relax: discoveries are
//     enqueued, improvements update cost, predecessor, visited-set and
//     queue priority in place.
//
// Returns (path, true, nil) on success, with path[0] == start and the last
// element == goal. Returns (nil, false, nil) when the open set runs dry:
// an unreachable goal is an ordinary outcome, not an error. Errors are
// reserved for contract violations.
//
// Complexity: O(cells × moves × path length) worst case.
func (p *Pathfinder) FindPath(start, goal grid.Vec, policy CostPolicy) ([]grid.Vec, bool, error) {
	// 1. Contract checks and per-search reset.
	if policy == nil {
		return nil, false, ErrNilPolicy
	}
	if !p.g.InBounds(start) || !p.g.InBounds(goal) {
		return nil, false, fmt.Errorf("%w: start %v, goal %v", ErrOutOfBounds, start, goal)
	}
	p.gen++
	p.open.Reset()

	// 2. Seed with the start node.
	startIdx := p.g.Index(start)
	goalIdx := p.g.Index(goal)
	p.refresh(startIdx)
	if err := p.open.Enqueue(startIdx, p.weightedDistance(start, goal)); err != nil {
		return nil, false, fmt.Errorf("pathfind: seeding open set: %w", err)
	}

	// 3. Main loop.
	for p.open.Len() > 0 {
		idx, err := p.open.Dequeue()
		if err != nil {
			return nil, false, fmt.Errorf("pathfind: draining open set: %w", err)
		}
		if idx == goalIdx {
			return p.reconstruct(idx), true, nil
		}
		cur := &p.nodes[idx]
		cur.closed = true
		if err := p.expand(idx, cur, goal, policy); err != nil {
			return nil, false, err
		}
	}

	// 4. Exhausted without reaching the goal.
	return nil, false, nil
}

// expand relaxes every legal move out of the node at index idx.
func (p *Pathfinder) expand(idx int, cur *node, goal grid.Vec, policy CostPolicy) error {
	pos := p.g.Coord(idx)
	for _, m := range p.orderedMoves(pos, goal) {
		dest := pos.Add(m.delta)
		if !p.g.InBounds(dest) {
			continue
		}
		if cur.visited.contains(dest) {
			continue
		}
		var footprint [6]grid.Vec
		if m.stair {
			footprint, _ = StairFootprint(pos, dest)
			if p.footprintBlocked(cur.visited, footprint) {
				continue
			}
		}
		destIdx := p.g.Index(dest)
		nb := p.refresh(destIdx)
		if nb.closed {
			continue
		}
		verdict := policy(pos, dest)
		if !verdict.Traversable {
			continue
		}

		tentative := cur.cost + verdict.Cost
		switch {
		case !p.open.Contains(destIdx):
			nb.cost = tentative
			nb.parent = idx
			nb.visited = extendVisited(cur.visited, pos, m.stair, footprint)
			if err := p.open.Enqueue(destIdx, tentative+p.weightedDistance(dest, goal)); err != nil {
				return fmt.Errorf("pathfind: enqueue %v: %w", dest, err)
			}
		case tentative < nb.cost:
			nb.cost = tentative
			nb.parent = idx
			nb.visited = extendVisited(cur.visited, pos, m.stair, footprint)
			if err := p.open.UpdatePriority(destIdx, tentative+p.weightedDistance(dest, goal)); err != nil {
				return fmt.Errorf("pathfind: reprioritize %v: %w", dest, err)
			}
		}
	}

	return nil
}

// refresh returns the arena record for idx, resetting it if it still
// belongs to an earlier search. Pointers stay valid: the arena never grows.
func (p *Pathfinder) refresh(idx int) *node {
	n := &p.nodes[idx]
	if n.gen != p.gen {
		*n = node{gen: p.gen, parent: -1}
	}

	return n
}

// footprintBlocked reports whether any of the six staircase cells was
// already consumed by the path.
func (p *Pathfinder) footprintBlocked(visited *visitedSet, footprint [6]grid.Vec) bool {
	for _, c := range footprint {
		if visited.contains(c) {
			return true
		}
	}

	return false
}

// extendVisited builds the successor's visited-set: the predecessor's set
// plus the predecessor coordinate, and for staircase moves the four
// interior footprint cells as well. The destination itself stays out until
// the path moves on from it.
func extendVisited(base *visitedSet, from grid.Vec, stair bool, footprint [6]grid.Vec) *visitedSet {
	set := base.push(from)
	if stair {
		set = set.push(footprint[1]).push(footprint[2]).push(footprint[3]).push(footprint[4])
	}

	return set
}

// reconstruct walks predecessors from idx back to the start and reverses
// the collected coordinates.
func (p *Pathfinder) reconstruct(idx int) []grid.Vec {
	var rev []grid.Vec
	for cur := idx; cur != -1; cur = p.nodes[cur].parent {
		rev = append(rev, p.g.Coord(cur))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
