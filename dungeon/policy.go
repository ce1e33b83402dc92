package dungeon

import (
	"fmt"

	"github.com/katalvlaran/dungen/grid"
	"github.com/katalvlaran/dungen/pathfind"
)

// CostWeights prices carving moves by the state of the cell being entered.
// Lower values attract corridors: reusing an existing corridor is near
// free, crossing open ground is moderate, tunneling through a room is
// discouraged, and every staircase pays a large flat surcharge so the
// search only climbs when it must.
type CostWeights struct {
	Empty    float64 `json:"empty"`
	Corridor float64 `json:"corridor"`
	Room     float64 `json:"room"`
	Stair    float64 `json:"stair"`
}

// DefaultCostWeights returns the reference pricing.
func DefaultCostWeights() CostWeights {
	return CostWeights{Empty: 5, Corridor: 1, Room: 10, Stair: 100}
}

// validate rejects negative prices.
func (w CostWeights) validate() error {
	if w.Empty < 0 || w.Corridor < 0 || w.Room < 0 || w.Stair < 0 {
		return fmt.Errorf("%w: %+v", ErrBadWeights, w)
	}

	return nil
}

// of maps a cell state to its entry price.
func (w CostWeights) of(s grid.CellState) float64 {
	switch s {
	case grid.Corridor:
		return w.Corridor
	case grid.Room:
		return w.Room
	case grid.Stair:
		return w.Stair
	default:
		return w.Empty
	}
}

// Policy binds the weights to a grid as a pathfind.CostPolicy. The rules:
//
//   - Flat moves may enter any cell except Stair cells, priced by the
//     destination state.
//   - Staircase moves require all four interior footprint cells to be
//     Empty and the destination to be Empty or Corridor; they cost the
//     Stair surcharge plus the destination price.
//
// Both endpoints must be in bounds; the pathfinder guarantees that for
// every move it offers. The policy reads the live grid, so corridors
// carved earlier in a run influence later searches.
func (w CostWeights) Policy(g *grid.Grid) pathfind.CostPolicy {
	return func(from, to grid.Vec) pathfind.Cost {
		if from.Y == to.Y {
			dest := g.Get(to)
			if dest == grid.Stair {
				return pathfind.Cost{}
			}

			return pathfind.Cost{Traversable: true, Cost: w.of(dest)}
		}

		cells, ok := pathfind.StairFootprint(from, to)
		if !ok {
			return pathfind.Cost{}
		}
		for _, c := range cells[1:5] {
			if g.Get(c) != grid.Empty {
				return pathfind.Cost{}
			}
		}
		dest := g.Get(to)
		if dest != grid.Empty && dest != grid.Corridor {
			return pathfind.Cost{}
		}

		return pathfind.Cost{Traversable: true, Cost: w.Stair + w.of(dest), Stairs: true}
	}
}
