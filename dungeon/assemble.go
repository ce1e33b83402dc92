package dungeon

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/dungen/grid"
	"github.com/katalvlaran/dungen/pathfind"
	"github.com/katalvlaran/dungen/rooms"
	"github.com/katalvlaran/dungen/spantree"
)

// Generate runs the full assembly pipeline and returns the artifact:
//
//  1. Validate options, allocate the grid, seed the single RNG stream.
//  2. Place rooms by rejection sampling; a shortfall is recorded, not
//     fatal.
//  3. Build the connection network over the room centers: candidates,
//     spanning tree, repair, cycle edges.
//  4. Carve every selected connection with constrained A*, stamping
//     corridors and staircases into the grid as each path lands. Searches
//     read the live grid, so later corridors attach to earlier ones.
//  5. Sweep room boundaries for mutually confirmed openings.
//
// Same options and seed, same artifact.
//
// Complexity: O(attempts × rooms) + O(rooms² × candidates) +
// O(edges × cells × moves × path length).
func Generate(opts ...Option) (*Dungeon, error) {
	// Step 1: configuration and domain.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(cfg.Extents)
	if err != nil {
		return nil, fmt.Errorf("dungeon: allocating domain: %w", err)
	}

	r := &runner{
		cfg:        cfg,
		g:          g,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		dirs:       make([]grid.DirectionSet, g.Len()),
		stairCells: mapset.New[grid.Vec](),
	}

	// Steps 2-5.
	if err = r.placeRooms(); err != nil {
		return nil, err
	}
	if err = r.connect(); err != nil {
		return nil, err
	}
	if err = r.carve(); err != nil {
		return nil, err
	}
	r.sweepEntrances()

	return r.artifact(), nil
}

// runner holds the mutable state of one Generate execution.
type runner struct {
	cfg        Options
	g          *grid.Grid
	rng        *rand.Rand
	rooms      []rooms.Room
	net        spantree.Result
	pf         *pathfind.Pathfinder
	dirs       []grid.DirectionSet
	stairCells mapset.Set[grid.Vec]
	corridors  []Corridor
	diag       Diagnostics
}

// placeRooms samples the room set and records any shortfall.
func (r *runner) placeRooms() error {
	placed, err := rooms.Place(r.g, r.rng,
		rooms.WithCount(r.cfg.RoomCount),
		rooms.WithMaxAttempts(r.cfg.MaxAttempts),
		rooms.WithSizeRange(r.cfg.MinRoomSize, r.cfg.MaxRoomSize),
		rooms.WithMargin(r.cfg.Margin),
	)
	if err != nil {
		return fmt.Errorf("dungeon: placing rooms: %w", err)
	}
	r.rooms = placed
	r.diag.RoomsRequested = r.cfg.RoomCount
	r.diag.RoomsPlaced = len(placed)
	if len(placed) < r.cfg.RoomCount && r.cfg.OnRoomShortfall != nil {
		r.cfg.OnRoomShortfall(len(placed), r.cfg.RoomCount)
	}

	return nil
}

// connect selects the room connections over the placed centers.
func (r *runner) connect() error {
	centers := make([]grid.Vec, len(r.rooms))
	for i, rm := range r.rooms {
		centers[i] = rm.Center()
	}
	net, err := spantree.Build(centers, r.cfg.Candidates(centers), r.rng,
		spantree.WithExtraEdgeProbability(r.cfg.ExtraEdgeProbability))
	if err != nil {
		return fmt.Errorf("dungeon: connecting rooms: %w", err)
	}
	r.net = net
	r.diag.Repaired = net.Repaired
	if r.cfg.OnRepair != nil {
		for _, e := range net.Repaired {
			r.cfg.OnRepair(e)
		}
	}

	return nil
}

// carve routes every selected connection and stamps it into the grid. An
// unreachable goal skips the connection; carving errors abort the run.
func (r *runner) carve() error {
	pf, err := pathfind.New(r.g, r.cfg.Pathfinding...)
	if err != nil {
		return fmt.Errorf("dungeon: preparing pathfinder: %w", err)
	}
	r.pf = pf
	policy := r.cfg.Weights.Policy(r.g)

	for _, e := range r.net.Selected() {
		// Enter each room through the boundary cell facing the other room.
		start := r.rooms[e.A].ClosestCellTo(r.rooms[e.B].Center())
		goal := r.rooms[e.B].ClosestCellTo(r.rooms[e.A].Center())
		path, found, err := r.pf.FindPath(start, goal, policy)
		if err != nil {
			return fmt.Errorf("dungeon: carving %s: %w", e, err)
		}
		if !found {
			r.diag.Unreached = append(r.diag.Unreached, e)
			if r.cfg.OnPathNotFound != nil {
				r.cfg.OnPathNotFound(e)
			}
			continue
		}
		path = truncateAtRoom(path, r.rooms[e.B])
		if err = r.stamp(path); err != nil {
			return err
		}
		r.corridors = append(r.corridors, Corridor{Edge: e, Cells: path})
	}

	return nil
}

// truncateAtRoom cuts the route at the first cell inside the destination
// room, dropping any tail the search appended beyond the doorway.
func truncateAtRoom(path []grid.Vec, dest rooms.Room) []grid.Vec {
	for i, c := range path {
		if dest.Contains(c) {
			return path[:i+1]
		}
	}

	return path
}

// stamp writes one route into the grid, move by move.
func (r *runner) stamp(path []grid.Vec) error {
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if dir, ok := grid.DirectionOf(cur.Sub(prev)); ok {
			r.stampFlat(prev, cur, dir)
			continue
		}
		if err := r.stampStair(prev, cur); err != nil {
			return err
		}
	}

	return nil
}

// stampFlat claims both cells of a cardinal move and records the mutual
// direction marks.
func (r *runner) stampFlat(prev, cur grid.Vec, dir grid.Direction) {
	r.carveCell(prev)
	r.carveCell(cur)
	r.dirs[r.g.Index(prev)].Add(dir)
	r.dirs[r.g.Index(cur)].Add(dir.Opposite())
}

// stampStair claims the six cells of a staircase move atomically: the four
// interior cells become Stair and join the audit set, the endpoints are
// carved like corridor cells, and both endpoints record the compass and
// vertical components of the move.
func (r *runner) stampStair(prev, cur grid.Vec) error {
	cells, ok := pathfind.StairFootprint(prev, cur)
	if !ok {
		return fmt.Errorf("%w: displacement %v is neither flat nor staircase", ErrInvariant, cur.Sub(prev))
	}
	for _, c := range cells[1:5] {
		if r.g.Get(c) != grid.Empty || r.stairCells.Has(c) {
			return fmt.Errorf("%w: staircase cell %v already claimed", ErrInvariant, c)
		}
	}
	for _, c := range cells[1:5] {
		r.g.Set(c, grid.Stair)
		r.stairCells.Put(c)
	}
	r.carveCell(prev)
	r.carveCell(cur)

	horiz, vert := stairDirections(cur.Sub(prev))
	pi, ci := r.g.Index(prev), r.g.Index(cur)
	r.dirs[pi].Add(horiz)
	r.dirs[pi].Add(vert)
	r.dirs[ci].Add(horiz.Opposite())
	r.dirs[ci].Add(vert.Opposite())

	return nil
}

// carveCell claims an Empty cell for the corridor network. Room, Corridor
// and Stair cells keep their state: states only harden.
func (r *runner) carveCell(v grid.Vec) {
	if r.g.Get(v) == grid.Empty {
		r.g.Set(v, grid.Corridor)
	}
}

// stairDirections splits a staircase displacement into compass and
// vertical components.
func stairDirections(d grid.Vec) (grid.Direction, grid.Direction) {
	var horiz grid.Direction
	switch {
	case d.X > 0:
		horiz = grid.East
	case d.X < 0:
		horiz = grid.West
	case d.Z > 0:
		horiz = grid.South
	default:
		horiz = grid.North
	}
	vert := grid.Up
	if d.Y < 0 {
		vert = grid.Down
	}

	return horiz, vert
}

// sweepEntrances walks every room boundary cell in linearization order and
// records an entrance wherever the outside neighbor is corridor network
// and its direction set points back at the room. The mutual check keeps
// corridors that merely brush a wall from becoming doorways.
func (r *runner) sweepEntrances() {
	for ri := range r.rooms {
		rm := &r.rooms[ri]
		max := rm.Max()
		for z := rm.Origin.Z; z < max.Z; z++ {
			for y := rm.Origin.Y; y < max.Y; y++ {
				for x := rm.Origin.X; x < max.X; x++ {
					cell := grid.Vec{X: x, Y: y, Z: z}
					for _, d := range grid.CompassDirections {
						n := cell.Add(d.Offset())
						if rm.Contains(n) || !r.g.InBounds(n) {
							continue
						}
						if st := r.g.Get(n); st != grid.Corridor && st != grid.Stair {
							continue
						}
						if !r.dirs[r.g.Index(n)].Has(d.Opposite()) {
							continue
						}
						rm.Entrances = append(rm.Entrances, rooms.Entrance{Cell: cell, Dir: d})
						r.dirs[r.g.Index(cell)].Add(d)
					}
				}
			}
		}
	}
}

// artifact freezes the runner state into the returned Dungeon.
func (r *runner) artifact() *Dungeon {
	return &Dungeon{
		Seed:        r.cfg.Seed,
		Grid:        r.g,
		Rooms:       r.rooms,
		Corridors:   r.corridors,
		Directions:  r.dirs,
		Diagnostics: r.diag,
	}
}
