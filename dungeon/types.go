package dungeon

import (
	"errors"

	"github.com/katalvlaran/dungen/grid"
	"github.com/katalvlaran/dungen/rooms"
	"github.com/katalvlaran/dungen/spantree"
)

// Sentinel errors for dungeon assembly.
var (
	// ErrNilCandidates indicates Generate was configured without a candidate
	// graph builder.
	ErrNilCandidates = errors.New("dungeon: candidate builder must not be nil")
	// ErrBadWeights indicates a negative carving cost weight.
	ErrBadWeights = errors.New("dungeon: cost weights must not be negative")
	// ErrInvariant indicates an internal consistency violation during
	// carving. It signals a bug, not an unlucky seed.
	ErrInvariant = errors.New("dungeon: invariant violated")
)

// Corridor is one carved connection: the room pair it serves and the cell
// route between them, truncated at the first cell inside the destination
// room. Shared segments list the same coordinates in several corridors.
type Corridor struct {
	Edge  spantree.Edge `json:"edge"`
	Cells []grid.Vec    `json:"cells"`
}

// Diagnostics summarizes the departures of one run from the requested
// layout. All of them are soft: the artifact is still usable.
type Diagnostics struct {
	// RoomsRequested and RoomsPlaced expose placement shortfalls.
	RoomsRequested int `json:"rooms_requested"`
	RoomsPlaced    int `json:"rooms_placed"`
	// Repaired lists the synthetic connections added for rooms the
	// candidate graph left unreachable.
	Repaired []spantree.Edge `json:"repaired,omitempty"`
	// Unreached lists the connections no corridor could be carved for.
	Unreached []spantree.Edge `json:"unreached,omitempty"`
}

// Dungeon is the generation artifact. It serializes to JSON as a whole,
// which is what package store persists.
type Dungeon struct {
	// Seed reproduces the run together with the generation options.
	Seed int64 `json:"seed"`
	// Grid holds the final cell states.
	Grid *grid.Grid `json:"grid"`
	// Rooms lists the placed rooms in placement order, entrances filled in.
	Rooms []rooms.Room `json:"rooms"`
	// Corridors lists the carved connections in carve order.
	Corridors []Corridor `json:"corridors"`
	// Directions records, per linearized cell, the confirmed open sides of
	// the corridor network.
	Directions []grid.DirectionSet `json:"directions"`
	// Diagnostics captures shortfalls, repairs and unreached connections.
	Diagnostics Diagnostics `json:"diagnostics"`
}

// DirectionsAt returns the open-direction mask at v, the empty set for
// coordinates outside the domain.
func (d *Dungeon) DirectionsAt(v grid.Vec) grid.DirectionSet {
	if d.Grid == nil || !d.Grid.InBounds(v) {
		return 0
	}

	return d.Directions[d.Grid.Index(v)]
}
